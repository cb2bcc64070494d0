package canon

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/FocuswithJustin/scriptref/core/errors"
	"github.com/FocuswithJustin/scriptref/core/sqlite"
)

const booksQuery = `SELECT id, name, abbreviation, testament, chapter_count, category
FROM books ORDER BY id`

// LoadSQLite builds a Directory from the books table of a reader database:
//
//	books (id, name, abbreviation, testament, chapter_count, category)
//
// The abbreviation column becomes the book's OSIS code. When a row matches a
// standard book by ID and name, the standard abbreviations are merged in so the
// loaded directory accepts the same short forms.
func LoadSQLite(ctx context.Context, path string) (*Directory, error) {
	// database/sql would silently create a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewIO("open", path, err)
	}

	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, booksQuery)
	if err != nil {
		return nil, errors.NewIO("query", path, err)
	}
	defer rows.Close()

	std := Standard()
	var books []Book
	for rows.Next() {
		var (
			b         Book
			testament sql.NullString
			category  sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.OSIS, &testament, &b.ChapterCount, &category); err != nil {
			return nil, errors.NewIO("scan", path, err)
		}
		b.Testament = Testament(testament.String)
		b.Category = category.String

		if s, ok := std.FindByID(b.ID); ok && strings.EqualFold(s.Name, b.Name) {
			b.Abbreviations = append([]string{s.OSIS}, s.Abbreviations...)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	d, err := New(books)
	if err != nil {
		return nil, errors.Wrapf(err, "books table in %s", path)
	}
	return d, nil
}
