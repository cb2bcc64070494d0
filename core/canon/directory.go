package canon

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/scriptref/core/errors"
)

// Directory maps book names and abbreviations to canonical books.
// It is immutable after construction.
type Directory struct {
	books []Book

	// names and aliases map a normalized key to an index into books.
	// Full names are kept apart so they win over abbreviations.
	names   map[string]int
	aliases map[string]int

	// keys holds every normalized key per book, name first, for prefix search.
	keys [][]string

	maxWords int
}

// New builds a Directory from books given in canon order.
//
// Book IDs must be dense 1..N in slice order, every book needs a name and at
// least one chapter, and no name, OSIS code or abbreviation may resolve to two
// different books.
func New(books []Book) (*Directory, error) {
	if len(books) == 0 {
		return nil, &errors.ValidationError{Field: "books", Message: "directory has no books"}
	}

	d := &Directory{
		books:   make([]Book, len(books)),
		names:   make(map[string]int, len(books)),
		aliases: make(map[string]int, len(books)*4),
		keys:    make([][]string, len(books)),
	}

	for i, b := range books {
		if b.ID != i+1 {
			return nil, errors.NewValidation("id", fmt.Sprint(b.ID),
				fmt.Sprintf("book %q has id %d, want %d", b.Name, b.ID, i+1))
		}
		if strings.TrimSpace(b.Name) == "" {
			return nil, errors.NewValidation("name", "", fmt.Sprintf("book %d has no name", b.ID))
		}
		if b.ChapterCount < 1 {
			return nil, errors.NewValidation("chapter_count", fmt.Sprint(b.ChapterCount),
				fmt.Sprintf("book %q must have at least one chapter", b.Name))
		}
		d.books[i] = b.clone()
	}

	for i, b := range d.books {
		if err := d.register(d.names, Key(b.Name), b.Name, i); err != nil {
			return nil, err
		}
		d.addWords(b.Name)
	}

	for i, b := range d.books {
		forms := append([]string{b.OSIS}, b.Abbreviations...)
		for _, form := range forms {
			k := Key(form)
			if k == "" {
				continue
			}
			if err := d.register(d.aliases, k, form, i); err != nil {
				return nil, err
			}
			d.addWords(form)
		}
	}

	return d, nil
}

// register records key for book index i, rejecting a key already owned by another book.
func (d *Directory) register(m map[string]int, key, form string, i int) error {
	if owner, ok := d.owner(key); ok {
		if owner != i {
			return errors.NewValidation("abbreviation", form,
				fmt.Sprintf("%q is shared by %s and %s", form, d.books[owner].Name, d.books[i].Name))
		}
		return nil
	}
	m[key] = i
	d.keys[i] = append(d.keys[i], key)
	return nil
}

func (d *Directory) owner(key string) (int, bool) {
	if i, ok := d.names[key]; ok {
		return i, true
	}
	i, ok := d.aliases[key]
	return i, ok
}

func (d *Directory) addWords(form string) {
	if n := len(strings.Fields(form)); n > d.maxWords {
		d.maxWords = n
	}
}

// FindByNameOrAbbreviation resolves a full name, OSIS code or abbreviation.
// Matching ignores case, whitespace and periods; a full-name match is
// preferred over an abbreviation match.
func (d *Directory) FindByNameOrAbbreviation(s string) (Book, bool) {
	k := Key(s)
	if k == "" {
		return Book{}, false
	}
	if i, ok := d.names[k]; ok {
		return d.books[i], true
	}
	if i, ok := d.aliases[k]; ok {
		return d.books[i], true
	}
	return Book{}, false
}

// FindByID returns the book with the given canon-order ID.
func (d *Directory) FindByID(id int) (Book, bool) {
	if id < 1 || id > len(d.books) {
		return Book{}, false
	}
	return d.books[id-1], true
}

// Len returns the number of books.
func (d *Directory) Len() int {
	return len(d.books)
}

// Books returns a copy of all books in canon order.
func (d *Directory) Books() []Book {
	out := make([]Book, len(d.books))
	for i, b := range d.books {
		out[i] = b.clone()
	}
	return out
}

// All enumerates the books in canon order.
func (d *Directory) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range d.books {
			if !yield(b) {
				return
			}
		}
	}
}

// MaxBookWords is the largest number of whitespace-separated words in any
// registered name or abbreviation ("Song of Solomon" has three).
func (d *Directory) MaxBookWords() int {
	return d.maxWords
}

// Prefixed enumerates, in canon order, the books whose name or any
// abbreviation starts with prefix. A blank prefix matches nothing.
func (d *Directory) Prefixed(prefix string) iter.Seq[Book] {
	p := Key(prefix)
	return func(yield func(Book) bool) {
		if p == "" {
			return
		}
		for i, b := range d.books {
			if !hasKeyPrefix(d.keys[i], p) {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

func hasKeyPrefix(keys []string, p string) bool {
	for _, k := range keys {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}

// Key normalizes a book name or abbreviation for lookup: NFKC, case folded,
// with whitespace and periods removed. "1 Cor.", "1cor" and "１ＣＯＲ" share a key.
func Key(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '.' {
			return -1
		}
		return r
	}, s)
}
