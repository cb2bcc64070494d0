package ref

import "github.com/FocuswithJustin/scriptref/core/canon"

// Suggestions returns up to limit books, in canon order, whose name or any
// abbreviation starts with prefix (case-insensitive). A limit of zero or less
// uses the parser's default. A blank prefix suggests nothing.
func (p *Parser) Suggestions(prefix string, limit int) []canon.Book {
	if limit <= 0 {
		limit = p.suggestionLimit
	}

	var out []canon.Book
	for b := range p.dir.Prefixed(prefix) {
		out = append(out, b)
		if len(out) == limit {
			break
		}
	}
	return out
}
