package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/scriptref/core/errors"
)

// Canonical is the (bookId, chapter, verseStart, verseEnd) tuple behind a
// canonical id. Zero verse fields mean "absent", as in Reference.
type Canonical struct {
	BookID     int `json:"book_id"`
	Chapter    int `json:"chapter"`
	VerseStart int `json:"verse_start,omitempty"`
	VerseEnd   int `json:"verse_end,omitempty"`
}

// String encodes the tuple: "43.3", "43.3.16" or "45.8.28-30".
func (c Canonical) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.BookID))
	sb.WriteString(".")
	sb.WriteString(strconv.Itoa(c.Chapter))

	if c.VerseStart > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(c.VerseStart))

		if c.VerseEnd > 0 {
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(c.VerseEnd))
		}
	}

	return sb.String()
}

// canonicalGrammar is the participle grammar for canonical ids.
// Examples: "1.1", "43.3.16", "45.8.28-30"
//
//nolint:govet // participle grammar tags are not standard struct tags
type canonicalGrammar struct {
	BookID  int             `@Int "."`
	Chapter int             `@Int`
	Verse   *canonicalVerse `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type canonicalVerse struct {
	Start int  `@Int`
	End   *int `( "-" @Int )?`
}

// canonicalLexer has no whitespace rule, and Int rejects leading zeros, so
// only strings the encoder could have produced get through.
var canonicalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `0|[1-9][0-9]*`},
	{Name: "Punct", Pattern: `[.\-]`},
})

var canonicalParser = participle.MustBuild[canonicalGrammar](
	participle.Lexer(canonicalLexer),
)

// CanonicalID encodes a reference as its canonical id.
func CanonicalID(r Reference) string {
	return r.Canonical().String()
}

// ParseCanonicalID decodes a canonical id back into its tuple.
//
// It returns false for anything outside the strict id grammar, including
// whitespace, leading zeros, zero components and ranges whose end does not
// follow their start. No directory lookup is done: the book id is returned
// as-is.
func ParseCanonicalID(id string) (Canonical, bool) {
	parsed, err := canonicalParser.ParseString("", id)
	if err != nil {
		return Canonical{}, false
	}

	c := Canonical{
		BookID:  parsed.BookID,
		Chapter: parsed.Chapter,
	}
	if parsed.Verse != nil {
		c.VerseStart = parsed.Verse.Start
		if parsed.Verse.End != nil {
			c.VerseEnd = *parsed.Verse.End
		}
	}

	if c.BookID < 1 || c.Chapter < 1 {
		return Canonical{}, false
	}
	if parsed.Verse != nil && c.VerseStart < 1 {
		return Canonical{}, false
	}
	if parsed.Verse != nil && parsed.Verse.End != nil && c.VerseEnd < c.VerseStart {
		return Canonical{}, false
	}

	return c, true
}

// Resolve turns a decoded canonical id back into a Reference using the
// parser's directory. An unknown book id is BookNotFound and a chapter past
// the book's end is InvalidChapter.
func (p *Parser) Resolve(c Canonical) (Reference, error) {
	book, ok := p.dir.FindByID(c.BookID)
	if !ok {
		return Reference{}, errors.BookNotFound(strconv.Itoa(c.BookID))
	}
	if !book.HasChapter(c.Chapter) {
		return Reference{}, errors.InvalidChapter(book.Name, c.Chapter, book.ChapterCount)
	}
	return newReference(book, c.Chapter, c.VerseStart, c.VerseEnd), nil
}
