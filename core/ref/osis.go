package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/scriptref/core/errors"
)

// osisGrammar is the participle grammar for one OSIS reference point.
// Examples: "Gen.1", "Gen.1.1", "1John.3.16"
//
//nolint:govet // participle grammar tags are not standard struct tags
type osisGrammar struct {
	BookPrefix string     `(@Int)?`
	BookName   string     `@Ident`
	Chapter    *osisVerse `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisVerse struct {
	Chapter int  `@Int`
	Verse   *int `( "." @Int )?`
}

var osisLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[.]`},
})

var osisParser = participle.MustBuild[osisGrammar](
	participle.Lexer(osisLexer),
)

// ParseOSIS parses an OSIS id into a Reference.
//
// Supported formats:
//   - "Gen.1" (whole chapter)
//   - "Gen.1.1" (single verse)
//   - "Gen.1.1-3" (verse range)
//   - "Gen.1.1-Gen.1.3" (range end repeating book and chapter)
//
// The book code is resolved through the parser's directory, so any name or
// abbreviation without spaces works too ("John.3.16"). Ranges crossing a
// chapter or book are reported as invalid format.
func (p *Parser) ParseOSIS(id string) (Reference, error) {
	s := normalizeInput(id)
	if s == "" {
		return Reference{}, errors.EmptyInput()
	}

	startText, endText, isRange := strings.Cut(s, "-")

	start, err := osisParser.ParseString("", startText)
	if err != nil || start.Chapter == nil {
		return Reference{}, errors.InvalidFormat(s)
	}

	token := start.BookPrefix + start.BookName
	book, ok := p.dir.FindByNameOrAbbreviation(token)
	if !ok {
		return Reference{}, errors.BookNotFound(token)
	}

	chapter := strconv.Itoa(start.Chapter.Chapter)
	var verseStart, verseEnd string
	if start.Chapter.Verse != nil {
		verseStart = strconv.Itoa(*start.Chapter.Verse)
	}

	if isRange {
		if verseStart == "" {
			return Reference{}, errors.InvalidFormat(s)
		}
		verseEnd, err = p.osisRangeEnd(endText, book.ID, start.Chapter.Chapter)
		if err != nil {
			return Reference{}, errors.InvalidFormat(s)
		}
	}

	return buildReference(s, book, chapter, verseStart, verseEnd)
}

// osisRangeEnd returns the end verse of a range written either as a bare
// verse number or as a full point in the same book and chapter.
func (p *Parser) osisRangeEnd(text string, bookID, chapter int) (string, error) {
	if text != "" && strings.Trim(text, "0123456789") == "" {
		return text, nil
	}

	end, err := osisParser.ParseString("", text)
	if err != nil {
		return "", err
	}
	if end.Chapter == nil || end.Chapter.Verse == nil {
		return "", errors.InvalidFormat(text)
	}
	book, ok := p.dir.FindByNameOrAbbreviation(end.BookPrefix + end.BookName)
	if !ok || book.ID != bookID || end.Chapter.Chapter != chapter {
		return "", errors.InvalidFormat(text)
	}
	return strconv.Itoa(*end.Chapter.Verse), nil
}
