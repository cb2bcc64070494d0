// Package ref parses free-text Bible references into validated structures.
//
// A Parser resolves book names through an injected canon.Directory and
// supports single references ("John 3:16", "Rom 8:28-30", "1Cor 13:4"),
// a space-separated variant ("Romans 5 8"), extraction of every reference from
// prose, OSIS ids ("Gen.1.1-3") and the compact canonical id ("43.3.16").
//
// Parsing is pure: a Parser holds no mutable state and may be shared freely
// between goroutines.
package ref

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/scriptref/core/canon"
	"github.com/FocuswithJustin/scriptref/core/errors"
)

// DefaultSuggestionLimit is the number of books Suggestions returns when the
// caller passes no positive limit.
const DefaultSuggestionLimit = 5

// Regular expressions for parsing references
var (
	// Matches: "Genesis 1", "John 3:16", "Rom 8:28-30", "Matthew 5:3–12", "1Cor 13:4",
	// "1 Corinthians 13:4", "Song of Solomon 2:1", "Gen. 1:1"
	refPattern = regexp.MustCompile(`^((?:[123]\s*)?\pL[\pL'.]*(?:\s+\pL[\pL'.]*)*)\s*(\d+)(?::(\d+)(?:\s*[-–]\s*(\d+))?)?$`)

	// Matches the tail of a space-separated reference: "5 8", "5 8-10", "5 8 – 10"
	spacedTailPattern = regexp.MustCompile(`^(\d+)\s+(\d+)(?:\s*[-–]\s*(\d+))?$`)

	// Matches a whole space-separated reference whose book token is unknown
	spacedPattern = regexp.MustCompile(`^(.*\pL[.']?)\s*(\d+)\s+(\d+)(?:\s*[-–]\s*(\d+))?$`)
)

// Parser converts reference text into References.
type Parser struct {
	dir             *canon.Directory
	logger          *slog.Logger
	suggestionLimit int

	// candidatePattern finds colon-form references in prose; the number of
	// book words it admits depends on the directory.
	candidatePattern *regexp.Regexp
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output about skipped extraction
// candidates. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSuggestionLimit sets the default number of Suggestions results.
func WithSuggestionLimit(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.suggestionLimit = n
		}
	}
}

// New creates a Parser that resolves books through dir.
func New(dir *canon.Directory, opts ...Option) *Parser {
	p := &Parser{
		dir:              dir,
		logger:           slog.New(slog.DiscardHandler),
		suggestionLimit:  DefaultSuggestionLimit,
		candidatePattern: compileCandidatePattern(dir.MaxBookWords()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Directory returns the book directory the parser resolves against.
func (p *Parser) Directory() *canon.Directory {
	return p.dir
}

// Parse parses text holding exactly one reference.
//
// Supported formats:
//   - "Genesis 1" (whole chapter)
//   - "John 3:16" (single verse)
//   - "Romans 8:28-30", "Matthew 5:3–12" (verse range, hyphen or en-dash)
//   - "1Cor 13:4", "1 Cor 13:4" (numbered books, compact or spaced)
//
// The error is always a *errors.ParseError of one of the four kinds.
func (p *Parser) Parse(text string) (Reference, error) {
	s := normalizeInput(text)
	if s == "" {
		return Reference{}, errors.EmptyInput()
	}

	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return Reference{}, errors.InvalidFormat(s)
	}

	book, ok := p.dir.FindByNameOrAbbreviation(m[1])
	if !ok {
		return Reference{}, errors.BookNotFound(strings.TrimSpace(m[1]))
	}
	return buildReference(s, book, m[2], m[3], m[4])
}

// ParseFlexible is Parse with one extension: a single space may stand in for
// the chapter/verse colon, so "Romans 5 8" parses like "Romans 5:8".
//
// The longest run of leading words that names a book is taken as the book
// before any numbers are read, so "1 Corinthians 13 4" is 1 Corinthians 13:4.
func (p *Parser) ParseFlexible(text string) (Reference, error) {
	s := normalizeInput(text)
	if s == "" || refPattern.MatchString(s) {
		return p.Parse(s)
	}

	fields := strings.Fields(s)
	for n := min(len(fields)-1, p.dir.MaxBookWords()); n >= 1; n-- {
		book := strings.Join(fields[:n], " ")
		if _, ok := p.dir.FindByNameOrAbbreviation(book); !ok {
			continue
		}
		m := spacedTailPattern.FindStringSubmatch(strings.Join(fields[n:], " "))
		if m == nil {
			break
		}
		return p.Parse(colonForm(book, m[1], m[2], m[3]))
	}

	// No leading book: rewrite the numbers anyway so Parse reports the
	// precise failure, e.g. an unknown book rather than a bad format.
	if m := spacedPattern.FindStringSubmatch(s); m != nil {
		return p.Parse(colonForm(m[1], m[2], m[3], m[4]))
	}
	return p.Parse(s)
}

func colonForm(book, chapter, verse, verseEnd string) string {
	s := book + " " + chapter + ":" + verse
	if verseEnd != "" {
		s += "-" + verseEnd
	}
	return s
}

// buildReference validates the numeric parts of a matched reference.
// chapter is required; verseStart and verseEnd may be empty.
func buildReference(input string, book canon.Book, chapter, verseStart, verseEnd string) (Reference, error) {
	ch, err := strconv.Atoi(chapter)
	if err != nil {
		return Reference{}, errors.InvalidFormat(input)
	}
	if !book.HasChapter(ch) {
		return Reference{}, errors.InvalidChapter(book.Name, ch, book.ChapterCount)
	}

	var start, end int
	if verseStart != "" {
		if start, err = strconv.Atoi(verseStart); err != nil || start < 1 {
			return Reference{}, errors.InvalidFormat(input)
		}
	}
	if verseEnd != "" {
		if end, err = strconv.Atoi(verseEnd); err != nil || end < start {
			return Reference{}, errors.InvalidFormat(input)
		}
	}

	return newReference(book, ch, start, end), nil
}

// normalizeInput applies NFKC (full-width digits, no-break spaces) and trims.
func normalizeInput(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
