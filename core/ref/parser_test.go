package ref

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/scriptref/core/canon"
	apperrors "github.com/FocuswithJustin/scriptref/core/errors"
)

func newTestParser(t testing.TB) *Parser {
	t.Helper()
	return New(canon.Standard())
}

func TestParse(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name        string
		input       string
		wantBook    string
		wantChapter int
		wantStart   int
		wantEnd     int
		wantDisplay string
	}{
		{
			name:        "single verse",
			input:       "John 3:16",
			wantBook:    "John",
			wantChapter: 3,
			wantStart:   16,
			wantDisplay: "John 3:16",
		},
		{
			name:        "verse range",
			input:       "Romans 8:28-30",
			wantBook:    "Romans",
			wantChapter: 8,
			wantStart:   28,
			wantEnd:     30,
			wantDisplay: "Romans 8:28-30",
		},
		{
			name:        "en-dash range",
			input:       "Matthew 5:3–12",
			wantBook:    "Matthew",
			wantChapter: 5,
			wantStart:   3,
			wantEnd:     12,
			wantDisplay: "Matthew 5:3-12",
		},
		{
			name:        "one-verse range",
			input:       "John 3:16-16",
			wantBook:    "John",
			wantChapter: 3,
			wantStart:   16,
			wantEnd:     16,
			wantDisplay: "John 3:16-16",
		},
		{
			name:        "whole chapter",
			input:       "Genesis 1",
			wantBook:    "Genesis",
			wantChapter: 1,
			wantDisplay: "Genesis 1",
		},
		{
			name:        "compact numbered book",
			input:       "1Cor 13:4",
			wantBook:    "1 Corinthians",
			wantChapter: 13,
			wantStart:   4,
			wantDisplay: "1 Corinthians 13:4",
		},
		{
			name:        "spaced numbered book",
			input:       "1 Corinthians 13:4-7",
			wantBook:    "1 Corinthians",
			wantChapter: 13,
			wantStart:   4,
			wantEnd:     7,
			wantDisplay: "1 Corinthians 13:4-7",
		},
		{
			name:        "abbreviation",
			input:       "Rom 8:28-30",
			wantBook:    "Romans",
			wantChapter: 8,
			wantStart:   28,
			wantEnd:     30,
			wantDisplay: "Romans 8:28-30",
		},
		{
			name:        "abbreviation with period",
			input:       "Gen. 1:1",
			wantBook:    "Genesis",
			wantChapter: 1,
			wantStart:   1,
			wantDisplay: "Genesis 1:1",
		},
		{
			name:        "multi-word book",
			input:       "Song of Solomon 2:1",
			wantBook:    "Song of Solomon",
			wantChapter: 2,
			wantStart:   1,
			wantDisplay: "Song of Solomon 2:1",
		},
		{
			name:        "surrounding whitespace and case",
			input:       "  psalm 23  ",
			wantBook:    "Psalms",
			wantChapter: 23,
			wantDisplay: "Psalms 23",
		},
		{
			name:        "spaces around range dash",
			input:       "Rev 22:20 - 21",
			wantBook:    "Revelation",
			wantChapter: 22,
			wantStart:   20,
			wantEnd:     21,
			wantDisplay: "Revelation 22:20-21",
		},
		{
			name:        "full-width digits",
			input:       "John ３:１６",
			wantBook:    "John",
			wantChapter: 3,
			wantStart:   16,
			wantDisplay: "John 3:16",
		},
		{
			name:        "last chapter",
			input:       "Psalms 150",
			wantBook:    "Psalms",
			wantChapter: 150,
			wantDisplay: "Psalms 150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got.Book.Name != tt.wantBook {
				t.Errorf("Book.Name = %q, want %q", got.Book.Name, tt.wantBook)
			}
			if got.Chapter != tt.wantChapter {
				t.Errorf("Chapter = %d, want %d", got.Chapter, tt.wantChapter)
			}
			if got.VerseStart != tt.wantStart {
				t.Errorf("VerseStart = %d, want %d", got.VerseStart, tt.wantStart)
			}
			if got.VerseEnd != tt.wantEnd {
				t.Errorf("VerseEnd = %d, want %d", got.VerseEnd, tt.wantEnd)
			}
			if got.DisplayText != tt.wantDisplay {
				t.Errorf("DisplayText = %q, want %q", got.DisplayText, tt.wantDisplay)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		input string
		want  *apperrors.ParseError
	}{
		{"empty", "", apperrors.EmptyInput()},
		{"whitespace only", " \t\n", apperrors.EmptyInput()},
		{"unknown book", "Hezekiah 1:1", apperrors.BookNotFound("Hezekiah")},
		{"unknown multi-word book", "Book of Mormon 1:1", apperrors.BookNotFound("Book of Mormon")},
		{"chapter too large", "Genesis 100:1", apperrors.InvalidChapter("Genesis", 100, 50)},
		{"chapter zero", "John 0:1", apperrors.InvalidChapter("John", 0, 21)},
		{"single-chapter book", "Jude 2", apperrors.InvalidChapter("Jude", 2, 1)},
		{"book only", "John", apperrors.InvalidFormat("John")},
		{"no book", "3:16", apperrors.InvalidFormat("3:16")},
		{"trailing dash", "John 3:16-", apperrors.InvalidFormat("John 3:16-")},
		{"verse zero", "John 3:0", apperrors.InvalidFormat("John 3:0")},
		{"descending range", "John 3:16-14", apperrors.InvalidFormat("John 3:16-14")},
		{"space instead of colon", "Romans 5 8", apperrors.InvalidFormat("Romans 5 8")},
		{"dot separator", "John.3.16", apperrors.InvalidFormat("John.3.16")},
		{"overflowing chapter", "John 99999999999999999999:1", apperrors.InvalidFormat("John 99999999999999999999:1")},
		{"prose", "for God so loved the world", apperrors.InvalidFormat("for God so loved the world")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			var pe *apperrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, pe); diff != "" {
				t.Errorf("Parse(%q) error mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrorSentinels(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		input string
		want  error
	}{
		{"", apperrors.ErrEmptyInput},
		{"nonsense", apperrors.ErrInvalidFormat},
		{"Hezekiah 1:1", apperrors.ErrBookNotFound},
		{"Genesis 100:1", apperrors.ErrInvalidChapter},
	}
	for _, tt := range tests {
		if _, err := p.Parse(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestParseDisplayTextIdempotent(t *testing.T) {
	p := newTestParser(t)

	inputs := []string{
		"John 3:16", "Rom 8:28-30", "Matthew 5:3–12", "Genesis 1", "1Cor 13:4",
		"song of songs 8:6-7", "3 jn 1:14", "Ps 119:105", "Phlm 1",
	}
	for _, in := range inputs {
		first, err := p.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		second, err := p.Parse(first.DisplayText)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", first.DisplayText, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Parse(DisplayText of %q) mismatch (-first +second):\n%s", in, diff)
		}
	}
}

func TestParseEveryBookName(t *testing.T) {
	p := newTestParser(t)

	for b := range p.Directory().All() {
		for _, form := range append([]string{b.Name, b.OSIS}, b.Abbreviations...) {
			r, err := p.Parse(form + " 1:1")
			if err != nil {
				t.Errorf("Parse(%q) error = %v", form+" 1:1", err)
				continue
			}
			if r.Book.ID != b.ID {
				t.Errorf("Parse(%q) book = %d, want %d", form+" 1:1", r.Book.ID, b.ID)
			}
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	p := newTestParser(t)

	want, err := p.Parse("Romans 8:28-30")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := p.Parse("Romans 8:28-30")
				if err != nil || !cmp.Equal(want, got) {
					t.Errorf("Parse() = %v, %v; want %v", got, err, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseFlexible(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		input string
		want  string
	}{
		{"Romans 5 8", "Romans 5:8"},
		{"Romans 5:8", "Romans 5:8"},
		{"1 Corinthians 13 4", "1 Corinthians 13:4"},
		{"1Cor 13 4-7", "1 Corinthians 13:4-7"},
		{"Song of Solomon 2 1", "Song of Solomon 2:1"},
		{"John 3 16 – 18", "John 3:16-18"},
		{"Genesis 1", "Genesis 1"},
		{"  rev 22 21 ", "Revelation 22:21"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseFlexible(tt.input)
			if err != nil {
				t.Fatalf("ParseFlexible(%q) error = %v", tt.input, err)
			}
			if got.DisplayText != tt.want {
				t.Errorf("ParseFlexible(%q) = %q, want %q", tt.input, got.DisplayText, tt.want)
			}
		})
	}
}

func TestParseFlexibleErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		input string
		want  apperrors.Kind
	}{
		{"", apperrors.KindEmptyInput},
		{"Hezekiah 1 1", apperrors.KindBookNotFound},
		{"Genesis 51 1", apperrors.KindInvalidChapter},
		{"John 3 16 17", apperrors.KindInvalidFormat},
		{"John three sixteen", apperrors.KindInvalidFormat},
	}
	for _, tt := range tests {
		_, err := p.ParseFlexible(tt.input)
		if got := apperrors.KindOf(err); got != tt.want {
			t.Errorf("ParseFlexible(%q) kind = %v (%v), want %v", tt.input, got, err, tt.want)
		}
	}

	_, err := p.ParseFlexible("Hezekiah 1 1")
	var pe *apperrors.ParseError
	if errors.As(err, &pe) && pe.Book != "Hezekiah" {
		t.Errorf("BookNotFound name = %q, want Hezekiah", pe.Book)
	}
}

func TestParserOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New(canon.Standard(), WithLogger(logger), WithSuggestionLimit(2), WithLogger(nil))
	if p.suggestionLimit != 2 {
		t.Errorf("suggestionLimit = %d, want 2", p.suggestionLimit)
	}

	for range p.ExtractAll("Hezekiah 1:1") {
	}
	if !bytes.Contains(buf.Bytes(), []byte("skipping reference candidate")) {
		t.Errorf("debug log missing skipped candidate, got %q", buf.String())
	}
}

func TestParserCustomDirectory(t *testing.T) {
	dir, err := canon.New([]canon.Book{
		{ID: 1, Name: "Alpha", OSIS: "Alp", ChapterCount: 2},
		{ID: 2, Name: "Beta Gamma Delta Epsilon", OSIS: "BGDE", ChapterCount: 9},
	})
	if err != nil {
		t.Fatalf("canon.New() error = %v", err)
	}
	p := New(dir)

	r, err := p.Parse("alp 2:3")
	if err != nil || r.DisplayText != "Alpha 2:3" {
		t.Errorf("Parse(alp 2:3) = %q, %v", r.DisplayText, err)
	}
	if _, err := p.Parse("John 3:16"); apperrors.KindOf(err) != apperrors.KindBookNotFound {
		t.Errorf("Parse(John 3:16) error = %v, want BookNotFound", err)
	}

	var got []string
	for r := range p.ExtractAll("see beta gamma delta epsilon 9:1 today") {
		got = append(got, r.DisplayText)
	}
	if diff := cmp.Diff([]string{"Beta Gamma Delta Epsilon 9:1"}, got); diff != "" {
		t.Errorf("ExtractAll mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkParse(b *testing.B) {
	p := newTestParser(b)
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse("1 Corinthians 13:4-7")
	}
}

func BenchmarkParseFlexible(b *testing.B) {
	p := newTestParser(b)
	for i := 0; i < b.N; i++ {
		_, _ = p.ParseFlexible("1 Corinthians 13 4")
	}
}
