package ref

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/scriptref/core/canon"
)

// Reference is a validated scripture reference.
//
// Chapter always lies within the book's chapter count. VerseStart is 0 for a
// whole-chapter reference; VerseEnd is 0 unless the reference is a range, in
// which case it is at least VerseStart.
type Reference struct {
	Book canon.Book `json:"book"`

	// Chapter is the 1-indexed chapter number.
	Chapter int `json:"chapter"`

	// VerseStart is the first verse (0 for whole-chapter references).
	VerseStart int `json:"verse_start,omitempty"`

	// VerseEnd is the last verse of a range (0 for single verses and chapters).
	VerseEnd int `json:"verse_end,omitempty"`

	// DisplayText is the canonical rendering, e.g. "Romans 8:28-30".
	DisplayText string `json:"display_text"`
}

func newReference(book canon.Book, chapter, verseStart, verseEnd int) Reference {
	r := Reference{
		Book:       book,
		Chapter:    chapter,
		VerseStart: verseStart,
		VerseEnd:   verseEnd,
	}
	r.DisplayText = r.format(book.Name, " ", ":")
	return r
}

// format renders book, chapter and verses with the given separators.
func (r Reference) format(book, chapterSep, verseSep string) string {
	var sb strings.Builder
	sb.WriteString(book)
	sb.WriteString(chapterSep)
	sb.WriteString(strconv.Itoa(r.Chapter))

	if r.VerseStart > 0 {
		sb.WriteString(verseSep)
		sb.WriteString(strconv.Itoa(r.VerseStart))

		if r.VerseEnd > 0 {
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(r.VerseEnd))
		}
	}

	return sb.String()
}

// String returns DisplayText.
func (r Reference) String() string {
	return r.DisplayText
}

// IsRange returns true if this reference was written with an end verse.
// "John 3:16-16" is a range of one verse.
func (r Reference) IsRange() bool {
	return r.VerseStart > 0 && r.VerseEnd >= r.VerseStart
}

// IsChapterOnly returns true if this reference names a whole chapter.
func (r Reference) IsChapterOnly() bool {
	return r.VerseStart == 0
}

// Canonical returns the directory-free id tuple of the reference.
func (r Reference) Canonical() Canonical {
	return Canonical{
		BookID:     r.Book.ID,
		Chapter:    r.Chapter,
		VerseStart: r.VerseStart,
		VerseEnd:   r.VerseEnd,
	}
}

// OSISID returns the OSIS form of the reference (e.g., "Rom.8.28-30").
func (r Reference) OSISID() string {
	code := r.Book.OSIS
	if code == "" {
		code = strings.ReplaceAll(r.Book.Name, " ", "")
	}
	return r.format(code, ".", ".")
}
