// Package canon provides the Book Directory: the immutable table of canonical
// Bible books, their names, abbreviations and chapter counts.
//
// A Directory is built once with New (or Standard, LoadSQLite, WithAliases)
// and is safe for concurrent reads without locking. Nothing in this package
// keeps a package-level directory; callers pass the one they built.
package canon

import "slices"

// Testament identifies the half of the canon a book belongs to.
type Testament string

// Testament values, as stored in the books table.
const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book categories used by the standard directory.
const (
	CategoryPentateuch      = "Pentateuch"
	CategoryHistorical      = "Historical"
	CategoryWisdom          = "Wisdom"
	CategoryMajorProphets   = "MajorProphets"
	CategoryMinorProphets   = "MinorProphets"
	CategoryGospels         = "Gospels"
	CategoryActs            = "Acts"
	CategoryPaulineEpistles = "PaulineEpistles"
	CategoryGeneralEpistles = "GeneralEpistles"
	CategoryApocalyptic     = "Apocalyptic"
)

// Book is a canonical book of the Bible.
type Book struct {
	// ID is the book's position in canon order (Genesis=1).
	ID int `json:"id"`

	// Name is the full display name (e.g., "1 Corinthians").
	Name string `json:"name"`

	// OSIS is the primary OSIS book code (e.g., "1Cor").
	OSIS string `json:"osis"`

	// Abbreviations lists the accepted short forms (e.g., "1Cor", "1 Cor", "1Co").
	Abbreviations []string `json:"abbreviations,omitempty"`

	// ChapterCount is the number of chapters in the book.
	ChapterCount int `json:"chapter_count"`

	Testament Testament `json:"testament,omitempty"`
	Category  string    `json:"category,omitempty"`
}

// HasChapter reports whether chapter lies in 1..ChapterCount.
func (b Book) HasChapter(chapter int) bool {
	return chapter >= 1 && chapter <= b.ChapterCount
}

// clone returns a copy that shares no slices with b.
func (b Book) clone() Book {
	b.Abbreviations = slices.Clone(b.Abbreviations)
	return b
}
