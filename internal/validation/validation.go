// Package validation checks file paths and file contents supplied on the
// command line before they reach the parser or the book loaders.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Resource limits for CLI inputs (CWE-400).
const (
	// MaxFileSize is the maximum allowed input file size (64 MiB).
	MaxFileSize = 64 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrNotRegular       = errors.New("not a regular file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrTypeMismatch     = errors.New("file type mismatch")
)

// ValidatePath performs path validation without requiring a base directory.
// It checks length limits and rejects null bytes and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// FileType represents a validated file type.
type FileType string

const (
	// FileTypeSQLite is a books database.
	FileTypeSQLite FileType = "sqlite"
	// FileTypeYAML is an alias overlay.
	FileTypeYAML FileType = "yaml"
	// FileTypeText is prose scanned for references.
	FileTypeText FileType = "text"
	// FileTypeUnknown could not be classified.
	FileTypeUnknown FileType = "unknown"
)

var sqliteMagic = []byte("SQLite format 3\x00")

// ValidateFileType classifies a file from its leading bytes and its extension.
// A SQLite header always wins; otherwise the extension decides, provided the
// content looks like text. Empty content counts as text.
func ValidateFileType(reader io.Reader, filename string) (FileType, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(reader, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	expected := detectFileTypeFromExtension(filename)
	if bytes.HasPrefix(buf, sqliteMagic) {
		if expected != FileTypeSQLite && expected != FileTypeUnknown {
			return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrTypeMismatch, expected, FileTypeSQLite)
		}
		return FileTypeSQLite, nil
	}

	if len(buf) > 0 && !isLikelyText(buf) {
		return FileTypeUnknown, nil
	}
	switch expected {
	case FileTypeSQLite:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is text", ErrTypeMismatch, expected)
	case FileTypeYAML:
		return FileTypeYAML, nil
	}
	return FileTypeText, nil
}

func detectFileTypeFromExtension(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".sqlite", ".db", ".sqlite3":
		return FileTypeSQLite
	case ".yaml", ".yml":
		return FileTypeYAML
	case ".txt", ".md", ".usfm", ".sfm", ".html", ".htm", ".xml", ".osis":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// isLikelyText reports whether more than 95% of buf is printable.
// UTF-8 multibyte sequences are neutral.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
	}

	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}

// ReadAll reads r to the end, failing with ErrFileTooLarge once more than
// MaxFileSize bytes arrive. name identifies the stream in errors.
func ReadAll(r io.Reader, name string) ([]byte, error) {
	return readAll(r, name, MaxFileSize)
}

func readAll(r io.Reader, name string, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrFileTooLarge, name, humanize.IBytes(uint64(limit)))
	}
	return data, nil
}

// CheckFile validates path, confirms it names a regular file within
// MaxFileSize, and that its content is of type want. YAML overlays are also
// accepted as plain text so an alias file may carry any extension.
func CheckFile(path string, want FileType) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("%w: %s is %s (limit %s)", ErrFileTooLarge, path,
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(MaxFileSize))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	got, err := ValidateFileType(f, path)
	if err != nil {
		return err
	}
	if got == want || (want == FileTypeYAML && got == FileTypeText) {
		return nil
	}
	return fmt.Errorf("%w: %s is %s, want %s", ErrTypeMismatch, path, got, want)
}
