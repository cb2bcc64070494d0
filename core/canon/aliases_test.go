package canon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/FocuswithJustin/scriptref/core/errors"
)

func TestWithAliases(t *testing.T) {
	base := Standard()

	yamlDoc := `
aliases:
  John: [Jhn, Yohanan]
  "62": [1J]
  Song: [Sg]
`
	d, err := WithAliases(base, strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("WithAliases() error = %v", err)
	}

	tests := []struct {
		input    string
		wantName string
	}{
		{"Yohanan", "John"},
		{"1J", "1 John"},
		{"sg", "Song of Solomon"},
		{"Gen", "Genesis"},
	}
	for _, tt := range tests {
		b, ok := d.FindByNameOrAbbreviation(tt.input)
		if !ok || b.Name != tt.wantName {
			t.Errorf("FindByNameOrAbbreviation(%q) = %q, %v; want %q", tt.input, b.Name, ok, tt.wantName)
		}
	}

	if _, ok := base.FindByNameOrAbbreviation("Yohanan"); ok {
		t.Error("base directory was modified by WithAliases")
	}
}

func TestWithAliasesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{
			name: "unknown book",
			doc:  "aliases:\n  Hezekiah: [Hz]\n",
			is:   apperrors.ErrInvalidInput,
		},
		{
			name: "alias owned by another book",
			doc:  "aliases:\n  John: [Jon]\n",
			is:   apperrors.ErrInvalidInput,
		},
		{
			name: "unknown field",
			doc:  "books:\n  John: [Jx]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WithAliases(Standard(), strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("WithAliases() error = nil, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
		})
	}
}

func TestWithAliasesEmpty(t *testing.T) {
	d, err := WithAliases(Standard(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("WithAliases(empty) error = %v", err)
	}
	if d.Len() != 66 {
		t.Errorf("Len() = %d, want 66", d.Len())
	}
}

func TestLoadAliasesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, []byte("aliases:\n  Revelation: [Apoc]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := LoadAliasesFile(Standard(), path)
	if err != nil {
		t.Fatalf("LoadAliasesFile() error = %v", err)
	}
	if b, ok := d.FindByNameOrAbbreviation("apoc"); !ok || b.ID != 66 {
		t.Errorf("FindByNameOrAbbreviation(apoc) = %d, %v; want 66", b.ID, ok)
	}

	_, err = LoadAliasesFile(Standard(), filepath.Join(dir, "missing.yaml"))
	var ioErr *apperrors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("LoadAliasesFile(missing) error = %v, want *IOError", err)
	}
}
