package canon

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/scriptref/core/errors"
)

// aliasFile is the YAML layout accepted by WithAliases:
//
//	aliases:
//	  John: [Jhn, Jo]
//	  "62": [1J]
//	  Song: [Sg]
//
// Keys name a book by ID, full name, OSIS code or existing abbreviation.
type aliasFile struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// WithAliases returns a new Directory with the extra abbreviations read from r
// added to base. base is not modified. The result is validated exactly like New,
// so an alias already owned by another book is rejected.
func WithAliases(base *Directory, r io.Reader) (*Directory, error) {
	var f aliasFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode alias file")
	}

	books := base.Books()

	keys := make([]string, 0, len(f.Aliases))
	for k := range f.Aliases {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		b, ok := resolveAliasTarget(base, k)
		if !ok {
			return nil, errors.NewValidation("aliases", k, fmt.Sprintf("unknown book %q", k))
		}
		books[b.ID-1].Abbreviations = append(books[b.ID-1].Abbreviations, f.Aliases[k]...)
	}

	return New(books)
}

// LoadAliasesFile reads a YAML alias file and applies it to base.
func LoadAliasesFile(base *Directory, path string) (*Directory, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer fh.Close()

	d, err := WithAliases(base, fh)
	if err != nil {
		return nil, errors.Wrapf(err, "aliases %s", path)
	}
	return d, nil
}

func resolveAliasTarget(d *Directory, key string) (Book, bool) {
	if id, err := strconv.Atoi(key); err == nil {
		return d.FindByID(id)
	}
	return d.FindByNameOrAbbreviation(key)
}
