package ref

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/FocuswithJustin/scriptref/core/errors"
)

// compileCandidatePattern builds the prose scanner. A candidate is an optional
// numeric book prefix, up to maxWords words, then chapter:verse with an
// optional range. Only the colon form is recognized in free text.
func compileCandidatePattern(maxWords int) *regexp.Regexp {
	if maxWords < 1 {
		maxWords = 1
	}
	return regexp.MustCompile(fmt.Sprintf(
		`\b(?:([123])\s*)?(\pL[\pL'.]*(?:\s+\pL[\pL'.]*){0,%d})\s*(\d+):(\d+)(?:\s*[-–]\s*(\d+))?`,
		maxWords-1,
	))
}

// ExtractAll returns every valid reference found in text, in first-seen order,
// each DisplayText at most once.
//
// Candidates whose book is unknown or whose numbers fail validation are
// skipped; extraction never fails. The sequence is lazy and may be ranged over
// any number of times, each pass rescanning text.
func (p *Parser) ExtractAll(text string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		s := normalizeInput(text)
		seen := make(map[string]struct{})

		for _, m := range p.candidatePattern.FindAllStringSubmatch(s, -1) {
			r, err := p.resolveCandidate(m)
			if err != nil {
				p.logger.Debug("skipping reference candidate", "text", strings.TrimSpace(m[0]), "error", err)
				continue
			}
			if _, dup := seen[r.DisplayText]; dup {
				continue
			}
			seen[r.DisplayText] = struct{}{}
			if !yield(r) {
				return
			}
		}
	}
}

// resolveCandidate finds the book among the words preceding the numbers.
// Prose words may precede the book ("we read in John"), so the longest word
// suffix that names a book and validates wins. The numeric prefix only belongs
// to the longest suffix, and is dropped when that book rejects the numbers
// ("Psalm 23 2 John 3:16" is John 3:16, since 2 John has one chapter).
func (p *Parser) resolveCandidate(m []string) (Reference, error) {
	prefix, words := m[1], strings.Fields(m[2])
	input := strings.TrimSpace(m[0])

	var tokens []string
	for i := range words {
		token := strings.Join(words[i:], " ")
		if i == 0 && prefix != "" {
			tokens = append(tokens, prefix+" "+token)
		}
		tokens = append(tokens, token)
	}

	var firstErr error
	for _, token := range tokens {
		book, ok := p.dir.FindByNameOrAbbreviation(token)
		if !ok {
			continue
		}
		r, err := buildReference(input, book, m[3], m[4], m[5])
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return Reference{}, firstErr
	}

	return Reference{}, errors.BookNotFound(strings.TrimSpace(m[1] + " " + m[2]))
}
