// Package validate checks whether a word is a legal play for a round.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinLength and MaxLength bound the playable word length in letters.
	MinLength = 4
	MaxLength = 12
)

var (
	ErrTooShort        = fmt.Errorf("word must be at least %d letters", MinLength)
	ErrTooLong         = fmt.Errorf("word must be at most %d letters", MaxLength)
	ErrLetterNotInPool = errors.New("letter is not in today's pool")
	ErrNotInDictionary = errors.New("word not found in dictionary")
	ErrBlocked         = errors.New("word is not allowed")
)

// Lookup answers word membership. blocklist.Set satisfies it.
type Lookup interface {
	Has(word string) bool
}

// Validator checks plays against a dictionary and a blocklist.
type Validator struct {
	dict    Lookup
	blocked Lookup
}

func New(dict, blocked Lookup) *Validator {
	return &Validator{dict: dict, blocked: blocked}
}

// Check validates word against pool. Checks run in order: length, letter
// pool, dictionary, blocklist. The first failure is returned.
func (v *Validator) Check(word, pool string) error {
	w := strings.ToLower(strings.TrimSpace(word))

	n := utf8.RuneCountInString(w)
	if n < MinLength {
		return ErrTooShort
	}
	if n > MaxLength {
		return ErrTooLong
	}

	letters := strings.ToLower(pool)
	for _, r := range w {
		if !strings.ContainsRune(letters, r) {
			return fmt.Errorf("%w: %q", ErrLetterNotInPool, strings.ToUpper(string(r)))
		}
	}

	if !v.dict.Has(w) {
		return ErrNotInDictionary
	}
	if v.blocked.Has(w) {
		return ErrBlocked
	}
	return nil
}
