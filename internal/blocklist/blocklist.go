package blocklist

import "strings"

// Category is one thematic group of blocked words.
type Category struct {
	Name  string
	Words []string
}

// canonical is the union of all categories. Built in init, read-only after.
var canonical Set

func init() {
	canonical = make(Set)
	for _, c := range categories {
		for _, w := range c.Words {
			canonical.Add(w)
		}
	}
}

// Normalize lowercases and trims a word. It is the only normalisation applied
// before comparing a word against the blocklist.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Get returns a copy of the full blocklist. Mutating the result does not
// affect the canonical table or later calls.
func Get() Set { return canonical.Clone() }

// Contains reports whether word is blocked under whole-token,
// case-insensitive equality.
func Contains(word string) bool { return canonical.Has(word) }

// Len returns the number of distinct blocked words.
func Len() int { return len(canonical) }

// Categories returns the thematic groups the blocklist is built from.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Words: append([]string(nil), c.Words...)}
	}
	return out
}
