package blocklist

import "sort"

// Set is a set of normalised words.
type Set map[string]struct{}

// NewSet builds a Set from words, normalising each one. Empty words are
// skipped.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts the normalised form of word. It reports whether the word was
// newly added.
func (s Set) Add(word string) bool {
	w := Normalize(word)
	if w == "" {
		return false
	}
	if _, ok := s[w]; ok {
		return false
	}
	s[w] = struct{}{}
	return true
}

// Has reports whether the normalised form of word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[Normalize(word)]
	return ok
}

func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Intersect returns the words present in both s and o.
func (s Set) Intersect(o Set) Set {
	out := make(Set)
	for w := range s {
		if _, ok := o[w]; ok {
			out[w] = struct{}{}
		}
	}
	return out
}

// Difference returns the words in s that are not in o.
func (s Set) Difference(o Set) Set {
	out := make(Set)
	for w := range s {
		if _, ok := o[w]; !ok {
			out[w] = struct{}{}
		}
	}
	return out
}

// Union returns a new set holding every word of s and o.
func (s Set) Union(o Set) Set {
	out := s.Clone()
	for w := range o {
		out[w] = struct{}{}
	}
	return out
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
