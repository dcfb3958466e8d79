// Package filter applies the blocklist to a candidate word list.
package filter

// Checker answers whether a word is blocked. blocklist.Set satisfies it.
type Checker interface {
	Has(word string) bool
}

// Result splits the input into kept and removed words, each in input order.
type Result struct {
	Kept    []string
	Removed []string
}

// Apply drops every word that bl reports as blocked. Matching is entirely up
// to bl; with a blocklist.Set that means case-insensitive whole-token
// equality.
func Apply(words []string, bl Checker) Result {
	res := Result{Kept: make([]string, 0, len(words))}
	for _, w := range words {
		if bl.Has(w) {
			res.Removed = append(res.Removed, w)
			continue
		}
		res.Kept = append(res.Kept, w)
	}
	return res
}
