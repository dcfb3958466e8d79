// Package report compares the blocklist against a base word list.
//
// The comparison is diagnostic only: it shows which blocked words will
// actually be removed from the dictionary and which are preemptive entries
// with no current effect.
package report

import (
	"fmt"
	"io"

	"spellblock/internal/blocklist"
)

// Report is the result of Diff. Both slices are sorted.
type Report struct {
	Total      int      // distinct blocklist entries
	InBase     []string // blocked words present in the base list
	Preemptive []string // blocked words absent from the base list
}

// Diff computes the intersection and complement of bl with base. Base words
// are normalised the same way the blocklist is.
func Diff(bl blocklist.Set, base []string) Report {
	b := blocklist.NewSet(base...)
	return Report{
		Total:      bl.Len(),
		InBase:     bl.Intersect(b).Sorted(),
		Preemptive: bl.Difference(b).Sorted(),
	}
}

// Write prints r in human-readable form.
func (r Report) Write(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Total blocklist entries: %d\n", r.Total)
	ew.printf("Found in base list: %d\n", len(r.InBase))
	ew.printf("Not in base list (preemptive): %d\n", len(r.Preemptive))

	ew.printf("\nWords that WILL be removed:\n")
	for _, word := range r.InBase {
		ew.printf("  %s\n", word)
	}
	ew.printf("\nPreemptive entries (not in base, but blocked just in case):\n")
	for _, word := range r.Preemptive {
		ew.printf("  %s\n", word)
	}
	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
