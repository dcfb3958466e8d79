package filter_test

import (
	"reflect"
	"testing"

	"spellblock/internal/blocklist"
	"spellblock/internal/filter"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		blocked     []string
		words       []string
		wantKept    []string
		wantRemoved []string
	}{
		{
			name:        "exact match only",
			blocked:     []string{"ass"},
			words:       []string{"assassin", "ass", "bass"},
			wantKept:    []string{"assassin", "bass"},
			wantRemoved: []string{"ass"},
		},
		{
			name:        "case insensitive",
			blocked:     []string{"fuck"},
			words:       []string{"Fuck", "fuck", "fuchsia"},
			wantKept:    []string{"fuchsia"},
			wantRemoved: []string{"Fuck", "fuck"},
		},
		{
			name:     "nothing blocked",
			blocked:  nil,
			words:    []string{"cat", "dog"},
			wantKept: []string{"cat", "dog"},
		},
		{
			name:     "empty input",
			blocked:  []string{"ass"},
			words:    nil,
			wantKept: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Apply(tt.words, blocklist.NewSet(tt.blocked...))
			if !reflect.DeepEqual(got.Kept, tt.wantKept) {
				t.Errorf("Kept = %v, want %v", got.Kept, tt.wantKept)
			}
			if !reflect.DeepEqual(got.Removed, tt.wantRemoved) {
				t.Errorf("Removed = %v, want %v", got.Removed, tt.wantRemoved)
			}
		})
	}
}

func TestApplyWithCanonicalBlocklist(t *testing.T) {
	got := filter.Apply([]string{"peacock", "cock", "grape", "rape", "hello"}, blocklist.Get())
	if want := []string{"peacock", "grape", "hello"}; !reflect.DeepEqual(got.Kept, want) {
		t.Fatalf("Kept = %v, want %v", got.Kept, want)
	}
}
