package blocklist_test

import (
	"reflect"
	"testing"

	"spellblock/internal/blocklist"
)

func TestSetOperations(t *testing.T) {
	a := blocklist.NewSet("Cat", "shit", " ", "cat")
	b := blocklist.NewSet("cat", "dog")

	if a.Len() != 2 {
		t.Fatalf("want 2 entries after normalising, got %d", a.Len())
	}
	if got := a.Intersect(b).Sorted(); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Difference(b).Sorted(); !reflect.DeepEqual(got, []string{"shit"}) {
		t.Errorf("Difference = %v", got)
	}
	if got := a.Union(b).Sorted(); !reflect.DeepEqual(got, []string{"cat", "dog", "shit"}) {
		t.Errorf("Union = %v", got)
	}
	if a.Add("CAT") {
		t.Error("Add reported a duplicate as new")
	}
}
