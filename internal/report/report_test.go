package report_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"spellblock/internal/blocklist"
	"spellblock/internal/report"
)

func TestDiff(t *testing.T) {
	r := report.Diff(blocklist.NewSet("cat", "shit"), []string{"cat", "dog"})
	if r.Total != 2 {
		t.Errorf("Total = %d, want 2", r.Total)
	}
	if want := []string{"cat"}; !reflect.DeepEqual(r.InBase, want) {
		t.Errorf("InBase = %v, want %v", r.InBase, want)
	}
	if want := []string{"shit"}; !reflect.DeepEqual(r.Preemptive, want) {
		t.Errorf("Preemptive = %v, want %v", r.Preemptive, want)
	}
}

func TestDiffIsCaseInsensitive(t *testing.T) {
	r := report.Diff(blocklist.NewSet("fuck"), []string{"Fuck"})
	if len(r.InBase) != 1 || r.InBase[0] != "fuck" {
		t.Fatalf("InBase = %v, want [fuck]", r.InBase)
	}
	if len(r.Preemptive) != 0 {
		t.Fatalf("Preemptive = %v, want empty", r.Preemptive)
	}
}

func TestDiffIsExactMatch(t *testing.T) {
	r := report.Diff(blocklist.NewSet("ass"), []string{"assassin", "bass"})
	if len(r.InBase) != 0 {
		t.Fatalf("InBase = %v, want empty", r.InBase)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	r := report.Diff(blocklist.NewSet("cat", "shit"), []string{"cat", "dog"})
	if err := r.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Total blocklist entries: 2\n",
		"Found in base list: 1\n",
		"Not in base list (preemptive): 1\n",
		"Words that WILL be removed:\n  cat\n",
		"blocked just in case):\n  shit\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritePropagatesError(t *testing.T) {
	if err := report.Diff(blocklist.NewSet("cat"), nil).Write(failWriter{}); err == nil {
		t.Fatal("want write error")
	}
}
