package store_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"spellblock/internal/domain"
	"spellblock/internal/store"
)

func TestBlocklistFileStore(t *testing.T) {
	s := store.NewBlocklistFileStore(t.TempDir())

	if _, ok, err := s.LoadBlocklist(); err != nil || ok {
		t.Fatalf("missing file: ok=%v err=%v", ok, err)
	}
	if err := s.SaveBlocklist([]string{"shit", "ass", "fuck"}); err != nil {
		t.Fatalf("SaveBlocklist: %v", err)
	}
	got, ok, err := s.LoadBlocklist()
	if err != nil || !ok {
		t.Fatalf("LoadBlocklist: ok=%v err=%v", ok, err)
	}
	if want := []string{"ass", "fuck", "shit"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want sorted %v", got, want)
	}
}

func TestProofFileStore(t *testing.T) {
	s := store.NewProofFileStore(t.TempDir())
	in := domain.ProofData{
		Root:       "0xabc",
		Generated:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		TotalWords: 1,
		Proofs:     map[string][]string{"hello": {"0x01"}},
	}
	if err := s.SaveProofs(in); err != nil {
		t.Fatalf("SaveProofs: %v", err)
	}
	got, ok, err := s.LoadProofs()
	if err != nil || !ok {
		t.Fatalf("LoadProofs: ok=%v err=%v", ok, err)
	}
	if !got.Generated.Equal(in.Generated) {
		t.Fatalf("Generated = %v, want %v", got.Generated, in.Generated)
	}
	got.Generated = in.Generated
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}

func TestDictionaryFileStore(t *testing.T) {
	dir := t.TempDir()
	s := store.NewDictionaryFileStore(filepath.Join(dir, "missing.txt"), dir)
	if _, err := s.LoadBase(); err == nil {
		t.Fatal("want error for missing base list")
	}
	if err := s.SaveFiltered([]string{"cat"}); err != nil {
		t.Fatalf("SaveFiltered: %v", err)
	}
	if filepath.Base(s.FilteredPath()) != "words.txt" {
		t.Fatalf("FilteredPath = %s", s.FilteredPath())
	}
}
