package store

import (
	"path/filepath"

	"spellblock/internal/wordlist"
)

const filteredFile = "words.txt"

// DictionaryFileStore reads the base word list and writes the filtered one.
type DictionaryFileStore struct {
	basePath string
	dir      string
}

func NewDictionaryFileStore(basePath, dir string) *DictionaryFileStore {
	return &DictionaryFileStore{basePath: basePath, dir: dir}
}

// FilteredPath returns where SaveFiltered writes.
func (s *DictionaryFileStore) FilteredPath() string { return filepath.Join(s.dir, filteredFile) }

func (s *DictionaryFileStore) LoadBase() ([]string, error) { return wordlist.Load(s.basePath) }

func (s *DictionaryFileStore) SaveFiltered(words []string) error {
	return wordlist.Save(s.FilteredPath(), words)
}
