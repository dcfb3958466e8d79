package store

import (
	"path/filepath"
	"sort"
	"sync"
)

const blocklistFile = "blocklist.json"

// BlocklistFileStore writes the blocklist as a sorted JSON array.
type BlocklistFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewBlocklistFileStore(dir string) *BlocklistFileStore {
	return &BlocklistFileStore{dir: dir}
}

// Path returns the file the store writes.
func (s *BlocklistFileStore) Path() string { return filepath.Join(s.dir, blocklistFile) }

func (s *BlocklistFileStore) SaveBlocklist(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return writeJSON(s.Path(), sorted, 0o644)
}

func (s *BlocklistFileStore) LoadBlocklist() ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var words []string
	ok, err := readJSON(s.Path(), &words)
	return words, ok, err
}
