package store

import (
	"path/filepath"
	"sync"

	"spellblock/internal/domain"
)

const proofsFile = "merkle-proofs.json"

// ProofFileStore persists domain.ProofData as JSON.
type ProofFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewProofFileStore(dir string) *ProofFileStore { return &ProofFileStore{dir: dir} }

func (s *ProofFileStore) Path() string { return filepath.Join(s.dir, proofsFile) }

func (s *ProofFileStore) SaveProofs(p domain.ProofData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), p, 0o644)
}

func (s *ProofFileStore) LoadProofs() (domain.ProofData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.ProofData
	ok, err := readJSON(s.Path(), &p)
	if err != nil || !ok {
		return domain.ProofData{}, ok, err
	}
	return p, true, nil
}
