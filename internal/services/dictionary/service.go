package dictionary

import (
	"fmt"
	"log/slog"
	"time"

	"spellblock/internal/domain"
	"spellblock/internal/filter"
	"spellblock/internal/merkle"
	"spellblock/internal/wordlist"
)

// Service runs dictionary builds against a backing store.
type Service struct {
	dict    domain.DictionaryStore
	proofs  domain.ProofStore
	blocked filter.Checker
	log     *slog.Logger
	now     func() time.Time
}

// New returns a dictionary service. A nil logger falls back to slog.Default.
func New(dict domain.DictionaryStore, proofs domain.ProofStore, blocked filter.Checker, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{dict: dict, proofs: proofs, blocked: blocked, log: log, now: time.Now}
}

// Build filters the base list, saves the result and its Merkle proofs.
func (s *Service) Build() (domain.BuildResult, error) {
	base, err := s.dict.LoadBase()
	if err != nil {
		return domain.BuildResult{}, err
	}
	base = wordlist.Dedup(base)
	s.log.Debug("dictionary: base list loaded", "words", len(base))

	res := filter.Apply(base, s.blocked)
	if err := s.dict.SaveFiltered(res.Kept); err != nil {
		return domain.BuildResult{}, fmt.Errorf("dictionary: save filtered list: %w", err)
	}
	s.log.Info("dictionary: filtered", "kept", len(res.Kept), "removed", len(res.Removed))

	tree, err := merkle.Build(res.Kept)
	if err != nil {
		return domain.BuildResult{}, fmt.Errorf("dictionary: build tree: %w", err)
	}

	proofs := make(map[string][]string, len(res.Kept))
	for _, w := range res.Kept {
		p, _ := tree.HexProof(w)
		proofs[w] = p
	}
	data := domain.ProofData{
		Root:       tree.HexRoot(),
		Generated:  s.now().UTC(),
		TotalWords: len(proofs),
		Proofs:     proofs,
	}
	if err := s.proofs.SaveProofs(data); err != nil {
		return domain.BuildResult{}, fmt.Errorf("dictionary: save proofs: %w", err)
	}
	s.log.Info("dictionary: merkle root", "root", data.Root)

	return domain.BuildResult{
		Kept:    len(res.Kept),
		Removed: res.Removed,
		Root:    data.Root,
	}, nil
}
