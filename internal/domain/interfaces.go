package domain

// BlocklistStore persists the exported blocklist consumed by the front end.
type BlocklistStore interface {
	SaveBlocklist(words []string) error
	LoadBlocklist() (words []string, ok bool, err error)
}

// ProofStore persists the dictionary Merkle root and per-word proofs.
type ProofStore interface {
	SaveProofs(p ProofData) error
	LoadProofs() (ProofData, bool, error)
}

// DictionaryStore holds the base and filtered word lists.
type DictionaryStore interface {
	LoadBase() ([]string, error)
	SaveFiltered(words []string) error
}
