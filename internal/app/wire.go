package app

import (
	"io"
	"log/slog"
	"os"

	"spellblock/internal/blocklist"
	"spellblock/internal/domain"
	dictionarysvc "spellblock/internal/services/dictionary"
	"spellblock/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config     Config
	Log        *slog.Logger
	Blocklist  domain.BlocklistStore
	Dictionary domain.DictionaryStore
	Proofs     domain.ProofStore
	Builder    *dictionarysvc.Service
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut
// (stderr when nil) so they never mix with command output.
func NewWire(cfg Config, logOut io.Writer) *Wire {
	if logOut == nil {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// File-based stores
	blocklistStore := store.NewBlocklistFileStore(cfg.OutDir)
	dictStore := store.NewDictionaryFileStore(cfg.BaseList, cfg.OutDir)
	proofStore := store.NewProofFileStore(cfg.OutDir)

	builder := dictionarysvc.New(dictStore, proofStore, blocklist.Get(), log)

	return &Wire{
		Config:     cfg,
		Log:        log,
		Blocklist:  blocklistStore,
		Dictionary: dictStore,
		Proofs:     proofStore,
		Builder:    builder,
	}
}
