// Package store provides file-based persistence for spellblock's build
// artifacts.
//
// It contains concrete implementations of the domain storage interfaces.
// JSON documents are written through a temp file then renamed into place.
// The JSON stores are concurrency-safe via internal locking. Files live under
// the configured output directory:
//
//   - blocklist.json     sorted array of blocked words (BlocklistFileStore)
//   - merkle-proofs.json dictionary root and per-word proofs (ProofFileStore)
//   - words.txt          the filtered dictionary (DictionaryFileStore)
package store
