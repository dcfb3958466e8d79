// Package dictionary builds the playable dictionary from the base word list.
//
// A build loads the base list, drops every blocked word, writes the filtered
// list, then commits to it with a Merkle tree and persists the root and
// per-word proofs for the front end.
package dictionary
