// Package merkle builds the dictionary commitment checked on chain.
//
// Each leaf is keccak256 of a lowercased word. Parent nodes hash the two
// children in byte order (sorted pairs), so proofs carry no left/right
// flags. When a layer has an odd number of nodes the last one is promoted to
// the next layer unchanged.
//
// Leaves keep the input order; they are not sorted.
package merkle
