package merkle

import (
	"bytes"
	"errors"
	"strings"

	"spellblock/internal/crypto"
)

// ErrEmpty is returned when building a tree with no words.
var ErrEmpty = errors.New("merkle: no leaves")

// Tree is an immutable Merkle tree over a word list.
type Tree struct {
	layers [][]crypto.Hash // layers[0] are the leaves, last layer is the root
	index  map[crypto.Hash]int
}

// Leaf returns the leaf hash for word.
func Leaf(word string) crypto.Hash {
	return crypto.Keccak256([]byte(strings.ToLower(word)))
}

// hashPair hashes a and b in byte order.
func hashPair(a, b crypto.Hash) crypto.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Concat(a, b)
}

// Build constructs the tree for words.
func Build(words []string) (*Tree, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	leaves := make([]crypto.Hash, len(words))
	index := make(map[crypto.Hash]int, len(words))
	for i, w := range words {
		leaves[i] = Leaf(w)
		if _, ok := index[leaves[i]]; !ok {
			index[leaves[i]] = i
		}
	}

	layers := [][]crypto.Hash{leaves}
	for cur := leaves; len(cur) > 1; {
		next := make([]crypto.Hash, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			if i+1 == len(cur) {
				next = append(next, cur[i])
				continue
			}
			next = append(next, hashPair(cur[i], cur[i+1]))
		}
		layers = append(layers, next)
		cur = next
	}
	return &Tree{layers: layers, index: index}, nil
}

// Root returns the tree root.
func (t *Tree) Root() crypto.Hash { return t.layers[len(t.layers)-1][0] }

// HexRoot returns the root as 0x-prefixed hex.
func (t *Tree) HexRoot() string { return crypto.Hex(t.Root()) }

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.layers[0]) }

// Proof returns the sibling path for word. ok is false when the word is not
// a leaf. A duplicated word resolves to its first occurrence.
func (t *Tree) Proof(word string) (proof []crypto.Hash, ok bool) {
	idx, ok := t.index[Leaf(word)]
	if !ok {
		return nil, false
	}
	for _, layer := range t.layers[:len(t.layers)-1] {
		sib := idx + 1
		if idx%2 == 1 {
			sib = idx - 1
		}
		if sib < len(layer) {
			proof = append(proof, layer[sib])
		}
		idx /= 2
	}
	return proof, true
}

// HexProof is Proof with every node hex encoded.
func (t *Tree) HexProof(word string) ([]string, bool) {
	proof, ok := t.Proof(word)
	if !ok {
		return nil, false
	}
	out := make([]string, len(proof))
	for i, p := range proof {
		out[i] = crypto.Hex(p)
	}
	return out, true
}

// Verify reports whether proof links leaf to root.
func Verify(proof []crypto.Hash, leaf, root crypto.Hash) bool {
	h := leaf
	for _, p := range proof {
		h = hashPair(h, p)
	}
	return h == root
}
