package ssz

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/gohashtree"
	"github.com/prysmaticlabs/remote-signer/crypto/hash"
)

const (
	mask0 = ^uint64((1 << (1 << iota)) - 1)
	mask1
	mask2
	mask3
	mask4
	mask5
)

const (
	bit0 = uint8(1 << iota)
	bit1
	bit2
	bit3
	bit4
	bit5
)

// Depth retrieves the appropriate depth for the provided trie size.
func Depth(v uint64) (out uint8) {
	// bitmagic: binary search through a uint32, offset down by 1 to not round powers of 2 up.
	// Then adding 1 to it to not get the index of the first bit, but the length of the bits (depth of tree)
	// Zero is a special case, it has a 0 depth.
	// Example:
	//  (in out): (0 0), (1 0), (2 1), (3 2), (4 2), (5 3), (6 3), (7 3), (8 3), (9 4)
	if v <= 1 {
		return 0
	}
	v--
	if v&mask5 != 0 {
		v >>= bit5
		out |= bit5
	}
	if v&mask4 != 0 {
		v >>= bit4
		out |= bit4
	}
	if v&mask3 != 0 {
		v >>= bit3
		out |= bit3
	}
	if v&mask2 != 0 {
		v >>= bit2
		out |= bit2
	}
	if v&mask1 != 0 {
		v >>= bit1
		out |= bit1
	}
	if v&mask0 != 0 {
		out |= bit0
	}
	out++
	return
}

// MerkleizeVector hashes a list of 32-byte elements padded to length with
// zero subtrees.
func MerkleizeVector(elements [][32]byte, length uint64) [32]byte {
	depth := Depth(length)
	// Return zerohash at depth
	if len(elements) == 0 {
		return ZeroHashes[depth]
	}
	layer := make([][32]byte, len(elements))
	copy(layer, elements)
	for i := uint8(0); i < depth; i++ {
		if len(layer)%2 == 1 {
			layer = append(layer, ZeroHashes[i])
		}
		layer = vectorizedSha256(layer)
	}
	return layer[0]
}

// vectorizedSha256 hashes consecutive pairs of chunks.
func vectorizedSha256(chunks [][32]byte) [][32]byte {
	out := make([][32]byte, len(chunks)/2)
	if err := gohashtree.Hash(out, chunks); err == nil {
		return out
	}
	hasher := NewHasherFunc(hash.CustomSHA256Hasher())
	for i := range out {
		out[i] = hasher.Combi(chunks[2*i], chunks[2*i+1])
	}
	return out
}

// Hashable is an interface representing objects that implement HashTreeRoot()
type Hashable interface {
	HashTreeRoot() ([32]byte, error)
}

// MerkleizeVectorSSZ hashes each element in the list and then returns the HTR
// of the corresponding list of roots
func MerkleizeVectorSSZ[T Hashable](elements []T, length uint64) ([32]byte, error) {
	roots := make([][32]byte, len(elements))
	var err error
	for i, el := range elements {
		roots[i], err = el.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
	}
	return MerkleizeVector(roots, length), nil
}

// MerkleizeListSSZ hashes each element in the list and then returns the HTR of
// the list of corresponding roots, with the length mixed in.
func MerkleizeListSSZ[T Hashable](elements []T, limit uint64) ([32]byte, error) {
	if uint64(len(elements)) > limit {
		return [32]byte{}, errors.Errorf("list of %d elements exceeds limit %d", len(elements), limit)
	}
	body, err := MerkleizeVectorSSZ(elements, limit)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(body, uint64(len(elements))), nil
}

// MixInLength appends the little-endian length to the root and hashes the result.
func MixInLength(root [32]byte, length uint64) [32]byte {
	return NewHasherFunc(hash.CustomSHA256Hasher()).MixIn(root, length)
}
