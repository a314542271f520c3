package ssz

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
)

// Uint64Root computes the HashTreeRoot Merkleization of
// a simple uint64 value according to the Ethereum
// Simple Serialize specification.
func Uint64Root(val uint64) [32]byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, val)
	root := bytesutil.ToBytes32(buf)
	return root
}

// ForkRoot computes the HashTreeRoot Merkleization of
// a Fork struct value according to the Ethereum
// Simple Serialize specification.
func ForkRoot(previousVersion, currentVersion []byte, epoch uint64) [32]byte {
	return ContainerRoot(
		bytesutil.ToBytes32(previousVersion),
		bytesutil.ToBytes32(currentVersion),
		Uint64Root(epoch),
	)
}

// ContainerRoot merkleizes the already computed roots of a container's fields.
func ContainerRoot(fieldRoots ...[32]byte) [32]byte {
	return MerkleizeVector(fieldRoots, uint64(len(fieldRoots)))
}

// PackByChunk packs the serialized items into 32 byte chunks, padding the last one with zeroes.
func PackByChunk(serializedItems [][]byte) [][32]byte {
	var flat []byte
	for _, item := range serializedItems {
		flat = append(flat, item...)
	}
	numChunks := (len(flat) + 31) / 32
	if numChunks == 0 {
		return [][32]byte{{}}
	}
	chunks := make([][32]byte, numChunks)
	for i := range chunks {
		copy(chunks[i][:], flat[32*i:])
	}
	return chunks
}

// Uint64ListRoot computes the HashTreeRoot of a List[uint64, limit].
func Uint64ListRoot(vals []uint64, limit uint64) ([32]byte, error) {
	if uint64(len(vals)) > limit {
		return [32]byte{}, errors.Errorf("list of %d elements exceeds limit %d", len(vals), limit)
	}
	limitChunks := (limit*8 + 31) / 32
	var chunks [][32]byte
	if len(vals) > 0 {
		items := make([][]byte, len(vals))
		for i, v := range vals {
			items[i] = bytesutil.Bytes8(v)
		}
		chunks = PackByChunk(items)
	}
	return MixInLength(MerkleizeVector(chunks, limitChunks), uint64(len(vals))), nil
}

// BitlistRoot computes the HashTreeRoot of a Bitlist[maxBits] given its bit length and the
// packed bits without the length delimiter.
func BitlistRoot(bits []byte, bitLen, maxBits uint64) ([32]byte, error) {
	if bitLen > maxBits {
		return [32]byte{}, errors.Errorf("bitlist of %d bits exceeds limit %d", bitLen, maxBits)
	}
	limitChunks := (maxBits + 255) / 256
	var chunks [][32]byte
	if len(bits) > 0 {
		chunks = PackByChunk([][]byte{bits})
	}
	return MixInLength(MerkleizeVector(chunks, limitChunks), bitLen), nil
}
