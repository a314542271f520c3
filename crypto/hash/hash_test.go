package hash_test

import (
	stdsha "crypto/sha256"
	"testing"

	"github.com/prysmaticlabs/remote-signer/crypto/hash"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
)

func TestHash_MatchesStandardSha256(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("hello"), make([]byte, 64)} {
		assert.Equal(t, stdsha.Sum256(in), hash.Hash(in))
	}
}

func TestCustomSHA256Hasher_Reusable(t *testing.T) {
	hasher := hash.CustomSHA256Hasher()
	first := hasher([]byte("a"))
	second := hasher([]byte("a"))
	assert.Equal(t, first, second)
	assert.Equal(t, hash.Hash([]byte("a")), first)
}
