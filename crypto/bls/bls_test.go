package bls_test

import (
	"testing"

	"github.com/prysmaticlabs/remote-signer/crypto/bls"
	"github.com/prysmaticlabs/remote-signer/crypto/bls/common"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
	assert.Equal(t, false, sig.Verify(pub, []byte("world")), "Signature verified for the wrong message")
}

func TestSignatureFromBytes_RoundTrip(t *testing.T) {
	priv, err := bls.SecretKeyFromBytes(bytesutil.PadTo([]byte{}, 31))
	assert.ErrorContains(t, "secret key must be 32 bytes", err)
	assert.Equal(t, nil, priv)

	priv, err = bls.SecretKeyFromBytes(bytesutil.ToBytes(7, 32))
	require.NoError(t, err)
	sig := priv.Sign([]byte{1, 2, 3})
	decoded, err := bls.SignatureFromBytes(sig.Marshal())
	require.NoError(t, err)
	assert.DeepEqual(t, sig.Marshal(), decoded.Marshal())
	assert.Equal(t, true, decoded.Verify(priv.PublicKey(), []byte{1, 2, 3}))
}

func TestSignature_Deterministic(t *testing.T) {
	priv, err := bls.SecretKeyFromBytes(bytesutil.ToBytes(11, 32))
	require.NoError(t, err)
	assert.DeepEqual(t, priv.Sign([]byte("msg")).Marshal(), priv.Sign([]byte("msg")).Marshal())
}

func TestSecretKeyFromBytes_Zero(t *testing.T) {
	_, err := bls.SecretKeyFromBytes(make([]byte, 32))
	require.NotNil(t, err)
}

func TestSignatureFromBytes_Invalid(t *testing.T) {
	_, err := bls.SignatureFromBytes([]byte{1, 2, 3})
	assert.ErrorContains(t, "signature must be 96 bytes", err)

	_, err = bls.SignatureFromBytes(make([]byte, 96))
	require.NotNil(t, err)
}

func TestPublicKeyFromBytes(t *testing.T) {
	priv, err := bls.SecretKeyFromBytes(bytesutil.ToBytes(5, 32))
	require.NoError(t, err)
	raw := priv.PublicKey().Marshal()
	assert.Equal(t, 48, len(raw))

	pub, err := bls.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, true, pub.Equals(priv.PublicKey()))

	// Second decode is served from the cache and must be an independent copy.
	again, err := bls.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, true, again.Equals(pub))

	_, err = bls.PublicKeyFromBytes(common.InfinitePublicKey[:])
	require.NotNil(t, err)
}
