package remote_signer

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/require"
)

type fakeSigner struct {
	signature string
	err       error
}

func (f *fakeSigner) Sign(
	_ context.Context,
	_ string,
	_ primitives.DomainType,
	_ Signable,
	_ *phase0.Fork,
	_ []byte,
	_ *params.BeaconChainConfig,
) (string, error) {
	return f.signature, f.err
}

func TestKeymanager_Sign_Metrics(t *testing.T) {
	pubKey := [48]byte{0x01}
	km := &Keymanager{
		genesisValidatorsRoot: make([]byte, 32),
		providedPublicKeys:    [][48]byte{pubKey},
	}
	req := &SignRequest{
		PublicKey: pubKey[:],
		Domain:    primitives.Randao,
		Object:    Epoch(1),
		Fork:      &phase0.Fork{},
	}
	success := signRequestsTotal.WithLabelValues("randao", "success")
	serverMessage := signRequestsTotal.WithLabelValues("randao", "server_message")
	decode := signRequestsTotal.WithLabelValues("randao", "decode")
	successBefore := testutil.ToFloat64(success)
	serverBefore := testutil.ToFloat64(serverMessage)
	decodeBefore := testutil.ToFloat64(decode)

	km.client = &fakeSigner{err: &ServerMessageError{StatusCode: 404, Message: "Key not found"}}
	_, err := km.Sign(context.Background(), req)
	assert.ErrorContains(t, "Key not found", err)
	assert.Equal(t, serverBefore+1, testutil.ToFloat64(serverMessage))

	km.client = &fakeSigner{signature: "0x"}
	_, err = km.Sign(context.Background(), req)
	require.NotNil(t, err)
	assert.Equal(t, decodeBefore+1, testutil.ToFloat64(decode))

	assert.Equal(t, successBefore, testutil.ToFloat64(success))
}

func TestKeymanager_Sign_NilRequest(t *testing.T) {
	km := &Keymanager{client: &fakeSigner{}}
	_, err := km.Sign(context.Background(), nil)
	assert.ErrorContains(t, "Empty parameter request", err)
	assert.Equal(t, "invalid_parameter", ErrorKind(err))
}
