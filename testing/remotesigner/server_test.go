package remotesigner_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/remotesigner"
	"github.com/prysmaticlabs/remote-signer/testing/require"
	"github.com/prysmaticlabs/remote-signer/testing/util"
	v1 "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer/v1"
)

func post(t *testing.T, url string, body []byte) (int, *v1.ErrorResponse) {
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	enc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	errResp := &v1.ErrorResponse{}
	require.NoError(t, json.Unmarshal(enc, errResp))
	return resp.StatusCode, errResp
}

func TestServer_InvalidPublicKey(t *testing.T) {
	srv := remotesigner.New(t, nil)
	status, resp := post(t, srv.URL+"/sign/%2F", []byte("{}"))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid public key: %2F", *resp.Error)
	require.Equal(t, 1, len(srv.Requests()))
	assert.Equal(t, "%2F", srv.Requests()[0].PublicKey)
}

func TestServer_UnknownKey(t *testing.T) {
	keys, err := util.DeterministicSecretKeys(2)
	require.NoError(t, err)
	srv := remotesigner.New(t, nil, keys[0])
	pubKey := hexutil.Encode(keys[1].PublicKey().Marshal())
	status, resp := post(t, srv.URL+"/sign/"+pubKey, []byte("{}"))
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Key not found: "+pubKey, *resp.Error)
}

func TestServer_BadBody(t *testing.T) {
	keys, err := util.DeterministicSecretKeys(1)
	require.NoError(t, err)
	srv := remotesigner.New(t, nil, keys[0])
	pubKey := hexutil.Encode(keys[0].PublicKey().Marshal())
	status, resp := post(t, srv.URL+"/sign/"+pubKey, []byte("{"))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
}

func TestServer_FailWith(t *testing.T) {
	srv := remotesigner.New(t, nil)
	srv.FailWith(http.StatusServiceUnavailable, `{"error":"Signer is locked"}`)
	status, resp := post(t, srv.URL+"/sign/0x00", []byte("{}"))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Signer is locked", *resp.Error)
}
