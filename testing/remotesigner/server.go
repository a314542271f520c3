// Package remotesigner provides an in-process remote signer for tests. It checks
// each request the way a real signer would, recomputing the signing root from the
// submitted object before signing it.
package remotesigner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/crypto/bls"
	"github.com/prysmaticlabs/remote-signer/network/httputil"
	remote_signer "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer"
	v1 "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer/v1"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "mock-remote-signer")

// Request is a sign request as received by the server.
type Request struct {
	PublicKey string
	Body      *v1.SignRequest
}

// Server is a remote signer holding a set of secret keys.
type Server struct {
	*httptest.Server

	chainConfig *params.BeaconChainConfig

	lock     sync.Mutex
	keys     map[string]bls.SecretKey
	requests []*Request
	failWith *cannedResponse
}

type cannedResponse struct {
	status int
	body   []byte
}

// New starts a server for the given keys. It is closed when the test ends. A nil
// chainConfig uses the active beacon config.
func New(t testing.TB, chainConfig *params.BeaconChainConfig, keys ...bls.SecretKey) *Server {
	s := NewUnstarted(chainConfig, keys...)
	s.Start()
	t.Cleanup(s.Close)
	return s
}

// NewUnstarted returns a server that is not yet listening.
func NewUnstarted(chainConfig *params.BeaconChainConfig, keys ...bls.SecretKey) *Server {
	s := &Server{
		chainConfig: chainConfig,
		keys:        make(map[string]bls.SecretKey, len(keys)),
	}
	for _, key := range keys {
		s.keys[hexutil.Encode(key.PublicKey().Marshal())] = key
	}
	s.Server = httptest.NewUnstartedServer(s.Router())
	return s
}

// Router returns the request router. Encoded paths are matched as sent so that an
// escaped "/" stays inside the public key segment.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter().UseEncodedPath().SkipClean(true)
	r.HandleFunc("/sign/{public_key}", s.handleSign).Methods(http.MethodPost)
	return r
}

// FailWith makes every following request answer with status and body.
func (s *Server) FailWith(status int, body string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.failWith = &cannedResponse{status: status, body: []byte(body)}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*Request {
	s.lock.Lock()
	defer s.lock.Unlock()
	reqs := make([]*Request, len(s.requests))
	copy(reqs, s.requests)
	return reqs
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["public_key"]
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.HandleError(w, fmt.Sprintf("Could not read body: %v", err), http.StatusBadRequest)
		return
	}
	req := &v1.SignRequest{}
	decodeErr := json.Unmarshal(body, req)

	s.lock.Lock()
	s.requests = append(s.requests, &Request{PublicKey: raw, Body: req})
	canned := s.failWith
	s.lock.Unlock()
	log.WithFields(logrus.Fields{
		"publicKey": raw,
		"domain":    req.BlsDomain,
	}).Debug("Received sign request")
	if canned != nil {
		httputil.WriteRaw(w, canned.status, canned.body)
		return
	}

	pubKey, err := url.PathUnescape(raw)
	if err != nil || !validPublicKey(pubKey) {
		httputil.HandleError(w, fmt.Sprintf("Invalid public key: %s", raw), http.StatusBadRequest)
		return
	}
	s.lock.Lock()
	key, ok := s.keys[pubKey]
	s.lock.Unlock()
	if !ok {
		httputil.HandleError(w, fmt.Sprintf("Key not found: %s", pubKey), http.StatusNotFound)
		return
	}
	if decodeErr != nil {
		httputil.HandleError(w, fmt.Sprintf("Invalid request body: %v", decodeErr), http.StatusBadRequest)
		return
	}
	root, err := s.verifySigningRoot(req)
	if err != nil {
		httputil.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sig := hexutil.Encode(key.Sign(root[:]).Marshal())
	httputil.WriteJson(w, http.StatusOK, &v1.SignResponse{Signature: &sig})
}

func (s *Server) verifySigningRoot(req *v1.SignRequest) ([32]byte, error) {
	domainType, err := primitives.DomainTypeFromLabel(req.BlsDomain)
	if err != nil {
		return [32]byte{}, err
	}
	obj, err := decodeObject(domainType, req)
	if err != nil {
		return [32]byte{}, err
	}
	if err := remote_signer.ValidateDomain(domainType, obj); err != nil {
		return [32]byte{}, err
	}
	root, err := remote_signer.DeriveSigningRoot(s.chainConfig, req.Fork, req.GenesisValidatorsRoot, domainType, obj)
	if err != nil {
		return [32]byte{}, err
	}
	if !bytes.Equal(root[:], req.SigningRoot) {
		return [32]byte{}, fmt.Errorf("Signing root mismatch: computed %#x, got %#x", root, []byte(req.SigningRoot))
	}
	return root, nil
}

func decodeObject(domainType primitives.DomainType, req *v1.SignRequest) (remote_signer.Signable, error) {
	switch domainType {
	case primitives.BeaconProposer:
		block := &phase0.BeaconBlock{}
		if err := json.Unmarshal(req.Data, block); err != nil {
			return nil, fmt.Errorf("Invalid block: %v", err)
		}
		return &remote_signer.BeaconBlock{Block: block}, nil
	case primitives.BeaconAttester:
		data := &phase0.AttestationData{}
		if err := json.Unmarshal(req.Data, data); err != nil {
			return nil, fmt.Errorf("Invalid attestation data: %v", err)
		}
		return &remote_signer.AttestationData{Data: data}, nil
	case primitives.Randao:
		if req.Epoch == nil {
			return nil, errors.New("Missing epoch")
		}
		return remote_signer.Epoch(*req.Epoch), nil
	default:
		return nil, fmt.Errorf("Unsupported BLS Domain: %s", domainType)
	}
}

func validPublicKey(pubKey string) bool {
	b, err := hexutil.Decode(pubKey)
	return err == nil && len(b) == fieldparams.BLSPubkeyLength
}
