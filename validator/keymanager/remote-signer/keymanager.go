package remote_signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/crypto/bls"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	"github.com/prysmaticlabs/remote-signer/io/logs"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// SetupConfig includes configuration values for initializing a keymanager
// backed by a remote signer.
type SetupConfig struct {
	BaseEndpoint          string        `json:"base_endpoint"`
	TimeoutSeconds        uint64        `json:"timeout_seconds,omitempty"`
	GenesisValidatorsRoot hexutil.Bytes `json:"genesis_validators_root"`

	// A static list of public keys that this keymanager may sign with. Requests
	// for any other key are refused without contacting the remote signer.
	ProvidedPublicKeys []hexutil.Bytes `json:"public_keys"`
}

// SignRequest is a single signing duty.
type SignRequest struct {
	PublicKey []byte
	Domain    primitives.DomainType
	Object    Signable
	Fork      *phase0.Fork
}

type signerClient interface {
	Sign(
		ctx context.Context,
		pubKey string,
		domainType primitives.DomainType,
		obj Signable,
		fork *phase0.Fork,
		genesisValidatorsRoot []byte,
		chainCfg *params.BeaconChainConfig,
	) (string, error)
}

// Keymanager signs validator duties through a remote signer.
type Keymanager struct {
	client                signerClient
	genesisValidatorsRoot []byte
	providedPublicKeys    [][fieldparams.BLSPubkeyLength]byte
	chainConfig           *params.BeaconChainConfig
}

// NewKeymanager instantiates a new remote signer key manager. A nil chainConfig
// resolves to the active beacon config on every request.
func NewKeymanager(_ context.Context, cfg *SetupConfig, chainConfig *params.BeaconChainConfig) (*Keymanager, error) {
	if cfg == nil {
		return nil, errors.New("nil setup config")
	}
	if cfg.BaseEndpoint == "" || len(cfg.GenesisValidatorsRoot) == 0 {
		return nil, fmt.Errorf("invalid setup config, one or more configs are empty: BaseEndpoint: %v, GenesisValidatorsRoot: %#x", logs.MaskCredentialsLogging(cfg.BaseEndpoint), []byte(cfg.GenesisValidatorsRoot))
	}
	if len(cfg.GenesisValidatorsRoot) != fieldparams.RootLength {
		return nil, fmt.Errorf("genesis validators root must be %d bytes, got %d", fieldparams.RootLength, len(cfg.GenesisValidatorsRoot))
	}
	if len(cfg.ProvidedPublicKeys) == 0 {
		return nil, errors.New("no valid public key options provided")
	}
	keys := make([][fieldparams.BLSPubkeyLength]byte, len(cfg.ProvidedPublicKeys))
	for i, key := range cfg.ProvidedPublicKeys {
		if len(key) != fieldparams.BLSPubkeyLength {
			return nil, fmt.Errorf("public key %#x must be %d bytes", []byte(key), fieldparams.BLSPubkeyLength)
		}
		keys[i] = bytesutil.ToBytes48(key)
	}
	client, err := NewApiClient(&ClientConfig{
		BaseEndpoint: cfg.BaseEndpoint,
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create apiClient")
	}
	log.WithFields(logrus.Fields{
		"url":           logs.MaskCredentialsLogging(client.BaseURL()),
		"numPublicKeys": len(keys),
	}).Info("Remote signer keymanager initialized")
	return &Keymanager{
		client:                client,
		genesisValidatorsRoot: bytesutil.SafeCopyBytes(cfg.GenesisValidatorsRoot),
		providedPublicKeys:    keys,
		chainConfig:           chainConfig,
	}, nil
}

// FetchValidatingPublicKeys returns the public keys this keymanager signs with.
func (km *Keymanager) FetchValidatingPublicKeys(_ context.Context) ([][fieldparams.BLSPubkeyLength]byte, error) {
	keys := make([][fieldparams.BLSPubkeyLength]byte, len(km.providedPublicKeys))
	copy(keys, km.providedPublicKeys)
	return keys, nil
}

// Sign signs the request's object by using the remote signer and decodes the
// returned signature.
func (km *Keymanager) Sign(ctx context.Context, request *SignRequest) (bls.Signature, error) {
	ctx, span := trace.StartSpan(ctx, "remotesigner.Sign")
	defer span.End()

	if request == nil {
		return nil, invalidParameter("Empty parameter request")
	}
	if !km.manages(request.PublicKey) {
		return nil, invalidParameter("Public key %#x is not managed by this keymanager", request.PublicKey)
	}
	label := request.Domain.Label()
	span.AddAttributes(
		trace.StringAttribute("domain", label),
		trace.StringAttribute("pubkey", fmt.Sprintf("%#x", request.PublicKey)),
	)

	start := time.Now()
	sig, err := km.client.Sign(
		ctx,
		hexutil.Encode(request.PublicKey),
		request.Domain,
		request.Object,
		request.Fork,
		km.genesisValidatorsRoot,
		km.chainConfig,
	)
	signRequestLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		signRequestsTotal.WithLabelValues(label, ErrorKind(err)).Inc()
		span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()})
		return nil, err
	}
	blsSig, err := decodeSignature(sig)
	if err != nil {
		signRequestsTotal.WithLabelValues(label, ErrorKind(err)).Inc()
		span.SetStatus(trace.Status{Code: trace.StatusCodeDataLoss, Message: err.Error()})
		return nil, err
	}
	signRequestsTotal.WithLabelValues(label, ErrorKind(nil)).Inc()
	return blsSig, nil
}

func (km *Keymanager) manages(pubKey []byte) bool {
	for _, key := range km.providedPublicKeys {
		if bytes.Equal(key[:], pubKey) {
			return true
		}
	}
	return false
}

func decodeSignature(signature string) (bls.Signature, error) {
	decoded, err := hexutil.Decode(signature)
	if err != nil {
		return nil, &DecodeError{Err: errors.Wrap(err, "invalid format, signature is not hex")}
	}
	blsSig, err := bls.SignatureFromBytes(decoded)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return blsSig, nil
}

// UnmarshalConfigFile attempts to unmarshal a YAML or JSON keymanager
// config file into a SetupConfig struct.
func UnmarshalConfigFile(r io.ReadCloser) (*SetupConfig, error) {
	defer func() {
		if err := r.Close(); err != nil {
			log.Errorf("Could not close keymanager config file: %v", err)
		}
	}()
	enc, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}
	config := &SetupConfig{}
	if err := yaml.Unmarshal(enc, config); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}
	return config, nil
}

// MarshalConfigFile for the keymanager.
func MarshalConfigFile(_ context.Context, config *SetupConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "\t")
}
