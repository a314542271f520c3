package remote_signer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	v1 "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer/v1"
)

const (
	signPathSegment = "sign"
	// DefaultTimeout is used when ClientConfig.Timeout is zero.
	DefaultTimeout  = 12 * time.Second
	maxResponseSize = 1 << 20
)

// HTTPClient is the part of *http.Client the remote signer client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig configures an ApiClient. It is read once at construction.
type ClientConfig struct {
	// BaseEndpoint is the server address, e.g. http://127.0.0.1:9000.
	BaseEndpoint string
	// Timeout bounds a whole request when HTTPClient is not set.
	Timeout time.Duration
	// HTTPClient overrides the default *http.Client.
	HTTPClient HTTPClient
}

// ApiClient sends signing requests to a remote signer. It holds no mutable
// state and is safe for concurrent use.
type ApiClient struct {
	baseURL    *url.URL
	restClient HTTPClient
}

// NewApiClient validates the base endpoint and builds a client.
func NewApiClient(cfg *ClientConfig) (*ApiClient, error) {
	if cfg == nil {
		return nil, invalidParameter("Empty parameter config")
	}
	u, err := parseBaseURL(cfg.BaseEndpoint)
	if err != nil {
		return nil, err
	}
	restClient := cfg.HTTPClient
	if restClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		restClient = &http.Client{Timeout: timeout}
	}
	return &ApiClient{
		baseURL:    u,
		restClient: restClient,
	}, nil
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &InvalidURLError{URL: endpoint, Reason: err.Error()}
	}
	if u.Opaque != "" {
		return nil, &InvalidURLError{URL: endpoint, Reason: "url cannot be a base"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &InvalidURLError{URL: endpoint, Reason: "scheme must be http or https"}
	}
	if u.Host == "" {
		return nil, &InvalidURLError{URL: endpoint, Reason: "missing host"}
	}
	return u, nil
}

// BaseURL returns the configured server address.
func (c *ApiClient) BaseURL() string {
	return c.baseURL.String()
}

// SignURL returns {base}/sign/{public_key} with the key escaped as a single path segment.
func (c *ApiClient) SignURL(pubKey string) string {
	u := *c.baseURL
	basePath := strings.TrimSuffix(u.Path, "/")
	baseRawPath := strings.TrimSuffix(u.EscapedPath(), "/")
	u.Path = basePath + "/" + signPathSegment + "/" + pubKey
	u.RawPath = baseRawPath + "/" + signPathSegment + "/" + url.PathEscape(pubKey)
	return u.String()
}

// Sign validates the domain against obj, derives the signing root and asks the
// remote signer to sign it with the key identified by pubKey. A nil chainCfg uses
// the active beacon config. The returned signature is the hex string sent by the server.
func (c *ApiClient) Sign(
	ctx context.Context,
	pubKey string,
	domainType primitives.DomainType,
	obj Signable,
	fork *phase0.Fork,
	genesisValidatorsRoot []byte,
	chainCfg *params.BeaconChainConfig,
) (string, error) {
	if pubKey == "" {
		return "", invalidParameter("Empty parameter public_key")
	}
	if err := ValidateDomain(domainType, obj); err != nil {
		return "", err
	}
	signingRoot, err := DeriveSigningRoot(chainCfg, fork, genesisValidatorsRoot, domainType, obj)
	if err != nil {
		return "", err
	}
	req, err := BuildSignRequest(domainType, obj, fork, genesisValidatorsRoot, signingRoot)
	if err != nil {
		return "", err
	}
	return c.Post(ctx, pubKey, req)
}

// Post sends a prepared request in a single attempt and parses the response.
func (c *ApiClient) Post(ctx context.Context, pubKey string, request *v1.SignRequest) (string, error) {
	if pubKey == "" {
		return "", invalidParameter("Empty parameter public_key")
	}
	if request == nil {
		return "", invalidParameter("Empty parameter request")
	}
	jsonRequest, err := json.Marshal(request)
	if err != nil {
		return "", errors.Wrap(err, "invalid format, failed to marshal json request")
	}
	fullPath := c.SignURL(pubKey)
	resp, err := c.doRequest(ctx, http.MethodPost, fullPath, bytes.NewReader(jsonRequest))
	if err != nil {
		return "", err
	}
	defer closeBody(resp.Body)
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", &TransportError{Op: OpRead, URL: fullPath, Err: err}
	}
	return ParseSignResponse(resp.StatusCode, body)
}

func (c *ApiClient) doRequest(ctx context.Context, httpMethod, fullPath string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, fullPath, body)
	if err != nil {
		return nil, &InvalidURLError{URL: fullPath, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.restClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: classifyTransport(err), URL: fullPath, Err: err}
	}
	return resp, nil
}

func closeBody(body io.ReadCloser) {
	// Drain so the connection can be reused; there is nobody to report a failure to.
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxResponseSize))
	_ = body.Close()
}
