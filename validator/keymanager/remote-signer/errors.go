package remote_signer

import (
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// TransportOp names the stage of an HTTP exchange that failed.
type TransportOp string

const (
	// OpConnect covers DNS resolution, dialing and the TLS handshake.
	OpConnect TransportOp = "connect"
	// OpRequest covers failures after the connection was established, including timeouts and cancellation.
	OpRequest TransportOp = "request"
	// OpRead covers failures while reading the response body.
	OpRead TransportOp = "read"
)

// InvalidParameterError is returned for caller input rejected before any network attempt.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

func invalidParameter(format string, args ...interface{}) error {
	return &InvalidParameterError{Message: fmt.Sprintf(format, args...)}
}

// InvalidURLError is returned when the base endpoint cannot be extended with path segments.
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid remote signer url %q: %s", e.URL, e.Reason)
}

// TransportError wraps a network level failure.
type TransportError struct {
	Op  TransportOp
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote signer %s failed for %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerMessageError is returned for a non-200 response carrying an error message.
type ServerMessageError struct {
	StatusCode int
	Message    string
}

func (e *ServerMessageError) Error() string {
	return e.Message
}

// StatusCodeError is returned for a non-200 response whose body could not be decoded.
type StatusCodeError struct {
	StatusCode int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("remote signer returned status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError is returned when a 200 response does not carry a well formed signature.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode remote signer response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a short label for the class of err, suitable for metrics.
func ErrorKind(err error) string {
	var (
		paramErr     *InvalidParameterError
		urlErr       *InvalidURLError
		transportErr *TransportError
		serverErr    *ServerMessageError
		statusErr    *StatusCodeError
		decodeErr    *DecodeError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &paramErr):
		return "invalid_parameter"
	case errors.As(err, &urlErr):
		return "invalid_url"
	case errors.As(err, &transportErr):
		return "transport_" + string(transportErr.Op)
	case errors.As(err, &serverErr):
		return "server_message"
	case errors.As(err, &statusErr):
		return "status_code"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "other"
	}
}

// Returned by net/http as a plain string error when an https endpoint answers in cleartext.
const plaintextResponseMsg = "server gave HTTP response to HTTPS client"

// classifyTransport decides whether err happened while establishing the connection.
// TLS alerts sent by the server arrive as *net.OpError with Op "remote error".
func classifyTransport(err error) TransportOp {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return OpConnect
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && (opErr.Op == "dial" || opErr.Op == "remote error") {
		return OpConnect
	}
	if strings.Contains(err.Error(), plaintextResponseMsg) {
		return OpConnect
	}
	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return OpConnect
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return OpConnect
	}
	var certErr x509.CertificateInvalidError
	if errors.As(err, &certErr) {
		return OpConnect
	}
	return OpRequest
}
