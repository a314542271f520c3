package remote_signer

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	v1 "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer/v1"
)

// BuildSignRequest assembles the request body for obj. The object payload is left
// out entirely when obj has none.
func BuildSignRequest(
	domainType primitives.DomainType,
	obj Signable,
	fork *phase0.Fork,
	genesisValidatorsRoot []byte,
	signingRoot [32]byte,
) (*v1.SignRequest, error) {
	if obj == nil {
		return nil, invalidParameter("Empty parameter object")
	}
	req := &v1.SignRequest{
		BlsDomain:             domainType.Label(),
		Fork:                  fork,
		Epoch:                 obj.WireEpoch(),
		GenesisValidatorsRoot: bytesutil.SafeCopyBytes(genesisValidatorsRoot),
		SigningRoot:           bytesutil.SafeCopyBytes(signingRoot[:]),
	}
	if data := obj.WireData(); data != nil {
		enc, err := json.Marshal(data)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid format, failed to marshal %s", obj.Kind())
		}
		req.Data = enc
	}
	return req, nil
}

// ParseSignResponse interprets a response status and body. A 200 must carry a
// non-empty signature string, which is returned as is. Any other status is
// reported as a ServerMessageError when the body holds an error message and as
// a StatusCodeError otherwise.
func ParseSignResponse(statusCode int, body []byte) (string, error) {
	if statusCode != http.StatusOK {
		errResp := &v1.ErrorResponse{}
		if err := json.Unmarshal(body, errResp); err != nil || errResp.Error == nil {
			return "", &StatusCodeError{StatusCode: statusCode}
		}
		return "", &ServerMessageError{StatusCode: statusCode, Message: *errResp.Error}
	}
	signResp := &v1.SignResponse{}
	if err := json.Unmarshal(body, signResp); err != nil {
		return "", &DecodeError{Err: errors.Wrap(err, "invalid format, failed to unmarshal json response")}
	}
	if signResp.Signature == nil {
		return "", &DecodeError{Err: errors.New("missing signature field")}
	}
	if *signResp.Signature == "" {
		return "", &DecodeError{Err: errors.New("empty signature")}
	}
	return *signResp.Signature, nil
}
