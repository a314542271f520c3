// Package v1 defines the JSON bodies exchanged with a remote signer on POST /sign/{public_key}.
package v1

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// SignRequest is the request body. Data is omitted for randao reveals, which carry
// the epoch at the top level instead.
type SignRequest struct {
	BlsDomain             string            `json:"bls_domain"`
	Data                  json.RawMessage   `json:"data,omitempty"`
	Fork                  *phase0.Fork      `json:"fork"`
	Epoch                 *primitives.Epoch `json:"epoch,omitempty"`
	GenesisValidatorsRoot hexutil.Bytes     `json:"genesis_validators_root"`
	SigningRoot           hexutil.Bytes     `json:"signing_root"`
}

// SignResponse is the body of a 200 response.
type SignResponse struct {
	Signature *string `json:"signature"`
}

// ErrorResponse is the body of a non-200 response.
type ErrorResponse struct {
	Error *string `json:"error"`
}
