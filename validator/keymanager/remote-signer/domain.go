package remote_signer

import (
	"github.com/prysmaticlabs/remote-signer/beacon-chain/core/signing"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// Domains a remote signer request may be made under.
var supportedDomains = map[primitives.DomainType]bool{
	primitives.BeaconProposer: true,
	primitives.BeaconAttester: true,
	primitives.Randao:         true,
}

// ValidateDomain checks that obj may be signed under the requested domain.
// Unsupported domains are rejected regardless of the object kind.
func ValidateDomain(requested primitives.DomainType, obj Signable) error {
	if !requested.IsValid() {
		return invalidParameter("Unknown BLS Domain: %d", uint8(requested))
	}
	if !supportedDomains[requested] {
		return invalidParameter("Unsupported BLS Domain: %s", requested)
	}
	if obj == nil {
		return invalidParameter("Empty parameter object")
	}
	if expected := obj.RequiredDomain(); expected != requested {
		return invalidParameter(
			"Domain mismatch for the %s object. Expected %s, got %s",
			obj.Kind(),
			expected,
			requested,
		)
	}
	return nil
}

// DeriveSigningRoot computes the root a remote signer is asked to sign for obj.
// The fork version is picked using the object's own epoch. A nil cfg uses the
// active beacon config.
func DeriveSigningRoot(
	cfg *params.BeaconChainConfig,
	fork *phase0.Fork,
	genesisValidatorsRoot []byte,
	domainType primitives.DomainType,
	obj Signable,
) ([32]byte, error) {
	if cfg == nil {
		cfg = params.BeaconConfig()
	}
	if obj == nil {
		return [32]byte{}, invalidParameter("Empty parameter object")
	}
	if fork == nil {
		return [32]byte{}, invalidParameter("Empty parameter fork")
	}
	if len(genesisValidatorsRoot) != fieldparams.RootLength {
		return [32]byte{}, invalidParameter(
			"Invalid genesis_validators_root length: expected %d bytes, got %d",
			fieldparams.RootLength,
			len(genesisValidatorsRoot),
		)
	}
	domainBytes, err := cfg.DomainTypeBytes(domainType)
	if err != nil {
		return [32]byte{}, invalidParameter("Unknown BLS Domain: %d", uint8(domainType))
	}
	domain, err := signing.Domain(fork, obj.SigningEpoch(cfg.SlotsPerEpoch), domainBytes, genesisValidatorsRoot)
	if err != nil {
		return [32]byte{}, invalidParameter("Could not compute domain: %v", err)
	}
	root, err := obj.SigningRoot(domain)
	if err != nil {
		return [32]byte{}, invalidParameter("Could not compute signing root of the %s object: %v", obj.Kind(), err)
	}
	return root, nil
}
