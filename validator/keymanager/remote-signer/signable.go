package remote_signer

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/remote-signer/beacon-chain/core/signing"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/encoding/ssz"
)

// Signable is a consensus object that can be handed to a remote signer.
type Signable interface {
	// Kind names the concrete object, e.g. "BeaconBlock".
	Kind() string
	// RequiredDomain is the only domain the object may be signed under.
	RequiredDomain() primitives.DomainType
	// SigningEpoch selects the fork version used for the domain.
	SigningEpoch(slotsPerEpoch primitives.Slot) primitives.Epoch
	// SigningRoot folds the domain into the object's hash tree root.
	SigningRoot(domain []byte) ([32]byte, error)
	// WireData is sent as the request "data" field, nil when the object has no body.
	WireData() interface{}
	// WireEpoch is sent as the top level request "epoch" field, nil when not applicable.
	WireEpoch() *primitives.Epoch
}

var (
	_ = Signable(&BeaconBlock{})
	_ = Signable(&AttestationData{})
	_ = Signable(Epoch(0))
)

var errNilObject = errors.New("nil object")

// BeaconBlock is a block proposal signed under BeaconProposer.
type BeaconBlock struct {
	Block *phase0.BeaconBlock
}

// Kind --
func (*BeaconBlock) Kind() string {
	return "BeaconBlock"
}

// RequiredDomain --
func (*BeaconBlock) RequiredDomain() primitives.DomainType {
	return primitives.BeaconProposer
}

// SigningEpoch is the epoch of the block slot.
func (b *BeaconBlock) SigningEpoch(slotsPerEpoch primitives.Slot) primitives.Epoch {
	if b == nil || b.Block == nil {
		return 0
	}
	return b.Block.Slot.ToEpoch(slotsPerEpoch)
}

// SigningRoot --
func (b *BeaconBlock) SigningRoot(domain []byte) ([32]byte, error) {
	if b == nil || b.Block == nil {
		return [32]byte{}, errors.Wrap(errNilObject, "BeaconBlock")
	}
	return signing.ComputeSigningRoot(b.Block, domain)
}

// WireData --
func (b *BeaconBlock) WireData() interface{} {
	if b == nil || b.Block == nil {
		return nil
	}
	return b.Block
}

// WireEpoch --
func (*BeaconBlock) WireEpoch() *primitives.Epoch {
	return nil
}

// AttestationData is an attestation vote signed under BeaconAttester.
type AttestationData struct {
	Data *phase0.AttestationData
}

// Kind --
func (*AttestationData) Kind() string {
	return "AttestationData"
}

// RequiredDomain --
func (*AttestationData) RequiredDomain() primitives.DomainType {
	return primitives.BeaconAttester
}

// SigningEpoch is the target checkpoint epoch.
func (a *AttestationData) SigningEpoch(_ primitives.Slot) primitives.Epoch {
	if a == nil || a.Data == nil || a.Data.Target == nil {
		return 0
	}
	return a.Data.Target.Epoch
}

// SigningRoot --
func (a *AttestationData) SigningRoot(domain []byte) ([32]byte, error) {
	if a == nil || a.Data == nil {
		return [32]byte{}, errors.Wrap(errNilObject, "AttestationData")
	}
	return signing.ComputeSigningRoot(a.Data, domain)
}

// WireData --
func (a *AttestationData) WireData() interface{} {
	if a == nil || a.Data == nil {
		return nil
	}
	return a.Data
}

// WireEpoch --
func (*AttestationData) WireEpoch() *primitives.Epoch {
	return nil
}

// Epoch is a randao reveal marker signed under Randao. It has no body.
type Epoch primitives.Epoch

// Kind --
func (Epoch) Kind() string {
	return "Epoch"
}

// RequiredDomain --
func (Epoch) RequiredDomain() primitives.DomainType {
	return primitives.Randao
}

// SigningEpoch is the epoch itself.
func (e Epoch) SigningEpoch(_ primitives.Slot) primitives.Epoch {
	return primitives.Epoch(e)
}

// SigningRoot is the signing root of the epoch's uint64 hash tree root.
func (e Epoch) SigningRoot(domain []byte) ([32]byte, error) {
	return signing.ComputeSigningRootForRoot(ssz.Uint64Root(uint64(e)), domain)
}

// WireData --
func (Epoch) WireData() interface{} {
	return nil
}

// WireEpoch --
func (e Epoch) WireEpoch() *primitives.Epoch {
	epoch := primitives.Epoch(e)
	return &epoch
}
