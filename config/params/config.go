// Package params defines the chain constants the remote signer client needs to
// derive signing domains.
package params

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// BeaconChainConfig contains the subset of the beacon chain config used when signing.
type BeaconChainConfig struct {
	// Network.
	PresetBase string `yaml:"PRESET_BASE" spec:"true"`
	ConfigName string `yaml:"CONFIG_NAME" spec:"true"`

	// Fork versions.
	GenesisForkVersion []byte           `yaml:"GENESIS_FORK_VERSION" spec:"true"`
	AltairForkVersion  []byte           `yaml:"ALTAIR_FORK_VERSION" spec:"true"`
	AltairForkEpoch    primitives.Epoch `yaml:"ALTAIR_FORK_EPOCH" spec:"true"`

	// Time.
	GenesisEpoch   primitives.Epoch `yaml:"GENESIS_EPOCH"`
	FarFutureEpoch primitives.Epoch `yaml:"FAR_FUTURE_EPOCH"`
	SecondsPerSlot uint64           `yaml:"SECONDS_PER_SLOT" spec:"true"`
	SlotsPerEpoch  primitives.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`

	// Signature domains.
	DomainBeaconProposer    [4]byte `yaml:"DOMAIN_BEACON_PROPOSER" spec:"true"`
	DomainBeaconAttester    [4]byte `yaml:"DOMAIN_BEACON_ATTESTER" spec:"true"`
	DomainRandao            [4]byte `yaml:"DOMAIN_RANDAO" spec:"true"`
	DomainDeposit           [4]byte `yaml:"DOMAIN_DEPOSIT" spec:"true"`
	DomainVoluntaryExit     [4]byte `yaml:"DOMAIN_VOLUNTARY_EXIT" spec:"true"`
	DomainSelectionProof    [4]byte `yaml:"DOMAIN_SELECTION_PROOF" spec:"true"`
	DomainAggregateAndProof [4]byte `yaml:"DOMAIN_AGGREGATE_AND_PROOF" spec:"true"`

	// BLS.
	BLSSecretKeyLength int
	BLSPubkeyLength    int
	BLSSignatureLength int
	ZeroHash           [32]byte
}

// DomainTypeBytes returns the 4-byte domain constant for the given domain type.
func (b *BeaconChainConfig) DomainTypeBytes(d primitives.DomainType) ([fieldparams.DomainTypeLength]byte, error) {
	switch d {
	case primitives.BeaconProposer:
		return b.DomainBeaconProposer, nil
	case primitives.BeaconAttester:
		return b.DomainBeaconAttester, nil
	case primitives.Randao:
		return b.DomainRandao, nil
	case primitives.Deposit:
		return b.DomainDeposit, nil
	case primitives.VoluntaryExit:
		return b.DomainVoluntaryExit, nil
	case primitives.SelectionProof:
		return b.DomainSelectionProof, nil
	case primitives.AggregateAndProof:
		return b.DomainAggregateAndProof, nil
	default:
		return [fieldparams.DomainTypeLength]byte{}, errors.Wrapf(primitives.ErrUnknownDomainType, "%d", uint8(d))
	}
}
