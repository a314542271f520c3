package params

import (
	"math"

	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// MainnetGenesisValidatorsRoot is the genesis validators root of the mainnet beacon chain.
const MainnetGenesisValidatorsRoot = "0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	PresetBase: "mainnet",
	ConfigName: ConfigNames[Mainnet],

	GenesisForkVersion: []byte{0, 0, 0, 0},
	AltairForkVersion:  []byte{1, 0, 0, 0},
	AltairForkEpoch:    74240,

	GenesisEpoch:   0,
	FarFutureEpoch: math.MaxUint64,
	SecondsPerSlot: 12,
	SlotsPerEpoch:  32,

	DomainBeaconProposer:    bytes4(0x00000000),
	DomainBeaconAttester:    bytes4(0x01000000),
	DomainRandao:            bytes4(0x02000000),
	DomainDeposit:           bytes4(0x03000000),
	DomainVoluntaryExit:     bytes4(0x04000000),
	DomainSelectionProof:    bytes4(0x05000000),
	DomainAggregateAndProof: bytes4(0x06000000),

	BLSSecretKeyLength: fieldparams.BLSSecretKeyLength,
	BLSPubkeyLength:    fieldparams.BLSPubkeyLength,
	BLSSignatureLength: fieldparams.BLSSignatureLength,
	ZeroHash:           [32]byte{},
}

// MinimalSpecConfig retrieves the minimal config used in spec tests.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()
	minimalConfig.PresetBase = "minimal"
	minimalConfig.ConfigName = ConfigNames[Minimal]
	minimalConfig.GenesisForkVersion = []byte{0, 0, 0, 1}
	minimalConfig.AltairForkVersion = []byte{1, 0, 0, 1}
	minimalConfig.AltairForkEpoch = primitives.Epoch(math.MaxUint64)
	minimalConfig.SecondsPerSlot = 6
	minimalConfig.SlotsPerEpoch = 8
	return minimalConfig
}

// bytes4 renders a big-endian domain constant such as 0x01000000 as its byte form.
func bytes4(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
