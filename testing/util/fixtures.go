package util

import (
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// TestGenesisValidatorsRoot returns a fixed root whose last two bytes are 0xc1 0x37.
func TestGenesisValidatorsRoot() []byte {
	root := make([]byte, fieldparams.RootLength)
	root[30] = 0xc1
	root[31] = 0x37
	return root
}

// TestFork returns a fork moving from version 0x01010101 to 0x02020202 at the given epoch.
func TestFork(epoch primitives.Epoch) *phase0.Fork {
	return &phase0.Fork{
		PreviousVersion: filledBytes(fieldparams.VersionLength, 0x01),
		CurrentVersion:  filledBytes(fieldparams.VersionLength, 0x02),
		Epoch:           epoch,
	}
}

// TestAttestationData returns attestation data voting from epoch 42 to epoch 73.
func TestAttestationData() *phase0.AttestationData {
	data := NewAttestationData()
	data.Slot = 73 * 32
	data.BeaconBlockRoot = filledBytes(fieldparams.RootLength, 0xab)
	data.Source.Epoch = 42
	data.Source.Root = filledBytes(fieldparams.RootLength, 0x2a)
	data.Target.Epoch = 73
	data.Target.Root = filledBytes(fieldparams.RootLength, 0x49)
	return data
}
