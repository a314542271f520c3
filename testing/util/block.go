package util

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// BlockGenConfig is used to define the requested operations
// for block generation.
type BlockGenConfig struct {
	NumProposerSlashings uint64
	NumAttesterSlashings uint64
	NumAttestations      uint64
	NumDeposits          uint64
	NumVoluntaryExits    uint64
}

// DefaultBlockGenConfig returns a config with a single attestation.
func DefaultBlockGenConfig() *BlockGenConfig {
	return &BlockGenConfig{
		NumAttestations: 1,
	}
}

// NewBeaconBlock creates a beacon block with minimum marshalable fields.
func NewBeaconBlock() *phase0.BeaconBlock {
	return &phase0.BeaconBlock{
		ParentRoot: make([]byte, fieldparams.RootLength),
		StateRoot:  make([]byte, fieldparams.RootLength),
		Body: &phase0.BeaconBlockBody{
			RandaoReveal: make([]byte, fieldparams.BLSSignatureLength),
			Eth1Data: &phase0.Eth1Data{
				DepositRoot: make([]byte, fieldparams.RootLength),
				BlockHash:   make([]byte, fieldparams.RootLength),
			},
			Graffiti:          make([]byte, fieldparams.GraffitiLength),
			ProposerSlashings: []*phase0.ProposerSlashing{},
			AttesterSlashings: []*phase0.AttesterSlashing{},
			Attestations:      []*phase0.Attestation{},
			Deposits:          []*phase0.Deposit{},
			VoluntaryExits:    []*phase0.SignedVoluntaryExit{},
		},
	}
}

// GenerateBlock creates a block at the given slot carrying the requested
// number of well-formed, unsigned operations.
func GenerateBlock(conf *BlockGenConfig, slot primitives.Slot) *phase0.BeaconBlock {
	if conf == nil {
		conf = DefaultBlockGenConfig()
	}
	b := NewBeaconBlock()
	b.Slot = slot
	b.ProposerIndex = primitives.ValidatorIndex(slot) % 64
	b.ParentRoot = filledBytes(fieldparams.RootLength, 0x11)
	b.StateRoot = filledBytes(fieldparams.RootLength, 0x22)
	for i := uint64(0); i < conf.NumProposerSlashings; i++ {
		b.Body.ProposerSlashings = append(b.Body.ProposerSlashings, NewProposerSlashing(slot, primitives.ValidatorIndex(i)))
	}
	for i := uint64(0); i < conf.NumAttesterSlashings; i++ {
		b.Body.AttesterSlashings = append(b.Body.AttesterSlashings, NewAttesterSlashing([]uint64{i, i + 1}))
	}
	for i := uint64(0); i < conf.NumAttestations; i++ {
		att := NewAttestation()
		att.Data.Slot = slot
		att.Data.Index = primitives.CommitteeIndex(i)
		b.Body.Attestations = append(b.Body.Attestations, att)
	}
	for i := uint64(0); i < conf.NumDeposits; i++ {
		b.Body.Deposits = append(b.Body.Deposits, NewDeposit(i))
	}
	for i := uint64(0); i < conf.NumVoluntaryExits; i++ {
		b.Body.VoluntaryExits = append(b.Body.VoluntaryExits, &phase0.SignedVoluntaryExit{
			Exit:      &phase0.VoluntaryExit{ValidatorIndex: primitives.ValidatorIndex(i)},
			Signature: make([]byte, fieldparams.BLSSignatureLength),
		})
	}
	return b
}

// NewAttestationData creates attestation data with minimum marshalable fields.
func NewAttestationData() *phase0.AttestationData {
	return &phase0.AttestationData{
		BeaconBlockRoot: make([]byte, fieldparams.RootLength),
		Source: &phase0.Checkpoint{
			Root: make([]byte, fieldparams.RootLength),
		},
		Target: &phase0.Checkpoint{
			Root: make([]byte, fieldparams.RootLength),
		},
	}
}

// NewAttestation creates an attestation with a single set aggregation bit.
func NewAttestation() *phase0.Attestation {
	bits := bitfield.NewBitlist(4)
	bits.SetBitAt(0, true)
	return &phase0.Attestation{
		AggregationBits: hexutil.Bytes(bits),
		Data:            NewAttestationData(),
		Signature:       make([]byte, fieldparams.BLSSignatureLength),
	}
}

// NewProposerSlashing creates two conflicting headers for one proposer.
func NewProposerSlashing(slot primitives.Slot, proposer primitives.ValidatorIndex) *phase0.ProposerSlashing {
	header := func(stateByte byte) *phase0.SignedBeaconBlockHeader {
		return &phase0.SignedBeaconBlockHeader{
			Header: &phase0.BeaconBlockHeader{
				Slot:          slot,
				ProposerIndex: proposer,
				ParentRoot:    make([]byte, fieldparams.RootLength),
				StateRoot:     filledBytes(fieldparams.RootLength, stateByte),
				BodyRoot:      make([]byte, fieldparams.RootLength),
			},
			Signature: make([]byte, fieldparams.BLSSignatureLength),
		}
	}
	return &phase0.ProposerSlashing{
		Header1: header(0x01),
		Header2: header(0x02),
	}
}

// NewAttesterSlashing creates a double vote by the given indices.
func NewAttesterSlashing(indices []uint64) *phase0.AttesterSlashing {
	indexed := func(rootByte byte) *phase0.IndexedAttestation {
		data := NewAttestationData()
		data.BeaconBlockRoot = filledBytes(fieldparams.RootLength, rootByte)
		return &phase0.IndexedAttestation{
			AttestingIndices: append([]uint64{}, indices...),
			Data:             data,
			Signature:        make([]byte, fieldparams.BLSSignatureLength),
		}
	}
	return &phase0.AttesterSlashing{
		Attestation1: indexed(0x01),
		Attestation2: indexed(0x02),
	}
}

// NewDeposit creates a deposit with an all-zero proof.
func NewDeposit(amount uint64) *phase0.Deposit {
	proof := make([]hexutil.Bytes, fieldparams.DepositProofLength)
	for i := range proof {
		proof[i] = make([]byte, fieldparams.RootLength)
	}
	return &phase0.Deposit{
		Proof: proof,
		Data: &phase0.DepositData{
			PublicKey:             make([]byte, fieldparams.BLSPubkeyLength),
			WithdrawalCredentials: make([]byte, fieldparams.RootLength),
			Amount:                amount,
			Signature:             make([]byte, fieldparams.BLSSignatureLength),
		},
	}
}

func filledBytes(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
