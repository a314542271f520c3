// Package phase0 defines the phase0 consensus objects that can be handed to a remote
// signer, together with their Beacon API JSON encoding and SSZ hash tree roots.
package phase0

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
)

// Fork describes the fork versions active around a given epoch.
type Fork struct {
	PreviousVersion hexutil.Bytes    `json:"previous_version"`
	CurrentVersion  hexutil.Bytes    `json:"current_version"`
	Epoch           primitives.Epoch `json:"epoch,string"`
}

// Checkpoint is an (epoch, root) pair used by Casper FFG votes.
type Checkpoint struct {
	Epoch primitives.Epoch `json:"epoch,string"`
	Root  hexutil.Bytes    `json:"root"`
}

// AttestationData is the vote a validator signs when attesting.
type AttestationData struct {
	Slot            primitives.Slot           `json:"slot,string"`
	Index           primitives.CommitteeIndex `json:"index,string"`
	BeaconBlockRoot hexutil.Bytes             `json:"beacon_block_root"`
	Source          *Checkpoint               `json:"source"`
	Target          *Checkpoint               `json:"target"`
}

// Eth1Data is the proposer's vote on the deposit contract state.
type Eth1Data struct {
	DepositRoot  hexutil.Bytes `json:"deposit_root"`
	DepositCount uint64        `json:"deposit_count,string"`
	BlockHash    hexutil.Bytes `json:"block_hash"`
}

// BeaconBlockHeader summarises a block with the root of its body.
type BeaconBlockHeader struct {
	Slot          primitives.Slot           `json:"slot,string"`
	ProposerIndex primitives.ValidatorIndex `json:"proposer_index,string"`
	ParentRoot    hexutil.Bytes             `json:"parent_root"`
	StateRoot     hexutil.Bytes             `json:"state_root"`
	BodyRoot      hexutil.Bytes             `json:"body_root"`
}

// SignedBeaconBlockHeader is a block header with the proposer signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader `json:"message"`
	Signature hexutil.Bytes      `json:"signature"`
}

// ProposerSlashing proves a proposer signed two different blocks for one slot.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader `json:"signed_header_1"`
	Header2 *SignedBeaconBlockHeader `json:"signed_header_2"`
}

// IndexedAttestation is an attestation with explicit attesting indices.
type IndexedAttestation struct {
	AttestingIndices []uint64         `json:"attesting_indices"`
	Data             *AttestationData `json:"data"`
	Signature        hexutil.Bytes    `json:"signature"`
}

// AttesterSlashing proves two conflicting attestations.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation `json:"attestation_1"`
	Attestation2 *IndexedAttestation `json:"attestation_2"`
}

// Attestation is an aggregated vote. AggregationBits is an SSZ bitlist including
// its length delimiter bit.
type Attestation struct {
	AggregationBits hexutil.Bytes    `json:"aggregation_bits"`
	Data            *AttestationData `json:"data"`
	Signature       hexutil.Bytes    `json:"signature"`
}

// DepositData is the payload of a deposit contract log.
type DepositData struct {
	PublicKey             hexutil.Bytes `json:"pubkey"`
	WithdrawalCredentials hexutil.Bytes `json:"withdrawal_credentials"`
	Amount                uint64        `json:"amount,string"`
	Signature             hexutil.Bytes `json:"signature"`
}

// Deposit is a deposit with its merkle proof against the deposit root.
type Deposit struct {
	Proof []hexutil.Bytes `json:"proof"`
	Data  *DepositData    `json:"data"`
}

// VoluntaryExit is a validator's request to leave the active set.
type VoluntaryExit struct {
	Epoch          primitives.Epoch          `json:"epoch,string"`
	ValidatorIndex primitives.ValidatorIndex `json:"validator_index,string"`
}

// SignedVoluntaryExit is a voluntary exit with the validator signature.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit `json:"message"`
	Signature hexutil.Bytes  `json:"signature"`
}

// BeaconBlockBody holds the operations included in a phase0 block.
type BeaconBlockBody struct {
	RandaoReveal      hexutil.Bytes          `json:"randao_reveal"`
	Eth1Data          *Eth1Data              `json:"eth1_data"`
	Graffiti          hexutil.Bytes          `json:"graffiti"`
	ProposerSlashings []*ProposerSlashing    `json:"proposer_slashings"`
	AttesterSlashings []*AttesterSlashing    `json:"attester_slashings"`
	Attestations      []*Attestation         `json:"attestations"`
	Deposits          []*Deposit             `json:"deposits"`
	VoluntaryExits    []*SignedVoluntaryExit `json:"voluntary_exits"`
}

// BeaconBlock is a phase0 block proposal.
type BeaconBlock struct {
	Slot          primitives.Slot           `json:"slot,string"`
	ProposerIndex primitives.ValidatorIndex `json:"proposer_index,string"`
	ParentRoot    hexutil.Bytes             `json:"parent_root"`
	StateRoot     hexutil.Bytes             `json:"state_root"`
	Body          *BeaconBlockBody          `json:"body"`
}

// ForkData is hashed to separate signatures across forks and chains.
type ForkData struct {
	CurrentVersion        hexutil.Bytes `json:"current_version"`
	GenesisValidatorsRoot hexutil.Bytes `json:"genesis_validators_root"`
}

// SigningData binds an object root to a signature domain.
type SigningData struct {
	ObjectRoot hexutil.Bytes `json:"object_root"`
	Domain     hexutil.Bytes `json:"domain"`
}
