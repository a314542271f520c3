package field_params

const (
	Preset                    = "mainnet"
	RootLength                = 32   // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength        = 96   // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength           = 48   // BLSPubkeyLength defines the byte length of a BLSPubkey.
	BLSSecretKeyLength        = 32   // BLSSecretKeyLength defines the byte length of a BLS secret key.
	VersionLength             = 4    // VersionLength defines the byte length of a fork version number.
	DomainTypeLength          = 4    // DomainTypeLength defines the byte length of a domain type.
	DomainLength              = 32   // DomainLength defines the byte length of a computed signature domain.
	GraffitiLength            = 32   // GraffitiLength defines the byte length of the block graffiti.
	DepositProofLength        = 33   // DEPOSIT_CONTRACT_TREE_DEPTH + 1
	MaxProposerSlashings      = 16   // MAX_PROPOSER_SLASHINGS
	MaxAttesterSlashings      = 2    // MAX_ATTESTER_SLASHINGS
	MaxAttestations           = 128  // MAX_ATTESTATIONS
	MaxDeposits               = 16   // MAX_DEPOSITS
	MaxVoluntaryExits         = 16   // MAX_VOLUNTARY_EXITS
	MaxValidatorsPerCommittee = 2048 // MAX_VALIDATORS_PER_COMMITTEE
)
