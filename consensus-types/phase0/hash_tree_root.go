package phase0

import (
	"math/bits"

	fastssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	"github.com/prysmaticlabs/remote-signer/encoding/ssz"
)

// ErrNilObject is returned when hashing a nil container.
var ErrNilObject = errors.New("nil object")

func nilObject(name string) error {
	return errors.Wrap(ErrNilObject, name)
}

func putBytesN(hh *fastssz.Hasher, field string, b []byte, size int) error {
	if len(b) != size {
		return errors.Errorf("%s: expected %d bytes, got %d", field, size, len(b))
	}
	hh.PutBytes(b)
	return nil
}

func putRoot(hh *fastssz.Hasher, root [32]byte) {
	hh.PutBytes(root[:])
}

// HashTreeRoot ssz hashes the Fork object
func (f *Fork) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(f)
}

// HashTreeRootWith ssz hashes the Fork object with a hasher
func (f *Fork) HashTreeRootWith(hh *fastssz.Hasher) error {
	if f == nil {
		return nilObject("Fork")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "Fork.PreviousVersion", f.PreviousVersion, fieldparams.VersionLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "Fork.CurrentVersion", f.CurrentVersion, fieldparams.VersionLength); err != nil {
		return err
	}
	hh.PutUint64(uint64(f.Epoch))
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the Checkpoint object
func (c *Checkpoint) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the Checkpoint object with a hasher
func (c *Checkpoint) HashTreeRootWith(hh *fastssz.Hasher) error {
	if c == nil {
		return nilObject("Checkpoint")
	}
	indx := hh.Index()
	hh.PutUint64(uint64(c.Epoch))
	if err := putBytesN(hh, "Checkpoint.Root", c.Root, fieldparams.RootLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the AttestationData object
func (a *AttestationData) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the AttestationData object with a hasher
func (a *AttestationData) HashTreeRootWith(hh *fastssz.Hasher) error {
	if a == nil {
		return nilObject("AttestationData")
	}
	indx := hh.Index()
	hh.PutUint64(uint64(a.Slot))
	hh.PutUint64(uint64(a.Index))
	if err := putBytesN(hh, "AttestationData.BeaconBlockRoot", a.BeaconBlockRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := a.Source.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "AttestationData.Source")
	}
	if err := a.Target.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "AttestationData.Target")
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the Eth1Data object
func (e *Eth1Data) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(e)
}

// HashTreeRootWith ssz hashes the Eth1Data object with a hasher
func (e *Eth1Data) HashTreeRootWith(hh *fastssz.Hasher) error {
	if e == nil {
		return nilObject("Eth1Data")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "Eth1Data.DepositRoot", e.DepositRoot, fieldparams.RootLength); err != nil {
		return err
	}
	hh.PutUint64(e.DepositCount)
	if err := putBytesN(hh, "Eth1Data.BlockHash", e.BlockHash, fieldparams.RootLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher
func (b *BeaconBlockHeader) HashTreeRootWith(hh *fastssz.Hasher) error {
	if b == nil {
		return nilObject("BeaconBlockHeader")
	}
	indx := hh.Index()
	hh.PutUint64(uint64(b.Slot))
	hh.PutUint64(uint64(b.ProposerIndex))
	if err := putBytesN(hh, "BeaconBlockHeader.ParentRoot", b.ParentRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "BeaconBlockHeader.StateRoot", b.StateRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "BeaconBlockHeader.BodyRoot", b.BodyRoot, fieldparams.RootLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the SignedBeaconBlockHeader object
func (s *SignedBeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlockHeader object with a hasher
func (s *SignedBeaconBlockHeader) HashTreeRootWith(hh *fastssz.Hasher) error {
	if s == nil {
		return nilObject("SignedBeaconBlockHeader")
	}
	indx := hh.Index()
	if err := s.Header.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "SignedBeaconBlockHeader.Header")
	}
	if err := putBytesN(hh, "SignedBeaconBlockHeader.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the ProposerSlashing object
func (p *ProposerSlashing) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(p)
}

// HashTreeRootWith ssz hashes the ProposerSlashing object with a hasher
func (p *ProposerSlashing) HashTreeRootWith(hh *fastssz.Hasher) error {
	if p == nil {
		return nilObject("ProposerSlashing")
	}
	indx := hh.Index()
	if err := p.Header1.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "ProposerSlashing.Header1")
	}
	if err := p.Header2.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "ProposerSlashing.Header2")
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the IndexedAttestation object
func (i *IndexedAttestation) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(i)
}

// HashTreeRootWith ssz hashes the IndexedAttestation object with a hasher
func (i *IndexedAttestation) HashTreeRootWith(hh *fastssz.Hasher) error {
	if i == nil {
		return nilObject("IndexedAttestation")
	}
	indx := hh.Index()
	indicesRoot, err := ssz.Uint64ListRoot(i.AttestingIndices, fieldparams.MaxValidatorsPerCommittee)
	if err != nil {
		return errors.Wrap(err, "IndexedAttestation.AttestingIndices")
	}
	putRoot(hh, indicesRoot)
	if err := i.Data.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "IndexedAttestation.Data")
	}
	if err := putBytesN(hh, "IndexedAttestation.Signature", i.Signature, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the AttesterSlashing object
func (a *AttesterSlashing) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the AttesterSlashing object with a hasher
func (a *AttesterSlashing) HashTreeRootWith(hh *fastssz.Hasher) error {
	if a == nil {
		return nilObject("AttesterSlashing")
	}
	indx := hh.Index()
	if err := a.Attestation1.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "AttesterSlashing.Attestation1")
	}
	if err := a.Attestation2.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "AttesterSlashing.Attestation2")
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the Attestation object
func (a *Attestation) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the Attestation object with a hasher
func (a *Attestation) HashTreeRootWith(hh *fastssz.Hasher) error {
	if a == nil {
		return nilObject("Attestation")
	}
	indx := hh.Index()
	bitsRoot, err := aggregationBitsRoot(a.AggregationBits)
	if err != nil {
		return errors.Wrap(err, "Attestation.AggregationBits")
	}
	putRoot(hh, bitsRoot)
	if err := a.Data.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "Attestation.Data")
	}
	if err := putBytesN(hh, "Attestation.Signature", a.Signature, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the DepositData object
func (d *DepositData) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(d)
}

// HashTreeRootWith ssz hashes the DepositData object with a hasher
func (d *DepositData) HashTreeRootWith(hh *fastssz.Hasher) error {
	if d == nil {
		return nilObject("DepositData")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "DepositData.PublicKey", d.PublicKey, fieldparams.BLSPubkeyLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "DepositData.WithdrawalCredentials", d.WithdrawalCredentials, fieldparams.RootLength); err != nil {
		return err
	}
	hh.PutUint64(d.Amount)
	if err := putBytesN(hh, "DepositData.Signature", d.Signature, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the Deposit object
func (d *Deposit) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(d)
}

// HashTreeRootWith ssz hashes the Deposit object with a hasher
func (d *Deposit) HashTreeRootWith(hh *fastssz.Hasher) error {
	if d == nil {
		return nilObject("Deposit")
	}
	indx := hh.Index()
	if len(d.Proof) != fieldparams.DepositProofLength {
		return errors.Errorf("Deposit.Proof: expected %d roots, got %d", fieldparams.DepositProofLength, len(d.Proof))
	}
	proof := make([][32]byte, len(d.Proof))
	for i, p := range d.Proof {
		if len(p) != fieldparams.RootLength {
			return errors.Errorf("Deposit.Proof[%d]: expected %d bytes, got %d", i, fieldparams.RootLength, len(p))
		}
		proof[i] = bytesutil.ToBytes32(p)
	}
	putRoot(hh, ssz.MerkleizeVector(proof, fieldparams.DepositProofLength))
	if err := d.Data.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "Deposit.Data")
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the VoluntaryExit object
func (v *VoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(v)
}

// HashTreeRootWith ssz hashes the VoluntaryExit object with a hasher
func (v *VoluntaryExit) HashTreeRootWith(hh *fastssz.Hasher) error {
	if v == nil {
		return nilObject("VoluntaryExit")
	}
	indx := hh.Index()
	hh.PutUint64(uint64(v.Epoch))
	hh.PutUint64(uint64(v.ValidatorIndex))
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedVoluntaryExit object with a hasher
func (s *SignedVoluntaryExit) HashTreeRootWith(hh *fastssz.Hasher) error {
	if s == nil {
		return nilObject("SignedVoluntaryExit")
	}
	indx := hh.Index()
	if err := s.Exit.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "SignedVoluntaryExit.Exit")
	}
	if err := putBytesN(hh, "SignedVoluntaryExit.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the BeaconBlockBody object
func (b *BeaconBlockBody) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockBody object with a hasher
func (b *BeaconBlockBody) HashTreeRootWith(hh *fastssz.Hasher) error {
	if b == nil {
		return nilObject("BeaconBlockBody")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "BeaconBlockBody.RandaoReveal", b.RandaoReveal, fieldparams.BLSSignatureLength); err != nil {
		return err
	}
	if err := b.Eth1Data.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "BeaconBlockBody.Eth1Data")
	}
	if err := putBytesN(hh, "BeaconBlockBody.Graffiti", b.Graffiti, fieldparams.GraffitiLength); err != nil {
		return err
	}

	proposerSlashings, err := ssz.MerkleizeListSSZ(b.ProposerSlashings, fieldparams.MaxProposerSlashings)
	if err != nil {
		return errors.Wrap(err, "BeaconBlockBody.ProposerSlashings")
	}
	putRoot(hh, proposerSlashings)
	attesterSlashings, err := ssz.MerkleizeListSSZ(b.AttesterSlashings, fieldparams.MaxAttesterSlashings)
	if err != nil {
		return errors.Wrap(err, "BeaconBlockBody.AttesterSlashings")
	}
	putRoot(hh, attesterSlashings)
	attestations, err := ssz.MerkleizeListSSZ(b.Attestations, fieldparams.MaxAttestations)
	if err != nil {
		return errors.Wrap(err, "BeaconBlockBody.Attestations")
	}
	putRoot(hh, attestations)
	deposits, err := ssz.MerkleizeListSSZ(b.Deposits, fieldparams.MaxDeposits)
	if err != nil {
		return errors.Wrap(err, "BeaconBlockBody.Deposits")
	}
	putRoot(hh, deposits)
	exits, err := ssz.MerkleizeListSSZ(b.VoluntaryExits, fieldparams.MaxVoluntaryExits)
	if err != nil {
		return errors.Wrap(err, "BeaconBlockBody.VoluntaryExits")
	}
	putRoot(hh, exits)

	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the BeaconBlock object
func (b *BeaconBlock) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlock object with a hasher
func (b *BeaconBlock) HashTreeRootWith(hh *fastssz.Hasher) error {
	if b == nil {
		return nilObject("BeaconBlock")
	}
	indx := hh.Index()
	hh.PutUint64(uint64(b.Slot))
	hh.PutUint64(uint64(b.ProposerIndex))
	if err := putBytesN(hh, "BeaconBlock.ParentRoot", b.ParentRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "BeaconBlock.StateRoot", b.StateRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := b.Body.HashTreeRootWith(hh); err != nil {
		return errors.Wrap(err, "BeaconBlock.Body")
	}
	hh.Merkleize(indx)
	return nil
}

// Header returns the block header committing to the same root as the block.
func (b *BeaconBlock) Header() (*BeaconBlockHeader, error) {
	if b == nil {
		return nil, nilObject("BeaconBlock")
	}
	bodyRoot, err := b.Body.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "BeaconBlock.Body")
	}
	return &BeaconBlockHeader{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    bytesutil.SafeCopyBytes(b.ParentRoot),
		StateRoot:     bytesutil.SafeCopyBytes(b.StateRoot),
		BodyRoot:      bodyRoot[:],
	}, nil
}

// aggregationBitsRoot hashes an SSZ bitlist, stripping the length delimiter bit.
func aggregationBitsRoot(raw []byte) ([32]byte, error) {
	bl := bitfield.Bitlist(raw)
	if len(bl) == 0 || bl[len(bl)-1] == 0 {
		return [32]byte{}, errors.New("missing length delimiter bit")
	}
	data := make([]byte, len(bl))
	copy(data, bl)
	last := data[len(data)-1]
	data[len(data)-1] = last &^ (1 << uint(bits.Len8(last)-1))
	return ssz.BitlistRoot(data, bl.Len(), fieldparams.MaxValidatorsPerCommittee)
}

// HashTreeRoot ssz hashes the ForkData object
func (f *ForkData) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(f)
}

// HashTreeRootWith ssz hashes the ForkData object with a hasher
func (f *ForkData) HashTreeRootWith(hh *fastssz.Hasher) error {
	if f == nil {
		return nilObject("ForkData")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "ForkData.CurrentVersion", f.CurrentVersion, fieldparams.VersionLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "ForkData.GenesisValidatorsRoot", f.GenesisValidatorsRoot, fieldparams.RootLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// HashTreeRoot ssz hashes the SigningData object
func (s *SigningData) HashTreeRoot() ([32]byte, error) {
	return fastssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SigningData object with a hasher
func (s *SigningData) HashTreeRootWith(hh *fastssz.Hasher) error {
	if s == nil {
		return nilObject("SigningData")
	}
	indx := hh.Index()
	if err := putBytesN(hh, "SigningData.ObjectRoot", s.ObjectRoot, fieldparams.RootLength); err != nil {
		return err
	}
	if err := putBytesN(hh, "SigningData.Domain", s.Domain, fieldparams.DomainLength); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}
