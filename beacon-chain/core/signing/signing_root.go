// Package signing derives the domains and signing roots that a validator signs.
package signing

import (
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/encoding/ssz"
)

// ForkVersionByteLength length of fork version byte array.
const ForkVersionByteLength = fieldparams.VersionLength

// DomainByteLength length of domain byte array.
const DomainByteLength = fieldparams.DomainTypeLength

var (
	// ErrNilFork is returned when deriving a domain without a fork.
	ErrNilFork = errors.New("nil fork")
)

// Domain returns the domain version for BLS private key to sign and verify.
//
// Spec pseudocode definition:
//
//	def get_domain(state: BeaconState, domain_type: DomainType, epoch: Epoch=None) -> Domain:
//	  """
//	  Return the signature domain (fork version concatenated with domain type) of a message.
//	  """
//	  epoch = get_current_epoch(state) if epoch is None else epoch
//	  fork_version = state.fork.previous_version if epoch < state.fork.epoch else state.fork.current_version
//	  return compute_domain(domain_type, fork_version, state.genesis_validators_root)
func Domain(fork *phase0.Fork, epoch primitives.Epoch, domainType [DomainByteLength]byte, genesisRoot []byte) ([]byte, error) {
	if fork == nil {
		return []byte{}, ErrNilFork
	}
	var forkVersion []byte
	if epoch < fork.Epoch {
		forkVersion = fork.PreviousVersion
	} else {
		forkVersion = fork.CurrentVersion
	}
	if len(forkVersion) != ForkVersionByteLength {
		return []byte{}, errors.Errorf("fork version length is %d, want %d", len(forkVersion), ForkVersionByteLength)
	}
	return ComputeDomain(domainType, forkVersion, genesisRoot)
}

// ComputeDomain returns the domain version for BLS private key to sign and verify with a zeroed 4-byte
// array as the fork version.
//
//	def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//	  """
//	  Return the domain for the ``domain_type`` and ``fork_version``.
//	  """
//	  if fork_version is None:
//	      fork_version = GENESIS_FORK_VERSION
//	  if genesis_validators_root is None:
//	      genesis_validators_root = Root()  # all bytes zero by default
//	  fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//	  return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType [DomainByteLength]byte, forkVersion, genesisValidatorsRoot []byte) ([]byte, error) {
	if forkVersion == nil {
		forkVersion = params.BeaconConfig().GenesisForkVersion
	}
	if genesisValidatorsRoot == nil {
		genesisValidatorsRoot = params.BeaconConfig().ZeroHash[:]
	}
	forkDataRoot, err := ComputeForkDataRoot(forkVersion, genesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	return domain(domainType, forkDataRoot[:]), nil
}

// This returns the bls domain given by the domain type and fork data root.
func domain(domainType [DomainByteLength]byte, forkDataRoot []byte) []byte {
	var b []byte
	b = append(b, domainType[:4]...)
	b = append(b, forkDataRoot[:28]...)
	return b
}

// ComputeForkDataRoot returns the 32-byte fork data root for the ``current_version`` and ``genesis_validators_root``.
// This is used primarily in signature domains to avoid collisions across forks/chains.
//
// Spec pseudocode definition:
//
//	def compute_fork_data_root(current_version: Version, genesis_validators_root: Root) -> Root:
//	  """
//	  Return the 32-byte fork data root for the ``current_version`` and ``genesis_validators_root``.
//	  This is used primarily in signature domains to avoid collisions across forks/chains.
//	  """
//	  return hash_tree_root(ForkData(
//	      current_version=current_version,
//	      genesis_validators_root=genesis_validators_root,
//	  ))
func ComputeForkDataRoot(version, root []byte) ([32]byte, error) {
	r, err := (&phase0.ForkData{
		CurrentVersion:        version,
		GenesisValidatorsRoot: root,
	}).HashTreeRoot()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute fork data root")
	}
	return r, nil
}

// ComputeSigningRoot computes the root of the object by calculating the hash tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	  """
//	  Return the signing root for the corresponding signing data.
//	  """
//	  return hash_tree_root(SigningData(
//	      object_root=hash_tree_root(ssz_object),
//	      domain=domain,
//	  ))
func ComputeSigningRoot(object ssz.Hashable, domain []byte) ([32]byte, error) {
	if object == nil {
		return [32]byte{}, errors.New("cannot compute signing root of nil")
	}
	return Data(object.HashTreeRoot, domain)
}

// Data computes the signing data by utilising the provided root function and then
// returning the signing data of the container object.
func Data(rootFunc func() ([32]byte, error), domain []byte) ([32]byte, error) {
	objRoot, err := rootFunc()
	if err != nil {
		return [32]byte{}, err
	}
	return ComputeSigningRootForRoot(objRoot, domain)
}

// ComputeSigningRootForRoot works the same as ComputeSigningRoot,
// except that gets the root from an argument instead of a callback.
func ComputeSigningRootForRoot(root [32]byte, domain []byte) ([32]byte, error) {
	container := &phase0.SigningData{
		ObjectRoot: root[:],
		Domain:     domain,
	}
	return container.HashTreeRoot()
}
