package primitives

import (
	"github.com/pkg/errors"
)

// ErrUnknownDomainType is returned when a domain name is not one of the known BLS domains.
var ErrUnknownDomainType = errors.New("unknown BLS domain type")

// DomainType tags the purpose a BLS signature is produced for.
type DomainType uint8

const (
	BeaconProposer DomainType = iota
	BeaconAttester
	Randao
	Deposit
	VoluntaryExit
	SelectionProof
	AggregateAndProof
)

var domainTypeNames = map[DomainType]string{
	BeaconProposer:    "BeaconProposer",
	BeaconAttester:    "BeaconAttester",
	Randao:            "Randao",
	Deposit:           "Deposit",
	VoluntaryExit:     "VoluntaryExit",
	SelectionProof:    "SelectionProof",
	AggregateAndProof: "AggregateAndProof",
}

// Wire labels used in remote signer request bodies.
var domainTypeLabels = map[DomainType]string{
	BeaconProposer:    "beacon_proposer",
	BeaconAttester:    "beacon_attester",
	Randao:            "randao",
	Deposit:           "deposit",
	VoluntaryExit:     "voluntary_exit",
	SelectionProof:    "selection_proof",
	AggregateAndProof: "aggregate_and_proof",
}

// AllDomainTypes lists every known domain type in declaration order.
func AllDomainTypes() []DomainType {
	return []DomainType{
		BeaconProposer,
		BeaconAttester,
		Randao,
		Deposit,
		VoluntaryExit,
		SelectionProof,
		AggregateAndProof,
	}
}

// String returns the domain name, e.g. "BeaconProposer".
func (d DomainType) String() string {
	name, ok := domainTypeNames[d]
	if !ok {
		return "Unknown"
	}
	return name
}

// Label returns the snake case name used on the wire, e.g. "beacon_proposer".
func (d DomainType) Label() string {
	label, ok := domainTypeLabels[d]
	if !ok {
		return "unknown"
	}
	return label
}

// IsValid reports whether d is one of the seven named domains.
func (d DomainType) IsValid() bool {
	_, ok := domainTypeNames[d]
	return ok
}

// DomainTypeFromString parses a domain name. Anything outside the seven named
// domains is rejected with ErrUnknownDomainType.
func DomainTypeFromString(s string) (DomainType, error) {
	for d, name := range domainTypeNames {
		if name == s {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDomainType, "%q", s)
}

// DomainTypeFromLabel parses a wire label such as "beacon_attester".
func DomainTypeFromLabel(s string) (DomainType, error) {
	for d, label := range domainTypeLabels {
		if label == s {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDomainType, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DomainType) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.Wrapf(ErrUnknownDomainType, "%d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DomainType) UnmarshalText(text []byte) error {
	parsed, err := DomainTypeFromString(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
