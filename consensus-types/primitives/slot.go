package primitives

import (
	"fmt"
)

// Slot represents a single slot.
type Slot uint64

// Epoch represents a single epoch.
type Epoch uint64

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// CommitteeIndex of a particular beacon committee.
type CommitteeIndex uint64

// ToEpoch returns the epoch containing the slot. A zero slotsPerEpoch is treated as one
// so the result is always defined.
func (s Slot) ToEpoch(slotsPerEpoch Slot) Epoch {
	if slotsPerEpoch == 0 {
		return Epoch(s)
	}
	return Epoch(s / slotsPerEpoch)
}

// String returns a base-10 representation of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}

// String returns a base-10 representation of the epoch.
func (e Epoch) String() string {
	return fmt.Sprintf("%d", uint64(e))
}
