package params

import "testing"

// SetupTestConfigCleanup preserves the active config and restores it once the test finishes.
func SetupTestConfigCleanup(t testing.TB) {
	prev := BeaconConfig().Copy()
	t.Cleanup(func() {
		OverrideBeaconConfig(prev)
	})
}
