package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/require"
)

func TestUnmarshalConfig_MinimalPreset(t *testing.T) {
	yamlFile := []byte(`# Minimal preset
PRESET_BASE: 'minimal'
CONFIG_NAME: 'testnet'
GENESIS_FORK_VERSION: 0x00001020
SLOTS_PER_EPOCH: 4
DOMAIN_RANDAO: 0x0A000000
`)
	conf, err := params.UnmarshalConfig(yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "minimal", conf.PresetBase)
	assert.Equal(t, "testnet", conf.ConfigName)
	assert.DeepEqual(t, []byte{0x00, 0x00, 0x10, 0x20}, conf.GenesisForkVersion)
	assert.Equal(t, primitives.Slot(4), conf.SlotsPerEpoch)
	assert.Equal(t, [4]byte{0x0a, 0, 0, 0}, conf.DomainRandao)
	// Values not in the file keep the preset.
	assert.Equal(t, uint64(6), conf.SecondsPerSlot)
	assert.Equal(t, [4]byte{1, 0, 0, 0}, conf.DomainBeaconAttester)
}

func TestUnmarshalConfig_DefaultsToDevnetName(t *testing.T) {
	conf, err := params.UnmarshalConfig([]byte("SLOTS_PER_EPOCH: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, "devnet", conf.ConfigName)
	assert.Equal(t, "mainnet", conf.PresetBase)
	assert.Equal(t, primitives.Slot(16), conf.SlotsPerEpoch)
}

func TestUnmarshalConfig_UnknownKeysTolerated(t *testing.T) {
	conf, err := params.UnmarshalConfig([]byte("CONFIG_NAME: 'x'\nMIN_GENESIS_TIME: 1606824000\n"))
	require.NoError(t, err)
	assert.Equal(t, "x", conf.ConfigName)
}

func TestUnmarshalConfig_BadHex(t *testing.T) {
	_, err := params.UnmarshalConfig([]byte("GENESIS_FORK_VERSION: 0xzz\n"))
	assert.ErrorContains(t, "failed to decode hex string", err)
}

func TestConfigToYaml_RoundTrip(t *testing.T) {
	want := params.MinimalSpecConfig()
	want.ConfigName = "roundtrip"
	got, err := params.UnmarshalConfig(params.ConfigToYaml(want))
	require.NoError(t, err)
	assert.DeepEqual(t, want, got)
}

func TestLoadChainConfigFile(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("CONFIG_NAME: 'custom'\nSLOTS_PER_EPOCH: 2\n"), 0600))
	require.NoError(t, params.LoadChainConfigFile(file))
	assert.Equal(t, "custom", params.BeaconConfig().ConfigName)
	assert.Equal(t, primitives.Slot(2), params.BeaconConfig().SlotsPerEpoch)
}

func TestLoadChainConfigFile_Missing(t *testing.T) {
	err := params.LoadChainConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, "failed to read chain config file", err)
}

func TestReplaceHexStringWithYAMLFormat(t *testing.T) {
	parts, err := params.ReplaceHexStringWithYAMLFormat("BLS_WITHDRAWAL_PREFIX: 0x01")
	require.NoError(t, err)
	assert.DeepEqual(t, []string{"BLS_WITHDRAWAL_PREFIX: 1\n"}, parts)

	parts, err = params.ReplaceHexStringWithYAMLFormat("GENESIS_FORK_VERSION: 0x0102")
	require.NoError(t, err)
	assert.DeepEqual(t, []string{"GENESIS_FORK_VERSION: ", "- 1\n- 2\n- 0\n- 0\n"}, parts)
}
