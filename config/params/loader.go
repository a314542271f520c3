package params

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Fixed byte lengths a hex value in a chain config file may be padded to.
var yamlByteLengths = []int{4, 8, 16, 20, 32, 48, 64, 96}

// LoadChainConfigFile load, convert hex values into valid param yaml format,
// unmarshal, and apply beacon chain config file.
func LoadChainConfigFile(chainConfigFileName string) error {
	conf, err := UnmarshalConfigFile(chainConfigFileName)
	if err != nil {
		return err
	}
	OverrideBeaconConfig(conf)
	return nil
}

// UnmarshalConfigFile reads a chain config file without applying it.
func UnmarshalConfigFile(chainConfigFileName string) (*BeaconChainConfig, error) {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chain config file")
	}
	return UnmarshalConfig(yamlFile)
}

// UnmarshalConfig parses chain config yaml on top of the preset it names,
// defaulting to mainnet.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	// Default to using mainnet.
	conf := MainnetConfig()
	// To track if config name is defined inside config file.
	hasConfigName := false
	// Convert 0x hex inputs to fixed bytes arrays
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		// No need to convert the deposit contract address to byte array (as config expects a string).
		if strings.HasPrefix(line, "DEPOSIT_CONTRACT_ADDRESS") {
			continue
		}
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") ||
			strings.HasPrefix(line, "# Minimal preset") {
			conf = MinimalSpecConfig()
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts, err := ReplaceHexStringWithYAMLFormat(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml file")
		}
		log.WithError(err).Warn("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	log.Debugf("Config file values: %+v", conf)
	return conf, nil
}

// ReplaceHexStringWithYAMLFormat will replace hex strings that the yaml parser will understand.
func ReplaceHexStringWithYAMLFormat(line string) ([]string, error) {
	parts := strings.Split(line, "0x")
	decoded, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode hex string")
	}
	if len(decoded) == 1 {
		fixedByte, err := yaml.Marshal(decoded[0])
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config file")
		}
		parts[0] += string(fixedByte)
		return parts[:1], nil
	}
	for _, size := range yamlByteLengths {
		if len(decoded) > size {
			continue
		}
		arr := make([]int, size)
		for i, b := range decoded {
			arr[i] = int(b)
		}
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config file")
		}
		parts[1] = string(fixedByte)
		return parts, nil
	}
	return nil, errors.Errorf("hex value of %d bytes is too long", len(decoded))
}

// ConfigToYaml takes a provided config and outputs its contents in yaml.
func ConfigToYaml(cfg *BeaconChainConfig) []byte {
	lines := []string{
		fmt.Sprintf("PRESET_BASE: '%s'", cfg.PresetBase),
		fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName),
		fmt.Sprintf("GENESIS_FORK_VERSION: %#x", cfg.GenesisForkVersion),
		fmt.Sprintf("ALTAIR_FORK_VERSION: %#x", cfg.AltairForkVersion),
		fmt.Sprintf("ALTAIR_FORK_EPOCH: %d", cfg.AltairForkEpoch),
		fmt.Sprintf("SECONDS_PER_SLOT: %d", cfg.SecondsPerSlot),
		fmt.Sprintf("SLOTS_PER_EPOCH: %d", cfg.SlotsPerEpoch),
		fmt.Sprintf("DOMAIN_BEACON_PROPOSER: %#x", cfg.DomainBeaconProposer),
		fmt.Sprintf("DOMAIN_BEACON_ATTESTER: %#x", cfg.DomainBeaconAttester),
		fmt.Sprintf("DOMAIN_RANDAO: %#x", cfg.DomainRandao),
		fmt.Sprintf("DOMAIN_DEPOSIT: %#x", cfg.DomainDeposit),
		fmt.Sprintf("DOMAIN_VOLUNTARY_EXIT: %#x", cfg.DomainVoluntaryExit),
		fmt.Sprintf("DOMAIN_SELECTION_PROOF: %#x", cfg.DomainSelectionProof),
		fmt.Sprintf("DOMAIN_AGGREGATE_AND_PROOF: %#x", cfg.DomainAggregateAndProof),
	}
	return []byte(strings.Join(lines, "\n"))
}
