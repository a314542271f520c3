// Package flags defines the command line flags of the remote signer cli.
package flags

import (
	"fmt"

	"github.com/prysmaticlabs/remote-signer/cmd/flags"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/io/logs"
	remote_signer "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output format.
	LogFormat = flags.EnumValue{
		Name:        "log-format",
		Usage:       "Specify log formatting",
		Destination: new(string),
		Enum:        []string{logs.FormatText, logs.FormatFluentd, logs.FormatJSON},
		Value:       logs.FormatText,
	}.GenericFlag()
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}
	// DisableColorFlag disables colored output.
	DisableColorFlag = &cli.BoolFlag{
		Name:  "disable-color",
		Usage: "Print results without ANSI colors",
	}

	// ChainConfigFileFlag loads a chain config from a yaml file.
	ChainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "The path to a YAML file with chain config values",
	}
	// ChainConfigNameFlag selects a built-in chain config.
	ChainConfigNameFlag = flags.EnumValue{
		Name:        "chain-config",
		Usage:       "Built-in chain config, ignored when --chain-config-file is set",
		Destination: new(string),
		Enum:        []string{params.Mainnet.String(), params.Minimal.String()},
		Value:       params.Mainnet.String(),
	}.GenericFlag()

	// URLFlag is the base url of the remote signer.
	URLFlag = &cli.StringFlag{
		Name:  "url",
		Usage: "Base url of the remote signer, e.g. http://127.0.0.1:9000",
		Value: "http://127.0.0.1:9000",
	}
	// TimeoutFlag bounds a single sign request.
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout of a sign request",
		Value: remote_signer.DefaultTimeout,
	}
	// PublicKeyFlag is the key to sign with, as sent to the remote signer.
	PublicKeyFlag = &cli.StringFlag{
		Name:  "public-key",
		Usage: "Hex encoded BLS public key to sign with",
	}
	// DomainFlag is the BLS domain the object is signed under.
	DomainFlag = &cli.StringFlag{
		Name:  "domain",
		Usage: "BLS domain, as a wire label (beacon_proposer) or a name (BeaconProposer)",
	}
	// ObjectFileFlag is a JSON file holding the block or attestation data to sign.
	ObjectFileFlag = &cli.StringFlag{
		Name:  "object-file",
		Usage: "Path to a JSON encoded beacon block or attestation data",
	}
	// EpochFlag is the epoch of a randao reveal.
	EpochFlag = &cli.Uint64Flag{
		Name:  "epoch",
		Usage: "Epoch to sign a randao reveal for",
	}
	// ForkPreviousVersionFlag overrides the previous fork version.
	ForkPreviousVersionFlag = &cli.StringFlag{
		Name:  "fork-previous-version",
		Usage: "Hex encoded previous fork version, defaults to the genesis fork version",
	}
	// ForkCurrentVersionFlag overrides the current fork version.
	ForkCurrentVersionFlag = &cli.StringFlag{
		Name:  "fork-current-version",
		Usage: "Hex encoded current fork version, defaults to the genesis fork version",
	}
	// ForkEpochFlag is the epoch the current fork version activated at.
	ForkEpochFlag = &cli.Uint64Flag{
		Name:  "fork-epoch",
		Usage: "Epoch of the current fork",
	}
	// GenesisValidatorsRootFlag is the root mixed into every domain.
	GenesisValidatorsRootFlag = &cli.StringFlag{
		Name:  "genesis-validators-root",
		Usage: "Hex encoded genesis validators root",
		Value: params.MainnetGenesisValidatorsRoot,
	}
)

// WrapFlags so that they can be loaded from alternative sources.
func WrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		switch t := f.(type) {
		case *cli.BoolFlag:
			f = altsrc.NewBoolFlag(t)
		case *cli.DurationFlag:
			f = altsrc.NewDurationFlag(t)
		case *cli.GenericFlag:
			f = altsrc.NewGenericFlag(t)
		case *cli.StringFlag:
			f = altsrc.NewStringFlag(t)
		case *cli.Uint64Flag:
			f = altsrc.NewUint64Flag(t)
		default:
			panic(fmt.Sprintf("cannot convert type %T", f))
		}
		wrapped = append(wrapped, f)
	}
	return wrapped
}

// LoadConfigFile populates flags from the file named by --config-file, if any.
func LoadConfigFile(cliCtx *cli.Context, flags []cli.Flag) error {
	if !cliCtx.IsSet(ConfigFileFlag.Name) {
		return nil
	}
	return altsrc.InitInputSourceWithContext(
		flags,
		altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name),
	)(cliCtx)
}
