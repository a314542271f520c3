// Package sign implements the sign command, which sends a single signing request
// to a remote signer and prints the returned signature.
package sign

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/remote-signer/cmd/remote-signer-cli/flags"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/consensus-types/primitives"
	"github.com/prysmaticlabs/remote-signer/io/logs"
	remote_signer "github.com/prysmaticlabs/remote-signer/validator/keymanager/remote-signer"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "sign")

var signFlags = []cli.Flag{
	flags.URLFlag,
	flags.TimeoutFlag,
	flags.PublicKeyFlag,
	flags.DomainFlag,
	flags.ObjectFileFlag,
	flags.EpochFlag,
	flags.ForkPreviousVersionFlag,
	flags.ForkCurrentVersionFlag,
	flags.ForkEpochFlag,
	flags.GenesisValidatorsRootFlag,
	flags.ChainConfigFileFlag,
	flags.ChainConfigNameFlag,
	flags.DisableColorFlag,
}

func init() {
	signFlags = flags.WrapFlags(signFlags)
}

// Command sends one sign request.
var Command = &cli.Command{
	Name:  "sign",
	Usage: "Requests a signature for a beacon block, attestation data or randao reveal from a remote signer",
	Flags: signFlags,
	Before: func(cliCtx *cli.Context) error {
		return flags.LoadConfigFile(cliCtx, signFlags)
	},
	Action: func(cliCtx *cli.Context) error {
		return sign(cliCtx, cliCtx.App.Writer)
	},
}

func sign(cliCtx *cli.Context, w io.Writer) error {
	ctx, span := trace.StartSpan(cliCtx.Context, "remotesigner.cli.sign")
	defer span.End()

	if err := setupChainConfig(cliCtx); err != nil {
		return err
	}
	cfg := params.BeaconConfig()

	domainType, err := parseDomain(cliCtx.String(flags.DomainFlag.Name))
	if err != nil {
		return err
	}
	obj, err := objectFromFlags(cliCtx, domainType)
	if err != nil {
		return err
	}
	fork, err := forkFromFlags(cliCtx, cfg)
	if err != nil {
		return err
	}
	gvr, err := hexutil.Decode(cliCtx.String(flags.GenesisValidatorsRootFlag.Name))
	if err != nil {
		return errors.Wrapf(err, "could not decode --%s", flags.GenesisValidatorsRootFlag.Name)
	}

	endpoint := cliCtx.String(flags.URLFlag.Name)
	client, err := remote_signer.NewApiClient(&remote_signer.ClientConfig{
		BaseEndpoint: endpoint,
		Timeout:      cliCtx.Duration(flags.TimeoutFlag.Name),
	})
	if err != nil {
		return err
	}
	pubKey := cliCtx.String(flags.PublicKeyFlag.Name)
	log.WithFields(logrus.Fields{
		"url":    logs.MaskCredentialsLogging(endpoint),
		"domain": domainType.Label(),
	}).Debug("Sending sign request")

	sig, err := client.Sign(ctx, pubKey, domainType, obj, fork, gvr, cfg)
	if err != nil {
		log.WithField("kind", remote_signer.ErrorKind(err)).Debug("Sign request failed")
		return err
	}
	au := aurora.NewAurora(!cliCtx.Bool(flags.DisableColorFlag.Name))
	_, err = fmt.Fprintf(w, "%s %s\n", au.Green("Signature:"), sig)
	return err
}

func setupChainConfig(cliCtx *cli.Context) error {
	if path := cliCtx.String(flags.ChainConfigFileFlag.Name); path != "" {
		return params.LoadChainConfigFile(path)
	}
	name := cliCtx.String(flags.ChainConfigNameFlag.Name)
	if name == "" {
		return nil
	}
	cfg, ok := params.ByName(name)
	if !ok {
		return fmt.Errorf("unknown chain config %q", name)
	}
	params.OverrideBeaconConfig(cfg)
	return nil
}

// parseDomain accepts both the wire label and the type name of a domain.
func parseDomain(s string) (primitives.DomainType, error) {
	if s == "" {
		return 0, fmt.Errorf("no --%s flag value was provided", flags.DomainFlag.Name)
	}
	if d, err := primitives.DomainTypeFromLabel(s); err == nil {
		return d, nil
	}
	return primitives.DomainTypeFromString(s)
}

// objectFromFlags builds the object implied by the domain. Domains that cannot be
// requested get a nil object so the client reports them as unsupported.
func objectFromFlags(cliCtx *cli.Context, domainType primitives.DomainType) (remote_signer.Signable, error) {
	switch domainType {
	case primitives.BeaconProposer:
		block := &phase0.BeaconBlock{}
		if err := readObjectFile(cliCtx, block); err != nil {
			return nil, err
		}
		return &remote_signer.BeaconBlock{Block: block}, nil
	case primitives.BeaconAttester:
		data := &phase0.AttestationData{}
		if err := readObjectFile(cliCtx, data); err != nil {
			return nil, err
		}
		return &remote_signer.AttestationData{Data: data}, nil
	case primitives.Randao:
		if !cliCtx.IsSet(flags.EpochFlag.Name) {
			return nil, fmt.Errorf("no --%s flag value was provided", flags.EpochFlag.Name)
		}
		return remote_signer.Epoch(cliCtx.Uint64(flags.EpochFlag.Name)), nil
	default:
		return nil, nil
	}
}

func readObjectFile(cliCtx *cli.Context, v interface{}) error {
	path := cliCtx.String(flags.ObjectFileFlag.Name)
	if path == "" {
		return fmt.Errorf("no --%s flag value was provided", flags.ObjectFileFlag.Name)
	}
	enc, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return errors.Wrap(err, "could not read object file")
	}
	if err := json.Unmarshal(enc, v); err != nil {
		return errors.Wrapf(err, "could not decode object file %s", path)
	}
	return nil
}

func forkFromFlags(cliCtx *cli.Context, cfg *params.BeaconChainConfig) (*phase0.Fork, error) {
	fork := &phase0.Fork{
		PreviousVersion: cfg.GenesisForkVersion,
		CurrentVersion:  cfg.GenesisForkVersion,
		Epoch:           primitives.Epoch(cliCtx.Uint64(flags.ForkEpochFlag.Name)),
	}
	if v := cliCtx.String(flags.ForkPreviousVersionFlag.Name); v != "" {
		decoded, err := hexutil.Decode(v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode --%s", flags.ForkPreviousVersionFlag.Name)
		}
		fork.PreviousVersion = decoded
	}
	if v := cliCtx.String(flags.ForkCurrentVersionFlag.Name); v != "" {
		decoded, err := hexutil.Decode(v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode --%s", flags.ForkCurrentVersionFlag.Name)
		}
		fork.CurrentVersion = decoded
	}
	return fork, nil
}
