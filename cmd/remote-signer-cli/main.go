// Package main defines a command line client for remote signers. It builds a
// signing request for a beacon block, attestation data or randao reveal and
// prints the signature returned by the server.
package main

import (
	"os"

	"github.com/prysmaticlabs/remote-signer/cmd/remote-signer-cli/flags"
	"github.com/prysmaticlabs/remote-signer/cmd/remote-signer-cli/sign"
	"github.com/prysmaticlabs/remote-signer/io/logs"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	flags.VerbosityFlag,
	flags.LogFormat,
	flags.LogFileName,
	flags.ConfigFileFlag,
}

func init() {
	appFlags = flags.WrapFlags(appFlags)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "remote-signer-cli"
	app.Usage = "sends signing requests to an Ethereum consensus remote signer"
	app.Flags = appFlags
	app.Commands = []*cli.Command{
		sign.Command,
	}
	app.Before = before
	return app
}

func before(ctx *cli.Context) error {
	// Load any flags from file, if specified.
	if err := flags.LoadConfigFile(ctx, appFlags); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(ctx.String(flags.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	logFileName := ctx.String(flags.LogFileName.Name)
	// If persistent log files are written we disable colors, which are seen as gibberish in files.
	if err := logs.ConfigureFormatter(ctx.String(flags.LogFormat.Name), logFileName != ""); err != nil {
		return err
	}
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
