package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/remote-signer/config/params"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/remotesigner"
	"github.com/prysmaticlabs/remote-signer/testing/require"
	"github.com/prysmaticlabs/remote-signer/testing/util"
	"github.com/sirupsen/logrus"
)

func TestApp_Sign(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	formatter := logrus.StandardLogger().Formatter
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetFormatter(formatter)
		logrus.SetLevel(level)
	})

	keys, err := util.DeterministicSecretKeys(1)
	require.NoError(t, err)
	srv := remotesigner.New(t, nil, keys[0])

	// Flags for the sign command are read from a yaml file.
	configFile := filepath.Join(t.TempDir(), "flags.yaml")
	content := fmt.Sprintf("url: %s\npublic-key: \"%s\"\n", srv.URL, hexutil.Encode(keys[0].PublicKey().Marshal()))
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	app := newApp()
	buf := new(bytes.Buffer)
	app.Writer = buf
	require.NoError(t, app.Run([]string{
		"remote-signer-cli",
		"--verbosity", "debug",
		"--log-format", "json",
		"--config-file", configFile,
		"sign",
		"--disable-color",
		"--domain", "randao",
		"--epoch", "3",
		"--genesis-validators-root", hexutil.Encode(util.TestGenesisValidatorsRoot()),
	}))
	assert.Equal(t, true, strings.HasPrefix(buf.String(), "Signature: 0x"), buf.String())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.Equal(t, true, isJSON)
	require.Equal(t, 1, len(srv.Requests()))
}

func TestApp_BadVerbosity(t *testing.T) {
	app := newApp()
	err := app.Run([]string{"remote-signer-cli", "--verbosity", "loud", "sign"})
	assert.ErrorContains(t, "not a valid logrus Level", err)
}
