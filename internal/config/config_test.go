package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/source"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("perfreport", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(flagSet(t, "--address", testAddress))
	require.NoError(t, err)

	want := Default()
	want.Address = testAddress
	assert.Equal(t, want, cfg)
	assert.Equal(t, "performance", cfg.OutputDir)
	assert.Equal(t, "nft-performance-", cfg.FilePrefix)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PERFREPORT_ADDRESS", testAddress)
	t.Setenv("PERFREPORT_RPC_URL", "http://env:8545")
	t.Setenv("PERFREPORT_CALL_TIMEOUT", "3s")

	cfg, err := Load(flagSet(t, "--rpc-url", "http://flag:8545", "--log-level", "debug"))
	require.NoError(t, err)

	assert.Equal(t, testAddress, cfg.Address)
	assert.Equal(t, "http://flag:8545", cfg.RPCURL)
	assert.Equal(t, 3*time.Second, cfg.CallTimeout)
	assert.Equal(t, logs.DEBUG, cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
address: "`+testAddress+`"
rpc-url: https://base.example.org
output-dir: reports
create-output-dir: true
dial-timeout: 2s
`), 0o644))

	t.Setenv("PERFREPORT_OUTPUT_DIR", "from-env")

	cfg, err := Load(flagSet(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, testAddress, cfg.Address)
	assert.Equal(t, "https://base.example.org", cfg.RPCURL)
	assert.Equal(t, "from-env", cfg.OutputDir, "env beats the config file")
	assert.True(t, cfg.CreateOutputDir)
	assert.Equal(t, 2*time.Second, cfg.DialTimeout)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(flagSet(t, "--address", testAddress, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Address = "0x..."
	cfg.RPCURL = ""
	cfg.FilePrefix = "../escape-"
	cfg.CallTimeout = -time.Second
	cfg.LogLevel = "LOUD"

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
	assert.ErrorIs(t, err, source.ErrInvalidAddress)
}

func TestValidate_MissingAddress(t *testing.T) {
	err := Default().Validate()
	assert.ErrorIs(t, err, source.ErrNoAddress)
}

func TestValidate_DryRunNeedsNoEndpoint(t *testing.T) {
	cfg := Default()
	cfg.Address = testAddress
	cfg.RPCURL = ""
	cfg.DryRun = true

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Derived(t *testing.T) {
	cfg := Default()
	cfg.Address = "0x5fbdb2315678afecb367f032d93f642f64180aa3"
	cfg.CallTimeout = time.Second

	opts := cfg.ReportOptions()
	assert.Equal(t, testAddress, opts.Address, "address is checksummed")
	assert.Equal(t, cfg.OutputDir, opts.OutputDir)

	dial := cfg.DialConfig()
	assert.Equal(t, cfg.RPCURL, dial.RPCURL)
	assert.Equal(t, time.Second, dial.CallTimeout)
}
