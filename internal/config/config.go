// Package config loads the reporter settings from flags, PERFREPORT_*
// environment variables and an optional YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/report"
	"nft-perfreport/internal/source"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PERFREPORT_RPC_URL.
const EnvPrefix = "PERFREPORT"

// Flag names double as viper keys and YAML keys.
const (
	FlagConfig          = "config"
	FlagRPCURL          = "rpc-url"
	FlagAddress         = "address"
	FlagOutputDir       = "output-dir"
	FlagPrefix          = "prefix"
	FlagCreateOutputDir = "create-output-dir"
	FlagDialTimeout     = "dial-timeout"
	FlagCallTimeout     = "call-timeout"
	FlagLogLevel        = "log-level"
	FlagDryRun          = "dry-run"
)

type Config struct {
	RPCURL          string
	Address         string
	OutputDir       string
	FilePrefix      string
	CreateOutputDir bool
	DialTimeout     time.Duration
	CallTimeout     time.Duration
	LogLevel        logs.Level
	DryRun          bool
}

func Default() Config {
	return Config{
		RPCURL:      "http://127.0.0.1:8545",
		OutputDir:   report.DefaultOutputDir,
		FilePrefix:  report.DefaultFilePrefix,
		DialTimeout: 10 * time.Second,
		LogLevel:    logs.INFO,
	}
}

// RegisterFlags adds every setting to fs with its default value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "path to a YAML config file")
	fs.String(FlagRPCURL, d.RPCURL, "JSON-RPC endpoint of the network hosting the marketplace")
	fs.String(FlagAddress, d.Address, "address of the deployed NFTMarketplaceV3 contract")
	fs.String(FlagOutputDir, d.OutputDir, "directory the report is written to")
	fs.String(FlagPrefix, d.FilePrefix, "report file name prefix")
	fs.Bool(FlagCreateOutputDir, d.CreateOutputDir, "create the output directory when missing")
	fs.Duration(FlagDialTimeout, d.DialTimeout, "timeout for connecting to the RPC endpoint (0 disables)")
	fs.Duration(FlagCallTimeout, d.CallTimeout, "timeout for each metric query (0 disables)")
	fs.String(FlagLogLevel, strings.ToLower(string(d.LogLevel)), "log level: debug, info, warn, error")
	fs.Bool(FlagDryRun, d.DryRun, "use built-in sample metrics instead of the network")
}

// Load resolves settings with precedence flag > env > file > default,
// then validates them.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		RPCURL:          strings.TrimSpace(v.GetString(FlagRPCURL)),
		Address:         strings.TrimSpace(v.GetString(FlagAddress)),
		OutputDir:       v.GetString(FlagOutputDir),
		FilePrefix:      v.GetString(FlagPrefix),
		CreateOutputDir: v.GetBool(FlagCreateOutputDir),
		DialTimeout:     v.GetDuration(FlagDialTimeout),
		CallTimeout:     v.GetDuration(FlagCallTimeout),
		LogLevel:        logs.Level(strings.ToUpper(strings.TrimSpace(v.GetString(FlagLogLevel)))),
		DryRun:          v.GetBool(FlagDryRun),
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := source.ParseAddress(c.Address); err != nil {
		result = multierror.Append(result, err)
	}
	if c.RPCURL == "" && !c.DryRun {
		result = multierror.Append(result, fmt.Errorf("%s must be set", FlagRPCURL))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		result = multierror.Append(result, fmt.Errorf("%s must be set", FlagOutputDir))
	}
	if c.FilePrefix == "" || strings.ContainsAny(c.FilePrefix, `/\`) {
		result = multierror.Append(result, fmt.Errorf("%s %q must be a plain file name prefix", FlagPrefix, c.FilePrefix))
	}
	if c.DialTimeout < 0 {
		result = multierror.Append(result, fmt.Errorf("%s must not be negative", FlagDialTimeout))
	}
	if c.CallTimeout < 0 {
		result = multierror.Append(result, fmt.Errorf("%s must not be negative", FlagCallTimeout))
	}
	if _, err := logs.ParseLevel(string(c.LogLevel)); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// DialConfig is the connection part of the settings.
func (c Config) DialConfig() source.DialConfig {
	return source.DialConfig{
		RPCURL:      c.RPCURL,
		Address:     c.Address,
		DialTimeout: c.DialTimeout,
		CallTimeout: c.CallTimeout,
	}
}

// ReportOptions is the output part of the settings. The address is
// normalised to its checksummed form.
func (c Config) ReportOptions() report.Options {
	address := c.Address
	if addr, err := source.ParseAddress(c.Address); err == nil {
		address = addr.Hex()
	}
	return report.Options{
		Address:         address,
		OutputDir:       c.OutputDir,
		FilePrefix:      c.FilePrefix,
		CreateOutputDir: c.CreateOutputDir,
	}
}
