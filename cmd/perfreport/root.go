package main

import (
	"context"
	"fmt"
	"io"

	"nft-perfreport/internal/config"
	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/metrics"
	"nft-perfreport/internal/report"
	"nft-perfreport/internal/source"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfreport",
		Short: "Generate a performance report for the Base NFT Marketplace",
		Long: `perfreport reads the performance, efficiency, user experience and
scalability metrics exposed by a deployed NFTMarketplaceV3 contract,
derives recommendations from fixed thresholds and writes everything to
performance/nft-performance-<epoch millis>.json.

Every flag can also be set through a PERFREPORT_* environment variable
(e.g. PERFREPORT_RPC_URL) or a YAML file passed with --config.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := logs.NewConsoleLogger(200, cfg.LogLevel, out)
	reg := metrics.NewRegistry()
	defer func() {
		logger.Debug("run metrics: " + metrics.Summary(reg.Snapshot()))
	}()

	src, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	gen := report.NewGenerator(src, cfg.ReportOptions(), logger, reg)
	res, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("NFT marketplace performance analysis completed successfully!")
	printRecommendations(out, res.Report.Recommendations)
	return nil
}

func openSource(ctx context.Context, cfg config.Config, logger *logs.Logger) (source.MetricsSource, func(), error) {
	if cfg.DryRun {
		logger.Warn("dry run: using built-in sample metrics")
		return source.SampleData(), func() {}, nil
	}

	logger.Infof("connecting to %s", cfg.RPCURL)
	contract, err := source.Dial(ctx, cfg.DialConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to marketplace: %w", err)
	}
	return contract, contract.Close, nil
}

func printRecommendations(out io.Writer, recommendations []string) {
	fmt.Fprintln(out, "Recommendations:")
	if len(recommendations) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, r := range recommendations {
		fmt.Fprintf(out, "  - %s\n", r)
	}
}
