package report

import (
	"context"
	"fmt"
	"time"

	"nft-perfreport/internal/advisor"
	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/metrics"
	"nft-perfreport/internal/source"
)

// Default output location, relative to the working directory.
const (
	DefaultOutputDir  = "performance"
	DefaultFilePrefix = "nft-performance-"
)

// Options configures a Generator.
type Options struct {
	// Address is recorded in the report as marketplaceAddress.
	Address         string
	OutputDir       string
	FilePrefix      string
	CreateOutputDir bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result describes a persisted report.
type Result struct {
	Path       string
	FileName   string
	Report     *PerformanceReport
	Evaluation advisor.Evaluation
}

// Generator fetches the four metric groups, applies the advisor rules and
// writes one JSON report per Run.
type Generator struct {
	source  source.MetricsSource
	advisor *advisor.Advisor
	logger  *logs.Logger
	metrics *metrics.Registry
	opts    Options

	lastMillis int64
}

// NewGenerator creates a generator reading from src.
func NewGenerator(
	src source.MetricsSource,
	opts Options,
	logger *logs.Logger,
	reg *metrics.Registry,
) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.FilePrefix == "" {
		opts.FilePrefix = DefaultFilePrefix
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = logs.NewLogger(0, logs.ERROR, nil)
	}
	logger = logger.With("contract", source.ContractName)

	return &Generator{
		source:  src,
		advisor: advisor.NewAdvisor(reg, logger),
		logger:  logger,
		metrics: reg,
		opts:    opts,
	}
}

// Run performs one full report cycle. Any error aborts the cycle before
// the file is written, so a failed run never leaves a report behind.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	g.logger.Info("Analyzing performance for Base NFT Marketplace...")

	report := NewReport(g.opts.Address, g.opts.Now())

	perf, err := fetch(ctx, g, "performance metrics", g.source.PerformanceMetrics)
	if err != nil {
		return Result{}, err
	}
	if report.PerformanceMetrics, err = performanceGroup(perf); err != nil {
		return Result{}, err
	}

	eff, err := fetch(ctx, g, "efficiency scores", g.source.EfficiencyScores)
	if err != nil {
		return Result{}, err
	}
	if report.EfficiencyScores, err = efficiencyGroup(eff); err != nil {
		return Result{}, err
	}

	ux, err := fetch(ctx, g, "user experience", g.source.UserExperience)
	if err != nil {
		return Result{}, err
	}
	if report.UserExperience, err = userExperienceGroup(ux); err != nil {
		return Result{}, err
	}

	scale, err := fetch(ctx, g, "scalability", g.source.Scalability)
	if err != nil {
		return Result{}, err
	}
	if report.Scalability, err = scalabilityGroup(scale); err != nil {
		return Result{}, err
	}

	eval, err := g.advisor.Evaluate(report.AdvisorValues())
	if err != nil {
		return Result{}, fmt.Errorf("evaluate thresholds: %w", err)
	}
	report.Recommendations = eval.Recommendations
	g.logger.Infof("advisor status %s, %d recommendation(s)", eval.Status, len(eval.Recommendations))

	name := FileName(g.opts.FilePrefix, g.fileTime())
	path, err := WriteJSON(g.opts.OutputDir, name, report, g.opts.CreateOutputDir)
	if err != nil {
		g.metrics.Inc(metrics.ReportWriteFailuresTotal)
		return Result{}, fmt.Errorf("write report: %w", err)
	}
	g.metrics.Inc(metrics.ReportWritesTotal)
	g.logger.Infof("Performance report created: %s", name)

	return Result{
		Path:       path,
		FileName:   name,
		Report:     report,
		Evaluation: eval,
	}, nil
}

// fileTime returns the clock reading used in the file name, nudged forward
// so names from one generator strictly increase.
func (g *Generator) fileTime() time.Time {
	now := g.opts.Now()
	ms := now.UnixMilli()
	if ms <= g.lastMillis {
		ms = g.lastMillis + 1
	}
	g.lastMillis = ms
	return time.UnixMilli(ms)
}

func fetch[T any](
	ctx context.Context,
	g *Generator,
	group string,
	call func(context.Context) (T, error),
) (T, error) {
	g.metrics.Inc(metrics.SourceFetchTotal)
	g.logger.Debugf("fetching %s", group)

	v, err := call(ctx)
	if err != nil {
		g.metrics.Inc(metrics.SourceFetchFailuresTotal)
		var zero T
		return zero, fmt.Errorf("fetch %s: %w", group, err)
	}
	return v, nil
}
