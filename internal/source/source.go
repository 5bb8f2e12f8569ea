// Package source reads already-computed metrics from an NFT marketplace.
//
// The marketplace contract computes every value. This package only decodes
// the values; it never validates their ranges.
package source

import (
	"context"
	"math/big"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=source

// MetricsSource is the read-only view of a marketplace's metric groups.
// Each call is one blocking round trip to the data source.
type MetricsSource interface {
	PerformanceMetrics(ctx context.Context) (PerformanceMetrics, error)
	EfficiencyScores(ctx context.Context) (EfficiencyScores, error)
	UserExperience(ctx context.Context) (UserExperience, error)
	Scalability(ctx context.Context) (Scalability, error)
}

// PerformanceMetrics mirrors the contract's PerformanceMetrics tuple.
// Field names and order must match the ABI components.
type PerformanceMetrics struct {
	ResponseTime     *big.Int // milliseconds
	TransactionSpeed *big.Int // transactions per second
	Throughput       *big.Int // transactions per block
	Uptime           *big.Int // percent, 0-100
	ErrorRate        *big.Int // percent of failed calls, 0-100
	GasEfficiency    *big.Int // score, 0-100
}

// EfficiencyScores mirrors the contract's EfficiencyScores tuple.
// Every score is on a 0-100 scale.
type EfficiencyScores struct {
	MarketplaceEfficiency *big.Int
	ListingEfficiency     *big.Int
	TradingEfficiency     *big.Int
	UserEngagement        *big.Int
	RevenueEfficiency     *big.Int
}

// UserExperience mirrors the contract's UserExperience tuple.
// Every score is on a 0-100 scale.
type UserExperience struct {
	InterfaceUsability   *big.Int
	TransactionEase      *big.Int
	MobileCompatibility  *big.Int
	LoadingSpeed         *big.Int
	CustomerSatisfaction *big.Int
}

// Scalability mirrors the contract's Scalability tuple.
// Capacities are absolute counts; FutureGrowth is a 0-100 score.
type Scalability struct {
	UserCapacity        *big.Int
	TransactionCapacity *big.Int
	StorageCapacity     *big.Int
	NetworkCapacity     *big.Int
	FutureGrowth        *big.Int
}
