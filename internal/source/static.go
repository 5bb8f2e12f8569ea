package source

import (
	"context"
	"math/big"
)

// Static serves fixed metric groups. It backs dry runs and tests.
type Static struct {
	Performance PerformanceMetrics
	Efficiency  EfficiencyScores
	Experience  UserExperience
	Scale       Scalability
}

var _ MetricsSource = (*Static)(nil)

func (s *Static) PerformanceMetrics(ctx context.Context) (PerformanceMetrics, error) {
	return s.Performance, ctx.Err()
}

func (s *Static) EfficiencyScores(ctx context.Context) (EfficiencyScores, error) {
	return s.Efficiency, ctx.Err()
}

func (s *Static) UserExperience(ctx context.Context) (UserExperience, error) {
	return s.Experience, ctx.Err()
}

func (s *Static) Scalability(ctx context.Context) (Scalability, error) {
	return s.Scale, ctx.Err()
}

// SampleData returns a healthy marketplace: no threshold rule fires on it.
func SampleData() *Static {
	return &Static{
		Performance: PerformanceMetrics{
			ResponseTime:     big.NewInt(850),
			TransactionSpeed: big.NewInt(42),
			Throughput:       big.NewInt(1200),
			Uptime:           big.NewInt(99),
			ErrorRate:        big.NewInt(1),
			GasEfficiency:    big.NewInt(87),
		},
		Efficiency: EfficiencyScores{
			MarketplaceEfficiency: big.NewInt(84),
			ListingEfficiency:     big.NewInt(78),
			TradingEfficiency:     big.NewInt(81),
			UserEngagement:        big.NewInt(73),
			RevenueEfficiency:     big.NewInt(69),
		},
		Experience: UserExperience{
			InterfaceUsability:   big.NewInt(88),
			TransactionEase:      big.NewInt(82),
			MobileCompatibility:  big.NewInt(76),
			LoadingSpeed:         big.NewInt(91),
			CustomerSatisfaction: big.NewInt(86),
		},
		Scale: Scalability{
			UserCapacity:        big.NewInt(1_000_000),
			TransactionCapacity: big.NewInt(5_000_000),
			StorageCapacity:     big.NewInt(250_000),
			NetworkCapacity:     big.NewInt(10_000),
			FutureGrowth:        big.NewInt(65),
		},
	}
}
