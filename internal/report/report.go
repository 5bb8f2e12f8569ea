// Package report builds and persists the marketplace performance report.
package report

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"nft-perfreport/internal/advisor"
	"nft-perfreport/internal/source"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// ErrMissingField is returned when the source left a numeric field unset.
var ErrMissingField = errors.New("missing metric field")

// PerformanceReport is written to disk once per run and never changed after.
type PerformanceReport struct {
	Timestamp          string              `json:"timestamp"`
	MarketplaceAddress string              `json:"marketplaceAddress"`
	PerformanceMetrics PerformanceGroup    `json:"performanceMetrics"`
	EfficiencyScores   EfficiencyGroup     `json:"efficiencyScores"`
	UserExperience     UserExperienceGroup `json:"userExperience"`
	Scalability        ScalabilityGroup    `json:"scalability"`
	Recommendations    []string            `json:"recommendations"`
}

type PerformanceGroup struct {
	ResponseTime     string `json:"responseTime"`
	TransactionSpeed string `json:"transactionSpeed"`
	Throughput       string `json:"throughput"`
	Uptime           string `json:"uptime"`
	ErrorRate        string `json:"errorRate"`
	GasEfficiency    string `json:"gasEfficiency"`
}

type EfficiencyGroup struct {
	MarketplaceEfficiency string `json:"marketplaceEfficiency"`
	ListingEfficiency     string `json:"listingEfficiency"`
	TradingEfficiency     string `json:"tradingEfficiency"`
	UserEngagement        string `json:"userEngagement"`
	RevenueEfficiency     string `json:"revenueEfficiency"`
}

type UserExperienceGroup struct {
	InterfaceUsability   string `json:"interfaceUsability"`
	TransactionEase      string `json:"transactionEase"`
	MobileCompatibility  string `json:"mobileCompatibility"`
	LoadingSpeed         string `json:"loadingSpeed"`
	CustomerSatisfaction string `json:"customerSatisfaction"`
}

type ScalabilityGroup struct {
	UserCapacity        string `json:"userCapacity"`
	TransactionCapacity string `json:"transactionCapacity"`
	StorageCapacity     string `json:"storageCapacity"`
	NetworkCapacity     string `json:"networkCapacity"`
	FutureGrowth        string `json:"futureGrowth"`
}

// NewReport starts an empty report stamped with now.
func NewReport(address string, now time.Time) *PerformanceReport {
	return &PerformanceReport{
		Timestamp:          now.UTC().Format(TimestampFormat),
		MarketplaceAddress: address,
		Recommendations:    []string{},
	}
}

// AdvisorValues exposes the fields the threshold rules read.
func (r *PerformanceReport) AdvisorValues() advisor.Values {
	return advisor.Values{
		advisor.ResponseTime:          r.PerformanceMetrics.ResponseTime,
		advisor.ErrorRate:             r.PerformanceMetrics.ErrorRate,
		advisor.MarketplaceEfficiency: r.EfficiencyScores.MarketplaceEfficiency,
		advisor.CustomerSatisfaction:  r.UserExperience.CustomerSatisfaction,
	}
}

// decimals converts big integers to their decimal text and remembers the
// first unset field.
type decimals struct {
	group string
	err   error
}

func (d *decimals) str(field string, v *big.Int) string {
	if v == nil {
		if d.err == nil {
			d.err = fmt.Errorf("%s.%s: %w", d.group, field, ErrMissingField)
		}
		return ""
	}
	return v.String()
}

func performanceGroup(m source.PerformanceMetrics) (PerformanceGroup, error) {
	d := decimals{group: "performanceMetrics"}
	g := PerformanceGroup{
		ResponseTime:     d.str("responseTime", m.ResponseTime),
		TransactionSpeed: d.str("transactionSpeed", m.TransactionSpeed),
		Throughput:       d.str("throughput", m.Throughput),
		Uptime:           d.str("uptime", m.Uptime),
		ErrorRate:        d.str("errorRate", m.ErrorRate),
		GasEfficiency:    d.str("gasEfficiency", m.GasEfficiency),
	}
	return g, d.err
}

func efficiencyGroup(m source.EfficiencyScores) (EfficiencyGroup, error) {
	d := decimals{group: "efficiencyScores"}
	g := EfficiencyGroup{
		MarketplaceEfficiency: d.str("marketplaceEfficiency", m.MarketplaceEfficiency),
		ListingEfficiency:     d.str("listingEfficiency", m.ListingEfficiency),
		TradingEfficiency:     d.str("tradingEfficiency", m.TradingEfficiency),
		UserEngagement:        d.str("userEngagement", m.UserEngagement),
		RevenueEfficiency:     d.str("revenueEfficiency", m.RevenueEfficiency),
	}
	return g, d.err
}

func userExperienceGroup(m source.UserExperience) (UserExperienceGroup, error) {
	d := decimals{group: "userExperience"}
	g := UserExperienceGroup{
		InterfaceUsability:   d.str("interfaceUsability", m.InterfaceUsability),
		TransactionEase:      d.str("transactionEase", m.TransactionEase),
		MobileCompatibility:  d.str("mobileCompatibility", m.MobileCompatibility),
		LoadingSpeed:         d.str("loadingSpeed", m.LoadingSpeed),
		CustomerSatisfaction: d.str("customerSatisfaction", m.CustomerSatisfaction),
	}
	return g, d.err
}

func scalabilityGroup(m source.Scalability) (ScalabilityGroup, error) {
	d := decimals{group: "scalability"}
	g := ScalabilityGroup{
		UserCapacity:        d.str("userCapacity", m.UserCapacity),
		TransactionCapacity: d.str("transactionCapacity", m.TransactionCapacity),
		StorageCapacity:     d.str("storageCapacity", m.StorageCapacity),
		NetworkCapacity:     d.str("networkCapacity", m.NetworkCapacity),
		FutureGrowth:        d.str("futureGrowth", m.FutureGrowth),
	}
	return g, d.err
}
