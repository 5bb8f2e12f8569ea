package advisor

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidMetric marks a value the data source should never have produced.
var ErrInvalidMetric = errors.New("invalid metric value")

// Field names the rules read. They match the report's JSON keys.
const (
	ResponseTime          = "responseTime"
	ErrorRate             = "errorRate"
	MarketplaceEfficiency = "marketplaceEfficiency"
	CustomerSatisfaction  = "customerSatisfaction"
)

// Values maps a metric field name to its decimal string.
type Values map[string]string

// Decimal parses the named field.
func (v Values) Decimal(field string) (decimal.Decimal, error) {
	raw, ok := v[field]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%s: missing: %w", field, ErrInvalidMetric)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %q is not a number: %w", field, raw, ErrInvalidMetric)
	}
	return d, nil
}

// RuleResult represents the outcome of a single rule.
type RuleResult struct {
	Triggered      bool
	Signal         string
	Recommendation string
	Severity       Status
}

// Rule evaluates the metric values.
type Rule func(values Values) (RuleResult, error)

// ---------- RULES ----------

// Slow responses hurt every marketplace interaction. Milliseconds.
var ResponseTimeRule = above(
	ResponseTime, 2000,
	"Response time above 2000ms",
	"Optimize response time for better user experience",
)

// Error rate is a whole percentage.
var ErrorRateRule = above(
	ErrorRate, 2,
	"Error rate above 2%",
	"Reduce error rate through system optimization",
)

var MarketplaceEfficiencyRule = below(
	MarketplaceEfficiency, 70,
	"Marketplace efficiency below 70",
	"Improve marketplace operational efficiency",
)

var CustomerSatisfactionRule = below(
	CustomerSatisfaction, 80,
	"Customer satisfaction below 80",
	"Enhance user experience and satisfaction",
)

// DefaultRules is the fixed evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		ResponseTimeRule,
		ErrorRateRule,
		MarketplaceEfficiencyRule,
		CustomerSatisfactionRule,
	}
}

// above fires when field is strictly greater than limit.
func above(field string, limit int64, signal, recommendation string) Rule {
	return threshold(field, signal, recommendation, func(d decimal.Decimal) bool {
		return d.GreaterThan(decimal.NewFromInt(limit))
	})
}

// below fires when field is strictly less than limit.
func below(field string, limit int64, signal, recommendation string) Rule {
	return threshold(field, signal, recommendation, func(d decimal.Decimal) bool {
		return d.LessThan(decimal.NewFromInt(limit))
	})
}

func threshold(field, signal, recommendation string, fires func(decimal.Decimal) bool) Rule {
	return func(values Values) (RuleResult, error) {
		d, err := values.Decimal(field)
		if err != nil {
			return RuleResult{}, err
		}
		if !fires(d) {
			return RuleResult{}, nil
		}
		return RuleResult{
			Triggered:      true,
			Signal:         fmt.Sprintf("%s (%s=%s)", signal, field, d.String()),
			Recommendation: recommendation,
			Severity:       StatusDegraded,
		}, nil
	}
}
