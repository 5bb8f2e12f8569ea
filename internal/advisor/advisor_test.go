package advisor

import (
	"testing"

	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(responseTime, errorRate, efficiency, satisfaction string) Values {
	return Values{
		ResponseTime:          responseTime,
		ErrorRate:             errorRate,
		MarketplaceEfficiency: efficiency,
		CustomerSatisfaction:  satisfaction,
	}
}

func TestAdvisor_AllRulesFireInOrder(t *testing.T) {
	reg := metrics.NewRegistry()
	logger := logs.NewLogger(10, logs.DEBUG, nil)

	eval, err := NewAdvisor(reg, logger).Evaluate(values("2500", "3", "60", "75"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Optimize response time for better user experience",
		"Reduce error rate through system optimization",
		"Improve marketplace operational efficiency",
		"Enhance user experience and satisfaction",
	}, eval.Recommendations)
	assert.Equal(t, StatusDegraded, eval.Status)
	assert.Len(t, eval.Signals, 4)
	assert.Equal(t, int64(4), reg.Get(metrics.RulesEvaluatedTotal))
	assert.Equal(t, int64(4), reg.Get(metrics.RulesTriggeredTotal))
	assert.Len(t, logger.GetLast(10), 4)
}

func TestAdvisor_HealthyMarketplace(t *testing.T) {
	reg := metrics.NewRegistry()

	eval, err := NewAdvisor(reg, nil).Evaluate(values("1000", "1", "85", "90"))
	require.NoError(t, err)

	assert.Equal(t, StatusOK, eval.Status)
	assert.NotNil(t, eval.Recommendations)
	assert.Empty(t, eval.Recommendations)
	assert.Empty(t, eval.Signals)
	assert.Equal(t, int64(0), reg.Get(metrics.RulesTriggeredTotal))
}

func TestRules_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		field string
		value string
		fires bool
	}{
		{"response time at limit", ResponseTimeRule, ResponseTime, "2000", false},
		{"response time just over", ResponseTimeRule, ResponseTime, "2001", true},
		{"response time fractional over", ResponseTimeRule, ResponseTime, "2000.5", true},
		{"error rate at limit", ErrorRateRule, ErrorRate, "2", false},
		{"error rate over", ErrorRateRule, ErrorRate, "3", true},
		{"efficiency at limit", MarketplaceEfficiencyRule, MarketplaceEfficiency, "70", false},
		{"efficiency under", MarketplaceEfficiencyRule, MarketplaceEfficiency, "69", true},
		{"satisfaction at limit", CustomerSatisfactionRule, CustomerSatisfaction, "80", false},
		{"satisfaction under", CustomerSatisfactionRule, CustomerSatisfaction, "79.99", true},
		{"huge response time", ResponseTimeRule, ResponseTime, "115792089237316195423570985008687907853269984665640564039457584007913129639935", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.rule(Values{tt.field: tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.fires, result.Triggered)
		})
	}
}

func TestAdvisor_OnlySomeRulesFire(t *testing.T) {
	eval, err := NewAdvisor(nil, nil).Evaluate(values("2000", "5", "70", "10"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Reduce error rate through system optimization",
		"Enhance user experience and satisfaction",
	}, eval.Recommendations)
}

func TestAdvisor_InvalidValue(t *testing.T) {
	tests := []struct {
		name   string
		values Values
		field  string
	}{
		{"non numeric", values("fast", "1", "85", "90"), ResponseTime},
		{"empty", values("1000", "", "85", "90"), ErrorRate},
		{"missing", Values{ResponseTime: "1", ErrorRate: "1", MarketplaceEfficiency: "90"}, CustomerSatisfaction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAdvisor(nil, nil).Evaluate(tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMetric)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestAdvisor_CustomRuleOrder(t *testing.T) {
	rules := []Rule{CustomerSatisfactionRule, ResponseTimeRule}

	eval, err := NewAdvisorWithRules(rules, nil, nil).Evaluate(values("2500", "0", "100", "10"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Enhance user experience and satisfaction",
		"Optimize response time for better user experience",
	}, eval.Recommendations)
}
