// Package advisor turns marketplace metric values into recommendations.
package advisor

import (
	"nft-perfreport/internal/logs"
	"nft-perfreport/internal/metrics"
)

// Status summarises how many rules fired.
type Status string

const (
	StatusOK       Status = "OK"
	StatusDegraded Status = "DEGRADED"
)

// Evaluation is the outcome of running every rule once.
type Evaluation struct {
	Status          Status   `json:"status"`
	Signals         []string `json:"signals"`
	Recommendations []string `json:"recommendations"`
}

// Advisor evaluates a fixed, ordered rule set.
type Advisor struct {
	rules   []Rule
	metrics *metrics.Registry
	logger  *logs.Logger
}

// NewAdvisor creates an advisor over DefaultRules.
func NewAdvisor(reg *metrics.Registry, logger *logs.Logger) *Advisor {
	return NewAdvisorWithRules(DefaultRules(), reg, logger)
}

// NewAdvisorWithRules creates an advisor over rules, evaluated in slice order.
func NewAdvisorWithRules(rules []Rule, reg *metrics.Registry, logger *logs.Logger) *Advisor {
	return &Advisor{
		rules:   rules,
		metrics: reg,
		logger:  logger,
	}
}

// Evaluate runs every rule against values. Rules are independent: any
// number may fire, and recommendations keep rule order. The first value
// that cannot be parsed aborts the evaluation.
func (a *Advisor) Evaluate(values Values) (Evaluation, error) {
	eval := Evaluation{
		Status:          StatusOK,
		Signals:         []string{},
		Recommendations: []string{},
	}

	for _, rule := range a.rules {
		a.metrics.Inc(metrics.RulesEvaluatedTotal)

		result, err := rule(values)
		if err != nil {
			return Evaluation{}, err
		}
		if !result.Triggered {
			continue
		}

		a.metrics.Inc(metrics.RulesTriggeredTotal)
		eval.Signals = append(eval.Signals, result.Signal)
		eval.Recommendations = append(eval.Recommendations, result.Recommendation)
		if result.Severity == StatusDegraded {
			eval.Status = StatusDegraded
		}
		if a.logger != nil {
			a.logger.Warn(result.Signal)
		}
	}

	return eval, nil
}
