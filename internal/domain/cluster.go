package domain

import "time"

// StrategyCluster is a classified group of legs on one underlying.
// It is built once per triage run and never mutated; a new run builds
// a new cluster from the same legs.
type StrategyCluster struct {
	Underlying string `json:"underlying"`
	// Strategy is the human-readable archetype name, e.g. "Iron Condor".
	Strategy string `json:"strategy"`
	// StrategyID is the canonical machine key, e.g. "iron_condor".
	// Empty when no mapping exists for the display name.
	StrategyID string `json:"strategy_id,omitempty"`
	Legs       []Leg  `json:"legs"`
	// NetCost is the signed sum of leg cost bases. Negative means the
	// position was opened for a credit.
	NetCost float64 `json:"net_cost"`
	NetPL   float64 `json:"net_pl"`
	Greeks  Greeks  `json:"greeks"`
	// DaysToExpiration is the minimum DTE across option legs only.
	// Zero when the cluster holds no option legs.
	DaysToExpiration int `json:"days_to_expiration"`
	// DaysOpen is days since the earliest leg open date, nil when no
	// leg carries an open date.
	DaysOpen *int `json:"days_open,omitempty"`
}

// NewStrategyCluster derives the cluster aggregates from a leg group.
// asOf anchors all date arithmetic so repeated runs over the same
// inputs produce identical clusters.
func NewStrategyCluster(underlying, strategy, strategyID string, legs []Leg, asOf time.Time) StrategyCluster {
	c := StrategyCluster{
		Underlying: underlying,
		Strategy:   strategy,
		StrategyID: strategyID,
		Legs:       legs,
	}

	var minDTE *int
	var earliestOpen *time.Time
	for _, leg := range legs {
		c.NetCost += leg.CostBasis
		c.NetPL += leg.OpenPL
		c.Greeks = sumGreeks(c.Greeks, leg.Greeks)

		if leg.IsOption() {
			if dte := leg.DaysToExpiration(asOf); dte != nil && (minDTE == nil || *dte < *minDTE) {
				minDTE = dte
			}
		}
		if leg.OpenDate != nil && (earliestOpen == nil || leg.OpenDate.Before(*earliestOpen)) {
			earliestOpen = leg.OpenDate
		}
	}

	if minDTE != nil {
		c.DaysToExpiration = *minDTE
	}
	if earliestOpen != nil {
		days := int(asOf.Sub(*earliestOpen).Hours() / 24)
		if days < 0 {
			days = 0
		}
		c.DaysOpen = &days
	}

	return c
}

// OptionLegCount returns the number of option legs in the cluster.
func (c StrategyCluster) OptionLegCount() int {
	n := 0
	for _, leg := range c.Legs {
		if leg.IsOption() {
			n++
		}
	}
	return n
}

// IsCredit reports whether the cluster was opened for a net credit.
func (c StrategyCluster) IsCredit() bool {
	return c.NetCost < 0
}

// sumGreeks accumulates per-leg greeks. Leg greeks arrive already
// position-scaled from the broker export. Absent leg values are
// skipped; an aggregate field stays nil until at least one leg
// supplies it.
func sumGreeks(agg, leg Greeks) Greeks {
	agg.Delta = addNullable(agg.Delta, leg.Delta)
	agg.Gamma = addNullable(agg.Gamma, leg.Gamma)
	agg.Theta = addNullable(agg.Theta, leg.Theta)
	agg.Vega = addNullable(agg.Vega, leg.Vega)
	return agg
}

func addNullable(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	sum := *v
	if acc != nil {
		sum += *acc
	}
	return &sum
}
