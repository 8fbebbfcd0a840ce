package strategy

import (
	"fmt"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// LongPremiumBehavior covers debit archetypes: long options, debit
// verticals, back ratios and the poor-man's-covered variants. Debit
// positions have no short strike to defend and negative theta, so only
// the harvest question applies.
type LongPremiumBehavior struct{}

// NewLongPremiumBehavior creates the long-premium behavior.
func NewLongPremiumBehavior() *LongPremiumBehavior {
	return &LongPremiumBehavior{}
}

// IsTested always reports false; there is no short strike to breach.
func (b *LongPremiumBehavior) IsTested(cluster domain.StrategyCluster, price float64) bool {
	return false
}

// CheckHarvest fires when P/L reaches the harvest target scaled by the
// long-premium multiple of the debit paid. Debit max profit is often
// open ended, so the debit itself stands in for it.
func (b *LongPremiumBehavior) CheckHarvest(cluster domain.StrategyCluster, r rules.Rules) *domain.TriageTag {
	if cluster.NetCost <= 0 {
		return nil
	}

	target := r.Get(rules.HarvestTarget, rules.DefaultHarvestTarget) *
		r.Get(rules.LongPremiumHarvestMultiple, rules.DefaultLongPremiumHarvestMultiple) *
		cluster.NetCost
	if cluster.NetPL < target {
		return nil
	}

	return &domain.TriageTag{
		Type:          domain.TagHarvest,
		Priority:      domain.PriorityHarvest,
		Justification: fmt.Sprintf("P/L %.2f above harvest level %.2f on debit %.2f", cluster.NetPL, target, cluster.NetCost),
		Action:        "take profit or roll up",
	}
}

// CheckToxicTheta never fires; debit positions pay theta rather than
// collect it.
func (b *LongPremiumBehavior) CheckToxicTheta(cluster domain.StrategyCluster, metrics *domain.MarketMetrics, r rules.Rules) *domain.TriageTag {
	return nil
}
