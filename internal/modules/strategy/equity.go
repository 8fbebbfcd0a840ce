package strategy

import (
	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// EquityBehavior covers plain stock clusters. None of the option
// management questions apply to shares.
type EquityBehavior struct{}

// NewEquityBehavior creates the equity behavior.
func NewEquityBehavior() *EquityBehavior {
	return &EquityBehavior{}
}

// IsTested always reports false.
func (b *EquityBehavior) IsTested(cluster domain.StrategyCluster, price float64) bool {
	return false
}

// CheckHarvest never fires for shares.
func (b *EquityBehavior) CheckHarvest(cluster domain.StrategyCluster, r rules.Rules) *domain.TriageTag {
	return nil
}

// CheckToxicTheta never fires for shares.
func (b *EquityBehavior) CheckToxicTheta(cluster domain.StrategyCluster, metrics *domain.MarketMetrics, r rules.Rules) *domain.TriageTag {
	return nil
}
