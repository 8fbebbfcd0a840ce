package triage

import (
	"fmt"
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/modules/strategy"
	"github.com/aristath/options-sentinel/internal/rules"
)

// SizeThreatHandler tags positions whose estimated max loss is too
// large a slice of net liquidity.
type SizeThreatHandler struct {
	rules rules.Rules
}

// NewSizeThreatHandler creates a new size-threat handler.
func NewSizeThreatHandler(r rules.Rules) *SizeThreatHandler {
	return &SizeThreatHandler{rules: r}
}

// Name returns the handler name.
func (h *SizeThreatHandler) Name() string {
	return "size_threat"
}

// TagType returns the tag type this handler owns.
func (h *SizeThreatHandler) TagType() string {
	return domain.TagSizeThreat
}

// Priority returns the tag priority.
func (h *SizeThreatHandler) Priority() int {
	return domain.PrioritySizeThreat
}

// Handle estimates max loss and compares it against the configured
// fraction of net liquidity. Credit positions estimate with the credit
// received, debit positions with the debit paid; undefined-risk
// positions floor the estimate at twice the current loss, a policy
// heuristic rather than a closed-form bound.
func (h *SizeThreatHandler) Handle(req Request) Request {
	netLiq := req.Portfolio.NetLiquidity
	if netLiq <= 0 {
		return req
	}

	estMaxLoss := math.Abs(req.Cluster.NetCost)
	if strategy.UndefinedRisk(req.Cluster.StrategyID) {
		if floor := 2 * math.Max(0, -req.Cluster.NetPL); floor > estMaxLoss {
			estMaxLoss = floor
		}
	}

	fraction := estMaxLoss / netLiq
	threshold := h.rules.Get(rules.SizeThreatFraction, rules.DefaultSizeThreatFraction)
	if fraction <= threshold {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("estimated max loss %.0f is %.1f%% of net liquidity (limit %.1f%%)", estMaxLoss, fraction*100, threshold*100),
		Action:        "trim size or convert to defined risk",
	})
}
