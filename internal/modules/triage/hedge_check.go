package triage

import (
	"fmt"
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/modules/strategy"
	"github.com/aristath/options-sentinel/internal/rules"
)

// HedgeCheckHandler tags directional hedges sitting in the dead-money
// band: neither paying off nor cheap enough to keep ignoring. Only
// meaningful while the portfolio is net long.
type HedgeCheckHandler struct {
	rules rules.Rules
}

// NewHedgeCheckHandler creates a new hedge-check handler.
func NewHedgeCheckHandler(r rules.Rules) *HedgeCheckHandler {
	return &HedgeCheckHandler{rules: r}
}

// Name returns the handler name.
func (h *HedgeCheckHandler) Name() string {
	return "hedge_check"
}

// TagType returns the tag type this handler owns.
func (h *HedgeCheckHandler) TagType() string {
	return domain.TagHedgeCheck
}

// Priority returns the tag priority.
func (h *HedgeCheckHandler) Priority() int {
	return domain.PriorityHedgeCheck
}

// Handle fires for hedge-qualifying strategies whose P/L sits within
// the configured deadband fraction of the debit paid.
func (h *HedgeCheckHandler) Handle(req Request) Request {
	if req.Portfolio.BetaWeightedDelta <= 0 {
		return req
	}
	if !strategy.DirectionalHedge(req.Cluster.StrategyID) {
		return req
	}

	debit := math.Abs(req.Cluster.NetCost)
	if debit == 0 {
		return req
	}
	deadband := h.rules.Get(rules.HedgeDeadbandFraction, rules.DefaultHedgeDeadbandFraction) * debit
	if math.Abs(req.Cluster.NetPL) > deadband {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("hedge P/L %.2f sits in the ±%.2f dead-money band", req.Cluster.NetPL, deadband),
		Action:        "re-evaluate whether the hedge still earns its slot",
	})
}
