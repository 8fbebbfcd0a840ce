package triage

import (
	"fmt"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// DefenseHandler tags tested positions inside the gamma window, where
// a defensive roll still buys something.
type DefenseHandler struct {
	rules rules.Rules
}

// NewDefenseHandler creates a new defense handler.
func NewDefenseHandler(r rules.Rules) *DefenseHandler {
	return &DefenseHandler{rules: r}
}

// Name returns the handler name.
func (h *DefenseHandler) Name() string {
	return "defense"
}

// TagType returns the tag type this handler owns.
func (h *DefenseHandler) TagType() string {
	return domain.TagDefense
}

// Priority returns the tag priority.
func (h *DefenseHandler) Priority() int {
	return domain.PriorityDefense
}

// Handle fires when the behavior reports a breached short strike and
// DTE sits within the gamma window. Without a reference price the
// tested question is inconclusive and nothing fires.
func (h *DefenseHandler) Handle(req Request) Request {
	if req.Behavior == nil || req.Cluster.OptionLegCount() == 0 {
		return req
	}
	if req.Metrics == nil || req.Metrics.Price == nil {
		return req
	}

	window := h.rules.GetInt(rules.GammaDTEWindow, rules.DefaultGammaDTEWindow)
	if req.Cluster.DaysToExpiration > window {
		return req
	}
	if !req.Behavior.IsTested(req.Cluster, *req.Metrics.Price) {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("short strike breached with %d DTE (window %d)", req.Cluster.DaysToExpiration, window),
		Action:        "roll the tested side out and away",
	})
}
