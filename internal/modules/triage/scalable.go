package triage

import (
	"fmt"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// ScalableHandler is the lowest-urgency signal: the tactical
// volatility markup has surged above the structural baseline, so an
// existing position has room to grow.
type ScalableHandler struct {
	rules rules.Rules
}

// NewScalableHandler creates a new scalable handler.
func NewScalableHandler(r rules.Rules) *ScalableHandler {
	return &ScalableHandler{rules: r}
}

// Name returns the handler name.
func (h *ScalableHandler) Name() string {
	return "scalable"
}

// TagType returns the tag type this handler owns.
func (h *ScalableHandler) TagType() string {
	return domain.TagScalable
}

// Priority returns the tag priority.
func (h *ScalableHandler) Priority() int {
	return domain.PriorityScalable
}

// Handle fires when the underlying is already held and the tactical
// VRP exceeds the structural VRP by the configured spread. Missing
// volatility inputs make the check inconclusive.
func (h *ScalableHandler) Handle(req Request) Request {
	if !req.Portfolio.Holdings[req.Cluster.Underlying] {
		return req
	}
	if req.Metrics == nil {
		return req
	}

	structural := req.Metrics.VRPStructural()
	tactical := req.Metrics.VRPTactical()
	if structural == nil || tactical == nil {
		return req
	}

	spread := h.rules.Get(rules.ScalableVRPSpread, rules.DefaultScalableVRPSpread)
	if *tactical-*structural < spread {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("tactical VRP %.2f vs structural %.2f (spread %.2f)", *tactical, *structural, spread),
		Action:        "room to add to the position",
	})
}
