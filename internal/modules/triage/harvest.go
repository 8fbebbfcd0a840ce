package triage

import (
	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// HarvestHandler delegates the profit-harvest decision to the resolved
// strategy behavior.
type HarvestHandler struct {
	rules rules.Rules
}

// NewHarvestHandler creates a new harvest handler.
func NewHarvestHandler(r rules.Rules) *HarvestHandler {
	return &HarvestHandler{rules: r}
}

// Name returns the handler name.
func (h *HarvestHandler) Name() string {
	return "harvest"
}

// TagType returns the tag type this handler owns.
func (h *HarvestHandler) TagType() string {
	return domain.TagHarvest
}

// Priority returns the tag priority.
func (h *HarvestHandler) Priority() int {
	return domain.PriorityHarvest
}

// Handle appends the behavior's harvest tag when one fires.
func (h *HarvestHandler) Handle(req Request) Request {
	if req.Behavior == nil {
		return req
	}
	if tag := req.Behavior.CheckHarvest(req.Cluster, h.rules); tag != nil {
		return req.WithTag(*tag)
	}
	return req
}
