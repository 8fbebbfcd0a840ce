package triage

import (
	"fmt"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// GammaHandler tags any option position inside the gamma window,
// tested or not.
type GammaHandler struct {
	rules rules.Rules
}

// NewGammaHandler creates a new gamma handler.
func NewGammaHandler(r rules.Rules) *GammaHandler {
	return &GammaHandler{rules: r}
}

// Name returns the handler name.
func (h *GammaHandler) Name() string {
	return "gamma"
}

// TagType returns the tag type this handler owns.
func (h *GammaHandler) TagType() string {
	return domain.TagGamma
}

// Priority returns the tag priority.
func (h *GammaHandler) Priority() int {
	return domain.PriorityGamma
}

// Handle fires whenever minimum DTE is within the gamma window.
func (h *GammaHandler) Handle(req Request) Request {
	if req.Cluster.OptionLegCount() == 0 {
		return req
	}
	window := h.rules.GetInt(rules.GammaDTEWindow, rules.DefaultGammaDTEWindow)
	if req.Cluster.DaysToExpiration > window {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("%d DTE is inside the %d-day gamma window", req.Cluster.DaysToExpiration, window),
		Action:        "consider rolling to the next cycle",
	})
}
