package triage

import (
	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// ToxicThetaHandler delegates the theta-efficiency check to the
// resolved strategy behavior. The tag priority is delegated too: the
// behavior fills it in.
type ToxicThetaHandler struct {
	rules rules.Rules
}

// NewToxicThetaHandler creates a new toxic-theta handler.
func NewToxicThetaHandler(r rules.Rules) *ToxicThetaHandler {
	return &ToxicThetaHandler{rules: r}
}

// Name returns the handler name.
func (h *ToxicThetaHandler) Name() string {
	return "toxic_theta"
}

// TagType returns the tag type this handler owns.
func (h *ToxicThetaHandler) TagType() string {
	return domain.TagToxicTheta
}

// Priority returns the tag priority.
func (h *ToxicThetaHandler) Priority() int {
	return domain.PriorityToxicTheta
}

// Handle appends the behavior's toxicity tag when one fires.
func (h *ToxicThetaHandler) Handle(req Request) Request {
	if req.Behavior == nil {
		return req
	}
	if tag := req.Behavior.CheckToxicTheta(req.Cluster, req.Metrics, h.rules); tag != nil {
		return req.WithTag(*tag)
	}
	return req
}
