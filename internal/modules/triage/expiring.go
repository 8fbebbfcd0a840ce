package triage

import "github.com/aristath/options-sentinel/internal/domain"

// ExpiringHandler tags positions whose nearest option expiration is
// today. Nothing outranks an expiration.
type ExpiringHandler struct{}

// NewExpiringHandler creates a new expiring handler.
func NewExpiringHandler() *ExpiringHandler {
	return &ExpiringHandler{}
}

// Name returns the handler name.
func (h *ExpiringHandler) Name() string {
	return "expiring"
}

// TagType returns the tag type this handler owns.
func (h *ExpiringHandler) TagType() string {
	return domain.TagExpiring
}

// Priority returns the tag priority.
func (h *ExpiringHandler) Priority() int {
	return domain.PriorityExpiring
}

// Handle fires when the minimum DTE across option legs is zero.
func (h *ExpiringHandler) Handle(req Request) Request {
	if req.Cluster.OptionLegCount() == 0 || req.Cluster.DaysToExpiration != 0 {
		return req
	}
	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: "an option leg expires today",
		Action:        "close or roll before the bell",
	})
}
