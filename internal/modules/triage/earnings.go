package triage

import (
	"fmt"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// EarningsHandler warns when the underlying reports earnings within
// the configured window. Without an earnings date the check is
// inconclusive and nothing fires.
type EarningsHandler struct {
	rules rules.Rules
}

// NewEarningsHandler creates a new earnings handler.
func NewEarningsHandler(r rules.Rules) *EarningsHandler {
	return &EarningsHandler{rules: r}
}

// Name returns the handler name.
func (h *EarningsHandler) Name() string {
	return "earnings_warning"
}

// TagType returns the tag type this handler owns.
func (h *EarningsHandler) TagType() string {
	return domain.TagEarningsWarning
}

// Priority returns the tag priority.
func (h *EarningsHandler) Priority() int {
	return domain.PriorityEarningsWarning
}

// Handle fires when the next earnings date falls inside the window.
func (h *EarningsHandler) Handle(req Request) Request {
	if req.Metrics == nil || req.Metrics.EarningsDate == nil {
		return req
	}

	days := int(req.Metrics.EarningsDate.Sub(req.AsOf).Hours() / 24)
	window := h.rules.GetInt(rules.EarningsWindowDays, rules.DefaultEarningsWindowDays)
	if days < 0 || days > window {
		return req
	}

	return req.WithTag(domain.TriageTag{
		Type:          h.TagType(),
		Priority:      h.Priority(),
		Justification: fmt.Sprintf("earnings in %d days (window %d)", days, window),
		Action:        "decide whether to hold through the print",
	})
}
