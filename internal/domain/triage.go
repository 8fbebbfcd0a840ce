package domain

// Tag types produced by the triage chain. Each handler owns exactly
// one type.
const (
	TagExpiring        = "EXPIRING"
	TagHarvest         = "HARVEST"
	TagSizeThreat      = "SIZE_THREAT"
	TagDefense         = "DEFENSE"
	TagGamma           = "GAMMA"
	TagHedgeCheck      = "HEDGE_CHECK"
	TagToxicTheta      = "TOXIC"
	TagEarningsWarning = "EARNINGS_WARNING"
	TagScalable        = "SCALABLE"
)

// Tag priorities. Lower numbers are more urgent; the lowest collected
// priority becomes the primary action.
const (
	PriorityExpiring        = 0
	PriorityHarvest         = 10
	PrioritySizeThreat      = 20
	PriorityDefense         = 30
	PriorityGamma           = 40
	PriorityHedgeCheck      = 50
	PriorityToxicTheta      = 60
	PriorityEarningsWarning = 70
	PriorityScalable        = 90
)

// TriageTag is one finding attached to a cluster by a triage handler.
type TriageTag struct {
	Type          string `json:"type"`
	Priority      int    `json:"priority"`
	Justification string `json:"justification"`
	// Action is an optional follow-up suggestion, e.g. "close position".
	Action string `json:"action,omitempty"`
}

// TriageResult is the outcome of running the full handler chain over
// one cluster. Tags are ordered by ascending priority; Primary is the
// first of them, nil when nothing fired (a valid terminal state).
type TriageResult struct {
	Tags    []TriageTag `json:"tags"`
	Primary *TriageTag  `json:"primary,omitempty"`
}
