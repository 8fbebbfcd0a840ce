package triage

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// Handler evaluates one trading rule against a request. Each handler
// owns exactly one tag type and a fixed priority; its trigger must
// never depend on tags added by other handlers, so handlers can be
// added, removed or reordered without changing what fires.
type Handler interface {
	Name() string
	TagType() string
	Priority() int
	Handle(req Request) Request
}

// Chain is the collector pipeline: every handler always runs and the
// possibly tag-augmented request flows to the next one. Execution
// order does not have to match priority order; priority only decides
// which collected tag is primary. Read-only after construction.
type Chain struct {
	handlers []Handler
	log      zerolog.Logger
}

// NewChain builds a chain running the handlers in the given order.
func NewChain(log zerolog.Logger, handlers ...Handler) *Chain {
	return &Chain{
		handlers: handlers,
		log:      log.With().Str("component", "triage_chain").Logger(),
	}
}

// NewDefaultChain builds the chain with every known handler, each
// receiving its configuration slice at construction.
func NewDefaultChain(log zerolog.Logger, r rules.Rules) *Chain {
	return NewChain(log,
		NewExpiringHandler(),
		NewHarvestHandler(r),
		NewSizeThreatHandler(r),
		NewDefenseHandler(r),
		NewGammaHandler(r),
		NewHedgeCheckHandler(r),
		NewToxicThetaHandler(r),
		NewEarningsHandler(r),
		NewScalableHandler(r),
	)
}

// Run sends the request through every handler and assembles the
// result: tags sorted ascending by priority, first one primary. Ties
// keep collection order, so the earlier handler wins. Zero tags is a
// valid terminal state, not an error.
func (c *Chain) Run(req Request) domain.TriageResult {
	for _, h := range c.handlers {
		req = h.Handle(req)
	}

	tags := make([]domain.TriageTag, len(req.Tags()))
	copy(tags, req.Tags())
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Priority < tags[j].Priority
	})

	result := domain.TriageResult{Tags: tags}
	if len(tags) > 0 {
		result.Primary = &tags[0]
	}

	c.log.Debug().
		Str("underlying", req.Cluster.Underlying).
		Str("strategy", req.Cluster.Strategy).
		Int("tags", len(tags)).
		Msg("Triage complete")

	return result
}

// Len returns the number of handlers in the chain.
func (c *Chain) Len() int {
	return len(c.handlers)
}
