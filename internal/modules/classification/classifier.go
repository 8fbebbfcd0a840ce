package classification

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/domain"
)

// Strategy names with special meaning to the chain.
const (
	// StrategyEmpty names an empty leg group, returned without
	// consulting any classifier.
	StrategyEmpty = "Empty"
	// StrategyFallback names any leg shape no classifier recognizes.
	StrategyFallback = "Custom/Combo"
)

// Classifier recognizes one strategy archetype family. CanClassify is
// the cheap shape test; Classify refines the match into a display name
// and is only called after CanClassify returned true. Priority is a
// construction-time constant; lower values are checked first.
type Classifier interface {
	Name() string
	Priority() int
	CanClassify(legs []domain.Leg, ctx *Context) bool
	Classify(legs []domain.Leg, ctx *Context) string
}

// Chain is an immutable, priority-ordered list of classifiers. The
// first classifier whose shape test passes names the strategy; nothing
// after it runs. Safe for concurrent use once constructed.
type Chain struct {
	classifiers []Classifier
	log         zerolog.Logger
}

// NewChain builds a chain from the given classifiers, stable-sorted
// ascending by priority so insertion order breaks ties.
func NewChain(log zerolog.Logger, classifiers ...Classifier) *Chain {
	sorted := make([]Classifier, len(classifiers))
	copy(sorted, classifiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	return &Chain{
		classifiers: sorted,
		log:         log.With().Str("component", "classifier_chain").Logger(),
	}
}

// NewDefaultChain builds the chain with every known classifier.
func NewDefaultChain(log zerolog.Logger) *Chain {
	return NewChain(log,
		NewStockClassifier(),
		NewSingleOptionClassifier(),
		NewCoveredClassifier(),
		NewTimeSpreadClassifier(),
		NewCondorClassifier(),
		NewButterflyClassifier(),
		NewLizardClassifier(),
		NewRatioClassifier(),
		NewVerticalClassifier(),
		NewStraddleStrangleClassifier(),
	)
}

// Classify names the strategy for a leg group. Empty groups resolve to
// StrategyEmpty and unmatched shapes to StrategyFallback; the chain
// never errors for a non-empty group.
func (c *Chain) Classify(legs []domain.Leg, ctx *Context) string {
	if len(legs) == 0 {
		return StrategyEmpty
	}

	for _, classifier := range c.classifiers {
		if !classifier.CanClassify(legs, ctx) {
			continue
		}
		name := classifier.Classify(legs, ctx)
		c.log.Debug().
			Str("classifier", classifier.Name()).
			Int("priority", classifier.Priority()).
			Str("strategy", name).
			Msg("Classified leg group")
		return name
	}

	return StrategyFallback
}

// Len returns the number of classifiers in the chain.
func (c *Chain) Len() int {
	return len(c.classifiers)
}
