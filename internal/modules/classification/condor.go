package classification

import (
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
)

// CondorClassifier matches the four-leg, single-expiration condor
// family: one short call, one long call, one short put, one long put.
type CondorClassifier struct{}

// NewCondorClassifier creates a new condor classifier.
func NewCondorClassifier() *CondorClassifier {
	return &CondorClassifier{}
}

// Name returns the classifier name.
func (c *CondorClassifier) Name() string {
	return "condor"
}

// Priority returns the chain position band.
func (c *CondorClassifier) Priority() int {
	return 40
}

// CanClassify matches exactly four option legs in one expiration, one
// leg per call/put long/short partition, all with known strikes.
func (c *CondorClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return len(ctx.StockLegs) == 0 &&
		len(ctx.OptionLegs) == 4 &&
		!ctx.MultipleExpirations &&
		len(ctx.ShortCalls) == 1 && len(ctx.LongCalls) == 1 &&
		len(ctx.ShortPuts) == 1 && len(ctx.LongPuts) == 1 &&
		len(ctx.ShortCallStrikes) == 1 && len(ctx.LongCallStrikes) == 1 &&
		len(ctx.ShortPutStrikes) == 1 && len(ctx.LongPutStrikes) == 1
}

// Classify splits the condor family on short-strike and wing-width
// geometry. Equal short strikes make an iron fly; unequal wing widths
// a dynamic-width condor.
func (c *CondorClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	shortCall := ctx.ShortCallStrikes[0]
	longCall := ctx.LongCallStrikes[0]
	shortPut := ctx.ShortPutStrikes[0]
	longPut := ctx.LongPutStrikes[0]

	if shortCall == shortPut {
		return StrategyIronFly
	}

	callWidth := math.Abs(longCall - shortCall)
	putWidth := math.Abs(shortPut - longPut)
	if callWidth != putWidth {
		return StrategyDynamicWidthIronCondor
	}
	return StrategyIronCondor
}
