package classification

import "github.com/aristath/options-sentinel/internal/domain"

// SingleOptionClassifier matches a group holding exactly one option
// leg and no stock.
type SingleOptionClassifier struct{}

// NewSingleOptionClassifier creates a new single-option classifier.
func NewSingleOptionClassifier() *SingleOptionClassifier {
	return &SingleOptionClassifier{}
}

// Name returns the classifier name.
func (c *SingleOptionClassifier) Name() string {
	return "single_option"
}

// Priority returns the chain position band.
func (c *SingleOptionClassifier) Priority() int {
	return 10
}

// CanClassify matches exactly one option leg and no stock legs.
func (c *SingleOptionClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return len(ctx.OptionLegs) == 1 && len(ctx.StockLegs) == 0
}

// Classify names the leg by type and direction.
func (c *SingleOptionClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	leg := ctx.OptionLegs[0]
	if leg.OptionType == domain.OptionCall {
		if leg.IsShort() {
			return StrategyShortCall
		}
		return StrategyLongCall
	}
	if leg.IsShort() {
		return StrategyShortPut
	}
	return StrategyLongPut
}
