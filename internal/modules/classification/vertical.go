package classification

import (
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
)

// VerticalClassifier matches two option legs of the same type with
// equal absolute quantities on different strikes.
type VerticalClassifier struct{}

// NewVerticalClassifier creates a new vertical-spread classifier.
func NewVerticalClassifier() *VerticalClassifier {
	return &VerticalClassifier{}
}

// Name returns the classifier name.
func (c *VerticalClassifier) Name() string {
	return "vertical"
}

// Priority returns the chain position band.
func (c *VerticalClassifier) Priority() int {
	return 80
}

// CanClassify matches exactly two option legs, same type, one long one
// short, equal absolute quantity, distinct strikes.
func (c *VerticalClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	if len(ctx.StockLegs) != 0 || len(ctx.OptionLegs) != 2 {
		return false
	}
	a, b := ctx.OptionLegs[0], ctx.OptionLegs[1]
	if a.OptionType != b.OptionType || a.IsShort() == b.IsShort() {
		return false
	}
	if math.Abs(a.Quantity) != math.Abs(b.Quantity) {
		return false
	}
	return a.Strike != nil && b.Strike != nil && *a.Strike != *b.Strike
}

// Classify names the vertical by option type; the credit/debit split
// into short and long verticals happens in the strategy ID mapping.
func (c *VerticalClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	if ctx.OptionLegs[0].OptionType == domain.OptionCall {
		return StrategyVerticalCall
	}
	return StrategyVerticalPut
}
