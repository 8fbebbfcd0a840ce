package classification

import (
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
)

// RatioClassifier matches two option legs of the same type with
// unequal absolute quantities: front ratios, back ratios and the ZEBRA
// variant.
type RatioClassifier struct{}

// NewRatioClassifier creates a new ratio-spread classifier.
func NewRatioClassifier() *RatioClassifier {
	return &RatioClassifier{}
}

// Name returns the classifier name.
func (c *RatioClassifier) Name() string {
	return "ratio"
}

// Priority returns the chain position band.
func (c *RatioClassifier) Priority() int {
	return 70
}

// CanClassify matches exactly two option legs of the same type, one
// long one short, with unequal absolute quantities.
func (c *RatioClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	if len(ctx.StockLegs) != 0 || len(ctx.OptionLegs) != 2 {
		return false
	}
	a, b := ctx.OptionLegs[0], ctx.OptionLegs[1]
	return a.OptionType == b.OptionType &&
		a.IsShort() != b.IsShort() &&
		math.Abs(a.Quantity) != math.Abs(b.Quantity)
}

// Classify splits the family on which side carries the extra units. A
// 2:1 long-to-short debit structure is the ZEBRA.
func (c *RatioClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	longQty := ctx.LongCallQty + ctx.LongPutQty
	shortQty := math.Abs(ctx.ShortCallQty + ctx.ShortPutQty)

	if longQty > shortQty {
		if longQty == 2*shortQty && ctx.NetCost() > 0 {
			return StrategyZEBRA
		}
		return StrategyBackRatioSpread
	}
	return StrategyRatioSpread
}
