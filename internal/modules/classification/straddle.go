package classification

import "github.com/aristath/options-sentinel/internal/domain"

// StraddleStrangleClassifier matches two option legs of opposite types
// on the same side of the market: straddles and strangles.
type StraddleStrangleClassifier struct{}

// NewStraddleStrangleClassifier creates a new straddle/strangle
// classifier.
func NewStraddleStrangleClassifier() *StraddleStrangleClassifier {
	return &StraddleStrangleClassifier{}
}

// Name returns the classifier name.
func (c *StraddleStrangleClassifier) Name() string {
	return "straddle_strangle"
}

// Priority returns the chain position band.
func (c *StraddleStrangleClassifier) Priority() int {
	return 90
}

// CanClassify matches exactly two option legs of opposite types with
// the same direction (both short or both long) and known strikes.
func (c *StraddleStrangleClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	if len(ctx.StockLegs) != 0 || len(ctx.OptionLegs) != 2 {
		return false
	}
	a, b := ctx.OptionLegs[0], ctx.OptionLegs[1]
	return a.OptionType != b.OptionType &&
		a.IsShort() == b.IsShort() &&
		a.Strike != nil && b.Strike != nil
}

// Classify splits on strike equality and direction: same strike makes
// a straddle, different strikes a strangle.
func (c *StraddleStrangleClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	a, b := ctx.OptionLegs[0], ctx.OptionLegs[1]
	short := a.IsShort()

	if *a.Strike == *b.Strike {
		if short {
			return StrategyShortStraddle
		}
		return StrategyLongStraddle
	}
	if short {
		return StrategyShortStrangle
	}
	return StrategyLongStrangle
}
