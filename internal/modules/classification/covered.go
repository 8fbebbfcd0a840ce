package classification

import "github.com/aristath/options-sentinel/internal/domain"

// CoveredClassifier matches one stock leg paired with option legs on
// the same underlying: covered calls and puts, collars, married puts.
type CoveredClassifier struct{}

// NewCoveredClassifier creates a new covered-position classifier.
func NewCoveredClassifier() *CoveredClassifier {
	return &CoveredClassifier{}
}

// Name returns the classifier name.
func (c *CoveredClassifier) Name() string {
	return "covered"
}

// Priority returns the chain position band.
func (c *CoveredClassifier) Priority() int {
	return 20
}

// CanClassify matches exactly one stock leg plus at least one option
// leg.
func (c *CoveredClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return len(ctx.StockLegs) == 1 && len(ctx.OptionLegs) >= 1
}

// Classify refines the stock/option pairing.
func (c *CoveredClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	stock := ctx.StockLegs[0]
	longStock := !stock.IsShort()

	switch {
	case longStock && len(ctx.OptionLegs) == 1 && len(ctx.ShortCalls) == 1:
		return StrategyCoveredCall
	case longStock && len(ctx.OptionLegs) == 1 && len(ctx.LongPuts) == 1:
		return StrategyMarriedPut
	case !longStock && len(ctx.OptionLegs) == 1 && len(ctx.ShortPuts) == 1:
		return StrategyCoveredPut
	case longStock && len(ctx.OptionLegs) == 2 && len(ctx.ShortCalls) == 1 && len(ctx.LongPuts) == 1:
		return StrategyCollar
	}
	return StrategyCoveredCombo
}
