package classification

import "github.com/aristath/options-sentinel/internal/domain"

// StockClassifier matches a group holding a single stock leg and
// nothing else.
type StockClassifier struct{}

// NewStockClassifier creates a new stock classifier.
func NewStockClassifier() *StockClassifier {
	return &StockClassifier{}
}

// Name returns the classifier name.
func (c *StockClassifier) Name() string {
	return "stock"
}

// Priority returns the chain position band.
func (c *StockClassifier) Priority() int {
	return 0
}

// CanClassify matches exactly one stock leg and no option legs.
func (c *StockClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return len(ctx.StockLegs) == 1 && len(ctx.OptionLegs) == 0
}

// Classify distinguishes long from short stock.
func (c *StockClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	if ctx.StockLegs[0].IsShort() {
		return StrategyShortStock
	}
	return StrategyStock
}
