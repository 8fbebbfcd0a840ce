package classification

import "github.com/aristath/options-sentinel/internal/domain"

// LizardClassifier matches the three-leg lizard family: one naked
// short option plus a two-leg credit spread on the opposite side.
type LizardClassifier struct{}

// NewLizardClassifier creates a new lizard classifier.
func NewLizardClassifier() *LizardClassifier {
	return &LizardClassifier{}
}

// Name returns the classifier name.
func (c *LizardClassifier) Name() string {
	return "lizard"
}

// Priority returns the chain position band.
func (c *LizardClassifier) Priority() int {
	return 60
}

// CanClassify matches exactly three option legs in one expiration
// forming either a short put plus call spread, or a short call plus
// put spread.
func (c *LizardClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	if len(ctx.StockLegs) != 0 || len(ctx.OptionLegs) != 3 || ctx.MultipleExpirations {
		return false
	}
	return c.isJadeShape(ctx) || c.isTwistedShape(ctx)
}

// Classify distinguishes the jade lizard (no upside risk when the
// credit exceeds the call-spread width) from its mirrored twisted
// sister, with a residual name when the credit falls short.
func (c *LizardClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	credit := -ctx.NetCost()

	if c.isJadeShape(ctx) {
		width := ctx.LongCallStrikes[0] - ctx.ShortCallStrikes[0]
		if credit > width {
			return StrategyJadeLizard
		}
		return StrategyLizardSpread
	}

	width := ctx.ShortPutStrikes[0] - ctx.LongPutStrikes[0]
	if credit > width {
		return StrategyTwistedSister
	}
	return StrategyLizardSpread
}

// isJadeShape is a naked short put below a call credit spread.
func (c *LizardClassifier) isJadeShape(ctx *Context) bool {
	return len(ctx.ShortPuts) == 1 && len(ctx.ShortCalls) == 1 && len(ctx.LongCalls) == 1 &&
		len(ctx.LongPuts) == 0 &&
		len(ctx.ShortPutStrikes) == 1 && len(ctx.ShortCallStrikes) == 1 && len(ctx.LongCallStrikes) == 1 &&
		ctx.ShortCallStrikes[0] < ctx.LongCallStrikes[0]
}

// isTwistedShape is a naked short call above a put credit spread.
func (c *LizardClassifier) isTwistedShape(ctx *Context) bool {
	return len(ctx.ShortCalls) == 1 && len(ctx.ShortPuts) == 1 && len(ctx.LongPuts) == 1 &&
		len(ctx.LongCalls) == 0 &&
		len(ctx.ShortCallStrikes) == 1 && len(ctx.ShortPutStrikes) == 1 && len(ctx.LongPutStrikes) == 1 &&
		ctx.LongPutStrikes[0] < ctx.ShortPutStrikes[0]
}
