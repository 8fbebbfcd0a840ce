package classification

import "github.com/aristath/options-sentinel/internal/domain"

// TimeSpreadClassifier matches option groups spanning more than one
// expiration: calendars, diagonals and their covered variants.
type TimeSpreadClassifier struct{}

// NewTimeSpreadClassifier creates a new time-spread classifier.
func NewTimeSpreadClassifier() *TimeSpreadClassifier {
	return &TimeSpreadClassifier{}
}

// Name returns the classifier name.
func (c *TimeSpreadClassifier) Name() string {
	return "time_spread"
}

// Priority returns the chain position band.
func (c *TimeSpreadClassifier) Priority() int {
	return 30
}

// CanClassify matches option-only groups spanning multiple
// expirations. Stock plus options is handled one band earlier.
func (c *TimeSpreadClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return len(ctx.StockLegs) == 0 && ctx.MultipleExpirations
}

// Classify refines the multi-expiration shape.
func (c *TimeSpreadClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	if len(ctx.OptionLegs) == 2 {
		return c.classifyPair(ctx)
	}

	// Four legs split one long and one short per option type make a
	// double calendar or double diagonal.
	if len(ctx.OptionLegs) == 4 &&
		len(ctx.LongCalls) == 1 && len(ctx.ShortCalls) == 1 &&
		len(ctx.LongPuts) == 1 && len(ctx.ShortPuts) == 1 {
		if strikesMatch(ctx.LongCallStrikes, ctx.ShortCallStrikes) &&
			strikesMatch(ctx.LongPutStrikes, ctx.ShortPutStrikes) {
			return StrategyDoubleCalendar
		}
		return StrategyDoubleDiagonal
	}

	return StrategyTimeSpread
}

func (c *TimeSpreadClassifier) classifyPair(ctx *Context) string {
	var long, short *domain.Leg
	for i := range ctx.OptionLegs {
		leg := &ctx.OptionLegs[i]
		if leg.IsShort() {
			short = leg
		} else {
			long = leg
		}
	}
	if long == nil || short == nil || long.OptionType != short.OptionType {
		return StrategyTimeSpread
	}
	if long.Strike == nil || short.Strike == nil {
		return StrategyTimeSpread
	}

	if *long.Strike == *short.Strike {
		return StrategyCalendarSpread
	}

	// A debit diagonal with the long strike on the covered side is the
	// poor man's covered variant.
	debit := ctx.NetCost() > 0
	if debit && long.OptionType == domain.OptionCall && *long.Strike < *short.Strike {
		return StrategyPMCC
	}
	if debit && long.OptionType == domain.OptionPut && *long.Strike > *short.Strike {
		return StrategyPMCP
	}
	return StrategyDiagonalSpread
}

func strikesMatch(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
