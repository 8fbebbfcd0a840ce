package classification

import (
	"sort"

	"github.com/aristath/options-sentinel/internal/domain"
)

// ButterflyClassifier matches the butterfly ratio pattern: one long,
// two short, one long on a single option type (or the inverted short
// butterfly), including broken-wing variants. The body may arrive as
// one leg of quantity two or as two separate legs.
type ButterflyClassifier struct{}

// NewButterflyClassifier creates a new butterfly classifier.
func NewButterflyClassifier() *ButterflyClassifier {
	return &ButterflyClassifier{}
}

// Name returns the classifier name.
func (c *ButterflyClassifier) Name() string {
	return "butterfly"
}

// Priority returns the chain position band.
func (c *ButterflyClassifier) Priority() int {
	return 50
}

// CanClassify matches single-type, single-expiration groups whose net
// units form a k / -2k / k pattern across three distinct strikes.
func (c *ButterflyClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	if len(ctx.StockLegs) != 0 || ctx.MultipleExpirations {
		return false
	}
	if len(ctx.OptionLegs) < 3 || len(ctx.OptionLegs) > 4 {
		return false
	}

	calls := len(ctx.LongCalls) + len(ctx.ShortCalls)
	puts := len(ctx.LongPuts) + len(ctx.ShortPuts)
	if calls > 0 && puts > 0 {
		return false
	}

	strikes, net := netQuantityByStrike(ctx.OptionLegs)
	if len(strikes) != 3 {
		return false
	}

	wing := net[strikes[0]]
	body := net[strikes[1]]
	return wing != 0 && net[strikes[2]] == wing && body == -2*wing
}

// Classify splits symmetric from broken-wing butterflies by comparing
// wing widths.
func (c *ButterflyClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	strikes, _ := netQuantityByStrike(ctx.OptionLegs)
	lowerWidth := strikes[1] - strikes[0]
	upperWidth := strikes[2] - strikes[1]
	if lowerWidth != upperWidth {
		return StrategyBrokenWingButterfly
	}
	return StrategyButterfly
}

// netQuantityByStrike sums signed quantities per strike. Legs without
// a strike are data defects and are skipped.
func netQuantityByStrike(legs []domain.Leg) ([]float64, map[float64]float64) {
	net := map[float64]float64{}
	for _, leg := range legs {
		if leg.Strike == nil {
			continue
		}
		net[*leg.Strike] += leg.Quantity
	}

	strikes := make([]float64, 0, len(net))
	for s := range net {
		strikes = append(strikes, s)
	}
	sort.Float64s(strikes)
	return strikes, net
}
