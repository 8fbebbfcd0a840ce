// Package classification maps a group of legs sharing one underlying
// to a named strategy archetype. Classifiers are plain values arranged
// in a statically constructed, priority-ordered chain; the first one
// whose shape test passes names the strategy.
package classification

import (
	"errors"
	"sort"

	"github.com/aristath/options-sentinel/internal/domain"
)

// ErrEmptyPosition marks the structural defect of classifying an empty
// leg group. Callers skip the group and keep processing siblings.
var ErrEmptyPosition = errors.New("cannot classify an empty leg group")

// Context is the read-only summary of a leg group that classifiers
// match against. Built once per group; never mutated afterwards.
type Context struct {
	Legs       []domain.Leg
	StockLegs  []domain.Leg
	OptionLegs []domain.Leg

	LongCalls  []domain.Leg
	ShortCalls []domain.Leg
	LongPuts   []domain.Leg
	ShortPuts  []domain.Leg

	// Aggregate signed quantities per option partition.
	LongCallQty  float64
	ShortCallQty float64
	LongPutQty   float64
	ShortPutQty  float64

	// Strikes per partition, ascending. Option legs missing a strike
	// are data-quality defects and excluded from these lists.
	LongCallStrikes  []float64
	ShortCallStrikes []float64
	LongPutStrikes   []float64
	ShortPutStrikes  []float64

	// MultipleExpirations is set when option legs span more than one
	// distinct expiration date.
	MultipleExpirations bool

	// UnderlyingPrice is the reference price, nil when unknown.
	UnderlyingPrice *float64
}

// BuildContext partitions a leg group into the summary classifiers
// need. It fails only on an empty group; individual legs with missing
// option data degrade the strike lists but never the build.
func BuildContext(legs []domain.Leg, price *float64) (*Context, error) {
	if len(legs) == 0 {
		return nil, ErrEmptyPosition
	}

	ctx := &Context{
		Legs:            legs,
		UnderlyingPrice: price,
	}

	expirations := map[int64]bool{}
	for _, leg := range legs {
		if !leg.IsOption() {
			ctx.StockLegs = append(ctx.StockLegs, leg)
			continue
		}

		ctx.OptionLegs = append(ctx.OptionLegs, leg)
		if leg.Expiration != nil {
			expirations[leg.Expiration.Unix()] = true
		}

		switch {
		case leg.OptionType == domain.OptionCall && leg.IsShort():
			ctx.ShortCalls = append(ctx.ShortCalls, leg)
			ctx.ShortCallQty += leg.Quantity
			ctx.ShortCallStrikes = appendStrike(ctx.ShortCallStrikes, leg)
		case leg.OptionType == domain.OptionCall:
			ctx.LongCalls = append(ctx.LongCalls, leg)
			ctx.LongCallQty += leg.Quantity
			ctx.LongCallStrikes = appendStrike(ctx.LongCallStrikes, leg)
		case leg.IsShort():
			ctx.ShortPuts = append(ctx.ShortPuts, leg)
			ctx.ShortPutQty += leg.Quantity
			ctx.ShortPutStrikes = appendStrike(ctx.ShortPutStrikes, leg)
		default:
			ctx.LongPuts = append(ctx.LongPuts, leg)
			ctx.LongPutQty += leg.Quantity
			ctx.LongPutStrikes = appendStrike(ctx.LongPutStrikes, leg)
		}
	}

	sort.Float64s(ctx.LongCallStrikes)
	sort.Float64s(ctx.ShortCallStrikes)
	sort.Float64s(ctx.LongPutStrikes)
	sort.Float64s(ctx.ShortPutStrikes)

	ctx.MultipleExpirations = len(expirations) > 1

	return ctx, nil
}

// NetCost is the signed sum of leg cost bases; negative means credit.
func (c *Context) NetCost() float64 {
	total := 0.0
	for _, leg := range c.Legs {
		total += leg.CostBasis
	}
	return total
}

func appendStrike(strikes []float64, leg domain.Leg) []float64 {
	if leg.Strike == nil {
		return strikes
	}
	return append(strikes, *leg.Strike)
}
