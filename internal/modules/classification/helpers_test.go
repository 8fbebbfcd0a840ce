package classification

import (
	"time"

	"github.com/aristath/options-sentinel/internal/domain"
)

var testExpiry = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

func optionLeg(optType domain.OptionType, qty, strike float64) domain.Leg {
	return optionLegExp(optType, qty, strike, testExpiry)
}

func optionLegExp(optType domain.OptionType, qty, strike float64, expiry time.Time) domain.Leg {
	s := strike
	e := expiry
	return domain.Leg{
		Underlying: "XYZ",
		Kind:       domain.AssetOption,
		Quantity:   qty,
		OptionType: optType,
		Strike:     &s,
		Expiration: &e,
	}
}

func stockLeg(qty float64) domain.Leg {
	return domain.Leg{
		Underlying: "XYZ",
		Kind:       domain.AssetStock,
		Quantity:   qty,
	}
}

func withCost(leg domain.Leg, cost float64) domain.Leg {
	leg.CostBasis = cost
	return leg
}

func mustContext(legs []domain.Leg) *Context {
	ctx, err := BuildContext(legs, nil)
	if err != nil {
		panic(err)
	}
	return ctx
}
