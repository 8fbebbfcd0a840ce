package domain

import "time"

// AssetKind identifies what kind of instrument a leg holds.
type AssetKind string

const (
	AssetStock  AssetKind = "Stock"
	AssetOption AssetKind = "Option"
)

// OptionType identifies the option right of a leg. Stock legs carry none.
type OptionType string

const (
	OptionCall OptionType = "Call"
	OptionPut  OptionType = "Put"
	OptionNone OptionType = ""
)

// Greeks holds per-leg option greeks. Fields are nil when the upstream
// feed did not supply them.
type Greeks struct {
	Delta *float64 `json:"delta,omitempty"`
	Gamma *float64 `json:"gamma,omitempty"`
	Theta *float64 `json:"theta,omitempty"`
	Vega  *float64 `json:"vega,omitempty"`
}

// Leg is one normalized option or stock position. Quantity is signed:
// positive for long, negative for short. Legs are immutable once built.
type Leg struct {
	Underlying string     `json:"underlying"`
	Kind       AssetKind  `json:"kind"`
	Quantity   float64    `json:"quantity"`
	OptionType OptionType `json:"option_type,omitempty"`
	Strike     *float64   `json:"strike,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	OpenDate   *time.Time `json:"open_date,omitempty"`
	CostBasis  float64    `json:"cost_basis"`
	OpenPL     float64    `json:"open_pl"`
	Greeks     Greeks     `json:"greeks"`
}

// IsOption reports whether the leg is an option leg.
func (l Leg) IsOption() bool {
	return l.Kind == AssetOption
}

// IsShort reports whether the leg is net short.
func (l Leg) IsShort() bool {
	return l.Quantity < 0
}

// DaysToExpiration returns whole days between asOf and the leg expiration,
// floored at zero. Returns nil for legs without an expiration.
func (l Leg) DaysToExpiration(asOf time.Time) *int {
	if l.Expiration == nil {
		return nil
	}
	days := int(l.Expiration.Sub(asOf).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
