package domain

import "time"

// MarketMetrics carries externally supplied per-symbol market data.
// Every field may be nil; checks that depend on an absent field must
// degrade to inconclusive, never crash.
type MarketMetrics struct {
	Symbol string `json:"symbol"`
	// Price is the underlying reference price.
	Price *float64 `json:"price,omitempty"`
	// IV is the 30-day implied volatility, annualized.
	IV           *float64 `json:"iv,omitempty"`
	IVPercentile *float64 `json:"iv_percentile,omitempty"`
	// HVStructural is the long-window (1y) realized volatility.
	HVStructural *float64 `json:"hv_structural,omitempty"`
	// HVTactical is the short-window (1m) realized volatility.
	HVTactical      *float64   `json:"hv_tactical,omitempty"`
	EarningsDate    *time.Time `json:"earnings_date,omitempty"`
	LiquidityRating *int       `json:"liquidity_rating,omitempty"`
}

// VRPStructural is implied vol over long-window realized vol, nil when
// either input is missing or the denominator is zero.
func (m *MarketMetrics) VRPStructural() *float64 {
	return volRatio(m.IV, m.HVStructural)
}

// VRPTactical is implied vol over short-window realized vol.
func (m *MarketMetrics) VRPTactical() *float64 {
	return volRatio(m.IV, m.HVTactical)
}

func volRatio(iv, hv *float64) *float64 {
	if iv == nil || hv == nil || *hv <= 0 {
		return nil
	}
	r := *iv / *hv
	return &r
}

// PortfolioContext is the portfolio-level state handlers need.
type PortfolioContext struct {
	NetLiquidity      float64         `json:"net_liquidity"`
	BetaWeightedDelta float64         `json:"beta_weighted_delta"`
	Holdings          map[string]bool `json:"holdings,omitempty"`
}
