// Package rules supplies the flat trading-rules configuration consumed
// by classifiers, behaviors and triage handlers. Every threshold has a
// documented default so an empty rule set is always usable.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule keys and their defaults.
const (
	// HarvestTarget is the fraction of max profit at which a winner
	// should be harvested.
	HarvestTarget        = "harvest_target"
	DefaultHarvestTarget = 0.50

	// VelocityTarget rewards fast wins: harvest at this smaller
	// fraction when reached within VelocityDays of open.
	VelocityTarget        = "velocity_target"
	DefaultVelocityTarget = 0.25
	VelocityDays          = "velocity_days"
	DefaultVelocityDays   = 10

	// GammaDTEWindow is the DTE at which gamma risk dominates theta.
	GammaDTEWindow        = "gamma_dte_window"
	DefaultGammaDTEWindow = 21

	// SizeThreatFraction is the max tolerable estimated loss as a
	// fraction of net liquidity.
	SizeThreatFraction        = "size_threat_fraction"
	DefaultSizeThreatFraction = 0.05

	// ToxicThetaFloor is the minimum theta/convexity efficiency ratio
	// below which collected decay no longer pays for gamma risk.
	ToxicThetaFloor        = "toxic_theta_floor"
	DefaultToxicThetaFloor = 0.10

	EarningsWindowDays        = "earnings_window_days"
	DefaultEarningsWindowDays = 7

	// ScalableVRPSpread is how far the tactical volatility markup must
	// sit above the structural baseline before adding to a position.
	ScalableVRPSpread        = "scalable_vrp_spread"
	DefaultScalableVRPSpread = 0.20

	// HedgeDeadbandFraction bounds the "dead money" P/L band for
	// directional hedges, as a fraction of the debit paid.
	HedgeDeadbandFraction        = "hedge_deadband_fraction"
	DefaultHedgeDeadbandFraction = 0.10

	// RealizedVolFloor floors the volatility used for expected-move
	// estimates so a sleepy tape cannot zero out the denominator.
	RealizedVolFloor        = "realized_vol_floor"
	DefaultRealizedVolFloor = 0.08

	// LongPremiumHarvestMultiple scales the harvest target for debit
	// positions, whose max profit is open ended.
	LongPremiumHarvestMultiple        = "long_premium_harvest_multiple"
	DefaultLongPremiumHarvestMultiple = 1.00
)

// Rules is a flat key to numeric threshold map.
type Rules map[string]float64

// Get returns the configured value for key, or def when absent.
func (r Rules) Get(key string, def float64) float64 {
	if r == nil {
		return def
	}
	if v, ok := r[key]; ok {
		return v
	}
	return def
}

// GetInt returns the configured value truncated to int, or def.
func (r Rules) GetInt(key string, def int) int {
	if r == nil {
		return def
	}
	if v, ok := r[key]; ok {
		return int(v)
	}
	return def
}

// Load reads a YAML rules file into a Rules map. A missing file is not
// an error; it yields an empty map so all defaults apply.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Rules{}, nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if r == nil {
		r = Rules{}
	}
	return r, nil
}
