package strategy

import (
	"fmt"
	"math"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// ShortThetaBehavior is the generic behavior covering the credit
// archetypes: strangles, condors, covered calls, naked shorts and
// lizards. It is the default for any ID without a dedicated entry.
type ShortThetaBehavior struct{}

// NewShortThetaBehavior creates the generic short-theta behavior.
func NewShortThetaBehavior() *ShortThetaBehavior {
	return &ShortThetaBehavior{}
}

// IsTested reports whether price has crossed any short strike into the
// money. Long legs and stock legs are never tested.
func (b *ShortThetaBehavior) IsTested(cluster domain.StrategyCluster, price float64) bool {
	for _, leg := range cluster.Legs {
		if !leg.IsOption() || !leg.IsShort() || leg.Strike == nil {
			continue
		}
		if leg.OptionType == domain.OptionCall && price >= *leg.Strike {
			return true
		}
		if leg.OptionType == domain.OptionPut && price <= *leg.Strike {
			return true
		}
	}
	return false
}

// CheckHarvest fires when P/L has reached the configured fraction of
// max profit, or the smaller velocity fraction within the velocity
// window after open (rewarding fast wins).
func (b *ShortThetaBehavior) CheckHarvest(cluster domain.StrategyCluster, r rules.Rules) *domain.TriageTag {
	if !cluster.IsCredit() {
		return nil
	}
	maxProfit := -cluster.NetCost
	if maxProfit <= 0 {
		return nil
	}

	ratio := cluster.NetPL / maxProfit
	target := r.Get(rules.HarvestTarget, rules.DefaultHarvestTarget)
	if ratio >= target {
		return &domain.TriageTag{
			Type:          domain.TagHarvest,
			Priority:      domain.PriorityHarvest,
			Justification: fmt.Sprintf("P/L at %.0f%% of max profit (target %.0f%%)", ratio*100, target*100),
			Action:        "close position and bank the win",
		}
	}

	velocityTarget := r.Get(rules.VelocityTarget, rules.DefaultVelocityTarget)
	velocityDays := r.GetInt(rules.VelocityDays, rules.DefaultVelocityDays)
	if cluster.DaysOpen != nil && *cluster.DaysOpen <= velocityDays && ratio >= velocityTarget {
		return &domain.TriageTag{
			Type:          domain.TagHarvest,
			Priority:      domain.PriorityHarvest,
			Justification: fmt.Sprintf("P/L at %.0f%% of max profit in %d days (fast win)", ratio*100, *cluster.DaysOpen),
			Action:        "close position and redeploy",
		}
	}

	return nil
}

// CheckToxicTheta flags credit positions whose decay no longer pays
// for the gamma carried. The efficiency ratio compares theta collected
// against the expected one-day P/L swing from convexity; below the
// configured floor the trade is renting risk for pennies. Missing
// greeks or volatility inputs make the check inconclusive (nil).
func (b *ShortThetaBehavior) CheckToxicTheta(cluster domain.StrategyCluster, metrics *domain.MarketMetrics, r rules.Rules) *domain.TriageTag {
	if !cluster.IsCredit() {
		return nil
	}
	theta := cluster.Greeks.Theta
	gamma := cluster.Greeks.Gamma
	if theta == nil || gamma == nil || *theta <= 0 || *gamma == 0 {
		return nil
	}
	if metrics == nil || metrics.Price == nil || metrics.IV == nil {
		return nil
	}

	vol := *metrics.IV
	if metrics.HVTactical != nil && *metrics.HVTactical > vol {
		vol = *metrics.HVTactical
	}
	if floor := r.Get(rules.RealizedVolFloor, rules.DefaultRealizedVolFloor); vol < floor {
		vol = floor
	}

	// One-day expected move off the annualized vol.
	move := *metrics.Price * vol / math.Sqrt(252)
	convexity := 0.5 * math.Abs(*gamma) * move * move
	if convexity == 0 {
		return nil
	}

	efficiency := math.Abs(*theta) / convexity
	floor := r.Get(rules.ToxicThetaFloor, rules.DefaultToxicThetaFloor)
	if efficiency >= floor {
		return nil
	}

	return &domain.TriageTag{
		Type:          domain.TagToxicTheta,
		Priority:      domain.PriorityToxicTheta,
		Justification: fmt.Sprintf("theta efficiency %.3f below floor %.2f", efficiency, floor),
		Action:        "roll out or close; decay no longer pays for gamma",
	}
}
