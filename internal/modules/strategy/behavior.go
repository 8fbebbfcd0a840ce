package strategy

import (
	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/rules"
)

// Behavior answers the three management questions that differ by
// archetype. Implementations are stateless and safe for concurrent
// use. Check methods return nil when inputs are missing or the
// condition does not hold; they never error.
type Behavior interface {
	// IsTested reports whether the underlying price has breached a
	// short strike in the losing direction.
	IsTested(cluster domain.StrategyCluster, price float64) bool
	// CheckHarvest returns a harvest tag when the position has earned
	// enough of its potential to be taken off.
	CheckHarvest(cluster domain.StrategyCluster, r rules.Rules) *domain.TriageTag
	// CheckToxicTheta returns a toxicity tag when the decay collected
	// no longer compensates for the convexity risk carried.
	CheckToxicTheta(cluster domain.StrategyCluster, metrics *domain.MarketMetrics, r rules.Rules) *domain.TriageTag
}

// Strategy categories used as registry fallbacks when an ID has no
// dedicated behavior.
const (
	CategoryUndefinedRiskShortTheta = "undefined_risk_short_theta"
	CategoryNeutral                 = "neutral"
	CategoryShortVol                = "short_vol"
	CategoryLongPremium             = "long_premium"
	CategoryEquity                  = "equity"
)

// categories maps canonical IDs to a behavior category. IDs absent
// here resolve straight to the generic behavior.
var categories = map[string]string{
	IDShortStrangle: CategoryUndefinedRiskShortTheta,
	IDShortStraddle: CategoryUndefinedRiskShortTheta,
	IDShortCall:     CategoryUndefinedRiskShortTheta,
	IDShortPut:      CategoryUndefinedRiskShortTheta,
	IDRatioSpread:   CategoryUndefinedRiskShortTheta,
	IDTwistedSister: CategoryUndefinedRiskShortTheta,
	IDJadeLizard:    CategoryUndefinedRiskShortTheta,
	IDLizardSpread:  CategoryUndefinedRiskShortTheta,

	IDIronCondor:             CategoryNeutral,
	IDDynamicWidthIronCondor: CategoryNeutral,
	IDIronFly:                CategoryNeutral,
	IDShortButterfly:         CategoryNeutral,

	IDShortCallVertical: CategoryShortVol,
	IDShortPutVertical:  CategoryShortVol,
	IDCoveredCall:       CategoryShortVol,
	IDCoveredPut:        CategoryShortVol,
	IDCalendarSpread:    CategoryShortVol,
	IDDoubleCalendar:    CategoryShortVol,

	IDLongCall:         CategoryLongPremium,
	IDLongPut:          CategoryLongPremium,
	IDLongCallVertical: CategoryLongPremium,
	IDLongPutVertical:  CategoryLongPremium,
	IDLongStraddle:     CategoryLongPremium,
	IDLongStrangle:     CategoryLongPremium,
	IDLongButterfly:    CategoryLongPremium,
	IDBackRatioSpread:  CategoryLongPremium,
	IDZEBRA:            CategoryLongPremium,
	IDPMCC:             CategoryLongPremium,
	IDPMCP:             CategoryLongPremium,

	IDStock:      CategoryEquity,
	IDShortStock: CategoryEquity,
}

// UndefinedRisk reports whether the canonical ID carries theoretically
// unbounded loss.
func UndefinedRisk(id string) bool {
	return categories[id] == CategoryUndefinedRiskShortTheta
}

// DirectionalHedge reports whether the canonical ID qualifies as a
// portfolio hedge against a net-long book.
func DirectionalHedge(id string) bool {
	switch id {
	case IDLongPut, IDLongPutVertical, IDMarriedPut:
		return true
	}
	return false
}

// Resolver maps canonical strategy IDs to behavior objects. The
// registry is populated at construction and read-only afterwards; new
// archetypes plug in here without touching either chain.
type Resolver struct {
	byID       map[string]Behavior
	byCategory map[string]Behavior
	generic    Behavior
	log        zerolog.Logger
}

// NewResolver builds a resolver with the default registry.
func NewResolver(log zerolog.Logger) *Resolver {
	generic := NewShortThetaBehavior()
	longPremium := NewLongPremiumBehavior()
	equity := NewEquityBehavior()

	return &Resolver{
		byID: map[string]Behavior{
			IDStock:      equity,
			IDShortStock: equity,
		},
		byCategory: map[string]Behavior{
			CategoryLongPremium: longPremium,
			CategoryEquity:      equity,
		},
		generic: generic,
		log:     log.With().Str("component", "behavior_resolver").Logger(),
	}
}

// Resolve returns the behavior for a canonical ID, falling back from
// direct registration to category to the generic short-theta behavior.
// An empty ID (unmapped display name) resolves generic and is logged
// as a config gap, not a failure.
func (r *Resolver) Resolve(strategyID string) Behavior {
	if strategyID == "" {
		r.log.Debug().Msg("Unmapped strategy ID, using generic behavior")
		return r.generic
	}
	if b, ok := r.byID[strategyID]; ok {
		return b
	}
	if b, ok := r.byCategory[categories[strategyID]]; ok {
		return b
	}
	return r.generic
}
