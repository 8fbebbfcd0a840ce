// Package strategy translates display names into canonical strategy
// identifiers and resolves per-strategy management behavior.
package strategy

import "strings"

// Canonical strategy identifiers.
const (
	IDStock      = "stock"
	IDShortStock = "short_stock"

	IDLongCall  = "long_call"
	IDShortCall = "short_call"
	IDLongPut   = "long_put"
	IDShortPut  = "short_put"

	IDCoveredCall  = "covered_call"
	IDCoveredPut   = "covered_put"
	IDCollar       = "collar"
	IDMarriedPut   = "married_put"
	IDCoveredCombo = "covered_combo"

	IDCalendarSpread = "calendar_spread"
	IDDiagonalSpread = "diagonal_spread"
	IDPMCC           = "poor_mans_covered_call"
	IDPMCP           = "poor_mans_covered_put"
	IDDoubleCalendar = "double_calendar"
	IDDoubleDiagonal = "double_diagonal"
	IDTimeSpread     = "time_spread"

	IDIronCondor             = "iron_condor"
	IDDynamicWidthIronCondor = "dynamic_width_iron_condor"
	IDIronFly                = "iron_fly"

	IDLongButterfly       = "long_butterfly"
	IDShortButterfly      = "short_butterfly"
	IDBrokenWingButterfly = "broken_wing_butterfly"

	IDJadeLizard    = "jade_lizard"
	IDTwistedSister = "twisted_sister"
	IDLizardSpread  = "lizard_spread"

	IDZEBRA           = "zebra"
	IDBackRatioSpread = "back_ratio_spread"
	IDRatioSpread     = "ratio_spread"

	IDShortCallVertical = "short_call_vertical_spread"
	IDLongCallVertical  = "long_call_vertical_spread"
	IDShortPutVertical  = "short_put_vertical_spread"
	IDLongPutVertical   = "long_put_vertical_spread"

	IDShortStraddle = "short_straddle"
	IDLongStraddle  = "long_straddle"
	IDShortStrangle = "short_strangle"
	IDLongStrangle  = "long_strangle"
)

// directIDs covers every display name whose canonical ID does not
// depend on the cost sign.
var directIDs = map[string]string{
	"stock":       IDStock,
	"short stock": IDShortStock,

	"long call":  IDLongCall,
	"short call": IDShortCall,
	"long put":   IDLongPut,
	"short put":  IDShortPut,

	"covered call":  IDCoveredCall,
	"covered put":   IDCoveredPut,
	"collar":        IDCollar,
	"married put":   IDMarriedPut,
	"covered combo": IDCoveredCombo,

	"calendar spread":         IDCalendarSpread,
	"diagonal spread":         IDDiagonalSpread,
	"poor man's covered call": IDPMCC,
	"poor man's covered put":  IDPMCP,
	"double calendar":         IDDoubleCalendar,
	"double diagonal":         IDDoubleDiagonal,
	"time spread":             IDTimeSpread,

	"iron condor":               IDIronCondor,
	"dynamic width iron condor": IDDynamicWidthIronCondor,
	"iron fly":                  IDIronFly,

	"broken wing butterfly": IDBrokenWingButterfly,

	"jade lizard":    IDJadeLizard,
	"twisted sister": IDTwistedSister,
	"lizard spread":  IDLizardSpread,

	"zebra": IDZEBRA,

	"short straddle": IDShortStraddle,
	"long straddle":  IDLongStraddle,
	"short strangle": IDShortStrangle,
	"long strangle":  IDLongStrangle,
}

// conditionalRule resolves names whose canonical ID depends on the
// cost sign. Rules are checked in order; first match wins.
type conditionalRule struct {
	substr string
	id     func(name string, netCost float64) string
}

var conditionalRules = []conditionalRule{
	{
		substr: "vertical spread",
		id: func(name string, netCost float64) string {
			call := strings.Contains(name, "call")
			credit := netCost < 0
			switch {
			case call && credit:
				return IDShortCallVertical
			case call:
				return IDLongCallVertical
			case credit:
				return IDShortPutVertical
			default:
				return IDLongPutVertical
			}
		},
	},
	{
		substr: "butterfly",
		id: func(name string, netCost float64) string {
			if netCost < 0 {
				return IDShortButterfly
			}
			return IDLongButterfly
		},
	},
}

// MapStrategyID translates a display name plus net-cost sign into the
// canonical strategy ID. Returns "" when no mapping exists; callers
// treat that as unclassified and fall back to generic behavior.
func MapStrategyID(displayName string, netCost float64) string {
	name := strings.ToLower(strings.TrimSpace(displayName))

	if id, ok := directIDs[name]; ok {
		return id
	}

	for _, rule := range conditionalRules {
		if strings.Contains(name, rule.substr) {
			return rule.id(name, netCost)
		}
	}

	// Residual patterns for ratio and backspread naming variants.
	if strings.Contains(name, "back ratio") || strings.Contains(name, "backspread") {
		return IDBackRatioSpread
	}
	if strings.Contains(name, "ratio") {
		return IDRatioSpread
	}

	return ""
}
