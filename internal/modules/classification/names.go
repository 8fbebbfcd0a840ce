package classification

// Display names for the strategy archetypes the chain can produce.
const (
	StrategyStock      = "Stock"
	StrategyShortStock = "Short Stock"

	StrategyLongCall  = "Long Call"
	StrategyShortCall = "Short Call"
	StrategyLongPut   = "Long Put"
	StrategyShortPut  = "Short Put"

	StrategyCoveredCall  = "Covered Call"
	StrategyCoveredPut   = "Covered Put"
	StrategyCollar       = "Collar"
	StrategyMarriedPut   = "Married Put"
	StrategyCoveredCombo = "Covered Combo"

	StrategyCalendarSpread = "Calendar Spread"
	StrategyDiagonalSpread = "Diagonal Spread"
	StrategyPMCC           = "Poor Man's Covered Call"
	StrategyPMCP           = "Poor Man's Covered Put"
	StrategyDoubleCalendar = "Double Calendar"
	StrategyDoubleDiagonal = "Double Diagonal"
	StrategyTimeSpread     = "Time Spread"

	StrategyIronCondor             = "Iron Condor"
	StrategyDynamicWidthIronCondor = "Dynamic Width Iron Condor"
	StrategyIronFly                = "Iron Fly"

	StrategyButterfly           = "Butterfly"
	StrategyBrokenWingButterfly = "Broken Wing Butterfly"

	StrategyJadeLizard    = "Jade Lizard"
	StrategyTwistedSister = "Twisted Sister"
	StrategyLizardSpread  = "Lizard Spread"

	StrategyZEBRA           = "ZEBRA"
	StrategyBackRatioSpread = "Back Ratio Spread"
	StrategyRatioSpread     = "Ratio Spread"

	StrategyVerticalCall = "Vertical Spread (Call)"
	StrategyVerticalPut  = "Vertical Spread (Put)"

	StrategyShortStraddle = "Short Straddle"
	StrategyLongStraddle  = "Long Straddle"
	StrategyShortStrangle = "Short Strangle"
	StrategyLongStrangle  = "Long Strangle"
)
