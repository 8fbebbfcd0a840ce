package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStrategyID(t *testing.T) {
	tests := []struct {
		name    string
		display string
		netCost float64
		want    string
	}{
		{"stock", "Stock", 0, IDStock},
		{"short stock", "Short Stock", 0, IDShortStock},
		{"short strangle", "Short Strangle", -350, IDShortStrangle},
		{"iron condor", "Iron Condor", -120, IDIronCondor},
		{"jade lizard", "Jade Lizard", -600, IDJadeLizard},
		{"covered call", "Covered Call", 9800, IDCoveredCall},
		{"pmcc", "Poor Man's Covered Call", 1650, IDPMCC},

		// Cost-sign conditionals.
		{"call vertical credit", "Vertical Spread (Call)", -50, IDShortCallVertical},
		{"call vertical debit", "Vertical Spread (Call)", 50, IDLongCallVertical},
		{"put vertical credit", "Vertical Spread (Put)", -80, IDShortPutVertical},
		{"put vertical debit", "Vertical Spread (Put)", 80, IDLongPutVertical},
		{"butterfly debit", "Butterfly", 35, IDLongButterfly},
		{"butterfly credit", "Butterfly", -35, IDShortButterfly},

		{"back ratio", "Back Ratio Spread", 60, IDBackRatioSpread},
		{"ratio residual", "Ratio Spread", -200, IDRatioSpread},
		{"unknown name", "Custom/Combo", 0, ""},
		{"empty name", "", 0, ""},
		{"case insensitive", "IRON CONDOR", -10, IDIronCondor},
		{"whitespace trimmed", "  Short Put  ", -90, IDShortPut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStrategyID(tt.display, tt.netCost))
		})
	}
}

func TestMapStrategyIDBrokenWingBeforeButterflyRule(t *testing.T) {
	// "Broken Wing Butterfly" contains "butterfly" but must map direct,
	// independent of cost sign.
	assert.Equal(t, IDBrokenWingButterfly, MapStrategyID("Broken Wing Butterfly", -40))
	assert.Equal(t, IDBrokenWingButterfly, MapStrategyID("Broken Wing Butterfly", 40))
}

func TestMapStrategyIDIdempotent(t *testing.T) {
	first := MapStrategyID("Vertical Spread (Call)", -50)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MapStrategyID("Vertical Spread (Call)", -50))
	}
}
