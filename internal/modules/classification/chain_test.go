package classification

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/options-sentinel/internal/domain"
)

func testChain() *Chain {
	return NewDefaultChain(zerolog.Nop())
}

func TestClassifyEmptyGroup(t *testing.T) {
	got := testChain().Classify(nil, nil)
	assert.Equal(t, StrategyEmpty, got)
}

func TestClassifyScenarios(t *testing.T) {
	far := testExpiry.AddDate(0, 1, 0)

	tests := []struct {
		name string
		legs []domain.Leg
		want string
	}{
		{
			name: "single long stock",
			legs: []domain.Leg{stockLeg(100)},
			want: StrategyStock,
		},
		{
			name: "single short stock",
			legs: []domain.Leg{stockLeg(-100)},
			want: StrategyShortStock,
		},
		{
			name: "single short put",
			legs: []domain.Leg{optionLeg(domain.OptionPut, -1, 95)},
			want: StrategyShortPut,
		},
		{
			name: "single long call",
			legs: []domain.Leg{optionLeg(domain.OptionCall, 2, 105)},
			want: StrategyLongCall,
		},
		{
			name: "covered call",
			legs: []domain.Leg{stockLeg(100), optionLeg(domain.OptionCall, -1, 110)},
			want: StrategyCoveredCall,
		},
		{
			name: "collar",
			legs: []domain.Leg{
				stockLeg(100),
				optionLeg(domain.OptionCall, -1, 110),
				optionLeg(domain.OptionPut, 1, 90),
			},
			want: StrategyCollar,
		},
		{
			name: "covered put",
			legs: []domain.Leg{stockLeg(-100), optionLeg(domain.OptionPut, -1, 90)},
			want: StrategyCoveredPut,
		},
		{
			name: "married put",
			legs: []domain.Leg{stockLeg(100), optionLeg(domain.OptionPut, 1, 95)},
			want: StrategyMarriedPut,
		},
		{
			name: "covered combo",
			legs: []domain.Leg{
				stockLeg(100),
				optionLeg(domain.OptionCall, -1, 110),
				optionLeg(domain.OptionPut, -1, 90),
			},
			want: StrategyCoveredCombo,
		},
		{
			name: "calendar spread",
			legs: []domain.Leg{
				optionLegExp(domain.OptionCall, -1, 100, testExpiry),
				optionLegExp(domain.OptionCall, 1, 100, far),
			},
			want: StrategyCalendarSpread,
		},
		{
			name: "poor man's covered call",
			legs: []domain.Leg{
				withCost(optionLegExp(domain.OptionCall, -1, 110, testExpiry), -150),
				withCost(optionLegExp(domain.OptionCall, 1, 80, far), 1800),
			},
			want: StrategyPMCC,
		},
		{
			name: "credit diagonal",
			legs: []domain.Leg{
				withCost(optionLegExp(domain.OptionCall, -1, 95, testExpiry), -700),
				withCost(optionLegExp(domain.OptionCall, 1, 110, far), 300),
			},
			want: StrategyDiagonalSpread,
		},
		{
			name: "double calendar",
			legs: []domain.Leg{
				optionLegExp(domain.OptionCall, -1, 105, testExpiry),
				optionLegExp(domain.OptionCall, 1, 105, far),
				optionLegExp(domain.OptionPut, -1, 95, testExpiry),
				optionLegExp(domain.OptionPut, 1, 95, far),
			},
			want: StrategyDoubleCalendar,
		},
		{
			name: "double diagonal",
			legs: []domain.Leg{
				optionLegExp(domain.OptionCall, -1, 105, testExpiry),
				optionLegExp(domain.OptionCall, 1, 110, far),
				optionLegExp(domain.OptionPut, -1, 95, testExpiry),
				optionLegExp(domain.OptionPut, 1, 90, far),
			},
			want: StrategyDoubleDiagonal,
		},
		{
			name: "iron condor",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionCall, 1, 105),
				optionLeg(domain.OptionPut, -1, 90),
				optionLeg(domain.OptionPut, 1, 85),
			},
			want: StrategyIronCondor,
		},
		{
			name: "iron fly",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 95),
				optionLeg(domain.OptionCall, 1, 105),
				optionLeg(domain.OptionPut, -1, 95),
				optionLeg(domain.OptionPut, 1, 85),
			},
			want: StrategyIronFly,
		},
		{
			name: "dynamic width iron condor",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionCall, 1, 110),
				optionLeg(domain.OptionPut, -1, 90),
				optionLeg(domain.OptionPut, 1, 85),
			},
			want: StrategyDynamicWidthIronCondor,
		},
		{
			name: "long call butterfly",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, 1, 95),
				optionLeg(domain.OptionCall, -2, 100),
				optionLeg(domain.OptionCall, 1, 105),
			},
			want: StrategyButterfly,
		},
		{
			name: "broken wing butterfly",
			legs: []domain.Leg{
				optionLeg(domain.OptionPut, 1, 80),
				optionLeg(domain.OptionPut, -2, 90),
				optionLeg(domain.OptionPut, 1, 95),
			},
			want: StrategyBrokenWingButterfly,
		},
		{
			name: "jade lizard",
			legs: []domain.Leg{
				withCost(optionLeg(domain.OptionPut, -1, 95), -450),
				withCost(optionLeg(domain.OptionCall, -1, 105), -300),
				withCost(optionLeg(domain.OptionCall, 1, 110), 150),
			},
			want: StrategyJadeLizard,
		},
		{
			name: "lizard with credit below width",
			legs: []domain.Leg{
				withCost(optionLeg(domain.OptionPut, -1, 95), -3),
				withCost(optionLeg(domain.OptionCall, -1, 105), -1.5),
				withCost(optionLeg(domain.OptionCall, 1, 110), 2.5),
			},
			want: StrategyLizardSpread,
		},
		{
			name: "twisted sister",
			legs: []domain.Leg{
				withCost(optionLeg(domain.OptionCall, -1, 110), -450),
				withCost(optionLeg(domain.OptionPut, -1, 95), -300),
				withCost(optionLeg(domain.OptionPut, 1, 90), 150),
			},
			want: StrategyTwistedSister,
		},
		{
			name: "zebra",
			legs: []domain.Leg{
				withCost(optionLeg(domain.OptionCall, 2, 95), 1200),
				withCost(optionLeg(domain.OptionCall, -1, 100), -400),
			},
			want: StrategyZEBRA,
		},
		{
			name: "back ratio spread",
			legs: []domain.Leg{
				withCost(optionLeg(domain.OptionPut, 3, 90), 600),
				withCost(optionLeg(domain.OptionPut, -1, 95), -700),
			},
			want: StrategyBackRatioSpread,
		},
		{
			name: "front ratio spread",
			legs: []domain.Leg{
				optionLeg(domain.OptionPut, 1, 95),
				optionLeg(domain.OptionPut, -2, 90),
			},
			want: StrategyRatioSpread,
		},
		{
			// Ratio spreads are same-type by definition; a mixed-type
			// unequal-quantity short pair is still a strangle.
			name: "unequal quantity short strangle",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionPut, -2, 90),
			},
			want: StrategyShortStrangle,
		},
		{
			name: "call vertical",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionCall, 1, 105),
			},
			want: StrategyVerticalCall,
		},
		{
			name: "put vertical",
			legs: []domain.Leg{
				optionLeg(domain.OptionPut, 1, 95),
				optionLeg(domain.OptionPut, -1, 90),
			},
			want: StrategyVerticalPut,
		},
		{
			name: "short strangle",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionPut, -1, 90),
			},
			want: StrategyShortStrangle,
		},
		{
			name: "short straddle",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, -1, 100),
				optionLeg(domain.OptionPut, -1, 100),
			},
			want: StrategyShortStraddle,
		},
		{
			name: "long straddle",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, 1, 100),
				optionLeg(domain.OptionPut, 1, 100),
			},
			want: StrategyLongStraddle,
		},
		{
			name: "long strangle",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, 1, 105),
				optionLeg(domain.OptionPut, 1, 95),
			},
			want: StrategyLongStrangle,
		},
		{
			name: "unrecognized combo falls back",
			legs: []domain.Leg{
				optionLeg(domain.OptionCall, 1, 100),
				optionLeg(domain.OptionCall, 1, 105),
			},
			want: StrategyFallback,
		},
		{
			name: "two stock legs fall back",
			legs: []domain.Leg{stockLeg(100), stockLeg(50)},
			want: StrategyFallback,
		},
	}

	chain := testChain()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mustContext(tt.legs)
			assert.Equal(t, tt.want, chain.Classify(tt.legs, ctx))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	legs := []domain.Leg{
		optionLeg(domain.OptionCall, -1, 100),
		optionLeg(domain.OptionPut, -1, 90),
	}

	chain := testChain()
	first := chain.Classify(legs, mustContext(legs))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, chain.Classify(legs, mustContext(legs)))
	}
}

func TestChainNeverReturnsEmptyNameForNonEmptyGroup(t *testing.T) {
	// A shape no classifier claims still gets the fallback label.
	legs := []domain.Leg{
		stockLeg(100),
		stockLeg(-50),
		optionLeg(domain.OptionCall, 1, 100),
	}
	got := testChain().Classify(legs, mustContext(legs))
	require.NotEmpty(t, got)
	assert.Equal(t, StrategyFallback, got)
}

type fixedClassifier struct {
	name     string
	priority int
	match    bool
}

func (f *fixedClassifier) Name() string  { return f.name }
func (f *fixedClassifier) Priority() int { return f.priority }
func (f *fixedClassifier) CanClassify(legs []domain.Leg, ctx *Context) bool {
	return f.match
}
func (f *fixedClassifier) Classify(legs []domain.Leg, ctx *Context) string {
	return f.name
}

func TestChainShortCircuitsByPriority(t *testing.T) {
	chain := NewChain(zerolog.Nop(),
		&fixedClassifier{name: "late", priority: 90, match: true},
		&fixedClassifier{name: "early", priority: 10, match: true},
		&fixedClassifier{name: "never", priority: 5, match: false},
	)

	legs := []domain.Leg{stockLeg(1)}
	assert.Equal(t, "early", chain.Classify(legs, mustContext(legs)))
}

func TestChainStableOrderOnEqualPriority(t *testing.T) {
	chain := NewChain(zerolog.Nop(),
		&fixedClassifier{name: "first", priority: 10, match: true},
		&fixedClassifier{name: "second", priority: 10, match: true},
	)

	legs := []domain.Leg{stockLeg(1)}
	assert.Equal(t, "first", chain.Classify(legs, mustContext(legs)))
}
