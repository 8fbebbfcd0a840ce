package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReturns(t *testing.T) {
	returns := LogReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, math.Log(1.1), returns[0], 1e-9)
	assert.InDelta(t, math.Log(0.9), returns[1], 1e-9)

	assert.Empty(t, LogReturns([]float64{100}))
	assert.Empty(t, LogReturns(nil))

	// Non-positive prices are dropped instead of producing NaN.
	assert.Len(t, LogReturns([]float64{100, 0, 110}), 0)
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.015, -0.005, 0.01}
	want := StdDev(returns) * math.Sqrt(252)
	assert.InDelta(t, want, AnnualizedVolatility(returns), 1e-12)
	assert.Equal(t, 0.0, AnnualizedVolatility(nil))
}

func TestRealizedVolatility(t *testing.T) {
	// A constant price series has zero realized volatility.
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 100
	}
	vol := RealizedVolatility(flat, 21)
	require.NotNil(t, vol)
	assert.InDelta(t, 0.0, *vol, 1e-12)

	// Too short for the window.
	assert.Nil(t, RealizedVolatility(flat[:10], 21))
	assert.Nil(t, RealizedVolatility(flat, 1))
	assert.Nil(t, RealizedVolatility(nil, 21))
}

func TestRealizedVolatilityMovesWithDispersion(t *testing.T) {
	calm := make([]float64, 30)
	wild := make([]float64, 30)
	for i := range calm {
		calm[i] = 100 + 0.1*float64(i%2)
		wild[i] = 100 + 5*float64(i%2)
	}

	calmVol := RealizedVolatility(calm, 21)
	wildVol := RealizedVolatility(wild, 21)
	require.NotNil(t, calmVol)
	require.NotNil(t, wildVol)
	assert.Greater(t, *wildVol, *calmVol)
}

func TestAnnualizedVolatilityOfFlatSeries(t *testing.T) {
	flat := make([]float64, 260)
	for i := range flat {
		flat[i] = 100
	}
	assert.InDelta(t, 0.0, AnnualizedVolatility(LogReturns(flat)), 1e-12)
}
