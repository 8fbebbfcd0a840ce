package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVRPRatios(t *testing.T) {
	m := &MarketMetrics{IV: fp(0.40), HVStructural: fp(0.32), HVTactical: fp(0.20)}

	structural := m.VRPStructural()
	require.NotNil(t, structural)
	assert.InDelta(t, 1.25, *structural, 1e-9)

	tactical := m.VRPTactical()
	require.NotNil(t, tactical)
	assert.InDelta(t, 2.0, *tactical, 1e-9)
}

func TestVRPMissingInputs(t *testing.T) {
	assert.Nil(t, (&MarketMetrics{}).VRPStructural())
	assert.Nil(t, (&MarketMetrics{IV: fp(0.40)}).VRPStructural())
	assert.Nil(t, (&MarketMetrics{HVStructural: fp(0.30)}).VRPStructural())

	// A zero denominator never divides.
	zero := &MarketMetrics{IV: fp(0.40), HVStructural: fp(0)}
	assert.Nil(t, zero.VRPStructural())
}
