package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	var r Rules

	// A nil map serves every default.
	assert.Equal(t, DefaultHarvestTarget, r.Get(HarvestTarget, DefaultHarvestTarget))
	assert.Equal(t, DefaultVelocityDays, r.GetInt(VelocityDays, DefaultVelocityDays))

	r = Rules{HarvestTarget: 0.65, VelocityDays: 14}
	assert.Equal(t, 0.65, r.Get(HarvestTarget, DefaultHarvestTarget))
	assert.Equal(t, 14, r.GetInt(VelocityDays, DefaultVelocityDays))
	assert.Equal(t, DefaultScalableVRPSpread, r.Get(ScalableVRPSpread, DefaultScalableVRPSpread))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Empty(t, r)
	assert.Equal(t, DefaultHarvestTarget, r.Get(HarvestTarget, DefaultHarvestTarget))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte("harvest_target: 0.60\ngamma_dte_window: 30\n"), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.60, r.Get(HarvestTarget, DefaultHarvestTarget))
	assert.Equal(t, 30, r.GetInt(GammaDTEWindow, DefaultGammaDTEWindow))
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte("harvest_target: [not a number\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
