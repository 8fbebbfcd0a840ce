package positions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/options-sentinel/internal/domain"
)

func legOn(underlying string, opened *time.Time) domain.Leg {
	return domain.Leg{
		Underlying: underlying,
		Kind:       domain.AssetOption,
		Quantity:   -1,
		OptionType: domain.OptionPut,
		OpenDate:   opened,
	}
}

func TestGroupLegsByUnderlyingAndOpenDate(t *testing.T) {
	d1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	groups := GroupLegs([]domain.Leg{
		legOn("XYZ", &d1),
		legOn("XYZ", &d2),
		legOn("XYZ", &d1),
		legOn("ABC", &d1),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "ABC", groups[0].Underlying)
	assert.Equal(t, "XYZ", groups[1].Underlying)
	assert.Len(t, groups[1].Legs, 2)
	assert.Len(t, groups[2].Legs, 1)
}

func TestGroupLegsWithoutOpenDate(t *testing.T) {
	d := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	groups := GroupLegs([]domain.Leg{
		legOn("XYZ", nil),
		legOn("XYZ", &d),
		legOn("XYZ", nil),
	})

	// Undated legs form their own group per underlying, sorted first.
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Legs, 2)
	assert.Nil(t, groups[0].Legs[0].OpenDate)
	assert.Len(t, groups[1].Legs, 1)
}

func TestGroupLegsDeterministicOrder(t *testing.T) {
	d1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	legs := []domain.Leg{
		legOn("XYZ", &d2),
		legOn("ABC", &d1),
		legOn("XYZ", &d1),
	}

	first := GroupLegs(legs)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GroupLegs(legs))
	}
}

func TestGroupLegsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupLegs(nil))
}
