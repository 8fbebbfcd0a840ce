package positions

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/options-sentinel/internal/domain"
)

const sampleCSV = `underlying,kind,quantity,option_type,strike,expiration,open_date,cost_basis,open_pl,delta,gamma,theta,vega
XYZ,Option,-1,Call,100,2026-10-16,2026-08-01,-150,40,-0.30,-0.02,0.05,-0.10
XYZ,Option,-1,Put,90,2026-10-16,2026-08-01,-120,30,0.25,-0.02,0.04,-0.09
abc,Stock,100,,,,2025-03-10,4200,310,,,,
`

func testLoader() *Loader {
	return NewLoader(zerolog.Nop())
}

func TestLoadParsesLegs(t *testing.T) {
	legs, err := testLoader().Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, legs, 3)

	call := legs[0]
	assert.Equal(t, "XYZ", call.Underlying)
	assert.Equal(t, domain.AssetOption, call.Kind)
	assert.Equal(t, domain.OptionCall, call.OptionType)
	assert.Equal(t, -1.0, call.Quantity)
	require.NotNil(t, call.Strike)
	assert.Equal(t, 100.0, *call.Strike)
	require.NotNil(t, call.Expiration)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), *call.Expiration)
	assert.Equal(t, -150.0, call.CostBasis)
	assert.Equal(t, 40.0, call.OpenPL)
	require.NotNil(t, call.Greeks.Theta)
	assert.Equal(t, 0.05, *call.Greeks.Theta)

	stock := legs[2]
	assert.Equal(t, "ABC", stock.Underlying) // symbols normalize to upper case
	assert.Equal(t, domain.AssetStock, stock.Kind)
	assert.Equal(t, domain.OptionNone, stock.OptionType)
	assert.Nil(t, stock.Strike)
	assert.Nil(t, stock.Greeks.Delta)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	csv := `underlying,kind,quantity,option_type,strike
XYZ,Option,-1,Call,100
,Option,-1,Call,100
XYZ,Option,notanumber,Call,100
XYZ,Spaceship,-1,Call,100
XYZ,Option,-1,Warrant,100
XYZ,Option,1,Put,90
`
	legs, err := testLoader().Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, legs, 2)
}

func TestLoadMissingValuesStayNil(t *testing.T) {
	csv := `underlying,kind,quantity,option_type,strike,expiration
XYZ,Option,-1,Call,,
`
	legs, err := testLoader().Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Nil(t, legs[0].Strike)
	assert.Nil(t, legs[0].Expiration)
}

func TestLoadRejectsHeaderWithoutUnderlying(t *testing.T) {
	_, err := testLoader().Load(strings.NewReader("symbol,quantity\nXYZ,1\n"))
	assert.Error(t, err)
}

func TestLoadColumnOrderIrrelevant(t *testing.T) {
	csv := `quantity,underlying,kind
5,XYZ,Stock
`
	legs, err := testLoader().Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, 5.0, legs[0].Quantity)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := testLoader().LoadFile("/nonexistent/positions.csv")
	assert.Error(t, err)
}
