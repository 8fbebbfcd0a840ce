package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// RealizedVolatility computes annualized realized volatility over the
// trailing window of a daily close series using a rolling standard
// deviation of log returns.
//
// Returns nil when the series is too short for the window.
func RealizedVolatility(closes []float64, window int) *float64 {
	returns := LogReturns(closes)
	if window < 2 || len(returns) < window {
		return nil
	}

	sd := talib.StdDev(returns, window, 1.0)
	last := sd[len(sd)-1]
	if math.IsNaN(last) {
		return nil
	}

	vol := last * math.Sqrt(252)
	return &vol
}
