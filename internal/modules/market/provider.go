// Package market assembles per-symbol market metrics from the local
// snapshot store and close history. Everything here is best effort: a
// symbol with no data yields a metrics value full of nils, and the
// triage checks that need the missing fields stay inconclusive.
package market

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/database"
	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/pkg/formulas"
)

// Volatility windows in trading days.
const (
	structuralWindow = 252
	tacticalWindow   = 21
)

// historyLookback is how many closes we pull for the structural
// window; one extra for the first return.
const historyLookback = structuralWindow + 1

// Provider serves market metrics per underlying symbol.
type Provider struct {
	db      *database.DB
	history *HistoryDB
	log     zerolog.Logger
}

// NewProvider creates a new metrics provider.
func NewProvider(db *database.DB, history *HistoryDB, log zerolog.Logger) *Provider {
	return &Provider{
		db:      db,
		history: history,
		log:     log.With().Str("component", "market_provider").Logger(),
	}
}

// Metrics returns the metrics for a symbol. Absent snapshot rows or
// history leave the corresponding fields nil; only infrastructure
// failures error.
func (p *Provider) Metrics(symbol string) (*domain.MarketMetrics, error) {
	m := &domain.MarketMetrics{Symbol: symbol}

	if err := p.loadSnapshot(symbol, m); err != nil {
		return nil, err
	}
	p.loadRealizedVol(symbol, m)

	return m, nil
}

func (p *Provider) loadSnapshot(symbol string, m *domain.MarketMetrics) error {
	row := p.db.QueryRow(`
		SELECT price, iv, iv_percentile, earnings_date, liquidity_rating
		FROM market_metrics
		WHERE symbol = ?
	`, symbol)

	var price, iv, ivPct sql.NullFloat64
	var earnings sql.NullString
	var liquidity sql.NullInt64

	err := row.Scan(&price, &iv, &ivPct, &earnings, &liquidity)
	if err == sql.ErrNoRows {
		p.log.Debug().Str("symbol", symbol).Msg("No metrics snapshot for symbol")
		return nil
	}
	if err != nil {
		return err
	}

	if price.Valid {
		m.Price = &price.Float64
	}
	if iv.Valid {
		m.IV = &iv.Float64
	}
	if ivPct.Valid {
		m.IVPercentile = &ivPct.Float64
	}
	if liquidity.Valid {
		rating := int(liquidity.Int64)
		m.LiquidityRating = &rating
	}
	if earnings.Valid && earnings.String != "" {
		if t, err := time.Parse("2006-01-02", earnings.String); err == nil {
			m.EarningsDate = &t
		}
	}
	return nil
}

// loadRealizedVol fills the structural and tactical realized-vol
// fields from close history. The structural figure is a single
// standard deviation over the full window; the tactical one is the
// latest value of a rolling window. History gaps degrade to nil,
// never error.
func (p *Provider) loadRealizedVol(symbol string, m *domain.MarketMetrics) {
	closes, err := p.history.GetDailyCloses(symbol, historyLookback)
	if err != nil {
		p.log.Debug().Err(err).Str("symbol", symbol).Msg("No close history for symbol")
		return
	}

	returns := formulas.LogReturns(closes)
	if len(returns) >= structuralWindow {
		vol := formulas.AnnualizedVolatility(returns[len(returns)-structuralWindow:])
		m.HVStructural = &vol
	}
	m.HVTactical = formulas.RealizedVolatility(closes, tacticalWindow)
}
