package portfolio

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/options-sentinel/internal/modules/positions"
)

// RefreshJob reloads the broker export and re-runs the portfolio
// triage, caching the result for the HTTP layer. Implements
// scheduler.Job.
type RefreshJob struct {
	loader        *positions.Loader
	positionsPath string
	service       *Service
	cache         *ReportCache
	log           zerolog.Logger
}

// NewRefreshJob creates a new triage refresh job.
func NewRefreshJob(loader *positions.Loader, positionsPath string, service *Service, cache *ReportCache, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		loader:        loader,
		positionsPath: positionsPath,
		service:       service,
		cache:         cache,
		log:           log.With().Str("component", "triage_refresh").Logger(),
	}
}

// Name returns the job name.
func (j *RefreshJob) Name() string {
	return "triage_refresh"
}

// Run loads, groups, classifies and triages the portfolio.
func (j *RefreshJob) Run() error {
	legs, err := j.loader.LoadFile(j.positionsPath)
	if err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	groups := positions.GroupLegs(legs)
	report := j.service.TriagePortfolio(groups, time.Now().UTC())
	j.cache.Set(report)

	j.log.Info().
		Int("groups", len(groups)).
		Int("positions", len(report.Positions)).
		Msg("Triage report refreshed")

	return nil
}
