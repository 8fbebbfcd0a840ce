// Package portfolio runs the full pipeline: leg groups through
// classification, strategy resolution and triage, producing the report
// the rendering layers consume.
package portfolio

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/modules/classification"
	"github.com/aristath/options-sentinel/internal/modules/positions"
	"github.com/aristath/options-sentinel/internal/modules/strategy"
	"github.com/aristath/options-sentinel/internal/modules/triage"
)

// MetricsProvider supplies per-symbol market metrics.
type MetricsProvider interface {
	Metrics(symbol string) (*domain.MarketMetrics, error)
}

// PositionReport pairs one classified cluster with its triage result.
type PositionReport struct {
	Cluster domain.StrategyCluster `json:"cluster"`
	Triage  domain.TriageResult    `json:"triage"`
}

// Report is one full portfolio run.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Positions   []PositionReport `json:"positions"`
	// Skipped counts leg groups rejected as structural defects.
	Skipped int `json:"skipped,omitempty"`
}

// Service wires the chains together. The chains and resolver are
// read-only after construction, so one service instance safely serves
// concurrent runs.
type Service struct {
	classifier *classification.Chain
	resolver   *strategy.Resolver
	triage     *triage.Chain
	metrics    MetricsProvider
	portfolio  domain.PortfolioContext
	log        zerolog.Logger
}

// NewService creates a new portfolio triage service.
func NewService(
	classifier *classification.Chain,
	resolver *strategy.Resolver,
	triageChain *triage.Chain,
	metrics MetricsProvider,
	portfolio domain.PortfolioContext,
	log zerolog.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		resolver:   resolver,
		triage:     triageChain,
		metrics:    metrics,
		portfolio:  portfolio,
		log:        log.With().Str("component", "portfolio_service").Logger(),
	}
}

// TriageGroup classifies and triages one leg group against the
// configured portfolio context.
func (s *Service) TriageGroup(group positions.Group, asOf time.Time) (PositionReport, error) {
	return s.triageGroup(group, asOf, s.portfolio)
}

func (s *Service) triageGroup(group positions.Group, asOf time.Time, portfolio domain.PortfolioContext) (PositionReport, error) {
	metrics, err := s.metrics.Metrics(group.Underlying)
	if err != nil {
		s.log.Warn().Err(err).Str("underlying", group.Underlying).Msg("Metrics lookup failed, proceeding without")
		metrics = &domain.MarketMetrics{Symbol: group.Underlying}
	}

	var price *float64
	if metrics != nil {
		price = metrics.Price
	}

	ctx, err := classification.BuildContext(group.Legs, price)
	if err != nil {
		return PositionReport{}, err
	}

	name := s.classifier.Classify(group.Legs, ctx)
	id := strategy.MapStrategyID(name, ctx.NetCost())
	if id == "" {
		s.log.Debug().Str("strategy", name).Msg("No canonical ID for strategy name")
	}

	cluster := domain.NewStrategyCluster(group.Underlying, name, id, group.Legs, asOf)
	behavior := s.resolver.Resolve(id)

	req := triage.NewRequest(cluster, metrics, portfolio, behavior, asOf)
	result := s.triage.Run(req)

	return PositionReport{Cluster: cluster, Triage: result}, nil
}

// TriagePortfolio runs every leg group, one goroutine per group. The
// chains hold no mutable state, so the only coordination needed is the
// per-index result slot. Every triaged underlying counts as held, so
// the scalable check sees the whole book alongside any holdings set at
// construction.
func (s *Service) TriagePortfolio(groups []positions.Group, asOf time.Time) Report {
	portfolio := s.portfolio
	portfolio.Holdings = heldUnderlyings(groups, s.portfolio.Holdings)

	reports := make([]*PositionReport, len(groups))

	var g errgroup.Group
	for i, group := range groups {
		g.Go(func() error {
			report, err := s.triageGroup(group, asOf, portfolio)
			if err != nil {
				s.log.Warn().Err(err).Str("underlying", group.Underlying).Msg("Skipping malformed leg group")
				return nil
			}
			reports[i] = &report
			return nil
		})
	}
	_ = g.Wait()

	out := Report{GeneratedAt: asOf}
	for _, r := range reports {
		if r == nil {
			out.Skipped++
			continue
		}
		out.Positions = append(out.Positions, *r)
	}

	s.log.Info().
		Int("positions", len(out.Positions)).
		Int("skipped", out.Skipped).
		Msg("Portfolio triage complete")

	return out
}

// heldUnderlyings merges the configured holdings with the underlyings
// present in the leg groups.
func heldUnderlyings(groups []positions.Group, configured map[string]bool) map[string]bool {
	held := make(map[string]bool, len(groups)+len(configured))
	for u, ok := range configured {
		if ok {
			held[u] = true
		}
	}
	for _, g := range groups {
		held[g.Underlying] = true
	}
	return held
}
