// Package triage runs a classified position through an ordered set of
// independent handlers. Unlike the classifier chain, this chain is a
// collector: every handler runs, each returning a new request value
// with its tag appended (never mutating in place), and the lowest
// priority tag collected becomes the primary action.
package triage

import (
	"time"

	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/modules/strategy"
)

// Request is the immutable value handlers inspect. A handler that
// wants to add a tag constructs a new Request via WithTag, so a failed
// handler can never corrupt state seen by the rest of the chain.
type Request struct {
	Cluster   domain.StrategyCluster
	Metrics   *domain.MarketMetrics
	Portfolio domain.PortfolioContext
	Behavior  strategy.Behavior
	// AsOf anchors date arithmetic so repeated runs are identical.
	AsOf time.Time

	tags []domain.TriageTag
}

// NewRequest builds the initial request for one cluster.
func NewRequest(cluster domain.StrategyCluster, metrics *domain.MarketMetrics, portfolio domain.PortfolioContext, behavior strategy.Behavior, asOf time.Time) Request {
	return Request{
		Cluster:   cluster,
		Metrics:   metrics,
		Portfolio: portfolio,
		Behavior:  behavior,
		AsOf:      asOf,
	}
}

// WithTag returns a copy of the request with the tag appended. The
// receiver is left untouched.
func (r Request) WithTag(tag domain.TriageTag) Request {
	tags := make([]domain.TriageTag, len(r.tags), len(r.tags)+1)
	copy(tags, r.tags)
	r.tags = append(tags, tag)
	return r
}

// Tags returns the tags collected so far, in collection order.
func (r Request) Tags() []domain.TriageTag {
	return r.tags
}
