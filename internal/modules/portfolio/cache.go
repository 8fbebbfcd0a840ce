package portfolio

import "sync"

// ReportCache holds the latest report for the HTTP handlers. Results
// live only for the current run; nothing is persisted.
type ReportCache struct {
	mu     sync.RWMutex
	report *Report
}

// NewReportCache creates an empty report cache.
func NewReportCache() *ReportCache {
	return &ReportCache{}
}

// Set replaces the cached report.
func (c *ReportCache) Set(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = &r
}

// Latest returns the most recent report, nil before the first run.
func (c *ReportCache) Latest() *Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}
