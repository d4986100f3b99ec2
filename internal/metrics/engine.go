package metrics

import (
	"sync"
	"time"

	"grantwatch/internal/model"
)

// Engine binds a dataset and a clock and exposes the derived views as read
// methods. It holds no mutable state: every call recomputes from the base
// tables. Callers that want caching wrap it in a Cached engine with their
// own TTL policy.
type Engine struct {
	ds  model.Dataset
	now func() time.Time
}

// NewEngine creates an engine over the dataset. A nil clock means time.Now.
func NewEngine(ds model.Dataset, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{ds: ds, now: now}
}

// Dataset returns the underlying base tables.
func (e *Engine) Dataset() model.Dataset { return e.ds }

// GrantSummaries computes the per-grant financial rollups.
func (e *Engine) GrantSummaries() ([]model.GrantSummary, error) {
	return BuildGrantSummaries(e.ds.Grants, e.ds.BudgetCategories, e.now())
}

// ComplianceAlerts computes the unioned, severity-ordered alert list.
func (e *Engine) ComplianceAlerts() []model.Alert {
	return DetectAlerts(e.ds.Reports, e.ds.Deliverables, e.ds.BudgetCategories, e.now())
}

// OutcomePerformance computes achievement scoring for every outcome metric.
func (e *Engine) OutcomePerformance() ([]model.OutcomePerformance, error) {
	return ScoreOutcomes(e.ds.OutcomeMetrics, e.ds.Grants)
}

// Cached wraps an Engine with a caller-owned time-boxed memo of the three
// main views. The TTL is a latency convenience for interactive surfaces,
// not a correctness mechanism: the base data only changes when the database
// is regenerated.
type Cached struct {
	mu     sync.Mutex
	eng    *Engine
	ttl    time.Duration
	now    func() time.Time
	stamp  time.Time
	summ   []model.GrantSummary
	alerts []model.Alert
	perf   []model.OutcomePerformance
	err    error
	warm   bool
}

// NewCached wraps the engine with the given TTL. A nil clock means time.Now;
// a non-positive TTL disables caching entirely.
func NewCached(eng *Engine, ttl time.Duration, now func() time.Time) *Cached {
	if now == nil {
		now = time.Now
	}
	return &Cached{eng: eng, ttl: ttl, now: now}
}

// Replace swaps the underlying dataset and invalidates the memo.
func (c *Cached) Replace(ds model.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng = NewEngine(ds, c.eng.now)
	c.warm = false
}

func (c *Cached) refreshLocked() {
	if c.warm && c.ttl > 0 && c.now().Sub(c.stamp) < c.ttl {
		return
	}
	c.summ, c.err = c.eng.GrantSummaries()
	if c.err == nil {
		c.perf, c.err = c.eng.OutcomePerformance()
	}
	c.alerts = c.eng.ComplianceAlerts()
	c.stamp = c.now()
	c.warm = true
}

// GrantSummaries returns the memoized summaries, recomputing when stale.
func (c *Cached) GrantSummaries() ([]model.GrantSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.summ, c.err
}

// ComplianceAlerts returns the memoized alert list, recomputing when stale.
func (c *Cached) ComplianceAlerts() ([]model.Alert, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.alerts, c.err
}

// OutcomePerformance returns the memoized scores, recomputing when stale.
func (c *Cached) OutcomePerformance() ([]model.OutcomePerformance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.perf, c.err
}
