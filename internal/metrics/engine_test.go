package metrics

import (
	"testing"
	"time"

	"grantwatch/internal/model"
)

// fakeClock advances only when told to, so cache staleness is deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testDataset(t *testing.T) model.Dataset {
	t.Helper()
	return model.Dataset{
		Grants: []model.Grant{
			{ID: "GR001", Name: "Community Health", TotalAmount: 50000,
				EndDate: mustDate(t, "2026-12-31"), Status: model.GrantActive},
		},
		BudgetCategories: []model.BudgetCategory{
			{ID: "BC1", GrantID: "GR001", Name: "Personnel Salaries",
				BudgetedAmount: 30000, SpentAmount: 31000},
		},
		Reports: []model.Report{
			{ID: "REP1", GrantID: "GR001", Type: "Financial Report",
				DueDate: mustDate(t, "2026-05-01"), Status: model.ReportOverdue},
		},
		OutcomeMetrics: []model.OutcomeMetric{
			{ID: "MET1", GrantID: "GR001", Name: "Families Served",
				TargetValue: 100, CurrentValue: 80},
		},
	}
}

func TestEngine_Views(t *testing.T) {
	clock := &fakeClock{t: mustDate(t, "2026-06-01")}
	eng := NewEngine(testDataset(t), clock.Now)

	summaries, err := eng.GrantSummaries()
	if err != nil {
		t.Fatalf("GrantSummaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].TotalSpent != 31000 {
		t.Fatalf("summaries = %+v", summaries)
	}

	alerts := eng.ComplianceAlerts()
	if len(alerts) != 2 { // overdue report + overspent category
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}

	perf, err := eng.OutcomePerformance()
	if err != nil {
		t.Fatalf("OutcomePerformance: %v", err)
	}
	if perf[0].Status != model.OutcomeNeedsAttention {
		t.Errorf("Status = %q, want Needs Attention", perf[0].Status)
	}
}

func TestCached_ServesStaleWithinTTL(t *testing.T) {
	clock := &fakeClock{t: mustDate(t, "2026-06-01")}
	ds := testDataset(t)
	cached := NewCached(NewEngine(ds, clock.Now), 30*time.Second, clock.Now)

	alerts, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	first := len(alerts)

	clock.Advance(10 * time.Second)
	again, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	if len(again) != first {
		t.Fatalf("cached result changed within TTL: %d vs %d", len(again), first)
	}
	if again[0].DaysOverdue != alerts[0].DaysOverdue {
		t.Errorf("DaysOverdue recomputed within TTL")
	}
}

func TestCached_RecomputesAfterTTL(t *testing.T) {
	clock := &fakeClock{t: mustDate(t, "2026-06-01")}
	ds := testDataset(t)
	cached := NewCached(NewEngine(ds, clock.Now), 30*time.Second, clock.Now)

	alerts, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	wantDays := alerts[0].DaysOverdue

	clock.Advance(24*time.Hour + time.Minute)
	again, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	if again[0].DaysOverdue != wantDays+1 {
		t.Errorf("DaysOverdue after expiry = %d, want %d", again[0].DaysOverdue, wantDays+1)
	}
}

func TestCached_ZeroTTLDisablesCaching(t *testing.T) {
	clock := &fakeClock{t: mustDate(t, "2026-06-01")}
	cached := NewCached(NewEngine(testDataset(t), clock.Now), 0, clock.Now)

	alerts, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	wantDays := alerts[0].DaysOverdue

	clock.Advance(24 * time.Hour)
	again, err := cached.ComplianceAlerts()
	if err != nil {
		t.Fatalf("ComplianceAlerts: %v", err)
	}
	if again[0].DaysOverdue != wantDays+1 {
		t.Errorf("DaysOverdue with zero TTL = %d, want fresh %d", again[0].DaysOverdue, wantDays+1)
	}
}

func TestCached_ReplaceInvalidates(t *testing.T) {
	clock := &fakeClock{t: mustDate(t, "2026-06-01")}
	cached := NewCached(NewEngine(testDataset(t), clock.Now), time.Hour, clock.Now)

	summaries, err := cached.GrantSummaries()
	if err != nil {
		t.Fatalf("GrantSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	cached.Replace(model.Dataset{})
	summaries, err = cached.GrantSummaries()
	if err != nil {
		t.Fatalf("GrantSummaries after Replace: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("got %d summaries after Replace with empty dataset, want 0", len(summaries))
	}
}
