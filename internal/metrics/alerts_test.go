package metrics

import (
	"testing"

	"grantwatch/internal/model"
)

func TestDetectAlerts_OverdueReport(t *testing.T) {
	now := mustDate(t, "2026-06-11")
	reports := []model.Report{
		{ID: "REP0001", GrantID: "GR001", Type: "Financial Report",
			DueDate: mustDate(t, "2026-06-01"), Status: model.ReportOverdue},
		{ID: "REP0002", GrantID: "GR001", Type: "Final Report",
			DueDate: mustDate(t, "2026-05-01"), Status: model.ReportSubmitted},
	}

	alerts := DetectAlerts(reports, nil, nil, now)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Type != model.AlertOverdueReport {
		t.Errorf("Type = %q, want %q", a.Type, model.AlertOverdueReport)
	}
	if a.ItemName != "Financial Report" {
		t.Errorf("ItemName = %q", a.ItemName)
	}
	if a.DaysOverdue != 10 {
		t.Errorf("DaysOverdue = %d, want 10", a.DaysOverdue)
	}
	if a.PercentOver != 0 {
		t.Errorf("PercentOver = %.2f, want 0 for a time-based alert", a.PercentOver)
	}
}

func TestDetectAlerts_BudgetOverspent(t *testing.T) {
	now := mustDate(t, "2026-06-01")
	cats := []model.BudgetCategory{
		{ID: "BC1", GrantID: "GR001", Name: "Travel", BudgetedAmount: 10000, SpentAmount: 12500},
		{ID: "BC2", GrantID: "GR001", Name: "Equipment", BudgetedAmount: 8000, SpentAmount: 7999.99},
	}

	alerts := DetectAlerts(nil, nil, cats, now)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Type != model.AlertBudgetOverspent {
		t.Errorf("Type = %q, want %q", a.Type, model.AlertBudgetOverspent)
	}
	if a.ItemName != "Travel" {
		t.Errorf("ItemName = %q, want Travel", a.ItemName)
	}
	if a.PercentOver != 25.00 {
		t.Errorf("PercentOver = %.2f, want 25.00", a.PercentOver)
	}
	if a.DaysOverdue != 0 {
		t.Errorf("DaysOverdue = %d, want 0 for a budget alert", a.DaysOverdue)
	}
}

func TestDetectAlerts_UnionCountAndOrder(t *testing.T) {
	now := mustDate(t, "2026-06-30")
	reports := []model.Report{
		{ID: "REP1", GrantID: "GR001", Type: "Interim Report",
			DueDate: mustDate(t, "2026-06-10"), Status: model.ReportOverdue}, // 20 days
		{ID: "REP2", GrantID: "GR002", Type: "Interim Report",
			DueDate: mustDate(t, "2026-06-25"), Status: model.ReportOverdue}, // 5 days
	}
	deliverables := []model.Deliverable{
		{ID: "DEL1", GrantID: "GR001", Name: "Annual Evaluation",
			DueDate: mustDate(t, "2026-05-21"), Status: model.DeliverableOverdue}, // 40 days
		{ID: "DEL2", GrantID: "GR001", Name: "Site Visit Preparation",
			DueDate: mustDate(t, "2026-06-29"), Status: model.DeliverableCompleted},
	}
	cats := []model.BudgetCategory{
		{ID: "BC1", GrantID: "GR002", Name: "Consultants", BudgetedAmount: 1000, SpentAmount: 1100}, // 10.00
	}

	alerts := DetectAlerts(reports, deliverables, cats, now)

	// 2 overdue reports + 1 overdue deliverable + 1 overspent category
	if len(alerts) != 4 {
		t.Fatalf("got %d alerts, want 4", len(alerts))
	}

	for i := 1; i < len(alerts); i++ {
		if alerts[i].Severity() > alerts[i-1].Severity() {
			t.Fatalf("alerts not sorted by descending severity: %v before %v",
				alerts[i-1], alerts[i])
		}
	}

	want := []model.AlertType{
		model.AlertOverdueDeliverable, // 40
		model.AlertOverdueReport,      // 20
		model.AlertBudgetOverspent,    // 10.00
		model.AlertOverdueReport,      // 5
	}
	for i, w := range want {
		if alerts[i].Type != w {
			t.Errorf("position %d: type %q, want %q", i, alerts[i].Type, w)
		}
	}
}

func TestDetectAlerts_NoDeduplication(t *testing.T) {
	now := mustDate(t, "2026-06-30")
	reports := []model.Report{
		{ID: "REP1", GrantID: "GR001", Type: "Financial Report",
			DueDate: mustDate(t, "2026-06-10"), Status: model.ReportOverdue},
		{ID: "REP2", GrantID: "GR001", Type: "Financial Report",
			DueDate: mustDate(t, "2026-06-10"), Status: model.ReportOverdue},
	}

	alerts := DetectAlerts(reports, nil, nil, now)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2 (identical alerts are not deduplicated)", len(alerts))
	}
}

func TestDetectAlerts_Empty(t *testing.T) {
	now := mustDate(t, "2026-06-30")
	if alerts := DetectAlerts(nil, nil, nil, now); len(alerts) != 0 {
		t.Fatalf("got %d alerts from empty inputs, want 0", len(alerts))
	}
}
