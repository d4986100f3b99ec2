package metrics

import (
	"errors"
	"testing"
	"time"

	"grantwatch/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpendByCategory(t *testing.T) {
	grants := []model.Grant{
		{ID: "GR001", Name: "Youth Program"},
		{ID: "GR002", Name: "Arts Initiative"},
	}
	cats := []model.BudgetCategory{
		{ID: "BC1", GrantID: "GR002", Name: "Personnel", BudgetedAmount: 1000, SpentAmount: 1200},
		{ID: "BC2", GrantID: "GR001", Name: "Travel", BudgetedAmount: 500, SpentAmount: 250},
	}

	rows, err := SpendByCategory(cats, grants)
	if err != nil {
		t.Fatalf("SpendByCategory: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].GrantName != "Arts Initiative" {
		t.Errorf("rows not ordered by grant name: first is %q", rows[0].GrantName)
	}
	if rows[0].Remaining != -200 {
		t.Errorf("Remaining = %v, want -200", rows[0].Remaining)
	}
	if rows[1].SpentPercent != 50 {
		t.Errorf("SpentPercent = %v, want 50", rows[1].SpentPercent)
	}
}

func TestSpendByCategory_UnknownGrant(t *testing.T) {
	cats := []model.BudgetCategory{{ID: "BC1", GrantID: "GR999"}}
	_, err := SpendByCategory(cats, nil)
	if !errors.Is(err, ErrUnknownGrant) {
		t.Fatalf("err = %v, want ErrUnknownGrant", err)
	}
}

func TestMonthlySpending(t *testing.T) {
	now := day(2026, time.June, 15)
	grants := []model.Grant{{ID: "GR001", Name: "Youth Program"}}
	expenses := []model.Expense{
		{ID: "E1", GrantID: "GR001", Date: day(2026, time.May, 3), Amount: 100.10},
		{ID: "E2", GrantID: "GR001", Date: day(2026, time.May, 20), Amount: 200.20},
		{ID: "E3", GrantID: "GR001", Date: day(2026, time.June, 1), Amount: 50},
		{ID: "E4", GrantID: "GR001", Date: day(2024, time.June, 1), Amount: 999}, // beyond 12mo
	}

	rows := MonthlySpending(expenses, grants, now)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].Month.Equal(day(2026, time.May, 1)) {
		t.Errorf("first bucket = %v, want May 2026", rows[0].Month)
	}
	if rows[0].Total != 300.30 {
		t.Errorf("May total = %v, want 300.30", rows[0].Total)
	}

	months, totals := MonthlyTotals(rows)
	if len(months) != 2 || len(totals) != 2 {
		t.Fatalf("MonthlyTotals: got %d/%d, want 2/2", len(months), len(totals))
	}
	if totals[1] != 50 {
		t.Errorf("June total = %v, want 50", totals[1])
	}
}

func TestDeliverableBoard_DaysLate(t *testing.T) {
	now := day(2026, time.June, 15)
	grants := []model.Grant{{ID: "GR001", Name: "Youth Program"}}
	completedLate := day(2026, time.June, 5)
	deliverables := []model.Deliverable{
		{ID: "D1", GrantID: "GR001", Name: "Q1 narrative", DueDate: day(2026, time.June, 5), Status: model.DeliverableOverdue},
		{ID: "D2", GrantID: "GR001", Name: "Site visit", DueDate: day(2026, time.June, 1), Status: model.DeliverableCompleted, CompletionDate: &completedLate},
		{ID: "D3", GrantID: "GR001", Name: "Kickoff", DueDate: day(2026, time.July, 1), Status: model.DeliverableInProgress},
	}

	rows := DeliverableBoard(deliverables, grants, now)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Most recent due date first.
	if rows[0].Name != "Kickoff" || rows[0].DaysLate != 0 {
		t.Errorf("rows[0] = %q late %d, want Kickoff late 0", rows[0].Name, rows[0].DaysLate)
	}
	if rows[1].Name != "Q1 narrative" || rows[1].DaysLate != 10 {
		t.Errorf("rows[1] = %q late %d, want Q1 narrative late 10", rows[1].Name, rows[1].DaysLate)
	}
	if rows[2].Name != "Site visit" || rows[2].DaysLate != 4 {
		t.Errorf("rows[2] = %q late %d, want Site visit late 4", rows[2].Name, rows[2].DaysLate)
	}
}

func TestUpcomingDeliverables(t *testing.T) {
	now := day(2026, time.June, 15)
	deliverables := []model.Deliverable{
		{ID: "D1", DueDate: day(2026, time.June, 20), Status: model.DeliverableNotStarted},
		{ID: "D2", DueDate: day(2026, time.June, 18), Status: model.DeliverableInProgress},
		{ID: "D3", DueDate: day(2026, time.June, 19), Status: model.DeliverableCompleted},
		{ID: "D4", DueDate: day(2026, time.August, 1), Status: model.DeliverableNotStarted},
	}

	rows := UpcomingDeliverables(deliverables, now, 14*24*time.Hour)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != "D2" || rows[1].ID != "D1" {
		t.Errorf("order = %s, %s; want D2, D1", rows[0].ID, rows[1].ID)
	}
}

func TestReportTimeline(t *testing.T) {
	grants := []model.Grant{{ID: "GR001", Name: "Youth Program"}}
	submitted := day(2026, time.March, 28)
	reports := []model.Report{
		{ID: "R2", GrantID: "GR001", Type: "Quarterly", DueDate: day(2026, time.June, 30), Status: model.ReportNotStarted},
		{ID: "R1", GrantID: "GR001", Type: "Quarterly", DueDate: day(2026, time.March, 31), Status: model.ReportSubmitted, SubmissionDate: &submitted},
	}

	rows := ReportTimeline(reports, grants)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].DueDate.Equal(day(2026, time.March, 31)) {
		t.Errorf("not ordered by due date: first due %v", rows[0].DueDate)
	}
	if rows[0].GrantName != "Youth Program" {
		t.Errorf("GrantName = %q, want Youth Program", rows[0].GrantName)
	}
	if rows[0].SubmissionDate == nil || !rows[0].SubmissionDate.Equal(submitted) {
		t.Errorf("SubmissionDate not carried through")
	}
}

func TestDemographics(t *testing.T) {
	participants := []model.Participant{
		{ID: "P1", Demographic: "Low-income", AgeGroup: "18-24"},
		{ID: "P2", Demographic: "Low-income", AgeGroup: "18-24"},
		{ID: "P3", Demographic: "Veteran", AgeGroup: "25-34"},
	}

	rows := Demographics(participants)
	if len(rows) != 2 {
		t.Fatalf("got %d buckets, want 2", len(rows))
	}
	if rows[0].Demographic != "Low-income" || rows[0].Count != 2 {
		t.Errorf("rows[0] = %+v, want Low-income count 2", rows[0])
	}
}

func TestStaffByGrant(t *testing.T) {
	allocations := []model.StaffAllocation{
		{ID: "SA1", GrantID: "GR001", StaffName: "A", SalaryAllocation: 10000},
		{ID: "SA2", GrantID: "GR002", StaffName: "B", SalaryAllocation: 50000},
		{ID: "SA3", GrantID: "GR001", StaffName: "C", SalaryAllocation: 30000},
	}

	rows := StaffByGrant(allocations, "GR001")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].StaffName != "C" {
		t.Errorf("not ordered by salary share: first is %q", rows[0].StaffName)
	}
}

func TestFilterByGrant(t *testing.T) {
	ds := model.Dataset{
		Grants: []model.Grant{
			{ID: "GR001", Name: "Youth Mentorship"},
			{ID: "GR002", Name: "Food Security"},
		},
		BudgetCategories: []model.BudgetCategory{
			{ID: "BC1", GrantID: "GR001"},
			{ID: "BC2", GrantID: "GR002"},
		},
		Expenses:     []model.Expense{{ID: "E1", GrantID: "GR002"}},
		Reports:      []model.Report{{ID: "R1", GrantID: "GR001"}},
		Participants: []model.Participant{{ID: "P1", GrantID: "GR001"}},
	}

	out := FilterByGrant(ds, "youth")
	if len(out.Grants) != 1 || out.Grants[0].ID != "GR001" {
		t.Fatalf("grants = %+v, want only GR001", out.Grants)
	}
	if len(out.BudgetCategories) != 1 || out.BudgetCategories[0].ID != "BC1" {
		t.Errorf("child categories not filtered: %+v", out.BudgetCategories)
	}
	if len(out.Expenses) != 0 {
		t.Errorf("expenses of excluded grant kept: %+v", out.Expenses)
	}
	if len(out.Reports) != 1 || len(out.Participants) != 1 {
		t.Errorf("kept grant's children dropped")
	}

	if got := FilterByGrant(ds, ""); len(got.Grants) != 2 {
		t.Errorf("empty query should keep everything, got %d grants", len(got.Grants))
	}

	if got := FilterByGrant(ds, "gr002"); len(got.Grants) != 1 || got.Grants[0].ID != "GR002" {
		t.Errorf("ID match failed: %+v", got.Grants)
	}
}
