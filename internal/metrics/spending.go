package metrics

import (
	"sort"
	"strings"
	"time"

	"grantwatch/internal/model"
)

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SpendByCategory computes the budget-vs-actual breakdown for every budget
// category, joined with its grant's name and ordered by grant then category.
func SpendByCategory(cats []model.BudgetCategory, grants []model.Grant) ([]model.CategorySpend, error) {
	names := make(map[string]string, len(grants))
	for _, g := range grants {
		names[g.ID] = g.Name
	}

	rows := make([]model.CategorySpend, 0, len(cats))
	for _, c := range cats {
		name, ok := names[c.GrantID]
		if !ok {
			return nil, unknownGrantErr("budget category", c.ID, c.GrantID)
		}
		rows = append(rows, model.CategorySpend{
			GrantID:      c.GrantID,
			GrantName:    name,
			Category:     c.Name,
			Budgeted:     c.BudgetedAmount,
			Spent:        c.SpentAmount,
			Remaining:    c.BudgetedAmount - c.SpentAmount,
			SpentPercent: pctOf(c.SpentAmount, c.BudgetedAmount),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].GrantName != rows[j].GrantName {
			return rows[i].GrantName < rows[j].GrantName
		}
		return rows[i].Category < rows[j].Category
	})

	return rows, nil
}

// MonthlySpending buckets expenses from the trailing twelve months by
// calendar month and grant, ordered chronologically.
func MonthlySpending(expenses []model.Expense, grants []model.Grant, now time.Time) []model.MonthlySpend {
	names := make(map[string]string, len(grants))
	for _, g := range grants {
		names[g.ID] = g.Name
	}

	cutoff := now.AddDate(0, -12, 0)

	type key struct {
		month   time.Time
		grantID string
	}
	buckets := make(map[key]float64)

	for _, e := range expenses {
		if e.Date.Before(cutoff) {
			continue
		}
		m := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		buckets[key{m, e.GrantID}] += e.Amount
	}

	rows := make([]model.MonthlySpend, 0, len(buckets))
	for k, total := range buckets {
		rows = append(rows, model.MonthlySpend{
			Month:     k.month,
			GrantID:   k.grantID,
			GrantName: names[k.grantID],
			Total:     round2(total),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Month.Equal(rows[j].Month) {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].GrantName < rows[j].GrantName
	})

	return rows
}

// MonthlyTotals collapses per-grant monthly spending into one total per
// month, preserving chronological order. Convenient for sparklines.
func MonthlyTotals(rows []model.MonthlySpend) ([]time.Time, []float64) {
	var months []time.Time
	var totals []float64
	for _, r := range rows {
		if len(months) == 0 || !months[len(months)-1].Equal(r.Month) {
			months = append(months, r.Month)
			totals = append(totals, 0)
		}
		totals[len(totals)-1] += r.Total
	}
	return months, totals
}

// DeliverableBoard produces the per-deliverable compliance view, including
// days late: an overdue item counts days from its due date to now, a
// completed item counts days between due and completion when it slipped.
// Ordered by due date, most recent first.
func DeliverableBoard(deliverables []model.Deliverable, grants []model.Grant, now time.Time) []model.DeliverableProgress {
	names := make(map[string]string, len(grants))
	for _, g := range grants {
		names[g.ID] = g.Name
	}

	rows := make([]model.DeliverableProgress, 0, len(deliverables))
	for _, d := range deliverables {
		late := 0
		switch {
		case d.Status == model.DeliverableOverdue:
			late = overdueDays(d.DueDate, now)
		case d.Status == model.DeliverableCompleted && d.CompletionDate != nil && d.CompletionDate.After(d.DueDate):
			late = daysBetween(d.DueDate, *d.CompletionDate)
		}
		rows = append(rows, model.DeliverableProgress{
			GrantID:   d.GrantID,
			GrantName: names[d.GrantID],
			Name:      d.Name,
			DueDate:   d.DueDate,
			Status:    d.Status,
			DaysLate:  late,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate.After(rows[j].DueDate)
	})

	return rows
}

// UpcomingDeliverables returns unfinished deliverables due within the
// horizon, soonest first.
func UpcomingDeliverables(deliverables []model.Deliverable, now time.Time, horizon time.Duration) []model.Deliverable {
	var rows []model.Deliverable
	limit := now.Add(horizon)
	for _, d := range deliverables {
		if d.Status != model.DeliverableNotStarted && d.Status != model.DeliverableInProgress {
			continue
		}
		if d.DueDate.After(limit) {
			continue
		}
		rows = append(rows, d)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate.Before(rows[j].DueDate)
	})
	return rows
}

// ReportTimeline joins every report with its grant's name, ordered by due
// date, earliest first.
func ReportTimeline(reports []model.Report, grants []model.Grant) []model.ReportTimelineEntry {
	names := make(map[string]string, len(grants))
	for _, g := range grants {
		names[g.ID] = g.Name
	}

	rows := make([]model.ReportTimelineEntry, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, model.ReportTimelineEntry{
			GrantID:        r.GrantID,
			GrantName:      names[r.GrantID],
			Type:           r.Type,
			DueDate:        r.DueDate,
			SubmissionDate: r.SubmissionDate,
			Status:         r.Status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate.Before(rows[j].DueDate)
	})

	return rows
}

// Demographics counts participants by demographic category and age group.
func Demographics(participants []model.Participant) []model.DemographicCount {
	type key struct{ demo, age string }
	counts := make(map[key]int)
	for _, p := range participants {
		counts[key{p.Demographic, p.AgeGroup}]++
	}

	rows := make([]model.DemographicCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, model.DemographicCount{Demographic: k.demo, AgeGroup: k.age, Count: n})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Demographic != rows[j].Demographic {
			return rows[i].Demographic < rows[j].Demographic
		}
		return rows[i].AgeGroup < rows[j].AgeGroup
	})
	return rows
}

// StaffByGrant returns the staff allocations for one grant, largest salary
// share first.
func StaffByGrant(allocations []model.StaffAllocation, grantID string) []model.StaffAllocation {
	var rows []model.StaffAllocation
	for _, a := range allocations {
		if a.GrantID == grantID {
			rows = append(rows, a)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SalaryAllocation > rows[j].SalaryAllocation
	})
	return rows
}

// FilterByGrant narrows a dataset to grants whose name or ID contains the
// query (case-insensitive), dropping child rows of excluded grants.
func FilterByGrant(ds model.Dataset, query string) model.Dataset {
	if query == "" {
		return ds
	}

	keep := make(map[string]struct{})
	var grants []model.Grant
	for _, g := range ds.Grants {
		if containsIgnoreCase(g.Name, query) || containsIgnoreCase(g.ID, query) {
			keep[g.ID] = struct{}{}
			grants = append(grants, g)
		}
	}

	out := model.Dataset{Grants: grants}
	for _, c := range ds.BudgetCategories {
		if _, ok := keep[c.GrantID]; ok {
			out.BudgetCategories = append(out.BudgetCategories, c)
		}
	}
	for _, e := range ds.Expenses {
		if _, ok := keep[e.GrantID]; ok {
			out.Expenses = append(out.Expenses, e)
		}
	}
	for _, d := range ds.Deliverables {
		if _, ok := keep[d.GrantID]; ok {
			out.Deliverables = append(out.Deliverables, d)
		}
	}
	for _, m := range ds.OutcomeMetrics {
		if _, ok := keep[m.GrantID]; ok {
			out.OutcomeMetrics = append(out.OutcomeMetrics, m)
		}
	}
	for _, p := range ds.Participants {
		if _, ok := keep[p.GrantID]; ok {
			out.Participants = append(out.Participants, p)
		}
	}
	for _, r := range ds.Reports {
		if _, ok := keep[r.GrantID]; ok {
			out.Reports = append(out.Reports, r)
		}
	}
	for _, s := range ds.StaffAllocations {
		if _, ok := keep[s.GrantID]; ok {
			out.StaffAllocations = append(out.StaffAllocations, s)
		}
	}
	return out
}
