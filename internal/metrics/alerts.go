package metrics

import (
	"sort"
	"time"

	"grantwatch/internal/model"
)

// DetectAlerts produces the unioned compliance alert list from its three
// source predicates: overdue reports, overdue deliverables, and overspent
// budget categories. There is no cross-source deduplication. The result is
// ordered by descending severity proxy; days overdue and percent over budget
// share the sort scale, but each alert keeps its own typed severity field.
func DetectAlerts(reports []model.Report, deliverables []model.Deliverable, cats []model.BudgetCategory, now time.Time) []model.Alert {
	var alerts []model.Alert

	for _, r := range reports {
		if r.Status != model.ReportOverdue {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:        model.AlertOverdueReport,
			GrantID:     r.GrantID,
			ItemName:    r.Type,
			DaysOverdue: overdueDays(r.DueDate, now),
		})
	}

	for _, d := range deliverables {
		if d.Status != model.DeliverableOverdue {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:        model.AlertOverdueDeliverable,
			GrantID:     d.GrantID,
			ItemName:    d.Name,
			DaysOverdue: overdueDays(d.DueDate, now),
		})
	}

	for _, c := range cats {
		if !c.Overspent() {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:        model.AlertBudgetOverspent,
			GrantID:     c.GrantID,
			ItemName:    c.Name,
			PercentOver: pctOf(c.SpentAmount-c.BudgetedAmount, c.BudgetedAmount),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity() > alerts[j].Severity()
	})

	return alerts
}

// overdueDays is non-negative by construction: the Overdue status only
// applies to items whose due date has passed, but a clamp keeps a stale
// status row from producing a negative severity.
func overdueDays(due, now time.Time) int {
	d := daysBetween(due, now)
	if d < 0 {
		return 0
	}
	return d
}
