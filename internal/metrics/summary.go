// Package metrics computes the derived analytical views over a grant
// dataset: financial summaries, compliance alerts, and outcome scoring.
// Every function is a pure read over in-memory collections with the clock
// passed in, so results are reproducible and trivially testable.
package metrics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"grantwatch/internal/model"
)

// ErrUnknownGrant is returned when a child record references a grant that
// does not exist in the dataset. Summaries fail loudly rather than silently
// dropping orphaned rows.
var ErrUnknownGrant = errors.New("referenced grant not found")

func unknownGrantErr(kind, id, grantID string) error {
	return fmt.Errorf("%s %s: grant %s: %w", kind, id, grantID, ErrUnknownGrant)
}

// BuildGrantSummaries computes the per-grant financial rollup: total spent
// across budget categories, remaining budget, spent percentage, and signed
// days remaining relative to now. Results are ordered by days remaining,
// soonest-ending first.
func BuildGrantSummaries(grants []model.Grant, cats []model.BudgetCategory, now time.Time) ([]model.GrantSummary, error) {
	spentByGrant := make(map[string]float64, len(grants))
	known := make(map[string]struct{}, len(grants))
	for _, g := range grants {
		known[g.ID] = struct{}{}
	}

	for _, c := range cats {
		if _, ok := known[c.GrantID]; !ok {
			return nil, unknownGrantErr("budget category", c.ID, c.GrantID)
		}
		spentByGrant[c.GrantID] += c.SpentAmount
	}

	summaries := make([]model.GrantSummary, 0, len(grants))
	for _, g := range grants {
		spent := spentByGrant[g.ID]
		summaries = append(summaries, model.GrantSummary{
			GrantID:         g.ID,
			GrantName:       g.Name,
			Funder:          g.Funder,
			TotalAmount:     g.TotalAmount,
			StartDate:       g.StartDate,
			EndDate:         g.EndDate,
			Status:          g.Status,
			TotalSpent:      spent,
			RemainingBudget: g.TotalAmount - spent,
			SpentPercent:    pctOf(spent, g.TotalAmount),
			DaysRemaining:   daysBetween(now, g.EndDate),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DaysRemaining < summaries[j].DaysRemaining
	})

	return summaries, nil
}

// PortfolioTotals aggregates summaries, alerts, and outcome scores into the
// headline numbers shown on the overview.
func PortfolioTotals(summaries []model.GrantSummary, alerts []model.Alert, outcomes []model.OutcomePerformance, participants []model.Participant) model.PortfolioStats {
	var stats model.PortfolioStats

	stats.TotalGrants = len(summaries)
	for _, s := range summaries {
		if s.Status == model.GrantActive {
			stats.ActiveGrants++
		}
		stats.TotalFunding += s.TotalAmount
		stats.TotalSpent += s.TotalSpent
	}
	stats.RemainingBudget = stats.TotalFunding - stats.TotalSpent
	stats.UtilizationPct = pctOf(stats.TotalSpent, stats.TotalFunding)

	stats.AlertCount = len(alerts)

	stats.MetricsTotal = len(outcomes)
	var achieved float64
	for _, o := range outcomes {
		if o.Status == model.OutcomeOnTrack {
			stats.MetricsOnTrack++
		}
		achieved += o.Achievement
	}
	if stats.MetricsTotal > 0 {
		stats.AvgAchievement = round2(achieved / float64(stats.MetricsTotal))
	}

	stats.ParticipantCount = len(participants)
	return stats
}
