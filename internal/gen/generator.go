// Package gen produces a seeded synthetic grant portfolio: grants, budgets,
// an expense ledger, deliverables, outcome metrics, participants, reports,
// and staff allocations. The same seed and reference date always produce the
// same dataset.
package gen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"grantwatch/internal/model"
)

const (
	DefaultGrants           = 5
	DefaultExpensesPerGrant = 50
)

// Options controls dataset size and reproducibility. Zero values fall back
// to the defaults; a zero Now means today.
type Options struct {
	Grants           int
	ExpensesPerGrant int
	Seed             int64
	Now              time.Time
}

type generator struct {
	rng *rand.Rand
	now time.Time
}

// Generate builds a complete synthetic dataset. Category spent amounts are
// rolled up from the generated expense ledger, so the books always balance.
func Generate(opts Options) model.Dataset {
	if opts.Grants <= 0 {
		opts.Grants = DefaultGrants
	}
	if opts.ExpensesPerGrant <= 0 {
		opts.ExpensesPerGrant = DefaultExpensesPerGrant
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	g := &generator{
		rng: rand.New(rand.NewSource(opts.Seed)),
		now: dateOnly(now),
	}

	var ds model.Dataset
	ds.Grants = g.grants(opts.Grants)

	cats, spendTargets := g.budgetCategories(ds.Grants)
	ds.Expenses = g.expenses(ds.Grants, cats, spendTargets, opts.ExpensesPerGrant)

	ledger := make(map[string]float64, len(cats))
	for _, e := range ds.Expenses {
		ledger[e.CategoryID] += e.Amount
	}
	for i := range cats {
		cats[i].SpentAmount = round2(ledger[cats[i].ID])
	}
	ds.BudgetCategories = cats

	ds.Deliverables = g.deliverables(ds.Grants)
	ds.OutcomeMetrics = g.outcomeMetrics(ds.Grants)
	ds.Participants = g.participants(ds.Grants)
	ds.Reports = g.reports(ds.Grants)
	ds.StaffAllocations = g.staffAllocations(ds.Grants)
	return ds
}

func (g *generator) grants(n int) []model.Grant {
	statuses := []model.GrantStatus{
		model.GrantActive, model.GrantActive, model.GrantActive,
		model.GrantActive, model.GrantCompleted,
	}
	durations := []int{12, 18, 24, 36}

	base := g.now.AddDate(0, 0, -365)
	grants := make([]model.Grant, 0, n)
	for i := 0; i < n; i++ {
		start := base.AddDate(0, 0, g.rng.Intn(181))
		end := start.AddDate(0, 0, durations[g.rng.Intn(len(durations))]*30)
		purpose := g.pick(purposes)
		grants = append(grants, model.Grant{
			ID:                 fmt.Sprintf("GR%03d", i+1),
			Name:               purpose + " " + g.pick(grantNameSuffixes),
			Funder:             g.pick(companyNames),
			FunderType:         g.pick(funderTypes),
			TotalAmount:        round2(g.uniform(50000, 500000)),
			StartDate:          start,
			EndDate:            end,
			Status:             statuses[g.rng.Intn(len(statuses))],
			Officer:            g.person(),
			Purpose:            purpose,
			ReportingFrequency: g.pick(reportingFrequencies),
		})
	}
	return grants
}

// budgetCategories splits each grant's total across the standard category
// set. It returns the categories with SpentAmount still zero, plus a
// per-category spend target the expense ledger should sum to: roughly
// proportional to elapsed time with variance either side of plan, so some
// categories end up overspent.
func (g *generator) budgetCategories(grants []model.Grant) ([]model.BudgetCategory, map[string]float64) {
	var cats []model.BudgetCategory
	targets := make(map[string]float64)

	for _, gr := range grants {
		remaining := gr.TotalAmount
		progress := elapsedFraction(gr.StartDate, gr.EndDate, g.now)

		for idx, name := range budgetCategoryNames {
			var amount float64
			if idx == len(budgetCategoryNames)-1 {
				amount = remaining
			} else {
				var share float64
				switch name {
				case "Personnel Salaries":
					share = g.uniform(0.40, 0.50)
				case "Fringe Benefits":
					share = g.uniform(0.15, 0.20)
				default:
					share = g.uniform(0.03, 0.10)
				}
				amount = gr.TotalAmount * share
				remaining -= amount
			}

			var spentPct float64
			if gr.Status == model.GrantCompleted {
				spentPct = g.uniform(0.90, 1.00)
			} else {
				spentPct = progress * g.uniform(0.85, 1.15)
			}

			id := fmt.Sprintf("BC%04d", len(cats)+1)
			cats = append(cats, model.BudgetCategory{
				ID:             id,
				GrantID:        gr.ID,
				Name:           name,
				BudgetedAmount: round2(amount),
			})
			targets[id] = amount * spentPct
		}
	}
	return cats, targets
}

// expenses fabricates a ledger whose per-category totals land on the spend
// targets: each category with spend gets at least one entry, extra entries
// go to categories weighted by budget size, and entry amounts are random
// weights scaled so the category sums match.
func (g *generator) expenses(grants []model.Grant, cats []model.BudgetCategory, targets map[string]float64, perGrant int) []model.Expense {
	byGrant := make(map[string][]model.BudgetCategory)
	for _, c := range cats {
		byGrant[c.GrantID] = append(byGrant[c.GrantID], c)
	}

	var out []model.Expense
	for _, gr := range grants {
		var spendable []model.BudgetCategory
		for _, c := range byGrant[gr.ID] {
			if targets[c.ID] >= 1 {
				spendable = append(spendable, c)
			}
		}
		windowEnd := gr.EndDate
		if g.now.Before(windowEnd) {
			windowEnd = g.now
		}
		days := int(windowEnd.Sub(gr.StartDate).Hours() / 24)
		if len(spendable) == 0 || days <= 0 {
			continue
		}

		counts := make(map[string]int, len(spendable))
		for _, c := range spendable {
			counts[c.ID] = 1
		}
		var totalBudget float64
		for _, c := range spendable {
			totalBudget += c.BudgetedAmount
		}
		for extra := perGrant - len(spendable); extra > 0; extra-- {
			r := g.uniform(0, totalBudget)
			for _, c := range spendable {
				r -= c.BudgetedAmount
				if r <= 0 {
					counts[c.ID]++
					break
				}
			}
		}

		for _, c := range spendable {
			n := counts[c.ID]
			weights := make([]float64, n)
			var sum float64
			for i := range weights {
				weights[i] = g.uniform(0.5, 2.0)
				sum += weights[i]
			}
			scale := targets[c.ID] / sum
			for i := 0; i < n; i++ {
				out = append(out, model.Expense{
					ID:          fmt.Sprintf("EXP%05d", len(out)+1),
					GrantID:     gr.ID,
					CategoryID:  c.ID,
					Date:        gr.StartDate.AddDate(0, 0, g.rng.Intn(days+1)),
					Vendor:      g.pick(companyNames),
					Description: c.Name + " - " + g.pick(expensePhrases),
					Amount:      round2(weights[i] * scale),
					ApprovedBy:  g.person(),
				})
			}
		}
	}
	return out
}

func (g *generator) deliverables(grants []model.Grant) []model.Deliverable {
	var out []model.Deliverable
	for _, gr := range grants {
		duration := int(gr.EndDate.Sub(gr.StartDate).Hours() / 24)
		n := g.between(8, 12)

		for i := 0; i < n; i++ {
			due := gr.StartDate.AddDate(0, 0, duration*i/n)

			var status model.DeliverableStatus
			var completion *time.Time
			switch {
			case due.Before(g.now.AddDate(0, 0, -30)):
				status = g.pickDeliverableStatus(
					model.DeliverableCompleted, model.DeliverableCompleted,
					model.DeliverableCompleted, model.DeliverableLate)
				c := due.AddDate(0, 0, g.between(-5, 10))
				completion = &c
			case due.Before(g.now):
				status = g.pickDeliverableStatus(
					model.DeliverableCompleted, model.DeliverableInProgress, model.DeliverableOverdue)
				if status == model.DeliverableCompleted {
					c := due.AddDate(0, 0, g.between(0, 5))
					completion = &c
				}
			default:
				status = g.pickDeliverableStatus(
					model.DeliverableNotStarted, model.DeliverableInProgress)
			}

			notes := ""
			if g.rng.Float64() > 0.5 {
				notes = g.pick(deliverableNotes)
			}
			out = append(out, model.Deliverable{
				ID:             fmt.Sprintf("DEL%04d", len(out)+1),
				GrantID:        gr.ID,
				Name:           g.pick(deliverableNames),
				DueDate:        due,
				Status:         status,
				CompletionDate: completion,
				Notes:          notes,
			})
		}
	}
	return out
}

var metricsByPurpose = map[string][][2]string{
	"Youth Education Programs": {
		{"Students Enrolled", "Participants"},
		{"Program Completion Rate", "Percentage"},
		{"Average Grade Improvement", "Points"},
		{"Parent Satisfaction Score", "Rating"},
	},
	"Healthcare Access": {
		{"Patients Served", "Individuals"},
		{"Services Provided", "Sessions"},
		{"Preventive Care Visits", "Visits"},
		{"Patient Satisfaction", "Rating"},
	},
	"Food Security Initiatives": {
		{"Meals Distributed", "Meals"},
		{"Families Served", "Households"},
		{"Food Bank Visits", "Visits"},
		{"Pounds of Food Distributed", "Pounds"},
	},
	"Mental Health Services": {
		{"Clients Served", "Individuals"},
		{"Counseling Sessions", "Sessions"},
		{"Crisis Interventions", "Interventions"},
		{"Client Improvement Rate", "Percentage"},
	},
	"Job Training and Placement": {
		{"Trainees Enrolled", "Participants"},
		{"Certifications Earned", "Certificates"},
		{"Job Placements", "Placements"},
		{"Average Wage Increase", "Dollars"},
	},
}

var defaultMetrics = [][2]string{
	{"Program Participants", "Individuals"},
	{"Program Activities", "Events"},
	{"Community Reach", "People"},
	{"Satisfaction Rate", "Percentage"},
}

func (g *generator) outcomeMetrics(grants []model.Grant) []model.OutcomeMetric {
	var out []model.OutcomeMetric
	for _, gr := range grants {
		list, ok := metricsByPurpose[gr.Purpose]
		if !ok {
			list = defaultMetrics
		}
		for _, m := range list {
			name, unit := m[0], m[1]

			var target, current float64
			switch {
			case unit == "Percentage":
				target = g.uniform(75, 95)
				current = target * g.uniform(0.60, 1.10)
			case unit == "Rating":
				target = g.uniform(4.0, 5.0)
				current = target * g.uniform(0.85, 1.05)
			case unit == "Participants" || unit == "Individuals":
				target = float64(g.between(50, 500))
				current = target * g.uniform(0.50, 1.20)
			default:
				target = float64(g.between(100, 1000))
				current = target * g.uniform(0.60, 1.15)
			}

			out = append(out, model.OutcomeMetric{
				ID:                fmt.Sprintf("MET%04d", len(out)+1),
				GrantID:           gr.ID,
				Name:              name,
				TargetValue:       round2(target),
				CurrentValue:      round2(current),
				MeasurementPeriod: gr.ReportingFrequency,
				Unit:              unit,
			})
		}
	}
	return out
}

func (g *generator) participants(grants []model.Grant) []model.Participant {
	statuses := []model.ParticipantStatus{
		model.ParticipantActive, model.ParticipantActive, model.ParticipantActive,
		model.ParticipantCompleted, model.ParticipantDropped,
	}

	var out []model.Participant
	for _, gr := range grants {
		n := g.between(30, 200)
		span := int(gr.EndDate.Sub(gr.StartDate).Hours() / 24)

		for i := 0; i < n; i++ {
			enrolled := gr.StartDate.AddDate(0, 0, g.rng.Intn(span+1))
			status := statuses[g.rng.Intn(len(statuses))]
			var completion *time.Time
			if status == model.ParticipantCompleted {
				c := enrolled.AddDate(0, 0, g.between(30, 180))
				completion = &c
			}
			out = append(out, model.Participant{
				ID:             fmt.Sprintf("PAR%05d", len(out)+1),
				GrantID:        gr.ID,
				EnrollmentDate: enrolled,
				AgeGroup:       g.pick(ageGroups),
				Demographic:    g.pick(demographics),
				Status:         status,
				CompletionDate: completion,
			})
		}
	}
	return out
}

func (g *generator) reports(grants []model.Grant) []model.Report {
	var out []model.Report
	for _, gr := range grants {
		span := int(gr.EndDate.Sub(gr.StartDate).Hours() / 24)

		var n int
		switch gr.ReportingFrequency {
		case "Quarterly":
			n = span / 90
		case "Semi-Annual":
			n = span / 180
		default:
			n = span / 365
		}
		if n < 2 {
			n = 2
		}
		if n > 12 {
			n = 12
		}

		for i := 0; i < n; i++ {
			due := gr.StartDate.AddDate(0, 0, span*(i+1)/n)

			var status model.ReportStatus
			var submission *time.Time
			switch {
			case due.Before(g.now.AddDate(0, 0, -15)):
				status = model.ReportSubmitted
				s := due.AddDate(0, 0, g.between(-5, 10))
				submission = &s
			case due.Before(g.now):
				status = g.pickReportStatus(
					model.ReportSubmitted, model.ReportInProgress, model.ReportOverdue)
				if status == model.ReportSubmitted {
					s := due.AddDate(0, 0, g.between(0, 5))
					submission = &s
				}
			default:
				status = model.ReportNotStarted
			}

			submittedBy := ""
			if status == model.ReportSubmitted {
				submittedBy = g.person()
			}
			out = append(out, model.Report{
				ID:             fmt.Sprintf("REP%04d", len(out)+1),
				GrantID:        gr.ID,
				Type:           g.pick(reportTypes),
				DueDate:        due,
				SubmissionDate: submission,
				Status:         status,
				SubmittedBy:    submittedBy,
			})
		}
	}
	return out
}

func (g *generator) staffAllocations(grants []model.Grant) []model.StaffAllocation {
	var out []model.StaffAllocation
	for _, gr := range grants {
		n := g.between(3, 6)
		for i := 0; i < n; i++ {
			role := g.pick(staffRoles)
			if i < len(staffRoles) {
				role = staffRoles[i]
			}

			var fte float64
			switch role {
			case "Program Director":
				fte = g.uniform(0.10, 0.25)
			case "Program Manager":
				fte = g.uniform(0.50, 1.00)
			default:
				fte = g.uniform(0.20, 0.75)
			}

			base, ok := baseSalaries[role]
			if !ok {
				base = 50000
			}
			out = append(out, model.StaffAllocation{
				ID:               fmt.Sprintf("SA%04d", len(out)+1),
				GrantID:          gr.ID,
				StaffName:        g.person(),
				Role:             role,
				FTEPercent:       math.Round(fte*1000) / 10,
				SalaryAllocation: round2(base * fte),
			})
		}
	}
	return out
}

func (g *generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *generator) person() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// between returns a uniform integer in [lo, hi].
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *generator) pickDeliverableStatus(opts ...model.DeliverableStatus) model.DeliverableStatus {
	return opts[g.rng.Intn(len(opts))]
}

func (g *generator) pickReportStatus(opts ...model.ReportStatus) model.ReportStatus {
	return opts[g.rng.Intn(len(opts))]
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// elapsedFraction is how far through its period a grant is, clamped to [0,1].
func elapsedFraction(start, end, now time.Time) float64 {
	total := end.Sub(start).Hours()
	if total <= 0 {
		return 0
	}
	f := now.Sub(start).Hours() / total
	return math.Min(math.Max(f, 0), 1)
}
