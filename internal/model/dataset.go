package model

// Dataset bundles every base table of the grant database. The generator
// produces one, the store persists and reloads one, and the metrics engine
// computes all derived views from one.
type Dataset struct {
	Grants           []Grant
	BudgetCategories []BudgetCategory
	Expenses         []Expense
	Deliverables     []Deliverable
	OutcomeMetrics   []OutcomeMetric
	Participants     []Participant
	Reports          []Report
	StaffAllocations []StaffAllocation
}

// GrantByID builds a lookup index over the dataset's grants.
func (d Dataset) GrantByID() map[string]Grant {
	idx := make(map[string]Grant, len(d.Grants))
	for _, g := range d.Grants {
		idx[g.ID] = g
	}
	return idx
}
