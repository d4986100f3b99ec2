// Package store persists grant datasets in a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grantwatch/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// dateFmt is the column format for all dates. Times of day are never stored.
const dateFmt = "2006-01-02"

// Store wraps a SQLite grant database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDataset replaces the database contents with the given dataset in one
// transaction. Children are cleared by the grant cascade; expenses go in
// after categories so their foreign keys resolve.
func (s *Store) SaveDataset(ds model.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM grants"); err != nil {
		return err
	}

	for _, g := range ds.Grants {
		_, err := tx.Exec(`INSERT INTO grants
			(grant_id, grant_name, funder_name, funder_type, total_amount,
			 start_date, end_date, status, grant_officer, purpose, reporting_frequency)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Name, g.Funder, g.FunderType, g.TotalAmount,
			g.StartDate.Format(dateFmt), g.EndDate.Format(dateFmt),
			string(g.Status), g.Officer, g.Purpose, g.ReportingFrequency,
		)
		if err != nil {
			return err
		}
	}

	for _, c := range ds.BudgetCategories {
		_, err := tx.Exec(`INSERT INTO budget_categories
			(category_id, grant_id, category_name, budgeted_amount, spent_amount)
			VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.GrantID, c.Name, c.BudgetedAmount, c.SpentAmount,
		)
		if err != nil {
			return err
		}
	}

	for _, e := range ds.Expenses {
		_, err := tx.Exec(`INSERT INTO expenses
			(expense_id, grant_id, category_id, expense_date, vendor, description, amount, approved_by)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.GrantID, e.CategoryID, e.Date.Format(dateFmt),
			e.Vendor, e.Description, e.Amount, e.ApprovedBy,
		)
		if err != nil {
			return err
		}
	}

	for _, d := range ds.Deliverables {
		_, err := tx.Exec(`INSERT INTO deliverables
			(deliverable_id, grant_id, deliverable_name, due_date, status, completion_date, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.GrantID, d.Name, d.DueDate.Format(dateFmt),
			string(d.Status), optionalDate(d.CompletionDate), d.Notes,
		)
		if err != nil {
			return err
		}
	}

	for _, m := range ds.OutcomeMetrics {
		_, err := tx.Exec(`INSERT INTO outcome_metrics
			(metric_id, grant_id, metric_name, target_value, current_value,
			 measurement_period, unit_of_measure)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.GrantID, m.Name, m.TargetValue, m.CurrentValue,
			m.MeasurementPeriod, m.Unit,
		)
		if err != nil {
			return err
		}
	}

	for _, p := range ds.Participants {
		_, err := tx.Exec(`INSERT INTO participants
			(participant_id, grant_id, enrollment_date, age_group, demographic_category, status, completion_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.GrantID, p.EnrollmentDate.Format(dateFmt),
			p.AgeGroup, p.Demographic, string(p.Status), optionalDate(p.CompletionDate),
		)
		if err != nil {
			return err
		}
	}

	for _, r := range ds.Reports {
		_, err := tx.Exec(`INSERT INTO reports
			(report_id, grant_id, report_type, due_date, submission_date, status, submitted_by)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.GrantID, r.Type, r.DueDate.Format(dateFmt),
			optionalDate(r.SubmissionDate), string(r.Status), r.SubmittedBy,
		)
		if err != nil {
			return err
		}
	}

	for _, a := range ds.StaffAllocations {
		_, err := tx.Exec(`INSERT INTO staff_allocations
			(allocation_id, grant_id, staff_name, role, fte_percentage, salary_allocation)
			VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, a.GrantID, a.StaffName, a.Role, a.FTEPercent, a.SalaryAllocation,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadDataset reads every base table back into memory.
func (s *Store) LoadDataset() (model.Dataset, error) {
	var ds model.Dataset

	rows, err := s.db.Query(`SELECT grant_id, grant_name, funder_name, funder_type,
		total_amount, start_date, end_date, status, grant_officer, purpose, reporting_frequency
		FROM grants ORDER BY grant_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var g model.Grant
		var start, end, status string
		if err := rows.Scan(&g.ID, &g.Name, &g.Funder, &g.FunderType,
			&g.TotalAmount, &start, &end, &status, &g.Officer, &g.Purpose, &g.ReportingFrequency); err != nil {
			return ds, err
		}
		if g.StartDate, err = time.Parse(dateFmt, start); err != nil {
			return ds, fmt.Errorf("grant %s start_date: %w", g.ID, err)
		}
		if g.EndDate, err = time.Parse(dateFmt, end); err != nil {
			return ds, fmt.Errorf("grant %s end_date: %w", g.ID, err)
		}
		g.Status = model.GrantStatus(status)
		ds.Grants = append(ds.Grants, g)
	}
	if err := rows.Err(); err != nil {
		return ds, err
	}

	catRows, err := s.db.Query(`SELECT category_id, grant_id, category_name,
		budgeted_amount, spent_amount FROM budget_categories ORDER BY category_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = catRows.Close() }()
	for catRows.Next() {
		var c model.BudgetCategory
		if err := catRows.Scan(&c.ID, &c.GrantID, &c.Name, &c.BudgetedAmount, &c.SpentAmount); err != nil {
			return ds, err
		}
		ds.BudgetCategories = append(ds.BudgetCategories, c)
	}
	if err := catRows.Err(); err != nil {
		return ds, err
	}

	expRows, err := s.db.Query(`SELECT expense_id, grant_id, category_id, expense_date,
		vendor, description, amount, approved_by FROM expenses ORDER BY expense_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = expRows.Close() }()
	for expRows.Next() {
		var e model.Expense
		var date string
		if err := expRows.Scan(&e.ID, &e.GrantID, &e.CategoryID, &date,
			&e.Vendor, &e.Description, &e.Amount, &e.ApprovedBy); err != nil {
			return ds, err
		}
		if e.Date, err = time.Parse(dateFmt, date); err != nil {
			return ds, fmt.Errorf("expense %s date: %w", e.ID, err)
		}
		ds.Expenses = append(ds.Expenses, e)
	}
	if err := expRows.Err(); err != nil {
		return ds, err
	}

	delRows, err := s.db.Query(`SELECT deliverable_id, grant_id, deliverable_name,
		due_date, status, completion_date, notes FROM deliverables ORDER BY deliverable_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = delRows.Close() }()
	for delRows.Next() {
		var d model.Deliverable
		var due string
		var completion, notes sql.NullString
		if err := delRows.Scan(&d.ID, &d.GrantID, &d.Name, &due,
			(*string)(&d.Status), &completion, &notes); err != nil {
			return ds, err
		}
		if d.DueDate, err = time.Parse(dateFmt, due); err != nil {
			return ds, fmt.Errorf("deliverable %s due_date: %w", d.ID, err)
		}
		if d.CompletionDate, err = parseOptionalDate(completion); err != nil {
			return ds, fmt.Errorf("deliverable %s completion_date: %w", d.ID, err)
		}
		d.Notes = notes.String
		ds.Deliverables = append(ds.Deliverables, d)
	}
	if err := delRows.Err(); err != nil {
		return ds, err
	}

	metRows, err := s.db.Query(`SELECT metric_id, grant_id, metric_name, target_value,
		current_value, measurement_period, unit_of_measure FROM outcome_metrics ORDER BY metric_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = metRows.Close() }()
	for metRows.Next() {
		var m model.OutcomeMetric
		if err := metRows.Scan(&m.ID, &m.GrantID, &m.Name, &m.TargetValue,
			&m.CurrentValue, &m.MeasurementPeriod, &m.Unit); err != nil {
			return ds, err
		}
		ds.OutcomeMetrics = append(ds.OutcomeMetrics, m)
	}
	if err := metRows.Err(); err != nil {
		return ds, err
	}

	parRows, err := s.db.Query(`SELECT participant_id, grant_id, enrollment_date,
		age_group, demographic_category, status, completion_date FROM participants ORDER BY participant_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = parRows.Close() }()
	for parRows.Next() {
		var p model.Participant
		var enrolled string
		var completion sql.NullString
		if err := parRows.Scan(&p.ID, &p.GrantID, &enrolled,
			&p.AgeGroup, &p.Demographic, (*string)(&p.Status), &completion); err != nil {
			return ds, err
		}
		if p.EnrollmentDate, err = time.Parse(dateFmt, enrolled); err != nil {
			return ds, fmt.Errorf("participant %s enrollment_date: %w", p.ID, err)
		}
		if p.CompletionDate, err = parseOptionalDate(completion); err != nil {
			return ds, fmt.Errorf("participant %s completion_date: %w", p.ID, err)
		}
		ds.Participants = append(ds.Participants, p)
	}
	if err := parRows.Err(); err != nil {
		return ds, err
	}

	repRows, err := s.db.Query(`SELECT report_id, grant_id, report_type, due_date,
		submission_date, status, submitted_by FROM reports ORDER BY report_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = repRows.Close() }()
	for repRows.Next() {
		var r model.Report
		var due string
		var submission, submittedBy sql.NullString
		if err := repRows.Scan(&r.ID, &r.GrantID, &r.Type, &due,
			&submission, (*string)(&r.Status), &submittedBy); err != nil {
			return ds, err
		}
		if r.DueDate, err = time.Parse(dateFmt, due); err != nil {
			return ds, fmt.Errorf("report %s due_date: %w", r.ID, err)
		}
		if r.SubmissionDate, err = parseOptionalDate(submission); err != nil {
			return ds, fmt.Errorf("report %s submission_date: %w", r.ID, err)
		}
		r.SubmittedBy = submittedBy.String
		ds.Reports = append(ds.Reports, r)
	}
	if err := repRows.Err(); err != nil {
		return ds, err
	}

	staffRows, err := s.db.Query(`SELECT allocation_id, grant_id, staff_name, role,
		fte_percentage, salary_allocation FROM staff_allocations ORDER BY allocation_id`)
	if err != nil {
		return ds, err
	}
	defer func() { _ = staffRows.Close() }()
	for staffRows.Next() {
		var a model.StaffAllocation
		if err := staffRows.Scan(&a.ID, &a.GrantID, &a.StaffName, &a.Role,
			&a.FTEPercent, &a.SalaryAllocation); err != nil {
			return ds, err
		}
		ds.StaffAllocations = append(ds.StaffAllocations, a)
	}
	return ds, staffRows.Err()
}

// GrantCount returns the number of stored grants.
func (s *Store) GrantCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM grants").Scan(&count)
	return count, err
}

// Counts returns per-table row counts, keyed by table name.
func (s *Store) Counts() (map[string]int, error) {
	tables := []string{
		"grants", "budget_categories", "expenses", "deliverables",
		"outcome_metrics", "participants", "reports", "staff_allocations",
	}
	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		var n int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + t).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", t, err)
		}
		counts[t] = n
	}
	return counts, nil
}

func optionalDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateFmt)
}

func parseOptionalDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFmt, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
