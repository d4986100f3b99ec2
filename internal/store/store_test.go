package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"grantwatch/internal/gen"
	"grantwatch/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "grants.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	ds := gen.Generate(gen.Options{
		Seed: 42,
		Now:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	if err := s.SaveDataset(ds); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}

	got, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	// Load orders by ID; the generator emits IDs in ascending order, so the
	// datasets should match exactly.
	if !reflect.DeepEqual(got, ds) {
		if len(got.Grants) != len(ds.Grants) {
			t.Fatalf("grants: got %d, want %d", len(got.Grants), len(ds.Grants))
		}
		if !reflect.DeepEqual(got.Grants, ds.Grants) {
			t.Fatalf("grants differ:\ngot  %+v\nwant %+v", got.Grants, ds.Grants)
		}
		if !reflect.DeepEqual(got.Deliverables, ds.Deliverables) {
			t.Fatal("deliverables differ after round trip")
		}
		t.Fatal("dataset differs after round trip")
	}
}

func TestStore_SaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	big := gen.Generate(gen.Options{Grants: 5, Seed: 1, Now: now})
	if err := s.SaveDataset(big); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}
	small := gen.Generate(gen.Options{Grants: 2, Seed: 2, Now: now})
	if err := s.SaveDataset(small); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}

	n, err := s.GrantCount()
	if err != nil {
		t.Fatalf("GrantCount: %v", err)
	}
	if n != 2 {
		t.Fatalf("GrantCount = %d, want 2 after replacement", n)
	}

	counts, err := s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts["budget_categories"] != 16 {
		t.Errorf("budget_categories = %d, want 16", counts["budget_categories"])
	}
	if counts["expenses"] != len(small.Expenses) {
		t.Errorf("expenses = %d, want %d", counts["expenses"], len(small.Expenses))
	}
}

func TestStore_NullableDates(t *testing.T) {
	s := openTestStore(t)

	due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	done := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	ds := model.Dataset{
		Grants: []model.Grant{{
			ID: "GR001", Name: "Housing Assistance Project", Funder: "Cedarbrook Fund",
			TotalAmount: 1000,
			StartDate:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
			Status:      model.GrantActive,
		}},
		Deliverables: []model.Deliverable{
			{ID: "DEL1", GrantID: "GR001", Name: "Interim Progress Report",
				DueDate: due, Status: model.DeliverableCompleted, CompletionDate: &done},
			{ID: "DEL2", GrantID: "GR001", Name: "Final Report",
				DueDate: due, Status: model.DeliverableNotStarted},
		},
	}
	if err := s.SaveDataset(ds); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}

	got, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if got.Deliverables[0].CompletionDate == nil || !got.Deliverables[0].CompletionDate.Equal(done) {
		t.Errorf("completed deliverable lost its completion date")
	}
	if got.Deliverables[1].CompletionDate != nil {
		t.Errorf("unstarted deliverable gained a completion date: %v", got.Deliverables[1].CompletionDate)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "grants.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parent dirs: %v", err)
	}
	_ = s.Close()
}
