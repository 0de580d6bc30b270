package session

import (
	"os"
	"path/filepath"
	"testing"

	"SmartSaver/internal/model"
)

func TestCreateAndSnapshot(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	id := m.Create()
	if id == "" {
		t.Fatal("expected a session id")
	}

	snap, err := m.Snapshot(id)
	if err != nil {
		t.Fatal(err)
	}
	if snap["income"] != 60000.0 {
		t.Errorf("default income missing from snapshot: %v", snap["income"])
	}
	for _, key := range []string{"income", "monthly_spend", "savings_rate", "budget",
		"savings_suggestions", "suggested_autosave", "debts", "debt_strategy",
		"debt_plan", "goals", "alerts"} {
		if _, ok := snap[key]; !ok {
			t.Errorf("snapshot missing field %q", key)
		}
	}
}

func TestUnknownSession(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Snapshot("missing"); err == nil {
		t.Error("expected an error for an unknown session")
	}
}

func TestWithStateAndReset(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	id := m.Create()

	err = m.WithState(id, func(s *model.UserState) *model.UserState {
		s.Income = 75000
		return s
	})
	if err != nil {
		t.Fatal(err)
	}
	snap, _ := m.Snapshot(id)
	if snap["income"] != 75000.0 {
		t.Errorf("mutation not kept: %v", snap["income"])
	}

	snap, err = m.Reset(id)
	if err != nil {
		t.Fatal(err)
	}
	if snap["income"] != 60000.0 {
		t.Errorf("reset should restore defaults, got %v", snap["income"])
	}
}

func TestWithState_NormalizesBeforeRun(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatal(err)
	}
	m.Ensure("demo")

	if err := m.WithState("demo", func(s *model.UserState) *model.UserState {
		s.SavingsRate = 4.2
		s.Income = -100
		return s
	}); err != nil {
		t.Fatal(err)
	}

	var rate, income float64
	if err := m.WithState("demo", func(s *model.UserState) *model.UserState {
		rate, income = s.SavingsRate, s.Income
		return s
	}); err != nil {
		t.Fatal(err)
	}
	if rate != 1 || income != 0 {
		t.Errorf("state should be clamped before each run: rate=%v income=%v", rate, income)
	}
}

func TestSnapshotPersistence(t *testing.T) {
	dir := t.TempDir()

	m1, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	id := m1.Create()
	if err := m1.WithState(id, func(s *model.UserState) *model.UserState {
		s.MonthlySpend = 38000
		return s
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, id+".json")); err != nil {
		t.Fatalf("expected a snapshot file: %v", err)
	}

	// A fresh manager over the same dir restores the session.
	m2, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	snap, err := m2.Snapshot(id)
	if err != nil {
		t.Fatal(err)
	}
	if snap["monthly_spend"] != 38000.0 {
		t.Errorf("restored spend: got %v, want 38000", snap["monthly_spend"])
	}
}

func TestLoadState_MissingFile(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file is not an error: %v", err)
	}
	if state != nil {
		t.Error("missing file should yield nil state")
	}
}
