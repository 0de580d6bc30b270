package agent

import (
	"strings"
	"testing"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

func TestDefaultStateSafety(t *testing.T) {
	reg := NewRegistry(heuristic.DefaultPolicy())

	for _, name := range reg.Names() {
		a, err := reg.Resolve(name)
		if err != nil {
			t.Fatalf("resolve %q: %v", name, err)
		}
		// Zero state, not the demo defaults: agents must not choke on it.
		state, msg, err := a.Step(&model.UserState{})
		if err != nil {
			t.Errorf("%s failed on empty state: %v", name, err)
		}
		if state == nil {
			t.Errorf("%s returned nil state", name)
		}
		if msg == "" {
			t.Errorf("%s returned an empty message", name)
		}
	}
}

func TestResolve_FreshInstancePerCall(t *testing.T) {
	reg := NewRegistry(heuristic.DefaultPolicy())

	first, err := reg.Resolve("goals")
	if err != nil {
		t.Fatal(err)
	}
	second, err := reg.Resolve("goals")
	if err != nil {
		t.Fatal(err)
	}

	// Running one instance must not change the other's behavior.
	stateA := model.DefaultState()
	if _, _, err := first.Step(stateA); err != nil {
		t.Fatal(err)
	}
	stateB := model.DefaultState()
	_, msg, err := second.Step(stateB)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(msg, "Created starter goals") {
		t.Errorf("second instance should behave like a fresh one, got %q", msg)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	reg := NewRegistry(heuristic.DefaultPolicy())
	if _, err := reg.Resolve("mystery"); err == nil {
		t.Error("expected an error for an unknown agent name")
	}
}

func TestBudgetAgent_UpdatesSavingsRate(t *testing.T) {
	a := &BudgetAgent{Policy: heuristic.DefaultPolicy()}
	state := model.DefaultState()

	state, msg, err := a.Step(state)
	if err != nil {
		t.Fatal(err)
	}
	want := state.Budget.Savings / state.Income
	if state.SavingsRate != want {
		t.Errorf("savings rate should equal savings/income: got %.4f want %.4f", state.SavingsRate, want)
	}
	if !strings.Contains(msg, "₹") {
		t.Errorf("budget message should contain formatted amounts, got %q", msg)
	}
}

func TestGoalAgent_SeedsThenUpdates(t *testing.T) {
	reg := NewRegistry(heuristic.DefaultPolicy())
	a, err := reg.Resolve("goals")
	if err != nil {
		t.Fatal(err)
	}
	state := model.DefaultState()

	state, msg, err := a.Step(state)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(msg, "Created starter goals") {
		t.Fatalf("first run should seed goals, got %q", msg)
	}
	if len(state.Goals) != 2 {
		t.Fatalf("expected emergency fund + debt cushion, got %d goals", len(state.Goals))
	}

	autosave := 9000.0
	state.SuggestedAutosave = &autosave
	state, msg, err = a.Step(state)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(msg, "Updated goals") {
		t.Fatalf("second run should update goals, got %q", msg)
	}
	if state.Goals[0].Saved <= 0 {
		t.Error("goal progress should advance when an autosave suggestion exists")
	}
	for _, g := range state.Goals {
		if g.Saved > g.Target {
			t.Errorf("goal %s saved %.0f exceeds target %.0f", g.Name, g.Saved, g.Target)
		}
	}
}

func TestDebtAgent_NoDebts(t *testing.T) {
	a := &DebtAgent{}
	state := &model.UserState{DebtStrategy: model.StrategyAvalanche}

	state, msg, err := a.Step(state)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(msg, "No debts found") {
		t.Errorf("expected no-debts message, got %q", msg)
	}
	if state.DebtPlan.Method != model.StrategyAvalanche {
		t.Errorf("plan method should still be set, got %q", state.DebtPlan.Method)
	}
}

func TestAlertAgent_Messages(t *testing.T) {
	a := &AlertAgent{Policy: heuristic.DefaultPolicy()}

	// Spend well above caps.
	hot := &model.UserState{Income: 50000, MonthlySpend: 48000}
	hot, msg, err := a.Step(hot)
	if err != nil {
		t.Fatal(err)
	}
	if len(hot.Alerts) == 0 {
		t.Fatal("expected alerts for heavy overspending")
	}
	if !strings.Contains(msg, "alert(s) this period") {
		t.Errorf("unexpected alert message %q", msg)
	}

	// No income, no caps.
	calm := &model.UserState{}
	calm, msg, err = a.Step(calm)
	if err != nil {
		t.Fatal(err)
	}
	if len(calm.Alerts) != 0 {
		t.Error("zero income should produce no alerts")
	}
	if !strings.Contains(msg, "No overspending detected") {
		t.Errorf("unexpected message %q", msg)
	}
}
