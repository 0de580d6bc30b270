package heuristic

import (
	"strings"
	"testing"

	"SmartSaver/internal/model"
)

func TestDetectOverspendAlerts_ZeroIncome(t *testing.T) {
	s := &model.UserState{Income: 0, MonthlySpend: 45000}
	if alerts := DetectOverspendAlerts(s, DefaultPolicy()); len(alerts) != 0 {
		t.Errorf("zero income should yield no alerts, got %d", len(alerts))
	}
}

func TestDetectOverspendAlerts_HeavySpend(t *testing.T) {
	// Spend near income pushes several estimated categories past their caps.
	s := &model.UserState{Income: 50000, MonthlySpend: 48000}
	alerts := DetectOverspendAlerts(s, DefaultPolicy())
	if len(alerts) == 0 {
		t.Fatal("expected alerts when spending ~96% of income")
	}
	for _, a := range alerts {
		if a.Spent <= a.SoftCap {
			t.Errorf("%s: alert fired but spent %.2f <= cap %.2f", a.Category, a.Spent, a.SoftCap)
		}
		if !strings.Contains(a.Message, "soft cap") {
			t.Errorf("%s: message should mention the soft cap, got %q", a.Category, a.Message)
		}
	}
}

func TestDetectOverspendAlerts_ModerateSpend(t *testing.T) {
	// Spending half of income keeps every estimated category under its cap.
	s := &model.UserState{Income: 60000, MonthlySpend: 30000}
	if alerts := DetectOverspendAlerts(s, DefaultPolicy()); len(alerts) != 0 {
		t.Errorf("expected no alerts for moderate spend, got %d", len(alerts))
	}
}
