package agent

import (
	"fmt"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// AlertAgent flags categories whose estimated spend exceeds the policy's
// soft caps.
type AlertAgent struct {
	Policy heuristic.Policy
}

func (a *AlertAgent) Name() string { return "Spending Alert Agent" }

func (a *AlertAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	alerts := heuristic.DetectOverspendAlerts(state, a.Policy)
	state.Alerts = alerts

	if len(alerts) == 0 {
		return state, "No overspending detected. ✅", nil
	}
	return state, fmt.Sprintf("%d alert(s) this period.", len(alerts)), nil
}
