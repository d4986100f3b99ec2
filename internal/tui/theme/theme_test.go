package theme

import (
	"testing"

	"grantwatch/internal/model"
)

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown name should fall back to %q, got %q", FlexokiDark.Name, got.Name)
	}
}

func TestAlertColor(t *testing.T) {
	th := FlexokiDark
	if th.AlertColor(model.AlertBudgetOverspent) != th.Red {
		t.Errorf("budget overrun should use the red channel")
	}
	if th.AlertColor(model.AlertOverdueDeliverable) != th.Orange {
		t.Errorf("overdue deliverable should use the orange channel")
	}
	if th.AlertColor(model.AlertOverdueReport) != th.Yellow {
		t.Errorf("overdue report should use the yellow channel")
	}
}

func TestOutcomeColor(t *testing.T) {
	th := FlexokiDark
	for _, tc := range []struct {
		status model.OutcomeStatus
		want   string
	}{
		{model.OutcomeOnTrack, string(th.Green)},
		{model.OutcomeNeedsAttention, string(th.Orange)},
		{model.OutcomeAtRisk, string(th.Red)},
	} {
		if got := string(th.OutcomeColor(tc.status)); got != tc.want {
			t.Errorf("OutcomeColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestDeliverableColor(t *testing.T) {
	th := FlexokiDark
	if th.DeliverableColor(model.DeliverableCompleted) != th.Green {
		t.Errorf("completed should use the green channel")
	}
	if th.DeliverableColor(model.DeliverableOverdue) != th.Red {
		t.Errorf("overdue should use the red channel")
	}
	if th.DeliverableColor(model.DeliverableLate) != th.Red {
		t.Errorf("late should use the red channel")
	}
	if th.DeliverableColor(model.DeliverableNotStarted) != th.TextDim {
		t.Errorf("not started should stay dim")
	}
}

func TestGrantStatusColor(t *testing.T) {
	th := FlexokiDark
	if th.GrantStatusColor(model.GrantActive) != th.Green {
		t.Errorf("active grants should use the green channel")
	}
	if th.GrantStatusColor(model.GrantCompleted) != th.TextMuted {
		t.Errorf("completed grants should stay muted")
	}
}
