package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderSidebar(t *testing.T) {
	items := []NavItem{{Label: "Home", Active: true}, {Label: "Insights"}}
	out := uitest.Plain(RenderSidebar(items, 1, true, 12))
	if !strings.Contains(out, "Home") || !strings.Contains(out, "▸ Insights") {
		t.Fatalf("sidebar missing entries:\n%s", out)
	}
}

func TestRenderToast(t *testing.T) {
	if RenderToast("", 40) != "" {
		t.Error("empty toast should render nothing")
	}
	if out := uitest.Plain(RenderToast("Navigating to Insights", 60)); !strings.Contains(out, "Navigating to Insights") {
		t.Errorf("toast = %q", out)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("Dashboard", "Katabo", 80)
	footer := RenderFooter([]KeyHint{{Key: "Tab", Description: "Menu"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
