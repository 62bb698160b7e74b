package state

import "fmt"

// View selects which screen is active.
type View string

const (
	ViewLogin           View = "login"
	ViewDashboard       View = "dashboard"
	ViewQuiz            View = "quiz"
	ViewRecommendations View = "recommendations"
	ViewInsights        View = "insights"
	ViewAIStudy         View = "ai_study"
	ViewSettings        View = "settings"
)

// AllViews returns every view in sidebar order.
func AllViews() []View {
	return []View{
		ViewLogin,
		ViewDashboard,
		ViewQuiz,
		ViewRecommendations,
		ViewInsights,
		ViewAIStudy,
		ViewSettings,
	}
}

// ParseView parses a view identifier.
func ParseView(s string) (View, error) {
	for _, v := range AllViews() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view: %q", s)
}

// Label is the human readable name of the view.
func (v View) Label() string {
	switch v {
	case ViewLogin:
		return "Login"
	case ViewDashboard:
		return "Dashboard"
	case ViewQuiz:
		return "Quiz"
	case ViewRecommendations:
		return "Recommendations"
	case ViewInsights:
		return "Insights"
	case ViewAIStudy:
		return "AI Study Buddy"
	case ViewSettings:
		return "Settings"
	default:
		return string(v)
	}
}
