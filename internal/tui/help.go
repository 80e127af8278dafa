package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Day history"},
		{"3 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	// Dashboard keys
	dashSection := m.renderSection("Dashboard", []keyHelp{
		{"r", "Refresh data"},
	})
	sections = append(sections, dashSection)

	// History keys
	histSection := m.renderSection("History", []keyHelp{
		{"j / down", "Scroll down"},
		{"k / up", "Scroll up"},
		{"r", "Refresh history"},
	})
	sections = append(sections, histSection)

	// Sync keys
	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	// Scores explanation
	scoresSection := m.renderScoresHelp()
	sections = append(sections, scoresSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderScoresHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Scores Explained"))
	lines = append(lines, "")

	scores := []struct {
		name string
		desc string
	}{
		{"LifeIndex", "Weighted 0-100 wellness score across your metrics. 80+ Excellent, 60+ Good, 40+ Fair."},
		{"Live score", "Today's LifeIndex, with step and calorie goals scaled to the time of day."},
		{"Recovery", "Readiness from HRV (40%), resting heart rate (30%), and sleep (30%)."},
		{"Rest day", "Flagged when recovery drops below 45. Consider a lighter day."},
		{"Score %", "How close a metric is to its target range. Only metrics you have data for count."},
		{"Contrib", "Share of today's score each metric is responsible for."},
	}

	for _, s := range scores {
		lines = append(lines, "  "+helpKeyStyle.Render(s.name))
		lines = append(lines, "  "+mutedStyle.Render(s.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
