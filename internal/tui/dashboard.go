package tui

import (
	"fmt"
	"time"

	"lifeindex/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData(time.Now())
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available. Press 's' to sync with Oura."
	}

	var sections []string

	// Top row: LifeIndex and Recovery side by side
	lifeCard := m.renderLifeIndexCard()
	recoveryCard := m.renderRecoveryCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, lifeCard, "  ", recoveryCard)
	sections = append(sections, topRow)

	// Chart
	if len(m.data.TrendScores) > 2 {
		chart := m.renderChart()
		sections = append(sections, chart)
	}

	// Per-metric breakdown
	breakdown := m.renderBreakdown()
	sections = append(sections, breakdown)

	// Help
	help := statusStyle.Render("Press 'r' to refresh, 's' to sync, '2' for history")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderLifeIndexCard() string {
	title := cardTitleStyle.Render("LifeIndex Today")

	var lines []string
	if m.data.Live == nil {
		lines = append(lines, mutedStyle.Render("No readings yet today."))
		lines = append(lines, mutedStyle.Render("Sync to pull in your day."))
	} else {
		live := m.data.Live
		style := scoreStyle(live.Score)
		lines = append(lines,
			style.Render(fmt.Sprintf("%d", live.Score))+"  "+style.Render(live.Label),
			"",
			RenderProgressBar(float64(live.Score)/100, 30),
			"",
			mutedStyle.Render("Live score, scaled to the time of day."),
		)
		if top := live.Top(); top != nil {
			lines = append(lines, RenderMetric("Strongest", top.Metric.DisplayName()))
		}
		if weakest := live.Weakest(); weakest != nil {
			lines = append(lines, RenderMetric("Weakest", weakest.Metric.DisplayName()))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderRecoveryCard() string {
	title := cardTitleStyle.Render("Recovery")

	var lines []string
	if m.data.Recovery == nil {
		lines = append(lines, mutedStyle.Render("No HRV, resting HR, or"))
		lines = append(lines, mutedStyle.Render("sleep data for today."))
	} else {
		rec := m.data.Recovery
		style := scoreStyle(rec.Score)
		lines = append(lines,
			style.Render(fmt.Sprintf("%d", rec.Score))+"  "+style.Render(rec.Label),
			"",
			RenderProgressBar(float64(rec.Score)/100, 24),
			"",
		)
		if rec.RestDay {
			lines = append(lines, warningStyle.Render("Take it easy today."))
		} else {
			lines = append(lines, successStyle.Render("Ready to train."))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(32).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("LifeIndex - Recent Trend")

	graph := asciigraph.Plot(m.data.TrendScores,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderBreakdown() string {
	title := cardTitleStyle.Render("Metric Breakdown")

	if m.data.Live == nil || len(m.data.Live.Breakdown) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No readings yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-18s  %10s  %6s  %6s  %7s",
		"Metric", "Value", "Score", "Weight", "Contrib"))

	var rows []string
	rows = append(rows, header)

	for _, entry := range m.data.Live.Breakdown {
		row := tableRowStyle.Render(fmt.Sprintf("%-18s  %10s  %5.0f%%  %6.2f  %6.1f%%",
			entry.Metric.DisplayName(),
			service.FormatMetricValue(entry.Metric, entry.RawValue),
			entry.Normalized*100,
			entry.Weight,
			entry.ContributionPct,
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
