package tui

import (
	"fmt"
	"strings"
	"time"

	"lifeindex/internal/scoring"
	"lifeindex/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryModel is the day history screen model
type HistoryModel struct {
	queryService *service.QueryService
	days         []service.DayDetail
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(qs *service.QueryService, width, height int) HistoryModel {
	m := HistoryModel{
		queryService: qs,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyLoadedMsg struct {
	days []service.DayDetail
	err  error
}

func (m HistoryModel) loadHistory() tea.Msg {
	days, err := m.queryService.GetHistory(time.Now())
	return historyLoadedMsg{days: days, err: err}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.days = msg.days
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.days != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadHistory
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m HistoryModel) renderContent() string {
	if len(m.days) == 0 {
		return "No completed days yet. Run a sync to pull in your history."
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Day History"))
	sections = append(sections, "")

	for _, day := range m.days {
		sections = append(sections, m.renderDay(day))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HistoryModel) renderDay(day service.DayDetail) string {
	var lines []string

	lines = append(lines, m.sectionHeader(day.Date))

	summary := "  "
	if day.Result != nil {
		style := scoreStyle(day.Result.Score)
		summary += "LifeIndex " + style.Render(fmt.Sprintf("%d %s", day.Result.Score, day.Result.Label))
	} else {
		summary += mutedStyle.Render("LifeIndex -")
	}
	summary += "    "
	if day.Recovery != nil {
		style := scoreStyle(day.Recovery.Score)
		summary += "Recovery " + style.Render(fmt.Sprintf("%d %s", day.Recovery.Score, day.Recovery.Label))
		if day.Recovery.RestDay {
			summary += "  " + warningStyle.Render("rest day")
		}
	} else {
		summary += mutedStyle.Render("Recovery -")
	}
	lines = append(lines, summary)

	if day.Result != nil {
		lines = append(lines, m.tableHeader())
		for _, entry := range day.Result.Breakdown {
			lines = append(lines, m.formatBreakdownRow(entry))
		}
	} else if len(day.Readings) > 0 {
		for _, mt := range scoring.AllMetricTypes {
			if v, ok := day.Readings[mt]; ok {
				lines = append(lines, fmt.Sprintf("  %-18s  %10s", mt.DisplayName(), service.FormatMetricValue(mt, v)))
			}
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m HistoryModel) sectionHeader(title string) string {
	titleLen := len([]rune(title))
	dividerLen := 60 - titleLen - 4
	if dividerLen < 0 {
		dividerLen = 0
	}
	divider := strings.Repeat("─", dividerLen)
	return lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(fmt.Sprintf("── %s %s", title, divider))
}

func (m HistoryModel) tableHeader() string {
	header := fmt.Sprintf("  %-18s  %10s  %6s  %7s", "Metric", "Value", "Score", "Contrib")
	return lipgloss.NewStyle().Foreground(primaryColor).Render(header)
}

func (m HistoryModel) formatBreakdownRow(entry scoring.BreakdownEntry) string {
	return fmt.Sprintf("  %-18s  %10s  %5.0f%%  %6.1f%%",
		entry.Metric.DisplayName(),
		service.FormatMetricValue(entry.Metric, entry.RawValue),
		entry.Normalized*100,
		entry.ContributionPct,
	)
}
