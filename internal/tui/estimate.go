package tui

import (
	"fmt"
	"time"

	"trailready/internal/readiness"
	"trailready/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EstimateModel is the race time estimate screen model
type EstimateModel struct {
	readiness *service.ReadinessService
	units     Units
	estimate  *readiness.TimeEstimate
	loading   bool
	err       error
}

// NewEstimateModel creates a new estimate model
func NewEstimateModel(rs *service.ReadinessService, units Units) EstimateModel {
	return EstimateModel{
		readiness: rs,
		units:     units,
		loading:   true,
	}
}

// Init initializes the estimate screen
func (m EstimateModel) Init() tea.Cmd {
	return m.loadEstimate
}

type estimateLoadedMsg struct {
	estimate *readiness.TimeEstimate
	err      error
}

func (m EstimateModel) loadEstimate() tea.Msg {
	est, err := m.readiness.Estimate(time.Now())
	if err != nil {
		return estimateLoadedMsg{err: err}
	}
	return estimateLoadedMsg{estimate: &est}
}

// Update handles messages
func (m EstimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case estimateLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.estimate = msg.estimate
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadEstimate
		}
	}
	return m, nil
}

// View renders the estimate screen
func (m EstimateModel) View() string {
	if m.loading {
		return "\n  Computing estimate..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.estimate == nil {
		return "\n  No estimate available. Configure a race in config.json."
	}

	est := m.estimate
	title := cardTitleStyle.Render("Race Time Estimate")

	bigTime := lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(est.Formatted)

	lines := []string{
		bigTime,
		"",
		RenderMetric("Range", est.FormattedRange),
		RenderMetric("Base pace", m.units.FormatPace(est.BasePaceMinPerKm)),
		RenderMetric("Adjusted pace", m.units.FormatPace(est.FinalPaceMinPerKm)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := cardStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	help := statusStyle.Render("Press 'r' to refresh, '2' for the course breakdown")

	return lipgloss.JoinVertical(lipgloss.Left, card, help)
}
