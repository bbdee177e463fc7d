package tui

import (
	"fmt"
	"time"

	"trailready/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the readiness dashboard screen model
type DashboardModel struct {
	readiness *service.ReadinessService
	units     Units
	report    *service.Report
	loading   bool
	err       error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(rs *service.ReadinessService, units Units) DashboardModel {
	return DashboardModel{
		readiness: rs,
		units:     units,
		loading:   true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadReport
}

func (m DashboardModel) loadReport() tea.Msg {
	report, err := m.readiness.BuildReport(time.Now())
	if err != nil {
		return dashboardReportMsg{err: err}
	}
	return dashboardReportMsg{report: report}
}

type dashboardReportMsg struct {
	report *service.Report
	err    error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardReportMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadReport
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading readiness report..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.report == nil || m.report.Metrics == nil {
		return "\n  No training data yet. Press '4' to sync with Strava."
	}

	var sections []string

	balanceCard := m.renderBalanceCard()
	trainingCard := m.renderTrainingCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, balanceCard, "  ", trainingCard)
	sections = append(sections, topRow)

	if len(m.report.Buckets) > 2 {
		sections = append(sections, m.renderWeeklyChart())
	}

	sections = append(sections, m.renderRecentActivities())

	if len(m.report.Metrics.Recommendations) > 0 {
		sections = append(sections, m.renderRecommendations())
	}

	help := statusStyle.Render("Press 'r' to refresh, '4' to sync, '2' for course analysis")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderBalanceCard() string {
	title := cardTitleStyle.Render("Training Stress Balance")

	r := m.report
	balanceStr := fmt.Sprintf("%+d", r.Balance)
	if r.BalanceApproximate {
		balanceStr += " (approx)"
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		RenderMetric("Balance", balanceStr),
		RenderMetric("Load score", fmt.Sprintf("%.0f", r.Metrics.LoadScore)),
		RenderMetric("Load variation", fmt.Sprintf("%+.0f%%", r.Metrics.LoadVariationPct)),
		"",
		mutedStyle.Render(r.BalanceDescription),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTrainingCard() string {
	title := cardTitleStyle.Render("This Training Block")

	met := m.report.Metrics
	lines := []string{
		RenderMetric("Weekly distance", m.units.FormatDistanceKm(met.KmPerWeek)),
		RenderMetric("Weekly climbing", m.units.FormatElevation(met.ElevationGainPerWeek)),
		RenderMetric("Longest run", m.units.FormatDistanceKm(met.LongRunDistanceKm)),
		RenderMetric("Long run climbing", m.units.FormatElevation(met.LongRunElevationM)),
		RenderMetric("Regularity", string(met.Regularity)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeeklyChart() string {
	title := cardTitleStyle.Render("Weekly Distance - Last 6 Weeks")

	data := make([]float64, len(m.report.Buckets))
	for i, b := range m.report.Buckets {
		data[i] = b.Km
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentActivities() string {
	title := cardTitleStyle.Render("Recent Runs")

	if len(m.report.Recent) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No runs yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-22s  %9s  %7s  %7s",
		"Date", "Name", "Distance", "Climb", "Time"))

	rows := []string{header}
	for _, a := range m.report.Recent {
		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-22s  %9s  %7s  %7s",
			a.StartDate.Format("Jan 02"),
			truncateName(a.Name, 22),
			m.units.FormatDistanceMeters(a.Distance),
			m.units.FormatElevation(a.TotalElevationGain),
			formatDuration(a.MovingTime),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m DashboardModel) renderRecommendations() string {
	title := cardTitleStyle.Render("Recommendations")

	var rows []string
	for _, rec := range m.report.Metrics.Recommendations {
		rows = append(rows, "• "+rec)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	mins := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
