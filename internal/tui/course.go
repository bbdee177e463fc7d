package tui

import (
	"fmt"
	"strings"
	"time"

	"trailready/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// CourseModel is the course analysis screen model
type CourseModel struct {
	readiness *service.ReadinessService
	units     Units
	report    *service.CourseReport
	viewport  viewport.Model
	loading   bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewCourseModel creates a new course analysis model
func NewCourseModel(rs *service.ReadinessService, units Units, width, height int) CourseModel {
	m := CourseModel{
		readiness: rs,
		units:     units,
		loading:   true,
		width:     width,
		height:    height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the course screen
func (m CourseModel) Init() tea.Cmd {
	return m.loadCourse
}

type courseLoadedMsg struct {
	report *service.CourseReport
	err    error
}

func (m CourseModel) loadCourse() tea.Msg {
	report, err := m.readiness.AnalyzeCourse(time.Now())
	if err != nil {
		return courseLoadedMsg{err: err}
	}
	return courseLoadedMsg{report: report}
}

// Update handles messages
func (m CourseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case courseLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
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
		if m.report != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadCourse
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the course screen
func (m CourseModel) View() string {
	if m.loading {
		return "\n  Analyzing course..."
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

func (m CourseModel) renderContent() string {
	if m.report == nil {
		return "No course data"
	}

	var sections []string

	sections = append(sections, m.renderOverview())
	sections = append(sections, m.renderElevationChart())
	sections = append(sections, m.renderZones())
	sections = append(sections, m.renderEstimateLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CourseModel) renderOverview() string {
	p := m.report.Profile
	title := cardTitleStyle.Render("Course Overview")

	stats := fmt.Sprintf("%s  •  %s climbing  •  %d zones",
		m.units.FormatDistanceKm(p.TotalDistanceKm()),
		m.units.FormatElevation(p.TotalElevationGainM()),
		len(m.report.Zones))

	statsLine := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(stats)

	return lipgloss.JoinVertical(lipgloss.Left, "", title, statsLine, "")
}

func (m CourseModel) renderElevationChart() string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Elevation Profile (m)"))

	data := make([]float64, len(m.report.Profile))
	for i, pt := range m.report.Profile {
		data[i] = pt.ElevationM
	}
	if len(data) > 70 {
		data = downsample(data, 70)
	}

	if len(data) > 2 {
		chart := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
		)
		lines = append(lines, chart)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m CourseModel) renderZones() string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Difficulty Zones"))

	header := fmt.Sprintf("  %-14s  %-9s  %7s  %7s  %7s", "Section", "Rating", "Gain", "Loss", "Grade")
	lines = append(lines, lipgloss.NewStyle().Foreground(primaryColor).Render(header))

	for _, z := range m.report.Zones {
		section := fmt.Sprintf("%.1f-%.1f km", z.StartKm, z.EndKm)
		rating := lipgloss.NewStyle().Foreground(lipgloss.Color(z.Color)).Bold(true).Render(fmt.Sprintf("%-9s", z.Difficulty))

		row := fmt.Sprintf("  %-14s  %s  %6.0fm  %6.0fm  %6.1f%%",
			section, rating, z.ElevationGainM, z.ElevationLossM, z.AvgGrade)
		lines = append(lines, row)
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(mutedColor).Render(z.Description))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m CourseModel) renderEstimateLine() string {
	est := m.report.Estimate
	line := fmt.Sprintf("Estimated finish: %s  (range %s)", est.Formatted, est.FormattedRange)
	return lipgloss.NewStyle().Bold(true).Foreground(textColor).Render(line)
}

// downsample averages runs of points so long profiles fit the chart width
func downsample(data []float64, targetLen int) []float64 {
	if len(data) <= targetLen {
		return data
	}

	result := make([]float64, targetLen)
	ratio := float64(len(data)) / float64(targetLen)

	for i := 0; i < targetLen; i++ {
		start := int(float64(i) * ratio)
		end := int(float64(i+1) * ratio)
		if end > len(data) {
			end = len(data)
		}

		sum := 0.0
		count := 0
		for j := start; j < end; j++ {
			sum += data[j]
			count++
		}
		if count > 0 {
			result[i] = sum / float64(count)
		}
	}

	return result
}
