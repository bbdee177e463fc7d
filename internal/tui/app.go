package tui

import (
	"trailready/internal/config"
	"trailready/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenCourse
	ScreenEstimate
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard  DashboardModel
	course     CourseModel
	estimate   EstimateModel
	syncScreen SyncModel
	help       HelpModel

	// Services
	readiness *service.ReadinessService
	sync      *service.SyncService

	units Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(cfg *config.Config, rs *service.ReadinessService, ss *service.SyncService) *App {
	units := NewUnits(cfg.Display)
	return &App{
		screen:     ScreenDashboard,
		readiness:  rs,
		sync:       ss,
		units:      units,
		dashboard:  NewDashboardModel(rs, units),
		course:     NewCourseModel(rs, units, 0, 0),
		estimate:   NewEstimateModel(rs, units),
		syncScreen: NewSyncModel(ss),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings (unless a sync is running)
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.readiness, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenCourse
				a.course = NewCourseModel(a.readiness, a.units, a.width, a.height)
				return a, a.course.Init()
			case "3":
				a.screen = ScreenEstimate
				a.estimate = NewEstimateModel(a.readiness, a.units)
				return a, a.estimate.Init()
			case "4":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case SyncCompleteMsg:
		// Refresh dashboard after sync
		a.screen = ScreenDashboard
		a.dashboard = NewDashboardModel(a.readiness, a.units)
		return a, a.dashboard.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenCourse:
		var m tea.Model
		m, cmd = a.course.Update(msg)
		a.course = m.(CourseModel)
	case ScreenEstimate:
		var m tea.Model
		m, cmd = a.estimate.Update(msg)
		a.estimate = m.(EstimateModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("Trail Race Readiness")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenCourse:
		content = a.course.View()
	case ScreenEstimate:
		content = a.estimate.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Readiness", ScreenDashboard},
		{"2", "Course", ScreenCourse},
		{"3", "Estimate", ScreenEstimate},
		{"4", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// SyncCompleteMsg is sent when sync finishes
type SyncCompleteMsg struct{}
