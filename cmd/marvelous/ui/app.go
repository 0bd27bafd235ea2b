package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marvelous/internal/branch"
	"marvelous/internal/insight"
	"marvelous/internal/logging"
	"marvelous/internal/shell"
	"marvelous/internal/view"
)

// Deps carries everything the interface needs, wired in cmd.
type Deps struct {
	Shell       *shell.State
	Controllers *view.Controllers
	Insights    *insight.Controller
}

// refreshedMsg reports that every controller finished loading for a
// selector. online reflects whether the remote-backed areas got real
// rows.
type refreshedMsg struct {
	sel    branch.Selector
	online bool
}

// insightMsg carries the finished text of one generation request.
type insightMsg struct {
	kind insight.Kind
	text string
}

// page is one tab's render/update surface.
type page interface {
	SetSize(w, h int)
	UpdateContent()
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Model is the root bubbletea model.
type Model struct {
	deps   Deps
	styles Styles

	spinner spinner.Model
	loading bool

	showNotifications bool
	width, height     int

	pages map[shell.View]page
}

// NewModel builds the root model with one page per tab.
func NewModel(deps Deps) Model {
	styles := NewStyles(ThemeFor(deps.Shell.Theme()))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		deps:    deps,
		styles:  styles,
		spinner: sp,
		loading: true,
	}
	m.pages = map[shell.View]page{
		shell.ViewDashboard:   newDashboardPage(deps, styles),
		shell.ViewProjects:    newProjectsPage(deps, styles),
		shell.ViewStudio:      newStudioPage(deps, styles),
		shell.ViewPersonnel:   newPersonnelPage(deps, styles),
		shell.ViewCRM:         newCRMPage(deps, styles),
		shell.ViewPerformance: newPerformancePage(deps, styles),
		shell.ViewMarketing:   newMarketingPage(deps, styles),
		shell.ViewSettings:    newSettingsPage(deps, styles),
	}
	return m
}

// Init kicks off the first load for the restored selector.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd(m.deps.Shell.Selector()))
}

// refreshCmd reloads every area for sel off the UI goroutine.
func (m Model) refreshCmd(sel branch.Selector) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := deps.Controllers.WarmUp(ctx, sel); err != nil {
			logging.Get(logging.CategoryUI).Warn("refresh interrupted: %v", err)
		}
		snap := deps.Controllers.Projects.Snapshot()
		return refreshedMsg{sel: sel, online: snap.ErrorMessage == ""}
	}
}

func (m *Model) restyle() {
	m.styles = NewStyles(ThemeFor(m.deps.Shell.Theme()))
	m.spinner.Style = m.styles.Spinner
	m.pages = map[shell.View]page{
		shell.ViewDashboard:   newDashboardPage(m.deps, m.styles),
		shell.ViewProjects:    newProjectsPage(m.deps, m.styles),
		shell.ViewStudio:      newStudioPage(m.deps, m.styles),
		shell.ViewPersonnel:   newPersonnelPage(m.deps, m.styles),
		shell.ViewCRM:         newCRMPage(m.deps, m.styles),
		shell.ViewPerformance: newPerformancePage(m.deps, m.styles),
		shell.ViewMarketing:   newMarketingPage(m.deps, m.styles),
		shell.ViewSettings:    newSettingsPage(m.deps, m.styles),
	}
	m.resizePages()
	m.refreshPages()
}

func (m *Model) resizePages() {
	for _, p := range m.pages {
		p.SetSize(m.width, m.height-4)
	}
}

func (m *Model) refreshPages() {
	for _, p := range m.pages {
		p.UpdateContent()
	}
}

func (m Model) activePage() page {
	return m.pages[m.deps.Shell.ActiveView()]
}

// Update is the bubbletea event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizePages()
		return m, nil

	case refreshedMsg:
		// A selector change mid-flight triggers another refresh; only
		// the current selection clears the loading state.
		if msg.sel != m.deps.Shell.Selector() {
			return m, nil
		}
		m.loading = false
		if msg.online {
			m.deps.Shell.SetSyncStatus(shell.SyncOnline)
		} else {
			m.deps.Shell.SetSyncStatus(shell.SyncOffline)
		}
		m.refreshPages()
		return m, nil

	case insightMsg:
		m.refreshPages()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if p := m.activePage(); p != nil {
		return m, p.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pages with focused inputs get first refusal on plain keys.
	if p, ok := m.activePage().(interface{ InputFocused() bool }); ok && p.InputFocused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		default:
			return m, m.activePage().Update(msg)
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right":
		m.selectView(1)
		return m, nil

	case "shift+tab", "left":
		m.selectView(-1)
		return m, nil

	case "b":
		sel := m.deps.Shell.CycleSelector()
		m.loading = true
		return m, m.refreshCmd(sel)

	case "t":
		m.deps.Shell.ToggleTheme()
		m.restyle()
		return m, nil

	case "n":
		m.showNotifications = !m.showNotifications
		if !m.showNotifications {
			m.deps.Shell.MarkAllRead()
		}
		return m, nil

	case "r":
		m.loading = true
		return m, m.refreshCmd(m.deps.Shell.Selector())

	case "1", "2", "3", "4", "5", "6", "7", "8":
		views := shell.Views()
		idx := int(msg.String()[0] - '1')
		if idx < len(views) {
			m.deps.Shell.SetView(views[idx])
			m.activePage().UpdateContent()
		}
		return m, nil
	}

	if p := m.activePage(); p != nil {
		return m, p.Update(msg)
	}
	return m, nil
}

func (m *Model) selectView(step int) {
	views := shell.Views()
	cur := m.deps.Shell.ActiveView()
	for i, v := range views {
		if v == cur {
			next := views[(i+step+len(views))%len(views)]
			m.deps.Shell.SetView(next)
			break
		}
	}
	m.activePage().UpdateContent()
}

func (m Model) headerView() string {
	title := m.styles.Header.Render("✦ La Maison Marvelous")

	sel := m.deps.Shell.Selector()
	branchBadge := m.styles.Badge.Render(sel.Label())

	var sync string
	switch m.deps.Shell.SyncStatus() {
	case shell.SyncOnline:
		sync = m.styles.Success.Render("● en ligne")
	case shell.SyncOffline:
		sync = m.styles.Error.Render("● hors ligne")
	default:
		sync = m.styles.Muted.Render("● …")
	}

	unread := ""
	if n := m.deps.Shell.UnreadCount(); n > 0 {
		unread = m.styles.Warning.Render(fmt.Sprintf(" ✉ %d", n))
	}

	loading := ""
	if m.loading {
		loading = " " + m.spinner.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, " ", branchBadge, " ", sync, unread, loading)
}

func (m Model) tabsView() string {
	cur := m.deps.Shell.ActiveView()
	parts := make([]string, 0, len(shell.Views()))
	for i, v := range shell.Views() {
		label := fmt.Sprintf("%d %s", i+1, v.Label())
		if v == cur {
			parts = append(parts, m.styles.TabOn.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) footerView() string {
	return m.styles.Footer.Render(
		"tab/1-8 pages · b succursale · t thème · n notifications · r recharger · q quitter")
}

// View renders the full frame.
func (m Model) View() string {
	var body string
	if m.showNotifications {
		body = m.notificationsView()
	} else if p := m.activePage(); p != nil {
		body = p.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.tabsView(),
		body,
		m.footerView(),
	)
}

func (m Model) notificationsView() string {
	out := m.styles.Title.Render("Centre de Notifications") + "\n"
	for _, n := range m.deps.Shell.Notifications() {
		var mark string
		switch n.Type {
		case shell.NotifyError:
			mark = m.styles.Error.Render("●")
		case shell.NotifySuccess:
			mark = m.styles.Success.Render("●")
		default:
			mark = m.styles.Info.Render("●")
		}
		read := " "
		if !n.Read {
			read = m.styles.Warning.Render("*")
		}
		out += fmt.Sprintf("%s%s %s · %s %s\n",
			read, mark,
			m.styles.Bold.Render(n.Title),
			m.styles.Body.Render(n.Message),
			m.styles.Muted.Render(n.Timestamp))
	}
	out += "\n" + m.styles.Muted.Render("n pour fermer (tout marquer comme lu)")
	return m.styles.Content.Render(out)
}
