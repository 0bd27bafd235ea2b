package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/branch"
	"marvelous/internal/types"
)

// statusFilters are the tabs above the project table. The empty
// value means "all".
var statusFilters = []types.ProjectStatus{
	"", types.StatusPlanning, types.StatusInProgress, types.StatusCompleted,
}

// projectsPage lists productions with a status filter cycled by 'f'.
type projectsPage struct {
	viewport viewport.Model
	deps     Deps
	styles   Styles
	filter   int
}

func newProjectsPage(deps Deps, styles Styles) *projectsPage {
	vp := viewport.New(80, 20)
	p := &projectsPage{viewport: vp, deps: deps, styles: styles}
	p.UpdateContent()
	return p
}

func (p *projectsPage) SetSize(w, h int) {
	p.viewport.Width = w
	p.viewport.Height = h
	p.UpdateContent()
}

func filterLabel(s types.ProjectStatus) string {
	if s == "" {
		return "Tous"
	}
	return string(s)
}

func taskProgress(tasks []types.Task) string {
	if len(tasks) == 0 {
		return "-"
	}
	done := 0
	for _, t := range tasks {
		if t.Status == types.TaskCompleted {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(tasks))
}

func (p *projectsPage) UpdateContent() {
	snap := p.deps.Controllers.Projects.Snapshot()
	active := statusFilters[p.filter]

	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Projets & Mariages · " + p.deps.Shell.Selector().Label()))
	sb.WriteString("\n")

	if snap.ErrorMessage != "" {
		sb.WriteString(p.styles.Banner.Render(snap.ErrorMessage))
		sb.WriteString("\n\n")
	}

	tabs := make([]string, len(statusFilters))
	for i, s := range statusFilters {
		if i == p.filter {
			tabs[i] = p.styles.TabOn.Render(filterLabel(s))
		} else {
			tabs[i] = p.styles.Tab.Render(filterLabel(s))
		}
	}
	sb.WriteString(strings.Join(tabs, " "))
	sb.WriteString("\n\n")

	table := NewSimpleTable("", []string{"Client", "Type", "Date", "Statut", "Budget", "Tâches", "Urgence"})
	shown := 0
	for _, proj := range snap.Records {
		if active != "" && proj.Status != active {
			continue
		}
		shown++
		table.AddRow(
			proj.ClientName,
			string(proj.Type),
			proj.Date,
			string(proj.Status),
			branch.Format(proj.Budget, proj.Branch),
			taskProgress(proj.Tasks),
			string(proj.Urgency),
		)
	}
	if shown == 0 {
		sb.WriteString(p.styles.Muted.Render("Aucun projet pour ce filtre."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(table.View(p.styles))
	}
	sb.WriteString(p.styles.Muted.Render("f pour changer de filtre"))

	p.viewport.SetContent(sb.String())
}

func (p *projectsPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "f" {
		p.filter = (p.filter + 1) % len(statusFilters)
		p.UpdateContent()
		return nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *projectsPage) View() string {
	return p.styles.Content.Render(p.viewport.View())
}
