package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/types"
)

// personnelPage is the HR board, searchable with '/'.
type personnelPage struct {
	viewport viewport.Model
	search   textinput.Model
	deps     Deps
	styles   Styles
}

func newPersonnelPage(deps Deps, styles Styles) *personnelPage {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Placeholder = "Rechercher un membre…"
	ti.CharLimit = 60
	p := &personnelPage{viewport: vp, search: ti, deps: deps, styles: styles}
	p.UpdateContent()
	return p
}

func (p *personnelPage) SetSize(w, h int) {
	p.viewport.Width = w
	p.viewport.Height = h - 2
	p.UpdateContent()
}

// InputFocused tells the root model to route plain keys here.
func (p *personnelPage) InputFocused() bool { return p.search.Focused() }

func workloadBar(w [7]int) string {
	var sb strings.Builder
	for _, d := range w {
		switch {
		case d >= 2:
			sb.WriteString("█")
		case d == 1:
			sb.WriteString("▄")
		default:
			sb.WriteString("·")
		}
	}
	return sb.String()
}

func matchesSearch(s types.Staff, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Role), q) ||
		strings.Contains(strings.ToLower(string(s.Department)), q)
}

func (p *personnelPage) UpdateContent() {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Équipe RH · " + p.deps.Shell.Selector().Label()))
	sb.WriteString("\n")

	table := NewSimpleTable("", []string{"Nom", "Rôle", "Département", "Statut", "Score", "Semaine", "Délai"})
	query := strings.TrimSpace(p.search.Value())
	shown := 0
	for _, s := range p.deps.Controllers.Staff.Snapshot().Records {
		if !matchesSearch(s, query) {
			continue
		}
		shown++
		delay := "-"
		if s.DeliveryDelay != 0 {
			delay = fmt.Sprintf("%+dj", s.DeliveryDelay)
		}
		table.AddRow(
			s.Name, s.Role, string(s.Department), string(s.Status),
			fmt.Sprintf("%d", s.PerformanceScore),
			workloadBar(s.Workload),
			delay,
		)
	}
	if shown == 0 {
		sb.WriteString(p.styles.Muted.Render("Aucun membre ne correspond."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(table.View(p.styles))
	}
	sb.WriteString(p.styles.Muted.Render("/ pour rechercher, echap pour quitter la recherche"))

	p.viewport.SetContent(sb.String())
}

func (p *personnelPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case p.search.Focused():
			if key.String() == "esc" || key.String() == "enter" {
				p.search.Blur()
				return nil
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.UpdateContent()
			return cmd
		case key.String() == "/":
			return p.search.Focus()
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *personnelPage) View() string {
	return p.styles.Content.Render(p.search.View() + "\n" + p.viewport.View())
}
