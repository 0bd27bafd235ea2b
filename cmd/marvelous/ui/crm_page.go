package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/branch"
)

// crmPage is the client book: pipeline status, revenue, interactions
// and shared galleries, searchable with '/'.
type crmPage struct {
	viewport viewport.Model
	search   textinput.Model
	deps     Deps
	styles   Styles
}

func newCRMPage(deps Deps, styles Styles) *crmPage {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Placeholder = "Rechercher un client…"
	ti.CharLimit = 60
	p := &crmPage{viewport: vp, search: ti, deps: deps, styles: styles}
	p.UpdateContent()
	return p
}

func (p *crmPage) SetSize(w, h int) {
	p.viewport.Width = w
	p.viewport.Height = h - 2
	p.UpdateContent()
}

func (p *crmPage) InputFocused() bool { return p.search.Focused() }

func (p *crmPage) UpdateContent() {
	snap := p.deps.Controllers.Customers.Snapshot()

	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Relation Client · " + p.deps.Shell.Selector().Label()))
	sb.WriteString("\n")

	if snap.ErrorMessage != "" {
		sb.WriteString(p.styles.Banner.Render(snap.ErrorMessage))
		sb.WriteString("\n\n")
	}

	query := strings.ToLower(strings.TrimSpace(p.search.Value()))
	table := NewSimpleTable("", []string{"Nom", "Statut", "Catégorie", "Revenus", "Interactions", "Galeries", "Portail"})
	shown := 0
	for _, c := range snap.Records {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		shown++
		table.AddRow(
			c.Name,
			string(c.Status),
			c.Category,
			branch.Format(c.TotalRevenue, c.Branch),
			fmt.Sprintf("%d", len(c.Interactions)),
			fmt.Sprintf("%d", len(c.Galleries)),
			c.PortalAccessCode,
		)
	}
	if shown == 0 {
		sb.WriteString(p.styles.Muted.Render("Aucun client ne correspond."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(table.View(p.styles))
	}
	sb.WriteString(p.styles.Muted.Render("/ pour rechercher, echap pour quitter la recherche"))

	p.viewport.SetContent(sb.String())
}

func (p *crmPage) Update(msg tea.Msg) tea.Cmd {
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

func (p *crmPage) View() string {
	return p.styles.Content.Render(p.search.View() + "\n" + p.viewport.View())
}
