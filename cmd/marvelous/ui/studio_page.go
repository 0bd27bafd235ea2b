package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/branch"
	"marvelous/internal/types"
)

// studioPage combines the gear inventory, the booking calendar, the
// walk-in client book and the cost ledger.
type studioPage struct {
	viewport viewport.Model
	deps     Deps
	styles   Styles
}

func newStudioPage(deps Deps, styles Styles) *studioPage {
	vp := viewport.New(80, 20)
	p := &studioPage{viewport: vp, deps: deps, styles: styles}
	p.UpdateContent()
	return p
}

func (p *studioPage) SetSize(w, h int) {
	p.viewport.Width = w
	p.viewport.Height = h
	p.UpdateContent()
}

func (p *studioPage) equipmentStatus(s types.EquipmentStatus) string {
	switch s {
	case types.EquipAvailable:
		return p.styles.Success.Render(string(s))
	case types.EquipBroken:
		return p.styles.Error.Render(string(s))
	case types.EquipMaintenance:
		return p.styles.Warning.Render(string(s))
	default:
		return string(s)
	}
}

func (p *studioPage) UpdateContent() {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Studio & Matériel · " + p.deps.Shell.Selector().Label()))
	sb.WriteString("\n")

	gear := NewSimpleTable("Matériel", []string{"Nom", "Catégorie", "Statut", "N° série", "Affecté à"})
	for _, e := range p.deps.Controllers.Equipment.Snapshot().Records {
		assigned := e.AssignedTo
		if assigned == "" {
			assigned = "-"
		}
		gear.AddRow(e.Name, string(e.Category), p.equipmentStatus(e.Status), e.SerialNumber, assigned)
	}
	sb.WriteString(gear.View(p.styles))

	sessions := NewSimpleTable("Séances planifiées", []string{"Client", "Type", "Date", "Durée", "Photographe"})
	for _, s := range p.deps.Controllers.Sessions.Snapshot().Records {
		sessions.AddRow(s.ClientName, s.Type, s.Date, s.Duration, s.Photographer)
	}
	sb.WriteString(sessions.View(p.styles))

	clients := NewSimpleTable("Clients studio", []string{"Nom", "Dernière séance", "Total dépensé"})
	for _, c := range p.deps.Controllers.StudioClients.Snapshot().Records {
		clients.AddRow(c.Name, c.LastSession, branch.Format(c.TotalSpent, c.Branch))
	}
	sb.WriteString(clients.View(p.styles))

	expenses := NewSimpleTable("Charges", []string{"Catégorie", "Type", "Montant", "Date", "Description"})
	var fixed, variable int
	for _, x := range p.deps.Controllers.Expenses.Snapshot().Records {
		if x.Type == types.ExpenseFixed {
			fixed++
		} else {
			variable++
		}
		expenses.AddRow(x.Category, string(x.Type), branch.Format(x.Amount, x.Branch), x.Date, x.Description)
	}
	sb.WriteString(expenses.View(p.styles))
	sb.WriteString(p.styles.Muted.Render(
		fmt.Sprintf("%d charges fixes · %d variables", fixed, variable)))

	p.viewport.SetContent(sb.String())
}

func (p *studioPage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *studioPage) View() string {
	return p.styles.Content.Render(p.viewport.View())
}
