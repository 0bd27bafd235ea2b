package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marvelous/internal/branch"
	"marvelous/internal/fallback"
	"marvelous/internal/types"
)

// dashboardPage is the overview tab: headline stats, the monthly
// cash-flow series and the activity mix.
type dashboardPage struct {
	viewport viewport.Model
	deps     Deps
	styles   Styles
	width    int
}

func newDashboardPage(deps Deps, styles Styles) *dashboardPage {
	vp := viewport.New(80, 20)
	p := &dashboardPage{viewport: vp, deps: deps, styles: styles, width: 80}
	p.UpdateContent()
	return p
}

func (p *dashboardPage) SetSize(w, h int) {
	p.width = w
	p.viewport.Width = w
	p.viewport.Height = h
	p.UpdateContent()
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return strings.Repeat("▁", len(values))
	}
	var sb strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

func (p *dashboardPage) UpdateContent() {
	sel := p.deps.Shell.Selector()
	stats := fallback.Stats(sel)
	revenue := fallback.Revenue(sel)

	var sb strings.Builder

	sb.WriteString(p.styles.Title.Render("Tableau de Bord · " + sel.Label()))
	sb.WriteString("\n")

	cards := []string{
		p.styles.Card.Render(fmt.Sprintf("Revenus\n%s",
			p.styles.Bold.Render(branch.FormatSelector(stats.Revenue, sel)))),
		p.styles.Card.Render(fmt.Sprintf("Mariages à venir\n%s",
			p.styles.Bold.Render(fmt.Sprintf("%d", stats.UpcomingCount)))),
		p.styles.Card.Render(fmt.Sprintf("Clients actifs\n%s",
			p.styles.Bold.Render(fmt.Sprintf("%d", stats.ActiveClients)))),
		p.styles.Card.Render(fmt.Sprintf("Note moyenne\n%s",
			p.styles.Bold.Render(fmt.Sprintf("%.1f ★", stats.AverageRating)))),
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n")
	if sel == branch.Global {
		sb.WriteString(p.styles.Subtitle.Render(
			fmt.Sprintf("Consolidation approximative au taux fixe de %.0f XAF/EUR", branch.EURToXAF)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	values := make([]float64, len(revenue))
	table := NewSimpleTable("Flux mensuel", []string{"Mois", "Revenus", "Réservations"})
	for i, pt := range revenue {
		values[i] = pt.Revenue
		table.AddRow(pt.Month, branch.FormatSelector(pt.Revenue, sel), fmt.Sprintf("%d", pt.Bookings))
	}
	sb.WriteString(p.styles.Body.Render("Tendance  " + sparkline(values)))
	sb.WriteString("\n\n")
	sb.WriteString(table.View(p.styles))

	mix := NewSimpleTable("Répartition de l'activité", []string{"Segment", "Part"})
	for _, s := range fallback.Segmentation() {
		mix.AddRow(s.Name, fmt.Sprintf("%d %%", s.Share))
	}
	sb.WriteString(mix.View(p.styles))

	snap := p.deps.Controllers.Projects.Snapshot()
	urgent := 0
	for _, proj := range snap.Records {
		if proj.Urgency == types.UrgencyHigh && proj.Status != types.StatusDelivered {
			urgent++
		}
	}
	sb.WriteString(p.styles.Muted.Render(
		fmt.Sprintf("%d projets chargés · %d urgents", len(snap.Records), urgent)))
	sb.WriteString("\n")

	p.viewport.SetContent(sb.String())
}

func (p *dashboardPage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *dashboardPage) View() string {
	return p.styles.Content.Render(p.viewport.View())
}
