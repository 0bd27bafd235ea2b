package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/branch"
	"marvelous/internal/fallback"
	"marvelous/internal/insight"
)

// performancePage shows the financial series, delivery KPIs and the
// Studio/Mariage comparison, with generated analysis on demand.
type performancePage struct {
	viewport viewport.Model
	deps     Deps
	styles   Styles
	width    int
}

func newPerformancePage(deps Deps, styles Styles) *performancePage {
	vp := viewport.New(80, 20)
	p := &performancePage{viewport: vp, deps: deps, styles: styles, width: 80}
	p.UpdateContent()
	return p
}

func (p *performancePage) SetSize(w, h int) {
	p.width = w
	p.viewport.Width = w
	p.viewport.Height = h
	p.UpdateContent()
}

func kpiStatus(styles Styles, status string) string {
	switch status {
	case "Excellence":
		return styles.Success.Render(status)
	case "Delay":
		return styles.Error.Render(status)
	default:
		return styles.Info.Render(status)
	}
}

func (p *performancePage) UpdateContent() {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Performances · " + p.deps.Shell.Selector().Label()))
	sb.WriteString("\n")

	finance := NewSimpleTable("Revenus par activité (EUR)", []string{"Mois", "Mariage", "Studio", "Objectif"})
	for _, f := range fallback.Finance() {
		finance.AddRow(f.Month,
			branch.Format(f.Mariage, branch.France),
			branch.Format(f.Studio, branch.France),
			branch.Format(f.Goal, branch.France))
	}
	sb.WriteString(finance.View(p.styles))

	kpis := NewSimpleTable("Délais de livraison", []string{"Livrable", "Réel (j)", "Cible (j)", "Statut"})
	for _, k := range fallback.DeliveryKPIs() {
		kpis.AddRow(k.Type,
			fmt.Sprintf("%.1f", k.Actual),
			fmt.Sprintf("%.0f", k.Target),
			kpiStatus(p.styles, k.Status))
	}
	sb.WriteString(kpis.View(p.styles))

	radar := NewSimpleTable("Studio vs Mariage", []string{"Axe", "Studio", "Mariage", "Max"})
	for _, a := range fallback.Radar() {
		radar.AddRow(a.Subject,
			fmt.Sprintf("%d", a.Studio),
			fmt.Sprintf("%d", a.Mariage),
			fmt.Sprintf("%d", a.FullMark))
	}
	sb.WriteString(radar.View(p.styles))

	sb.WriteString(p.styles.Title.Render("Analyse IA"))
	sb.WriteString("\n")
	switch {
	case p.deps.Insights.Busy(insight.PerformanceInsights):
		sb.WriteString(p.styles.Subtitle.Render("Analyse en cours…"))
	case p.deps.Insights.Result(insight.PerformanceInsights) != "":
		sb.WriteString(renderMarkdown(
			p.deps.Insights.Result(insight.PerformanceInsights), p.styles.Theme, p.width-4))
	default:
		sb.WriteString(p.styles.Muted.Render("g pour analyser les performances de l'équipe"))
	}
	sb.WriteString("\n")

	p.viewport.SetContent(sb.String())
}

// generateCmd serializes the visible staff records and requests the
// analysis off the UI goroutine.
func (p *performancePage) generateCmd() tea.Cmd {
	staff := p.deps.Controllers.Staff.Snapshot().Records
	payload, err := json.Marshal(staff)
	if err != nil || len(staff) == 0 {
		return nil
	}
	insights := p.deps.Insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text := insights.Request(ctx, insight.PerformanceInsights, string(payload))
		return insightMsg{kind: insight.PerformanceInsights, text: text}
	}
}

func (p *performancePage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "g" {
		if p.deps.Insights.Busy(insight.PerformanceInsights) {
			return nil
		}
		cmd := p.generateCmd()
		p.UpdateContent()
		return cmd
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *performancePage) View() string {
	return p.styles.Content.Render(p.viewport.View())
}
