package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/branch"
	"marvelous/internal/insight"
)

// marketingPage is the editorial calendar plus the generation studio:
// type a topic, ctrl+g for campaign ideas, ctrl+h for hashtags.
type marketingPage struct {
	viewport viewport.Model
	prompt   textarea.Model
	deps     Deps
	styles   Styles
	width    int
}

func newMarketingPage(deps Deps, styles Styles) *marketingPage {
	vp := viewport.New(80, 16)
	ta := textarea.New()
	ta.Placeholder = "Ex: Mariage au coucher du soleil à Santorin…"
	ta.SetHeight(3)
	ta.CharLimit = 400
	p := &marketingPage{viewport: vp, prompt: ta, deps: deps, styles: styles, width: 80}
	p.UpdateContent()
	return p
}

func (p *marketingPage) SetSize(w, h int) {
	p.width = w
	p.viewport.Width = w
	p.viewport.Height = h - 5
	p.prompt.SetWidth(w - 4)
	p.UpdateContent()
}

func (p *marketingPage) InputFocused() bool { return p.prompt.Focused() }

func (p *marketingPage) UpdateContent() {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Marketing AI"))
	sb.WriteString("\n")

	posts := NewSimpleTable("Calendrier éditorial", []string{"Plateforme", "Titre", "Date", "Statut", "Format"})
	for _, post := range p.deps.Controllers.Posts.Snapshot().Records {
		posts.AddRow(post.Platform, post.Title, post.Date, string(post.Status), post.Type)
	}
	sb.WriteString(posts.View(p.styles))

	templates := NewSimpleTable("Modèles", []string{"Titre", "Catégorie"})
	for _, t := range p.deps.Controllers.Templates.Snapshot().Records {
		templates.AddRow(t.Title, t.Category)
	}
	sb.WriteString(templates.View(p.styles))

	roi := NewSimpleTable("ROI campagnes (EUR)", []string{"Mois", "Dépenses pub", "Revenus", "Leads"})
	for _, r := range p.deps.Controllers.CampaignROI.Snapshot().Records {
		roi.AddRow(r.Month,
			branch.Format(r.AdSpend, branch.France),
			branch.Format(r.Revenue, branch.France),
			fmt.Sprintf("%d", r.Leads))
	}
	sb.WriteString(roi.View(p.styles))

	for _, kind := range []insight.Kind{insight.MarketingIdeas, insight.Hashtags} {
		title := "Idées de campagne"
		if kind == insight.Hashtags {
			title = "Hashtags"
		}
		switch {
		case p.deps.Insights.Busy(kind):
			sb.WriteString(p.styles.Title.Render(title) + "\n")
			sb.WriteString(p.styles.Subtitle.Render("Génération en cours…") + "\n")
		case p.deps.Insights.Result(kind) != "":
			sb.WriteString(p.styles.Title.Render(title) + "\n")
			sb.WriteString(renderMarkdown(p.deps.Insights.Result(kind), p.styles.Theme, p.width-4))
		}
	}

	p.viewport.SetContent(sb.String())
}

func (p *marketingPage) requestCmd(kind insight.Kind) tea.Cmd {
	input := strings.TrimSpace(p.prompt.Value())
	if input == "" || p.deps.Insights.Busy(kind) {
		return nil
	}
	insights := p.deps.Insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text := insights.Request(ctx, kind, input)
		return insightMsg{kind: kind, text: text}
	}
}

func (p *marketingPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+g":
			cmd := p.requestCmd(insight.MarketingIdeas)
			p.UpdateContent()
			return cmd
		case "ctrl+h":
			cmd := p.requestCmd(insight.Hashtags)
			p.UpdateContent()
			return cmd
		case "esc":
			if p.prompt.Focused() {
				p.prompt.Blur()
				return nil
			}
		case "i", "enter":
			if !p.prompt.Focused() {
				return p.prompt.Focus()
			}
		}
		if p.prompt.Focused() {
			var cmd tea.Cmd
			p.prompt, cmd = p.prompt.Update(msg)
			return cmd
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *marketingPage) View() string {
	help := p.styles.Muted.Render("i pour saisir un sujet · ctrl+g idées · ctrl+h hashtags")
	return p.styles.Content.Render(
		p.viewport.View() + "\n" + p.prompt.View() + "\n" + help)
}
