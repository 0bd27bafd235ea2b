package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marvelous/internal/shell"
)

// settingsPage edits the persisted studio settings: studio name and
// the branch restored at startup.
type settingsPage struct {
	viewport viewport.Model
	name     textinput.Model
	deps     Deps
	styles   Styles
	saved    bool
}

func newSettingsPage(deps Deps, styles Styles) *settingsPage {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Placeholder = "Nom du studio"
	ti.CharLimit = 80
	ti.SetValue(deps.Shell.Settings().StudioName)
	p := &settingsPage{viewport: vp, name: ti, deps: deps, styles: styles}
	p.UpdateContent()
	return p
}

func (p *settingsPage) SetSize(w, h int) {
	p.viewport.Width = w
	p.viewport.Height = h - 2
	p.UpdateContent()
}

func (p *settingsPage) InputFocused() bool { return p.name.Focused() }

func (p *settingsPage) UpdateContent() {
	settings := p.deps.Shell.Settings()

	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Paramètres"))
	sb.WriteString("\n")

	info := NewSimpleTable("", []string{"Réglage", "Valeur"})
	info.AddRow("Nom du studio", settings.StudioName)
	info.AddRow("Succursale par défaut", settings.DefaultBranch)
	info.AddRow("Thème", string(p.deps.Shell.Theme()))
	info.AddRow("Succursale active", string(p.deps.Shell.Selector()))
	sb.WriteString(info.View(p.styles))

	if p.saved {
		sb.WriteString(p.styles.Success.Render("Paramètres enregistrés."))
		sb.WriteString("\n")
	}
	sb.WriteString(p.styles.Muted.Render(
		"i pour éditer le nom · entrée pour enregistrer · la succursale active devient celle par défaut"))

	p.viewport.SetContent(sb.String())
}

func (p *settingsPage) save() {
	settings := shell.Settings{
		StudioName:    strings.TrimSpace(p.name.Value()),
		DefaultBranch: string(p.deps.Shell.Selector()),
	}
	if settings.StudioName == "" {
		settings.StudioName = "La Maison Marvelous"
	}
	p.saved = p.deps.Shell.SaveSettings(settings) == nil
	p.UpdateContent()
}

func (p *settingsPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case p.name.Focused():
			switch key.String() {
			case "enter":
				p.name.Blur()
				p.save()
				return nil
			case "esc":
				p.name.Blur()
				return nil
			}
			var cmd tea.Cmd
			p.name, cmd = p.name.Update(msg)
			return cmd
		case key.String() == "i":
			p.saved = false
			return p.name.Focus()
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *settingsPage) View() string {
	return p.styles.Content.Render(p.name.View() + "\n" + p.viewport.View())
}
