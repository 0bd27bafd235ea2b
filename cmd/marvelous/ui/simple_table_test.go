package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Projets", []string{"Client", "Budget"})
	table.AddRow("Amélie & Thomas", "15 000,00 €")

	styles := NewStyles(LightTheme())
	view := table.View(styles)

	if !strings.Contains(view, "Projets") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Amélie & Thomas") {
		t.Error("View missing cell content")
	}
	if !strings.Contains(view, "15 000,00 €") {
		t.Error("View missing formatted budget")
	}
}

func TestSimpleTableEmptyRendersNothing(t *testing.T) {
	table := NewSimpleTable("Vide", []string{"A"})
	if got := table.View(NewStyles(DarkTheme())); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}
