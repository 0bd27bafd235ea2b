package ui

import (
	"strings"
	"testing"
	"time"

	"marvelous/internal/insight"
	"marvelous/internal/remote"
	"marvelous/internal/shell"
	"marvelous/internal/types"
	"marvelous/internal/view"
)

func testDeps() Deps {
	return Deps{
		Shell:       shell.New(nil),
		Controllers: view.NewControllers(remote.New("", "", time.Second)),
		Insights:    insight.NewController(nil),
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil); got != "" {
		t.Errorf("sparkline(nil) = %q", got)
	}
	got := sparkline([]float64{1, 2, 4, 8})
	if len([]rune(got)) != 4 {
		t.Errorf("sparkline length = %d, want 4", len([]rune(got)))
	}
	runes := []rune(got)
	if runes[len(runes)-1] != '█' {
		t.Errorf("max value should render the full block, got %q", got)
	}
}

func TestWorkloadBar(t *testing.T) {
	got := workloadBar([7]int{2, 1, 0, 2, 1, 0, 0})
	want := "█▄·█▄··"
	if got != want {
		t.Errorf("workloadBar = %q, want %q", got, want)
	}
}

func TestTaskProgress(t *testing.T) {
	if got := taskProgress(nil); got != "-" {
		t.Errorf("no tasks = %q, want -", got)
	}
	tasks := []types.Task{
		{Status: types.TaskCompleted},
		{Status: types.TaskPending},
		{Status: types.TaskCompleted},
	}
	if got := taskProgress(tasks); got != "2/3" {
		t.Errorf("taskProgress = %q, want 2/3", got)
	}
}

func TestStaffSearchMatch(t *testing.T) {
	s := types.Staff{Name: "Samuel Ndjock", Role: "Chef Opérateur", Department: types.DeptCadrage}
	for _, q := range []string{"", "samuel", "opérateur", "cadrage"} {
		if !matchesSearch(s, q) {
			t.Errorf("query %q should match", q)
		}
	}
	if matchesSearch(s, "fidèle") {
		t.Error("unrelated query matched")
	}
}

func TestPagesRenderWithoutRemote(t *testing.T) {
	deps := testDeps()
	if err := deps.Controllers.WarmUp(t.Context(), deps.Shell.Selector()); err != nil {
		t.Fatalf("warm up: %v", err)
	}

	m := NewModel(deps)
	for v, p := range m.pages {
		p.SetSize(120, 40)
		p.UpdateContent()
		if out := p.View(); strings.TrimSpace(out) == "" {
			t.Errorf("page %s rendered empty", v)
		}
	}
}

func TestProjectsPageFilterCycles(t *testing.T) {
	deps := testDeps()
	p := newProjectsPage(deps, NewStyles(LightTheme()))
	start := p.filter
	for range len(statusFilters) {
		p.filter = (p.filter + 1) % len(statusFilters)
	}
	if p.filter != start {
		t.Error("filter cycle should return to start")
	}
}
