package fallback

import (
	"marvelous/internal/branch"
	"marvelous/internal/types"
)

var sampleProjects = []types.Project{
	{
		ID:         "demo-1",
		ClientName: "Amélie & Thomas",
		Type:       types.ProjectMariage,
		Date:       "12 Juin 2024",
		Status:     types.StatusInProgress,
		Location:   "Château de Rambouillet",
		Budget:     15000,
		Branch:     branch.France,
		Formula:    "Prestige",
		Tasks:      []types.Task{},
		Urgency:    types.UrgencyHigh,
	},
	{
		ID:         "demo-2",
		ClientName: "Marc-Aurèle Tchakounté",
		Type:       types.ProjectStudio,
		Date:       "18 Mai 2024",
		Status:     types.StatusPlanning,
		Location:   "Studio Douala",
		Budget:     2500000,
		Branch:     branch.Cameroun,
		Formula:    "VIP",
		Tasks:      []types.Task{},
		Urgency:    types.UrgencyMedium,
	},
}

// Projects returns the demo project set shown in offline mode.
func Projects() []types.Project {
	out := make([]types.Project, len(sampleProjects))
	copy(out, sampleProjects)
	return out
}
