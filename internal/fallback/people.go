package fallback

import (
	"marvelous/internal/branch"
	"marvelous/internal/types"
)

var sampleStaff = []types.Staff{
	{
		ID: "1", Name: "Alex Riva", Role: "Directeur Photo", Department: types.DeptPhotographie,
		Status: types.StaffEnMission, Branch: branch.France, Availability: "Busy",
		PerformanceScore: 98, Efficiency: 4.9, ProjectsCompleted: 142,
		Email: "alex.r@marvelous.fr", Phone: "06 12 45 78 90",
		Skills:   []types.Skill{{Name: "Lumière", Level: 95}, {Name: "Composition", Level: 98}},
		Workload: [7]int{2, 2, 2, 2, 1, 0, 0},
		Evolution: []types.ScorePoint{
			{Month: "Jan", Score: 80}, {Month: "Fev", Score: 85}, {Month: "Mar", Score: 98},
		},
	},
	{
		ID: "2", Name: "Sarah J.", Role: "Senior Editor", Department: types.DeptMontage,
		Status: types.StaffActif, Branch: branch.France, Availability: "Busy",
		PerformanceScore: 95, Efficiency: 4.7, ProjectsCompleted: 89,
		Email: "sarah.j@marvelous.fr", Phone: "06 98 76 54 32",
		Skills:        []types.Skill{{Name: "Premiere Pro", Level: 99}, {Name: "Etalonnage", Level: 92}},
		Workload:      [7]int{1, 1, 2, 2, 2, 2, 0},
		DeliveryDelay: -2,
		Evolution: []types.ScorePoint{
			{Month: "Jan", Score: 88}, {Month: "Fev", Score: 90}, {Month: "Mar", Score: 95},
		},
	},
	{
		ID: "5", Name: "Samuel Ndjock", Role: "Chef Opérateur", Department: types.DeptCadrage,
		Status: types.StaffEnMission, Branch: branch.Cameroun, Availability: "Busy",
		PerformanceScore: 96, Efficiency: 4.8, ProjectsCompleted: 110,
		Email: "samuel.n@marvelous.cm", Phone: "+237 699 00 11 22",
		Skills:   []types.Skill{{Name: "Drone 6K", Level: 95}, {Name: "Live stream", Level: 90}},
		Workload: [7]int{2, 2, 1, 1, 2, 2, 0},
		Evolution: []types.ScorePoint{
			{Month: "Jan", Score: 85}, {Month: "Fev", Score: 90}, {Month: "Mar", Score: 96},
		},
	},
	{
		ID: "6", Name: "Fidèle Tagne", Role: "Visagiste de Luxe", Department: types.DeptMakeup,
		Status: types.StaffActif, Branch: branch.Cameroun, Availability: "Available",
		PerformanceScore: 94, Efficiency: 4.6, ProjectsCompleted: 75,
		Email: "fidele.t@marvelous.cm", Phone: "+237 677 88 99 00",
		Skills:   []types.Skill{{Name: "Maquillage Mariée", Level: 98}, {Name: "Coiffure", Level: 92}},
		Workload: [7]int{0, 0, 1, 1, 2, 2, 2},
		Evolution: []types.ScorePoint{
			{Month: "Jan", Score: 82}, {Month: "Fev", Score: 88}, {Month: "Mar", Score: 94},
		},
	},
}

// Staff returns the team directory. There is no remote path for HR
// records; this set is the source of truth.
func Staff() []types.Staff {
	out := make([]types.Staff, len(sampleStaff))
	copy(out, sampleStaff)
	return out
}
