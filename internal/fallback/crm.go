package fallback

import (
	"marvelous/internal/branch"
	"marvelous/internal/types"
)

var sampleCustomers = []types.Customer{
	{
		ID: "c1", Name: "Amélie Dubois", Email: "amelie.d@gmail.com", Phone: "06 71 02 55 18",
		Branch: branch.France, Status: types.CustomerActive, Category: "Wedding",
		TotalRevenue: 15000, Projects: []string{"demo-1"},
		Interactions: []types.Interaction{
			{ID: "i1", Type: "Meeting", Date: "2024-04-12", Summary: "Repérage Château de Rambouillet"},
			{ID: "i2", Type: "Email", Date: "2024-05-03", Summary: "Validation formule Prestige"},
		},
		Galleries: []types.GalleryLink{
			{ID: "g1", Label: "Séance engagement", URL: "https://gallery.marvelous.fr/amelie-thomas", IsPrivate: true},
		},
		PortalAccessCode: "AMT-2024",
	},
	{
		ID: "c2", Name: "Marc-Aurèle Tchakounté", Email: "marc.tchakounte@gmail.com", Phone: "+237 698 11 22 33",
		Branch: branch.Cameroun, Status: types.CustomerLead, Category: "Studio",
		TotalRevenue: 2500000, Projects: []string{"demo-2"},
		Interactions: []types.Interaction{
			{ID: "i3", Type: "Call", Date: "2024-05-10", Summary: "Demande de devis shooting VIP"},
		},
		Galleries:        []types.GalleryLink{},
		PortalAccessCode: "MAT-2024",
	},
	{
		ID: "c3", Name: "Famille Belmont", Email: "belmont.family@orange.fr", Phone: "06 30 48 77 21",
		Branch: branch.France, Status: types.CustomerPast, Category: "VIP",
		TotalRevenue: 28400, Projects: []string{},
		Interactions: []types.Interaction{
			{ID: "i4", Type: "Portal", Date: "2024-03-02", Summary: "Téléchargement album final"},
		},
		Galleries: []types.GalleryLink{
			{ID: "g2", Label: "Mariage 2023", URL: "https://gallery.marvelous.fr/belmont", IsPrivate: false},
		},
		PortalAccessCode: "BLM-2023",
	},
}

// Customers returns the demo CRM book used when the remote store is
// unreachable or holds no rows for the selected branch.
func Customers() []types.Customer {
	out := make([]types.Customer, len(sampleCustomers))
	copy(out, sampleCustomers)
	return out
}
