package fallback

import "marvelous/internal/types"

var samplePosts = []types.ContentPost{
	{
		ID: "1", Platform: "Instagram", Title: "Teaser Mariage Amélie", Date: "2024-05-20",
		Status: types.ContentScheduled, Type: "Video/Reel", Content: "Un moment magique au château...",
	},
	{
		ID: "2", Platform: "TikTok", Title: "BTS Shooting Mode", Date: "2024-05-21",
		Status: types.ContentDraft, Type: "Video/Reel", Content: "Les coulisses de notre dernière session...",
	},
	{
		ID: "3", Platform: "Facebook", Title: "Témoignage Client", Date: "2024-05-18",
		Status: types.ContentPublished, Type: "Photo", Content: "Merci à la famille Belmont pour leur confiance.",
	},
}

var sampleTemplates = []types.MarketingTemplate{
	{
		ID: "1", Title: "Offre Early Bird", Category: "Promotion",
		Body: "Réservez votre séance 6 mois à l'avance et bénéficiez de -15% sur votre album prestige.",
	},
	{
		ID: "2", Title: "Conseil Lumière", Category: "Tips",
		Body: "La \"Golden Hour\" est le secret d'un portrait réussi. Voici comment en profiter...",
	},
	{
		ID: "3", Title: "Behind The Lens", Category: "BehindTheScenes",
		Body: "Saviez-vous que nous utilisons 3 types d'éclairage pour un simple portrait studio ?",
	},
}

var sampleROI = []types.CampaignROI{
	{Month: "Jan", AdSpend: 450, Revenue: 2800, Leads: 12},
	{Month: "Feb", AdSpend: 600, Revenue: 4200, Leads: 18},
	{Month: "Mar", AdSpend: 800, Revenue: 6500, Leads: 25},
	{Month: "Apr", AdSpend: 550, Revenue: 5100, Leads: 15},
	{Month: "May", AdSpend: 900, Revenue: 8400, Leads: 32},
}

// Posts returns the editorial calendar. Marketing records are shared
// group-wide and carry no branch tag.
func Posts() []types.ContentPost {
	out := make([]types.ContentPost, len(samplePosts))
	copy(out, samplePosts)
	return out
}

// Templates returns the reusable copy library.
func Templates() []types.MarketingTemplate {
	out := make([]types.MarketingTemplate, len(sampleTemplates))
	copy(out, sampleTemplates)
	return out
}

// CampaignROI returns the monthly ad-spend ledger, in EUR.
func CampaignROI() []types.CampaignROI {
	out := make([]types.CampaignROI, len(sampleROI))
	copy(out, sampleROI)
	return out
}
