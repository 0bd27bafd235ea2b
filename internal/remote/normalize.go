package remote

import (
	"marvelous/internal/branch"
	"marvelous/internal/types"
)

// Row shapes mirror the store's snake_case columns. Normalization is
// the only place the two spellings meet; everything downstream uses
// the canonical camelCase types.

type taskRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Deadline   string `json:"deadline"`
	AssignedTo string `json:"assigned_to"`
}

type projectRow struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Type       string    `json:"type"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	Budget     float64   `json:"budget"`
	Branch     string    `json:"branch"`
	Formula    string    `json:"formula"`
	Urgency    string    `json:"urgency"`
	Tasks      []taskRow `json:"tasks"`
}

func (r projectRow) normalize() types.Project {
	// Rows arrive without tasks when the embedded select finds none;
	// controllers and pages expect an empty slice, never nil.
	tasks := make([]types.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = types.Task{
			ID:         t.ID,
			Name:       t.Name,
			Status:     types.TaskStatus(t.Status),
			Deadline:   t.Deadline,
			AssignedTo: t.AssignedTo,
		}
	}
	return types.Project{
		ID:         r.ID,
		ClientName: r.ClientName,
		Type:       types.ProjectType(r.Type),
		Date:       r.Date,
		Status:     types.ProjectStatus(r.Status),
		Location:   r.Location,
		Budget:     r.Budget,
		Branch:     branch.Branch(r.Branch),
		Formula:    r.Formula,
		Tasks:      tasks,
		Urgency:    types.Urgency(r.Urgency),
	}
}

type interactionRow struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

type galleryRow struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	IsPrivate bool   `json:"is_private"`
}

type customerRow struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Branch           string           `json:"branch"`
	Status           string           `json:"status"`
	Category         string           `json:"category"`
	TotalRevenue     float64          `json:"total_revenue"`
	Projects         []string         `json:"projects"`
	Interactions     []interactionRow `json:"interactions"`
	Galleries        []galleryRow     `json:"galleries"`
	PortalAccessCode string           `json:"portal_access_code"`
}

func (r customerRow) normalize() types.Customer {
	interactions := make([]types.Interaction, len(r.Interactions))
	for i, it := range r.Interactions {
		interactions[i] = types.Interaction{
			ID:      it.ID,
			Type:    it.Type,
			Date:    it.Date,
			Summary: it.Summary,
		}
	}
	galleries := make([]types.GalleryLink, len(r.Galleries))
	for i, g := range r.Galleries {
		galleries[i] = types.GalleryLink{
			ID:        g.ID,
			Label:     g.Label,
			URL:       g.URL,
			IsPrivate: g.IsPrivate,
		}
	}
	projects := r.Projects
	if projects == nil {
		projects = []string{}
	}
	return types.Customer{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Branch:           branch.Branch(r.Branch),
		Status:           types.CustomerStatus(r.Status),
		Category:         r.Category,
		TotalRevenue:     r.TotalRevenue,
		Projects:         projects,
		Interactions:     interactions,
		Galleries:        galleries,
		PortalAccessCode: r.PortalAccessCode,
	}
}
