package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"marvelous/internal/branch"
	"marvelous/internal/fallback"
	"marvelous/internal/remote"
	"marvelous/internal/types"
)

// Controllers bundles one controller per dashboard area. Projects and
// Customers are the only collections with a remote path; the rest are
// served by the sample datasets.
type Controllers struct {
	Projects      *Controller[types.Project]
	Customers     *Controller[types.Customer]
	Staff         *Controller[types.Staff]
	Equipment     *Controller[types.Equipment]
	Sessions      *Controller[types.StudioSession]
	StudioClients *Controller[types.StudioClient]
	Expenses      *Controller[types.StudioExpense]
	Posts         *Controller[types.ContentPost]
	Templates     *Controller[types.MarketingTemplate]
	CampaignROI   *Controller[types.CampaignROI]
}

// NewControllers wires every area against the remote client and the
// sample datasets.
func NewControllers(client *remote.Client) *Controllers {
	return &Controllers{
		Projects:      NewRegional("projects", client.Projects, fallback.Projects),
		Customers:     NewRegional("customers", client.Customers, fallback.Customers),
		Staff:         NewRegional[types.Staff]("staff", nil, fallback.Staff),
		Equipment:     NewRegional[types.Equipment]("equipment", nil, fallback.Equipment),
		Sessions:      NewRegional[types.StudioSession]("sessions", nil, fallback.Sessions),
		StudioClients: NewRegional[types.StudioClient]("studio-clients", nil, fallback.StudioClients),
		Expenses:      NewRegional[types.StudioExpense]("expenses", nil, fallback.Expenses),
		Posts:         NewShared("posts", fallback.Posts),
		Templates:     NewShared("templates", fallback.Templates),
		CampaignROI:   NewShared("campaign-roi", fallback.CampaignROI),
	}
}

// WarmUp refreshes every area for the given selector in parallel.
// Individual failures are absorbed by the fallback path, so the only
// error out of here is context cancellation.
func (c *Controllers) WarmUp(ctx context.Context, sel branch.Selector) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { c.Projects.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Customers.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Staff.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Equipment.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Sessions.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.StudioClients.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Expenses.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Posts.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.Templates.Refresh(ctx, sel); return ctx.Err() })
	g.Go(func() error { c.CampaignROI.Refresh(ctx, sel); return ctx.Err() })
	return g.Wait()
}

// RefreshAll is WarmUp under its page-facing name: called whenever
// the sidebar selector changes.
func (c *Controllers) RefreshAll(ctx context.Context, sel branch.Selector) error {
	return c.WarmUp(ctx, sel)
}
