package worksite

import "context"

// WorkSiteService exposes the read-only work-site directory.
type WorkSiteService interface {
	ListWorkSites(ctx context.Context) (ListWorkSiteResponse, error)
	GetWorkSite(ctx context.Context, id string) (WorkSiteResponse, error)
}
