package worksite

import "context"

type WorkSiteRepository interface {
	List(ctx context.Context) ([]WorkSite, error)
	GetByID(ctx context.Context, id string) (WorkSite, error)
}
