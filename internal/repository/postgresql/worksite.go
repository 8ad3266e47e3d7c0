package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
	"github.com/clinicore/staffops-backend-go/internal/pkg/database"
)

type worksiteRepository struct {
	db *database.DB
}

func NewWorkSiteRepository(db *database.DB) worksite.WorkSiteRepository {
	return &worksiteRepository{db: db}
}

// List implements worksite.WorkSiteRepository.
func (w *worksiteRepository) List(ctx context.Context) ([]worksite.WorkSite, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM work_sites
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query work sites: %w", err)
	}
	defer rows.Close()

	var sites []worksite.WorkSite
	for rows.Next() {
		var site worksite.WorkSite
		if err := rows.Scan(&site.ID, &site.Name, &site.Address, &site.CreatedAt, &site.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work site: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sites: %w", err)
	}

	return sites, nil
}

// GetByID implements worksite.WorkSiteRepository.
func (w *worksiteRepository) GetByID(ctx context.Context, id string) (worksite.WorkSite, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM work_sites
		WHERE id = $1
	`

	var site worksite.WorkSite
	err := q.QueryRow(ctx, query, id).Scan(&site.ID, &site.Name, &site.Address, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worksite.WorkSite{}, worksite.ErrWorkSiteNotFound
		}
		return worksite.WorkSite{}, fmt.Errorf("failed to get work site: %w", err)
	}

	return site, nil
}
