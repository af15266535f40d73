package notes

import (
	"context"

	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// ListOptions controls pagination for ListByTenant. Notes are returned
// newest first.
type ListOptions struct {
	Limit  int
	Offset int
}

// Repository stores notes. Every read and write is scoped by tenant id so a
// note is never visible outside its tenant.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, tenantID, id string) (*models.Note, error)
	ListByTenant(ctx context.Context, tenantID string, opts ListOptions) ([]*models.Note, error)
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, tenantID, id string) error
}
