package identities

import (
	"context"

	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// Repository is the identity directory: a keyed store of identity records.
type Repository interface {
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
}
