package tenants

import (
	"context"

	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// Repository stores tenants and executes the plan-upgrade transition.
type Repository interface {
	Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tenant, error)

	// GetByIDForUpdate loads the tenant row with a row-level lock. Must run
	// inside a transaction; it is the serialization point for quota-checked
	// note creation.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Tenant, error)

	// Upgrade applies free→pro as a single conditional update and returns
	// common.ErrAlreadyOnPlan when the tenant is already pro, or
	// common.ErrorNotFound when it does not exist. Exactly one of any number
	// of concurrent calls succeeds.
	Upgrade(ctx context.Context, id string) (*models.Tenant, error)
}
