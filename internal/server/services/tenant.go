package services

import (
	"context"
	"database/sql"

	"github.com/mzaharov/tenantnotes/internal/server/models"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/repomanager"
)

// TenantInfo is a tenant snapshot enriched with its current note count and
// the quota verdict for one more note.
type TenantInfo struct {
	Tenant         *models.Tenant
	NoteCount      int
	CanCreateNotes bool
}

// TenantService reads tenant state and executes the plan-upgrade transition.
type TenantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTenantService(db *sql.DB, m repomanager.RepositoryManager) *TenantService {
	return &TenantService{db: db, repomanager: m}
}

// Get returns the tenant identified by id along with its note count.
func (s *TenantService) Get(ctx context.Context, id string) (*TenantInfo, error) {

	tenant, err := s.repomanager.Tenants(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.repomanager.Notes(s.db).CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	return &TenantInfo{
		Tenant:         tenant,
		NoteCount:      count,
		CanCreateNotes: tenant.CanCreateNote(count),
	}, nil
}

// Upgrade moves the tenant from the free to the pro plan. The transition is a
// single conditional update in the store: a tenant already on pro yields
// common.ErrAlreadyOnPlan and its state is left untouched.
func (s *TenantService) Upgrade(ctx context.Context, id string) (*models.Tenant, error) {
	return s.repomanager.Tenants(s.db).Upgrade(ctx, id)
}
