package services

import (
	"context"
	"database/sql"

	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/server/models"
	identitiesrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/identities"
	notesrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/notes"
	tenantsrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/tenants"
)

// --- repository fakes shared by the service tests ---

type fakeIdentityRepo struct {
	createOut *models.Identity
	createErr error

	byIDOut *models.Identity
	byIDErr error

	byEmailOut *models.Identity
	byEmailErr error
}

func (f *fakeIdentityRepo) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return identity, nil
}

func (f *fakeIdentityRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeIdentityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

type fakeTenantRepo struct {
	bySlugOut *models.Tenant
	bySlugErr error

	byIDOut *models.Tenant
	byIDErr error

	forUpdateOut *models.Tenant
	forUpdateErr error

	upgradeOut *models.Tenant
	upgradeErr error
}

func (f *fakeTenantRepo) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	return tenant, nil
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if f.bySlugErr != nil {
		return nil, f.bySlugErr
	}
	return f.bySlugOut, nil
}

func (f *fakeTenantRepo) GetByIDForUpdate(ctx context.Context, id string) (*models.Tenant, error) {
	if f.forUpdateErr != nil {
		return nil, f.forUpdateErr
	}
	return f.forUpdateOut, nil
}

func (f *fakeTenantRepo) Upgrade(ctx context.Context, id string) (*models.Tenant, error) {
	if f.upgradeErr != nil {
		return nil, f.upgradeErr
	}
	return f.upgradeOut, nil
}

type fakeNoteRepo struct {
	countOut int
	countErr error

	created   []*models.Note
	createErr error

	listOut  []*models.Note
	listErr  error
	listOpts notesrepo.ListOptions

	getOut *models.Note
	getErr error

	updateErr error
	deleteErr error
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, note)
	return note, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNoteRepo) ListByTenant(ctx context.Context, tenantID string, opts notesrepo.ListOptions) ([]*models.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.listOpts = opts
	return f.listOut, nil
}

func (f *fakeNoteRepo) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countOut, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return note, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, tenantID, id string) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	i identitiesrepo.Repository
	t tenantsrepo.Repository
	n notesrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Identities(db dbx.DBTX) identitiesrepo.Repository { return m.i }
func (m *fakeRepoManager) Tenants(db dbx.DBTX) tenantsrepo.Repository      { return m.t }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository          { return m.n }
