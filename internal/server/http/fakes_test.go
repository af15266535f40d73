package http

import (
	"context"
	"database/sql"
	"sync"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/server/models"
	identitiesrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/identities"
	notesrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/notes"
	tenantsrepo "github.com/mzaharov/tenantnotes/internal/server/repositories/tenants"
)

// memState is an in-memory stand-in for the Postgres store, shared by the
// three repository fakes below so the handler tests can exercise full
// request flows without a database.
type memState struct {
	mu         sync.Mutex
	tenants    map[string]*models.Tenant   // by id
	identities map[string]*models.Identity // by id
	notes      map[string]*models.Note     // by id
}

func newMemState() *memState {
	return &memState{
		tenants:    make(map[string]*models.Tenant),
		identities: make(map[string]*models.Identity),
		notes:      make(map[string]*models.Note),
	}
}

type memIdentityRepo struct{ state *memState }

func (r *memIdentityRepo) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, existing := range r.state.identities {
		if existing.Email == identity.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.state.identities[identity.ID] = identity
	return identity, nil
}

func (r *memIdentityRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	identity, ok := r.state.identities[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return identity, nil
}

func (r *memIdentityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, identity := range r.state.identities {
		if identity.Email == email {
			return identity, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memTenantRepo struct{ state *memState }

func (r *memTenantRepo) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.tenants[tenant.ID] = tenant
	return tenant, nil
}

func (r *memTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	tenant, ok := r.state.tenants[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return tenant, nil
}

func (r *memTenantRepo) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, tenant := range r.state.tenants {
		if tenant.Slug == slug {
			return tenant, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTenantRepo) GetByIDForUpdate(ctx context.Context, id string) (*models.Tenant, error) {
	return r.GetByID(ctx, id)
}

func (r *memTenantRepo) Upgrade(ctx context.Context, id string) (*models.Tenant, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	tenant, ok := r.state.tenants[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if tenant.Plan == models.PlanPro {
		return nil, common.ErrAlreadyOnPlan
	}
	tenant.Plan = models.PlanPro
	tenant.MaxNotes = models.MaxNotesUnlimited
	return tenant, nil
}

type memNoteRepo struct{ state *memState }

func (r *memNoteRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.notes[note.ID] = note
	return note, nil
}

func (r *memNoteRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	note, ok := r.state.notes[id]
	if !ok || note.TenantID != tenantID {
		return nil, common.ErrorNotFound
	}
	return note, nil
}

func (r *memNoteRepo) ListByTenant(ctx context.Context, tenantID string, opts notesrepo.ListOptions) ([]*models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	var all []*models.Note
	for _, note := range r.state.notes {
		if note.TenantID == tenantID {
			all = append(all, note)
		}
	}
	if opts.Offset >= len(all) {
		return nil, nil
	}
	all = all[opts.Offset:]
	if opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (r *memNoteRepo) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	count := 0
	for _, note := range r.state.notes {
		if note.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *memNoteRepo) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	stored, ok := r.state.notes[note.ID]
	if !ok || stored.TenantID != note.TenantID {
		return nil, common.ErrorNotFound
	}
	r.state.notes[note.ID] = note
	return note, nil
}

func (r *memNoteRepo) Delete(ctx context.Context, tenantID, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	note, ok := r.state.notes[id]
	if !ok || note.TenantID != tenantID {
		return common.ErrorNotFound
	}
	delete(r.state.notes, id)
	return nil
}

type memRepoManager struct{ state *memState }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *memRepoManager) Identities(dbx.DBTX) identitiesrepo.Repository {
	return &memIdentityRepo{state: m.state}
}

func (m *memRepoManager) Tenants(dbx.DBTX) tenantsrepo.Repository {
	return &memTenantRepo{state: m.state}
}

func (m *memRepoManager) Notes(dbx.DBTX) notesrepo.Repository {
	return &memNoteRepo{state: m.state}
}
