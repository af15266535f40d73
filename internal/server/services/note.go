package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/server/authz"
	"github.com/mzaharov/tenantnotes/internal/server/models"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/notes"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/repomanager"
)

// NoteService implements note CRUD scoped to the caller's tenant, with the
// free-plan quota enforced at creation time.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create inserts a note for the authenticated caller. The quota check and the
// insert run inside one transaction that locks the tenant row first, so
// concurrent creations against the same tenant serialize and a free tenant
// can never exceed its ceiling: of N racing requests with k slots left,
// exactly k succeed and the rest observe common.ErrQuotaExceeded.
//
// The note's tenant id is always the owner identity's tenant id.
func (s *NoteService) Create(ctx context.Context, ac *authz.Context, title, content string) (*models.Note, error) {

	note := &models.Note{
		ID:        uuid.NewString(),
		TenantID:  ac.Tenant.ID,
		CreatedBy: ac.Identity.ID,
		Title:     title,
		Content:   content,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		// Row lock on the tenant serializes quota decisions per tenant.
		tenant, err := s.repomanager.Tenants(tx).GetByIDForUpdate(ctx, note.TenantID)
		if err != nil {
			return err
		}

		count, err := s.repomanager.Notes(tx).CountByTenant(ctx, note.TenantID)
		if err != nil {
			return err
		}

		if !tenant.CanCreateNote(count) {
			return common.ErrQuotaExceeded
		}

		_, err = s.repomanager.Notes(tx).Create(ctx, note)
		return err
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

// NotePage is one page of a tenant's notes, newest first.
type NotePage struct {
	Notes      []*models.Note
	Page       int
	Limit      int
	TotalNotes int
}

// TotalPages returns the number of pages at the page size this page was
// fetched with.
func (p *NotePage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.TotalNotes + p.Limit - 1) / p.Limit
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// List returns the requested page of the tenant's notes. Page and limit are
// clamped to sane values.
func (s *NoteService) List(ctx context.Context, tenantID string, page, limit int) (*NotePage, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	repo := s.repomanager.Notes(s.db)

	list, err := repo.ListByTenant(ctx, tenantID, notes.ListOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	total, err := repo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &NotePage{Notes: list, Page: page, Limit: limit, TotalNotes: total}, nil
}

// Get returns one of the tenant's notes by id.
func (s *NoteService) Get(ctx context.Context, tenantID, id string) (*models.Note, error) {
	return s.repomanager.Notes(s.db).GetByID(ctx, tenantID, id)
}

// Update overwrites the title and/or content of one of the tenant's notes.
// A nil field leaves the stored value unchanged.
func (s *NoteService) Update(ctx context.Context, tenantID, id string, title, content *string) (*models.Note, error) {

	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}

	return repo.Update(ctx, note)
}

// Delete removes one of the tenant's notes.
func (s *NoteService) Delete(ctx context.Context, tenantID, id string) error {
	return s.repomanager.Notes(s.db).Delete(ctx, tenantID, id)
}
