package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = `id, tenant_id, created_by, title, content, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (id, tenant_id, created_by, title, content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.TenantID, note.CreatedBy, note.Title, note.Content).
		Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, tenantID, id string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tenantID, id))
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string, opts ListOptions) ([]*models.Note, error) {

	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE tenant_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, tenantID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}
	defer rows.Close()

	result := []*models.Note{}
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.TenantID, &note.CreatedBy,
			&note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %v", err)
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	query := `SELECT count(*) FROM notes WHERE tenant_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %v", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`UPDATE notes
		 SET title = $3, content = $4, updated_at = now()
		 WHERE tenant_id = $1 AND id = $2
		 RETURNING ` + noteColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		note.TenantID, note.ID, note.Title, note.Content))
}

func (r *PostgresRepository) Delete(ctx context.Context, tenantID, id string) error {

	query := `DELETE FROM notes WHERE tenant_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("db error: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Note, error) {
	note := &models.Note{}
	err := row.Scan(&note.ID, &note.TenantID, &note.CreatedBy,
		&note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return note, nil
}
