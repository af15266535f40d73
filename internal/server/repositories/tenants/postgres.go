package tenants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

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

const pgUniqueViolation = "23505"

const tenantColumns = `id, slug, name, plan, max_notes, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {

	// max_notes is derived from the plan, never taken from the caller.
	tenant.MaxNotes = tenant.Plan.MaxNotes()

	query :=
		`INSERT INTO tenants (id, slug, name, plan, max_notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tenant.ID, tenant.Slug, tenant.Name, tenant.Plan, tenant.MaxNotes).
		Scan(&tenant.CreatedAt, &tenant.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return tenant, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Upgrade is a conditional write guarded by the current plan: the WHERE
// clause ensures that of two concurrent upgrades exactly one updates the row;
// the other observes zero affected rows and reports the conflict.
func (r *PostgresRepository) Upgrade(ctx context.Context, id string) (*models.Tenant, error) {

	query :=
		`UPDATE tenants
		 SET plan = $2, max_notes = $3, updated_at = now()
		 WHERE id = $1 AND plan = $4
		 RETURNING ` + tenantColumns

	row := r.db.QueryRowContext(ctx, query,
		id, models.PlanPro, models.PlanPro.MaxNotes(), models.PlanFree)

	tenant, err := r.scanOne(row)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	// No row updated: either the tenant is already pro or it does not exist.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, common.ErrAlreadyOnPlan
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := row.Scan(&tenant.ID, &tenant.Slug, &tenant.Name, &tenant.Plan,
		&tenant.MaxNotes, &tenant.CreatedAt, &tenant.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return tenant, nil
}
