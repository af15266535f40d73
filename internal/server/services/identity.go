// Package services contains server-side business logic. This file implements
// IdentityService: registration, login, and turning a bearer token into a
// resolved caller context.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/auth"
	"github.com/mzaharov/tenantnotes/internal/server/authz"
	"github.com/mzaharov/tenantnotes/internal/server/config"
	"github.com/mzaharov/tenantnotes/internal/server/models"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/repomanager"
)

// IdentityService provides authentication-related operations:
// - Register: create an identity inside an existing tenant
// - Login: verify credentials and mint an access token
// - Authenticate: resolve a raw bearer token into an authz.Context
type IdentityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewIdentityService constructs an IdentityService using repositories and
// server config.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.JWTSecret),
		tokenTTL:    cfg.TokenTTL,
	}
}

// Register creates a member identity in the tenant identified by tenantSlug
// and returns it together with a fresh access token.
func (s *IdentityService) Register(ctx context.Context, email, password, tenantSlug string) (*models.Identity, string, error) {

	tenant, err := s.repomanager.Tenants(s.db).GetBySlug(ctx, tenantSlug)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleMember,
		TenantID:     tenant.ID,
	}

	identity, err = s.repomanager.Identities(s.db).Create(ctx, identity)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating identity: %v", err)
	}

	token, err := auth.GenerateToken(identity.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return identity, token, nil
}

// Login verifies the password against the stored bcrypt hash and, on success,
// returns the resolved caller context and a new access token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*authz.Context, string, error) {

	identity, err := s.repomanager.Identities(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(identity.PasswordHash, []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	tenant, err := s.repomanager.Tenants(s.db).GetByID(ctx, identity.TenantID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(identity.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return &authz.Context{Identity: identity, Tenant: tenant}, token, nil
}

// Authenticate is the authentication gate: it verifies the raw token, looks
// the identity up in the directory, loads its tenant, and returns the pair as
// an immutable context value. A missing token, a bad or expired token, or a
// still-valid token for a since-deleted identity all map to
// common.ErrorUnauthorized.
func (s *IdentityService) Authenticate(ctx context.Context, rawToken string) (*authz.Context, error) {

	if rawToken == "" {
		return nil, common.ErrorUnauthorized
	}

	identityID, err := auth.GetUserIDFromToken(rawToken, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	identity, err := s.repomanager.Identities(s.db).GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	tenant, err := s.repomanager.Tenants(s.db).GetByID(ctx, identity.TenantID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &authz.Context{Identity: identity, Tenant: tenant}, nil
}
