package authz

import (
	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

// RequireRole fails with common.ErrorForbidden unless the caller holds the
// given role. Pure and side-effect free.
func RequireRole(ac *Context, role models.Role) error {
	if ac == nil || ac.Identity == nil || ac.Identity.Role != role {
		return common.ErrorForbidden
	}
	return nil
}

// RequireTenant is the cross-tenant barrier: it fails with
// common.ErrorForbidden unless the caller's tenant slug equals the slug the
// request targets. It applies to every tenant-scoped operation regardless of
// role, so even a valid, unexpired credential for one tenant cannot touch
// another tenant's namespace.
func RequireTenant(ac *Context, slug string) error {
	if ac == nil || ac.Tenant == nil || ac.Tenant.Slug != slug {
		return common.ErrorForbidden
	}
	return nil
}
