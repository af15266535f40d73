// Package authz holds the resolved caller context and the pure access-control
// checks that operate on it. The context is an explicit immutable value
// threaded into handlers, never a hidden mutation of shared request state.
package authz

import "github.com/mzaharov/tenantnotes/internal/server/models"

// Context is the result of authenticating one request: the caller's identity
// and the single tenant it belongs to.
type Context struct {
	Identity *models.Identity
	Tenant   *models.Tenant
}
