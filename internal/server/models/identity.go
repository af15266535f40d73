// Package models defines the persistent entities of the tenantnotes server.
package models

import "time"

// Role is the access level of an identity inside its tenant.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Identity is an authenticated principal. It belongs to exactly one tenant;
// the tenant reference never changes after creation.
type Identity struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         Role
	TenantID     string
	CreatedAt    time.Time
}
