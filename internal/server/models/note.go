package models

import "time"

// Note is a tenant-owned record subject to quota accounting.
//
// Invariant: TenantID always equals the owning identity's tenant id. The
// service layer derives it from the authenticated identity and never from
// request input.
type Note struct {
	ID        string
	TenantID  string
	CreatedBy string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
