package models

import (
	"regexp"
	"time"
)

// Plan is the subscription tier of a tenant.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// MaxNotesUnlimited is the sentinel meaning "no ceiling".
const MaxNotesUnlimited = -1

// freePlanMaxNotes is the note ceiling for the free tier.
const freePlanMaxNotes = 3

// MaxNotes returns the note ceiling for the plan. The ceiling is always
// derived from the plan, never set independently.
func (p Plan) MaxNotes() int {
	if p == PlanPro {
		return MaxNotesUnlimited
	}
	return freePlanMaxNotes
}

func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidSlug reports whether s is a well-formed tenant slug.
func ValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// Tenant is an isolated customer account: the unit of data isolation and
// note-quota accounting. Slug is globally unique and immutable.
type Tenant struct {
	ID        string
	Slug      string
	Name      string
	Plan      Plan
	MaxNotes  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanCreateNote decides whether one more note may be created given the
// current note count. Pure; correctness under concurrency depends on how the
// caller snapshots currentCount (see services.NoteService.Create).
func (t *Tenant) CanCreateNote(currentCount int) bool {
	if t.Plan == PlanPro || t.MaxNotes == MaxNotesUnlimited {
		return true
	}
	return currentCount < t.MaxNotes
}
