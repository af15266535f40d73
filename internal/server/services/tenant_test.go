package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mzaharov/tenantnotes/internal/common"
	"github.com/mzaharov/tenantnotes/internal/server/models"
)

func TestTenantGet_UnderQuota(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewTenantService(db, &fakeRepoManager{
		t: &fakeTenantRepo{byIDOut: acmeTenant()},
		n: &fakeNoteRepo{countOut: 2},
	})

	info, err := s.Get(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if info.NoteCount != 2 || !info.CanCreateNotes {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestTenantGet_AtCeiling(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewTenantService(db, &fakeRepoManager{
		t: &fakeTenantRepo{byIDOut: acmeTenant()},
		n: &fakeNoteRepo{countOut: 3},
	})

	info, err := s.Get(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if info.CanCreateNotes {
		t.Fatalf("free tenant at its ceiling must not be able to create notes")
	}
}

func TestTenantUpgrade_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	upgraded := acmeTenant()
	upgraded.Plan = models.PlanPro
	upgraded.MaxNotes = models.MaxNotesUnlimited

	s := NewTenantService(db, &fakeRepoManager{
		t: &fakeTenantRepo{upgradeOut: upgraded},
	})

	got, err := s.Upgrade(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}
	if got.Plan != models.PlanPro || got.MaxNotes != models.MaxNotesUnlimited {
		t.Fatalf("unexpected tenant: %+v", got)
	}
}

func TestTenantUpgrade_AlreadyOnPlan(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewTenantService(db, &fakeRepoManager{
		t: &fakeTenantRepo{upgradeErr: common.ErrAlreadyOnPlan},
	})

	_, err := s.Upgrade(context.Background(), "t-1")
	if !errors.Is(err, common.ErrAlreadyOnPlan) {
		t.Fatalf("want common.ErrAlreadyOnPlan, got %v", err)
	}
}
