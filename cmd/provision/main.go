// Command provision prepares a tenantnotes database for use: it runs the
// migrations and seeds the demo dataset (two tenants with an admin and a
// member each, plus a few sample notes). With -wipe it empties the tables
// first. The shared password for the seeded accounts is taken from the
// -password flag or prompted for on the terminal.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/flagx"
	"github.com/mzaharov/tenantnotes/internal/server/config"
	"github.com/mzaharov/tenantnotes/internal/server/models"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/repomanager"
)

type seedIdentity struct {
	email string
	role  models.Role
}

type seedTenant struct {
	slug       string
	name       string
	identities []seedIdentity
	notes      []struct{ title, content string }
}

var seedSet = []seedTenant{
	{
		slug: "acme",
		name: "Acme Corporation",
		identities: []seedIdentity{
			{"admin@acme.test", models.RoleAdmin},
			{"user@acme.test", models.RoleMember},
		},
		notes: []struct{ title, content string }{
			{"Welcome to Acme", "This is your first note in Acme Corporation. Feel free to edit or delete it."},
			{"Meeting Notes", "Quarterly review meeting scheduled for next week."},
		},
	},
	{
		slug: "globex",
		name: "Globex Corporation",
		identities: []seedIdentity{
			{"admin@globex.test", models.RoleAdmin},
			{"user@globex.test", models.RoleMember},
		},
		notes: []struct{ title, content string }{
			{"Welcome to Globex", "This is your first note in Globex Corporation. Feel free to edit or delete it."},
		},
	},
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "provision: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {

	args := flagx.FilterArgs(os.Args[1:], []string{"-password", "-wipe"})
	fs := flag.NewFlagSet("provision", flag.ContinueOnError)
	password := fs.String("password", "", "password for seeded accounts (prompted when empty)")
	wipe := fs.Bool("wipe", false, "empty the notes, identities and tenants tables before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.LoadConfig()
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("database DSN is required")
	}

	if *password == "" {
		fmt.Print("Password for seeded accounts: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		*password = string(raw)
	}
	if *password == "" {
		return fmt.Errorf("password must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if *wipe {
		if _, err := db.ExecContext(ctx, `TRUNCATE notes, identities, tenants`); err != nil {
			return fmt.Errorf("wipe error: %w", err)
		}
		fmt.Println("tables emptied")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tenantRepo := rm.Tenants(tx)
		identityRepo := rm.Identities(tx)
		noteRepo := rm.Notes(tx)

		for _, st := range seedSet {
			tenant, err := tenantRepo.Create(ctx, &models.Tenant{
				ID:   uuid.NewString(),
				Slug: st.slug,
				Name: st.name,
				Plan: models.PlanFree,
			})
			if err != nil {
				return fmt.Errorf("tenant %s: %w", st.slug, err)
			}
			fmt.Printf("tenant %s created\n", tenant.Slug)

			var owner *models.Identity
			for _, si := range st.identities {
				identity, err := identityRepo.Create(ctx, &models.Identity{
					ID:           uuid.NewString(),
					Email:        si.email,
					PasswordHash: hash,
					Role:         si.role,
					TenantID:     tenant.ID,
				})
				if err != nil {
					return fmt.Errorf("identity %s: %w", si.email, err)
				}
				fmt.Printf("  %s (%s)\n", identity.Email, identity.Role)
				if si.role == models.RoleMember {
					owner = identity
				}
			}

			for _, sn := range st.notes {
				if _, err := noteRepo.Create(ctx, &models.Note{
					ID:        uuid.NewString(),
					TenantID:  tenant.ID,
					CreatedBy: owner.ID,
					Title:     sn.title,
					Content:   sn.content,
				}); err != nil {
					return fmt.Errorf("note %q: %w", sn.title, err)
				}
			}
		}
		return nil
	})
}
