package seeder

import (
	"context"
	"fmt"

	"careerhub/internal/database"
)

// LookupsSeeder installs the system rows of the three reference tables.
// Inserts are keyed on name, so reruns are no-ops.
type LookupsSeeder struct{}

func (LookupsSeeder) Name() string { return "lookups" }

var baselineLookups = map[string][]string{
	"departments": {"Engineering", "Marketing", "Sales", "Human Resources", "Finance", "Operations"},
	"job_types":   {"Full Time", "Part Time", "Contract", "Internship", "Remote"},
	"locations":   {"Dhaka", "Chattogram", "Sylhet", "Remote"},
}

func (LookupsSeeder) Run(ctx context.Context, db database.DB) error {
	for _, table := range []string{"departments", "job_types", "locations"} {
		if err := EnsureTableColumns(ctx, db, table, "id", "name", "is_system", "created_at"); err != nil {
			return err
		}
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, table := range []string{"departments", "job_types", "locations"} {
		for _, name := range baselineLookups[table] {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO `+table+` (id, name, is_system) VALUES (gen_random_uuid(), $1, TRUE) ON CONFLICT (name) DO NOTHING`,
				name,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
