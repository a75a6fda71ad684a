package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

func init() {
	Migrations.MustRegister(up_20260815000000, down_20260815000000)
}

// up_20260815000000 initializes the full database schema
func up_20260815000000(ctx context.Context, db *bun.DB) error {
	// 1. Create plans table first; users reference it.
	fmt.Print(" [up] creating plans table...")
	_, err := db.NewCreateTable().
		Model((*models.Plan)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create plans table: %w", err)
	}
	fmt.Println(" OK")

	// 2. Create users table
	fmt.Print(" [up] creating users table...")
	uq := db.NewCreateTable().
		Model((*models.User)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		uq = uq.ForeignKey(`(plan_id) REFERENCES plans(id) ON DELETE SET NULL`)
	}
	if _, err := uq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`); err != nil {
		return fmt.Errorf("failed to create index on users.role: %w", err)
	}
	fmt.Println(" OK")

	// 3. Create clients table
	fmt.Print(" [up] creating clients table...")
	cq := db.NewCreateTable().
		Model((*models.Client)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		cq = cq.ForeignKey(`(owner_id) REFERENCES users(id) ON DELETE CASCADE`)
	}
	if _, err := cq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create clients table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients(owner_id)`); err != nil {
		return fmt.Errorf("failed to create index on clients.owner_id: %w", err)
	}
	fmt.Println(" OK")

	// 4. Create projects table
	fmt.Print(" [up] creating projects table...")
	pq := db.NewCreateTable().
		Model((*models.Project)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		pq = pq.ForeignKey(`(client_id) REFERENCES clients(id) ON DELETE CASCADE`)
	}
	if _, err := pq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}
	fmt.Println(" OK")

	// 5. Create invoices table
	fmt.Print(" [up] creating invoices table...")
	iq := db.NewCreateTable().
		Model((*models.Invoice)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		iq = iq.ForeignKey(`(client_id) REFERENCES clients(id) ON DELETE CASCADE`)
	}
	if _, err := iq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create invoices table: %w", err)
	}
	if IsPostgreSQL(db) {
		if _, err := db.Exec(`ALTER TABLE invoices ALTER COLUMN lines TYPE JSONB USING lines::jsonb`); err != nil {
			return fmt.Errorf("failed to ensure lines column is jsonb: %w", err)
		}
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_invoices_owner ON invoices(owner_id)`); err != nil {
		return fmt.Errorf("failed to create index on invoices.owner_id: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`); err != nil {
		return fmt.Errorf("failed to create index on invoices.status: %w", err)
	}
	fmt.Println(" OK")

	// 6. Create expenses table
	fmt.Print(" [up] creating expenses table...")
	eq := db.NewCreateTable().
		Model((*models.Expense)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		eq = eq.ForeignKey(`(project_id) REFERENCES projects(id) ON DELETE SET NULL`)
	}
	if _, err := eq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create expenses table: %w", err)
	}
	fmt.Println(" OK")

	// 7. Create followups table
	fmt.Print(" [up] creating followups table...")
	fq := db.NewCreateTable().
		Model((*models.FollowUp)(nil)).
		IfNotExists()
	if IsSQLite(db) {
		fq = fq.ForeignKey(`(client_id) REFERENCES clients(id) ON DELETE CASCADE`)
	}
	if _, err := fq.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create followups table: %w", err)
	}
	fmt.Println(" OK")

	return nil
}

// down_20260815000000 drops the full schema in dependency order
func down_20260815000000(ctx context.Context, db *bun.DB) error {
	tables := []string{"followups", "expenses", "invoices", "projects", "clients", "users", "plans"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return fmt.Errorf("failed to drop %s table: %w", table, err)
		}
	}
	return nil
}
