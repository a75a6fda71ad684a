package server_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"golang.org/x/crypto/bcrypt"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/migrations"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/server"
	"github.com/hypertool/hypertool/pkg/sdk"
)

type testEnv struct {
	db     *bun.DB
	server *httptest.Server
	users  repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := bunx.NewDB(":memory:", 1)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	users := repository.NewBunUserRepository(db)
	router, err := server.NewRouter(server.RouterOptions{
		Issuer:    auth.NewTokenIssuer("test-secret", time.Hour),
		Users:     users,
		Clients:   repository.NewBunClientRepository(db),
		Invoices:  repository.NewBunInvoiceRepository(db),
		Projects:  repository.NewBunProjectRepository(db),
		Expenses:  repository.NewBunExpenseRepository(db),
		FollowUps: repository.NewBunFollowUpRepository(db),
		Plans:     repository.NewBunPlanRepository(db),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{db: db, server: srv, users: users}
}

func (e *testEnv) seedAccount(t *testing.T, email, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           bunx.NewUUIDv7(),
		Email:        email,
		Name:         "Seeded User",
		Role:         role,
		PasswordHash: string(hash),
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) sdkClient() *sdk.Client {
	session := sdk.NewSession(nil)
	session.Restore()
	return sdk.NewClient(e.server.URL, session)
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedAccount(t, "owner@example.com", "password123", "admin")
	client := env.sdkClient()
	ctx := context.Background()

	snap, err := client.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
	assert.Equal(t, sdk.RoleAdmin, snap.Role)
	assert.Equal(t, seeded.ID, snap.Profile.ID())

	profile, err := client.Whoami(ctx)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", profile["email"])
	assert.Equal(t, "admin", profile["role"])

	client.Logout(ctx)
	assert.False(t, client.Session().Authenticated())
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "owner@example.com", "password123", "admin")
	client := env.sdkClient()

	_, err := client.Login(context.Background(), "owner@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, sdk.IsKind(err, sdk.KindSessionExpired))
	assert.False(t, client.Session().Authenticated())
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedAccount(t, "owner@example.com", "password123", "admin")
	_, err := env.users.SetDisabled(context.Background(), seeded.ID, true)
	require.NoError(t, err)

	client := env.sdkClient()
	_, err = client.Login(context.Background(), "owner@example.com", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account disabled")
}

func TestClientAndInvoiceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "owner@example.com", "password123", "admin")
	client := env.sdkClient()
	ctx := context.Background()

	_, err := client.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	record, err := client.CreateClient(ctx, sdk.CreateClientInput{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	page, err := client.ListClients(ctx, sdk.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Acme Corp", page.Items[0].Name)

	invoice, err := client.CreateInvoice(ctx, sdk.CreateInvoiceInput{
		ClientID: record.ID,
		Number:   "INV-001",
		Lines: []sdk.InvoiceLine{
			{Description: "Consulting", Quantity: 2, UnitPrice: 50},
		},
		TaxRate: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, sdk.InvoiceDraft, invoice.Status)

	totals := invoice.Totals()
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 120.0, totals.Total)

	updated, err := client.UpdateInvoiceStatus(ctx, invoice.ID, sdk.InvoiceSent)
	require.NoError(t, err)
	assert.Equal(t, sdk.InvoiceSent, updated.Status)

	_, err = client.GetClient(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, sdk.IsKind(err, sdk.KindNotFound))
}

func TestTenantsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "a@example.com", "password123", "admin")
	env.seedAccount(t, "b@example.com", "password123", "admin")
	ctx := context.Background()

	clientA := env.sdkClient()
	_, err := clientA.Login(ctx, "a@example.com", "password123")
	require.NoError(t, err)

	record, err := clientA.CreateClient(ctx, sdk.CreateClientInput{Name: "A's customer"})
	require.NoError(t, err)

	clientB := env.sdkClient()
	_, err = clientB.Login(ctx, "b@example.com", "password123")
	require.NoError(t, err)

	_, err = clientB.GetClient(ctx, record.ID)
	assert.True(t, sdk.IsKind(err, sdk.KindNotFound))

	page, err := clientB.ListClients(ctx, sdk.ListOptions{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestSuperadminRoutesRequireExactRole(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "admin@example.com", "password123", "admin")
	env.seedAccount(t, "root@example.com", "password123", "superadmin")
	ctx := context.Background()

	adminClient := env.sdkClient()
	_, err := adminClient.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)

	// An admin is authenticated but not a superadmin: 403, session intact.
	_, err = adminClient.ListAdmins(ctx, sdk.ListOptions{})
	assert.True(t, sdk.IsKind(err, sdk.KindForbidden))
	assert.True(t, adminClient.Session().Authenticated())

	rootClient := env.sdkClient()
	_, err = rootClient.Login(ctx, "root@example.com", "password123")
	require.NoError(t, err)

	page, err := rootClient.ListAdmins(ctx, sdk.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	// Tenant routes accept any authenticated caller; the superadmin simply
	// owns no records.
	clients, err := rootClient.ListClients(ctx, sdk.ListOptions{})
	require.NoError(t, err)
	assert.Zero(t, clients.Total)
}

func TestSuperadminManagesAdminsAndPlans(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "root@example.com", "password123", "superadmin")
	ctx := context.Background()

	root := env.sdkClient()
	_, err := root.Login(ctx, "root@example.com", "password123")
	require.NoError(t, err)

	plan, err := root.CreatePlan(ctx, sdk.CreatePlanInput{
		Name:       "starter",
		PriceCents: 900,
		MaxClients: 25,
	})
	require.NoError(t, err)
	require.NotEmpty(t, plan.ID)

	admin, err := root.CreateAdmin(ctx, sdk.CreateAdminInput{
		Email:    "new-admin@example.com",
		Name:     "New Admin",
		Password: "changeme12",
		PlanID:   plan.ID,
	})
	require.NoError(t, err)
	assert.False(t, admin.Disabled)
	assert.Equal(t, plan.ID, admin.PlanID)

	// The provisioned admin can immediately sign in.
	adminClient := env.sdkClient()
	_, err = adminClient.Login(ctx, "new-admin@example.com", "changeme12")
	require.NoError(t, err)

	disabled, err := root.SetAdminDisabled(ctx, admin.ID, true)
	require.NoError(t, err)
	assert.True(t, disabled.Disabled)

	// Once disabled, fresh logins are refused.
	blocked := env.sdkClient()
	_, err = blocked.Login(ctx, "new-admin@example.com", "changeme12")
	require.Error(t, err)

	// Duplicate provisioning reports a conflict.
	_, err = root.CreateAdmin(ctx, sdk.CreateAdminInput{
		Email:    "new-admin@example.com",
		Password: "changeme12",
	})
	require.Error(t, err)
	assert.True(t, sdk.IsKind(err, sdk.KindRequestFailed))
}

func TestFollowUpAndExpenseRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "owner@example.com", "password123", "admin")
	client := env.sdkClient()
	ctx := context.Background()

	_, err := client.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	record, err := client.CreateClient(ctx, sdk.CreateClientInput{Name: "Acme Corp"})
	require.NoError(t, err)

	followUp, err := client.CreateFollowUp(ctx, sdk.CreateFollowUpInput{
		ClientID: record.ID,
		Note:     "call about renewal",
		DueAt:    time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.False(t, followUp.Done)

	done, err := client.CompleteFollowUp(ctx, followUp.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)

	expense, err := client.CreateExpense(ctx, sdk.CreateExpenseInput{
		Category:   "software",
		Amount:     49.99,
		Note:       "annual license",
		IncurredAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 49.99, expense.Amount)

	expenses, err := client.ListExpenses(ctx, sdk.ListOptions{Search: "software"})
	require.NoError(t, err)
	assert.Equal(t, 1, expenses.Total)
}

func TestExpiredTokenClears401(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "owner@example.com", "password123", "admin")
	ctx := context.Background()

	client := env.sdkClient()
	_, err := client.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	// Corrupt the held credential to simulate expiry server-side.
	client.Session().Login(nil, "not-a-valid-token", sdk.RoleAdmin)

	expired := false
	rebound := sdk.NewClient(env.server.URL, client.Session(),
		sdk.WithSessionExpiredHandler(func() { expired = true }))

	_, err = rebound.ListClients(ctx, sdk.ListOptions{})
	assert.True(t, sdk.IsKind(err, sdk.KindSessionExpired))
	assert.True(t, expired)
	assert.False(t, rebound.Session().Authenticated())
}
