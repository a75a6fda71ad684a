package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

func seedClient(t *testing.T, db *bun.DB, ownerID, name string) *models.Client {
	t.Helper()

	client := &models.Client{
		ID:      bunx.NewUUIDv7(),
		OwnerID: ownerID,
		Name:    name,
	}
	require.NoError(t, NewBunClientRepository(db).Create(context.Background(), client))
	return client
}

func TestBunInvoiceRepository_CreateRoundTripsLines(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com", "admin")
	client := seedClient(t, db, owner.ID, "Acme Corp")
	repo := NewBunInvoiceRepository(db)
	ctx := context.Background()

	invoice := &models.Invoice{
		ID:       bunx.NewUUIDv7(),
		OwnerID:  owner.ID,
		ClientID: client.ID,
		Number:   "INV-2026-001",
		Lines: models.InvoiceLines{
			{Description: "Consulting", Quantity: 10, UnitPrice: 120},
			{Description: "Hosting", Quantity: 1, UnitPrice: 49.99},
		},
		TaxRate:  20,
		Status:   models.InvoiceStatusDraft,
		IssuedAt: time.Now(),
		DueAt:    time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, repo.Create(ctx, invoice))

	retrieved, err := repo.GetByID(ctx, owner.ID, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", retrieved.Number)
	require.Len(t, retrieved.Lines, 2)
	assert.Equal(t, "Consulting", retrieved.Lines[0].Description)
	assert.Equal(t, 49.99, retrieved.Lines[1].UnitPrice)
	assert.Equal(t, models.InvoiceStatusDraft, retrieved.Status)
}

func TestBunInvoiceRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com", "admin")
	other := seedUser(t, db, "other@example.com", "admin")
	client := seedClient(t, db, owner.ID, "Acme Corp")
	repo := NewBunInvoiceRepository(db)
	ctx := context.Background()

	invoice := &models.Invoice{
		ID:       bunx.NewUUIDv7(),
		OwnerID:  owner.ID,
		ClientID: client.ID,
		Number:   "INV-2026-002",
		Status:   models.InvoiceStatusDraft,
		IssuedAt: time.Now(),
		DueAt:    time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, repo.Create(ctx, invoice))

	updated, err := repo.UpdateStatus(ctx, owner.ID, invoice.ID, models.InvoiceStatusSent)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusSent, updated.Status)

	// Another owner cannot move the invoice.
	_, err = repo.UpdateStatus(ctx, other.ID, invoice.ID, models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)

	retrieved, err := repo.GetByID(ctx, owner.ID, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusSent, retrieved.Status)
}

func TestBunInvoiceRepository_ListSearchesNumberAndStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com", "admin")
	client := seedClient(t, db, owner.ID, "Acme Corp")
	repo := NewBunInvoiceRepository(db)
	ctx := context.Background()

	for i, status := range []string{
		models.InvoiceStatusDraft,
		models.InvoiceStatusSent,
		models.InvoiceStatusPaid,
	} {
		require.NoError(t, repo.Create(ctx, &models.Invoice{
			ID:       bunx.NewUUIDv7(),
			OwnerID:  owner.ID,
			ClientID: client.ID,
			Number:   "INV-2026-00" + string(rune('1'+i)),
			Status:   status,
			IssuedAt: time.Now(),
			DueAt:    time.Now().AddDate(0, 1, 0),
		}))
	}

	invoices, total, err := repo.List(ctx, owner.ID, ListFilter{Search: "paid"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, invoices, 1)
	assert.Equal(t, models.InvoiceStatusPaid, invoices[0].Status)

	_, total, err = repo.List(ctx, owner.ID, ListFilter{Search: "INV-2026"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
