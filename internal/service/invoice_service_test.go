package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspzone/docs-service/internal/model"
)

func TestCreateInvoiceFromQuotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "billing@example.com")
	q := env.createQuotation(t, clientID, "18500.75")

	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", created.InvoiceNo)

	inv, err := env.invoices.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, clientID, inv.ClientID)
	assert.Equal(t, q.ID, inv.QuotationID)
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.Status)
	assert.True(t, inv.Amount.Equal(decimal.RequireFromString("18500.75")), inv.Amount.String())
	assert.Equal(t, "2026-03-10", inv.Date.Format("2006-01-02"))
	assert.Equal(t, "2026-03-24", inv.DueDate.Format("2006-01-02"))

	second, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0002", second.InvoiceNo)

	list, err := env.invoices.ListInvoicesForClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateInvoiceFromQuotationErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "errors@example.com")
	q := env.createQuotation(t, clientID, "100")

	_, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID+50, model.InvoiceInput{})
	assert.True(t, errors.Is(err, ErrNotFound), err)

	_, err = env.invoices.CreateInvoiceFromQuotation(ctx, 0, model.InvoiceInput{})
	assert.True(t, errors.Is(err, ErrValidation), err)

	_, err = env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{
		Date:    fixedNow,
		DueDate: fixedNow.AddDate(0, 0, -3),
	})
	assert.True(t, errors.Is(err, ErrValidation), err)

	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", created.InvoiceNo)
}

func TestSetInvoiceStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "pay@example.com")
	q := env.createQuotation(t, clientID, "750")
	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)

	res, err := env.invoices.SetInvoiceStatus(ctx, created.InvoiceNo, model.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Updated)

	res, err = env.invoices.SetInvoiceStatus(ctx, strconv.FormatInt(created.ID, 10), "PAID")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Updated)

	res, err = env.invoices.SetInvoiceStatus(ctx, "inv-2026-0001", model.InvoiceStatusUnpaid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Updated)

	_, err = env.invoices.SetInvoiceStatus(ctx, created.InvoiceNo, "void")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = env.invoices.SetInvoiceStatus(ctx, "INV-2026-0099", model.InvoiceStatusPaid)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFindInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "find@example.com")
	q := env.createQuotation(t, clientID, "300")
	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)

	byNumber, err := env.invoices.FindInvoice(ctx, " "+created.InvoiceNo+" ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)

	byID, err := env.invoices.FindInvoice(ctx, strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNo, byID.InvoiceNo)

	_, err = env.invoices.FindInvoice(ctx, "")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = env.invoices.FindInvoice(ctx, "9999")
	assert.True(t, errors.Is(err, ErrNotFound))
}
