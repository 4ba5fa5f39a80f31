package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debt_tracker/internal/domain"
	"debt_tracker/internal/ledger"
	"debt_tracker/internal/repository"
)

// fixedConverter converts with a static rate table, TRY as base
type fixedConverter struct{}

func (fixedConverter) ToBase(ctx context.Context, amount float64, currency domain.Currency) float64 {
	rates := map[domain.Currency]float64{
		domain.CurrencyTRY: 1.0,
		domain.CurrencyUSD: 34.0,
		domain.CurrencyEUR: 37.0,
	}
	rate, ok := rates[currency]
	if !ok {
		rate = 1.0
	}
	return amount * rate
}

func newLedger(t *testing.T) *ledger.Service {
	t.Helper()
	return ledger.NewService(repository.NewMemoryDebtStore(), fixedConverter{})
}

func validInput() ledger.CreateInput {
	due := time.Now().UTC().Add(30 * 24 * time.Hour)
	return ledger.CreateInput{
		Type:        domain.DebtIOwe,
		PersonName:  "Mehmet",
		Amount:      100,
		Currency:    domain.CurrencyUSD,
		Description: "Borrowed for rent",
		Category:    domain.CategoryRent,
		DueDate:     &due,
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc := newLedger(t)
	in := validInput()

	created, err := svc.Create(context.Background(), "owner-1", in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "owner-1", created.UserID)
	require.Equal(t, domain.StatusActive, created.Status)
	require.InDelta(t, 3400.0, created.AmountInBase, 1e-9)
	require.Nil(t, created.PaidAt)

	got, err := svc.Get(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, in.Type, got.Type)
	require.Equal(t, in.PersonName, got.PersonName)
	require.Equal(t, in.Amount, got.Amount)
	require.Equal(t, in.Currency, got.Currency)
	require.Equal(t, in.Description, got.Description)
	require.Equal(t, in.Category, got.Category)
	require.Equal(t, in.DueDate.Unix(), got.DueDate.Unix())
	require.InDelta(t, created.AmountInBase, got.AmountInBase, 1e-9)
}

func TestCreateValidation(t *testing.T) {
	svc := newLedger(t)

	cases := map[string]func(*ledger.CreateInput){
		"zero amount":     func(in *ledger.CreateInput) { in.Amount = 0 },
		"negative amount": func(in *ledger.CreateInput) { in.Amount = -5 },
		"bad direction":   func(in *ledger.CreateInput) { in.Type = "maybe_owe" },
		"bad currency":    func(in *ledger.CreateInput) { in.Currency = "XBT" },
		"bad category":    func(in *ledger.CreateInput) { in.Category = "gambling" },
		"empty person":    func(in *ledger.CreateInput) { in.PersonName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Create(context.Background(), "owner-1", in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestPartialUpdateTouchesOnlySuppliedFields(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	desc := "Updated description"
	updated, err := svc.Update(context.Background(), "owner-1", created.ID, ledger.UpdateInput{
		Description: &desc,
	})
	require.NoError(t, err)

	require.Equal(t, desc, updated.Description)
	require.Equal(t, created.Amount, updated.Amount)
	require.Equal(t, created.Currency, updated.Currency)
	require.InDelta(t, created.AmountInBase, updated.AmountInBase, 1e-9)
	require.Equal(t, created.Status, updated.Status)
	require.Equal(t, created.PersonName, updated.PersonName)
}

func TestUpdateAmountRecomputesNormalized(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	amount := 50.0
	updated, err := svc.Update(context.Background(), "owner-1", created.ID, ledger.UpdateInput{
		Amount: &amount,
	})
	require.NoError(t, err)
	// Currency is untouched, so the new amount converts at the USD rate.
	require.InDelta(t, 1700.0, updated.AmountInBase, 1e-9)
}

func TestUpdateCurrencyRecomputesFromResultingPair(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	currency := domain.CurrencyEUR
	updated, err := svc.Update(context.Background(), "owner-1", created.ID, ledger.UpdateInput{
		Currency: &currency,
	})
	require.NoError(t, err)
	// The unchanged amount of 100 converts at the EUR rate.
	require.Equal(t, 100.0, updated.Amount)
	require.InDelta(t, 3700.0, updated.AmountInBase, 1e-9)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	desc := "later"
	updated, err := svc.Update(context.Background(), "owner-1", created.ID, ledger.UpdateInput{
		Description: &desc,
	})
	require.NoError(t, err)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestSetPaidAndUnpaid(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	paid, err := svc.SetPaid(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// Idempotent in effect.
	again, err := svc.SetPaid(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaid, again.Status)
	require.NotNil(t, again.PaidAt)

	unpaid, err := svc.SetUnpaid(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, unpaid.Status)
	require.Nil(t, unpaid.PaidAt)
}

func TestDelete(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "owner-1", created.ID))

	_, err = svc.Get(context.Background(), "owner-1", created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "owner-1", created.ID), domain.ErrNotFound)
}

func TestListReturnsOnlyOwnersDebts(t *testing.T) {
	svc := newLedger(t)
	_, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner-2", validInput())
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, d := range mine {
		require.Equal(t, "owner-1", d.UserID)
	}
}

func TestCrossOwnerAccessIsNotFound(t *testing.T) {
	svc := newLedger(t)
	created, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	desc := "hijack"
	_, err = svc.Get(context.Background(), "owner-2", created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Update(context.Background(), "owner-2", created.ID, ledger.UpdateInput{Description: &desc})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "owner-2", created.ID), domain.ErrNotFound)
	_, err = svc.SetPaid(context.Background(), "owner-2", created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.SetUnpaid(context.Background(), "owner-2", created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// The record is untouched for its real owner.
	got, err := svc.Get(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Description, got.Description)
}
