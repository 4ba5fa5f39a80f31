package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debt_tracker/internal/dashboard"
	"debt_tracker/internal/domain"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activeDebt(debtType domain.DebtType, person string, amountInBase float64) domain.Debt {
	return domain.Debt{
		Type:         debtType,
		PersonName:   person,
		AmountInBase: amountInBase,
		Status:       domain.StatusActive,
		Description:  "debt",
	}
}

func TestComputeTotalsAndNetBalance(t *testing.T) {
	debts := []domain.Debt{
		activeDebt(domain.DebtIOwe, "Ayse", 100),
		activeDebt(domain.DebtTheyOwe, "Fatma", 50),
	}

	stats := dashboard.Compute(debts, now)
	require.InDelta(t, 100.0, stats.TotalOwed, 1e-9)
	require.InDelta(t, 50.0, stats.TotalToCollect, 1e-9)
	require.InDelta(t, -50.0, stats.NetBalance, 1e-9)
	require.Equal(t, 2, stats.ActiveDebtsCount)
	require.Equal(t, 0, stats.OverdueDebtsCount)
}

func TestComputeIgnoresSettledDebts(t *testing.T) {
	paid := activeDebt(domain.DebtIOwe, "Ayse", 999)
	paid.Status = domain.StatusPaid
	partially := activeDebt(domain.DebtTheyOwe, "Fatma", 500)
	partially.Status = domain.StatusPartiallyPaid

	stats := dashboard.Compute([]domain.Debt{paid, partially}, now)
	require.Zero(t, stats.TotalOwed)
	require.Zero(t, stats.TotalToCollect)
	require.Zero(t, stats.ActiveDebtsCount)
}

func TestComputeEmptySet(t *testing.T) {
	stats := dashboard.Compute(nil, now)
	require.Zero(t, stats.TotalOwed)
	require.Zero(t, stats.NetBalance)
	require.Empty(t, stats.PersonOweMost)
	require.Empty(t, stats.MostOverdueDebt)
}

func TestComputeLargestCreditorAggregatesPerPerson(t *testing.T) {
	debts := []domain.Debt{
		activeDebt(domain.DebtIOwe, "Ayse", 60),
		activeDebt(domain.DebtIOwe, "Mehmet", 50),
		activeDebt(domain.DebtIOwe, "Mehmet", 40),
		activeDebt(domain.DebtTheyOwe, "Zeynep", 1000), // collectible, never a creditor
	}

	stats := dashboard.Compute(debts, now)
	require.Equal(t, "Mehmet", stats.PersonOweMost)
	require.InDelta(t, 90.0, stats.PersonOweMostTotal, 1e-9)
}

func TestComputeLargestCreditorTieBreaksByName(t *testing.T) {
	debts := []domain.Debt{
		activeDebt(domain.DebtIOwe, "Zeynep", 75),
		activeDebt(domain.DebtIOwe, "Ayse", 75),
	}

	stats := dashboard.Compute(debts, now)
	require.Equal(t, "Ayse", stats.PersonOweMost)
	require.InDelta(t, 75.0, stats.PersonOweMostTotal, 1e-9)
}

func TestComputeOverdueDays(t *testing.T) {
	due := now.Add(-10*24*time.Hour - time.Hour) // 10 days and an hour past due
	d := activeDebt(domain.DebtIOwe, "Mehmet", 100)
	d.Description = "Car repair"
	d.DueDate = &due

	stats := dashboard.Compute([]domain.Debt{d}, now)
	require.Equal(t, 1, stats.OverdueDebtsCount)
	require.Equal(t, 10, stats.MostOverdueDays)
	require.Equal(t, "Car repair - Mehmet", stats.MostOverdueDebt)
}

func TestComputeFutureAndMissingDueDatesAreNotOverdue(t *testing.T) {
	future := now.Add(24 * time.Hour)
	withFuture := activeDebt(domain.DebtIOwe, "Ayse", 10)
	withFuture.DueDate = &future
	noDue := activeDebt(domain.DebtTheyOwe, "Fatma", 20)

	stats := dashboard.Compute([]domain.Debt{withFuture, noDue}, now)
	require.Zero(t, stats.OverdueDebtsCount)
	require.Empty(t, stats.MostOverdueDebt)
	require.Zero(t, stats.MostOverdueDays)
}

func TestComputeMostOverduePicksLargestDayCount(t *testing.T) {
	older := now.Add(-20 * 24 * time.Hour)
	newer := now.Add(-3 * 24 * time.Hour)

	a := activeDebt(domain.DebtIOwe, "Ayse", 10)
	a.Description = "Old loan"
	a.DueDate = &older
	b := activeDebt(domain.DebtTheyOwe, "Fatma", 20)
	b.Description = "Recent loan"
	b.DueDate = &newer

	stats := dashboard.Compute([]domain.Debt{b, a}, now)
	require.Equal(t, 2, stats.OverdueDebtsCount)
	require.Equal(t, 20, stats.MostOverdueDays)
	require.Equal(t, "Old loan - Ayse", stats.MostOverdueDebt)
}

func TestComputeMostOverdueTieBreaksByEarliestDueDate(t *testing.T) {
	// Both are 5 whole days overdue, but one is a few hours older.
	earlier := now.Add(-5*24*time.Hour - 6*time.Hour)
	later := now.Add(-5*24*time.Hour - time.Hour)

	a := activeDebt(domain.DebtIOwe, "Ayse", 10)
	a.Description = "First"
	a.DueDate = &earlier
	b := activeDebt(domain.DebtIOwe, "Fatma", 20)
	b.Description = "Second"
	b.DueDate = &later

	stats := dashboard.Compute([]domain.Debt{b, a}, now)
	require.Equal(t, 5, stats.MostOverdueDays)
	require.Equal(t, "First - Ayse", stats.MostOverdueDebt)
}

func TestComputeOverdueIgnoresPaidDebts(t *testing.T) {
	due := now.Add(-10 * 24 * time.Hour)
	d := activeDebt(domain.DebtIOwe, "Mehmet", 100)
	d.DueDate = &due
	d.Status = domain.StatusPaid

	stats := dashboard.Compute([]domain.Debt{d}, now)
	require.Zero(t, stats.OverdueDebtsCount)
}
