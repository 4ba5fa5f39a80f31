package dashboard

import (
	"time"

	"debt_tracker/internal/domain"
)

// overdue captures one overdue active debt during aggregation
type overdue struct {
	label   string
	days    int
	dueDate time.Time
}

// Compute derives dashboard statistics from the given debts as of now. Only
// active debts contribute. The function is pure: it reads the slice, writes
// nothing, and caches nothing.
//
// Ties are deterministic: among counterparties with equal owed totals the
// lexicographically smallest name wins, and among equally overdue debts the
// one with the earliest due date wins, then the smallest label.
func Compute(debts []domain.Debt, now time.Time) domain.DashboardStats {
	var stats domain.DashboardStats
	personTotals := make(map[string]float64)
	var overdues []overdue

	for _, d := range debts {
		if d.Status != domain.StatusActive {
			continue
		}
		stats.ActiveDebtsCount++

		if d.Type == domain.DebtIOwe {
			stats.TotalOwed += d.AmountInBase
			personTotals[d.PersonName] += d.AmountInBase
		} else {
			stats.TotalToCollect += d.AmountInBase
		}

		if d.DueDate != nil && d.DueDate.Before(now) {
			stats.OverdueDebtsCount++
			days := int(now.Sub(*d.DueDate).Hours() / 24)
			if days < 0 {
				days = 0
			}
			overdues = append(overdues, overdue{
				label:   d.Description + " - " + d.PersonName,
				days:    days,
				dueDate: *d.DueDate,
			})
		}
	}

	stats.NetBalance = stats.TotalToCollect - stats.TotalOwed
	stats.PersonOweMost, stats.PersonOweMostTotal = largestCreditor(personTotals)
	stats.MostOverdueDebt, stats.MostOverdueDays = mostOverdue(overdues)
	return stats
}

// largestCreditor picks the counterparty with the highest owed total,
// preferring the lexicographically smaller name on equal totals.
func largestCreditor(totals map[string]float64) (string, float64) {
	var name string
	var max float64
	for person, total := range totals {
		switch {
		case name == "", total > max:
			name, max = person, total
		case total == max && person < name:
			name = person
		}
	}
	return name, max
}

// mostOverdue picks the entry with the largest day count, preferring the
// earliest due date and then the smaller label on equal counts.
func mostOverdue(entries []overdue) (string, int) {
	if len(entries) == 0 {
		return "", 0
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.days > best.days {
			best = e
			continue
		}
		if e.days == best.days {
			if e.dueDate.Before(best.dueDate) || (e.dueDate.Equal(best.dueDate) && e.label < best.label) {
				best = e
			}
		}
	}
	return best.label, best.days
}
