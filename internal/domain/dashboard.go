package domain

// DashboardStats is computed fresh per request from the owner's active debts
// and is never persisted.
type DashboardStats struct {
	TotalOwed          float64 `json:"total_owed"`             // Sum of active amounts the owner owes, in base currency
	TotalToCollect     float64 `json:"total_to_collect"`       // Sum of active amounts owed to the owner, in base currency
	NetBalance         float64 `json:"net_balance"`            // Collectible minus owed, negative means net debtor
	PersonOweMost      string  `json:"person_owe_most"`        // Counterparty with the largest aggregate owed amount
	PersonOweMostTotal float64 `json:"person_owe_most_amount"` // That counterparty's aggregate, in base currency
	MostOverdueDebt    string  `json:"most_overdue_debt"`      // Label of the most overdue active debt
	MostOverdueDays    int     `json:"most_overdue_days"`      // Whole days that debt is past due
	ActiveDebtsCount   int     `json:"active_debts_count"`     // Number of active debts
	OverdueDebtsCount  int     `json:"overdue_debts_count"`    // Number of active debts past their due date
}
