package domain

import "time"

// DebtType is the direction of a debt relative to the owner
type DebtType string

// Debt directions
const (
	DebtIOwe    DebtType = "i_owe"    // Owner owes the counterparty
	DebtTheyOwe DebtType = "they_owe" // Counterparty owes the owner
)

// Valid reports whether t is a known debt direction
func (t DebtType) Valid() bool {
	return t == DebtIOwe || t == DebtTheyOwe
}

// Currency is an ISO-style currency code
type Currency string

// Supported currencies
const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether c is a supported currency
func (c Currency) Valid() bool {
	return c == CurrencyTRY || c == CurrencyUSD || c == CurrencyEUR
}

// Category classifies a debt
type Category string

// Debt categories
const (
	CategoryPersonalLoan  Category = "personal_loan"
	CategoryRent          Category = "rent"
	CategorySharedExpense Category = "shared_expense"
	CategoryBusinessLoan  Category = "business_loan"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Valid reports whether cat is a known category
func (cat Category) Valid() bool {
	switch cat {
	case CategoryPersonalLoan, CategoryRent, CategorySharedExpense,
		CategoryBusinessLoan, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// Status is the settlement state of a debt
type Status string

// Debt statuses
const (
	StatusActive        Status = "active"
	StatusPaid          Status = "paid"
	StatusPartiallyPaid Status = "partially_paid"
)

// Debt Model
type Debt struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`                  // UUID primary key
	UserID       string     `gorm:"size:36;index;not null" json:"user_id"`         // Owner, immutable after creation
	Type         DebtType   `gorm:"size:16;not null" json:"debt_type"`             // Direction of the debt
	PersonName   string     `gorm:"not null" json:"person_name"`                   // Counterparty name
	Amount       float64    `gorm:"not null" json:"amount"`                        // Original amount, always positive
	Currency     Currency   `gorm:"size:3;not null" json:"currency"`               // Currency of the original amount
	AmountInBase float64    `gorm:"not null" json:"amount_in_base"`                // Amount converted to the base currency at last write
	Description  string     `json:"description"`                                   // Free text
	Category     Category   `gorm:"size:32;not null" json:"category"`              // Closed category enumeration
	Status       Status     `gorm:"size:16;not null;default:active" json:"status"` // Settlement state
	DueDate      *time.Time `json:"due_date"`                                      // Optional due date
	CreatedAt    time.Time  `json:"created_at"`                                    // Timestamp of creation
	UpdatedAt    time.Time  `json:"updated_at"`                                    // Refreshed on every write
	PaidAt       *time.Time `json:"paid_at"`                                       // Set only while status is paid
}
