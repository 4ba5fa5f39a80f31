package ledger

import (
	"context"
	"time"

	"github.com/google/uuid" // UUID generation

	"debt_tracker/internal/domain"
	"debt_tracker/internal/repository"
)

// Converter turns an amount in some currency into the base currency.
// Conversions never fail.
type Converter interface {
	ToBase(ctx context.Context, amount float64, currency domain.Currency) float64
}

// Service owns the debt lifecycle. Every operation takes the owner id from a
// resolved identity; a debt of another owner is indistinguishable from a
// missing one.
type Service struct {
	debts repository.DebtStore
	rates Converter
}

// NewService builds a debt ledger
func NewService(debts repository.DebtStore, rates Converter) *Service {
	return &Service{debts: debts, rates: rates}
}

// CreateInput carries the caller-supplied fields of a new debt
type CreateInput struct {
	Type        domain.DebtType
	PersonName  string
	Amount      float64
	Currency    domain.Currency
	Description string
	Category    domain.Category
	DueDate     *time.Time
}

// UpdateInput carries a partial update; nil fields are left untouched
type UpdateInput struct {
	PersonName  *string
	Amount      *float64
	Currency    *domain.Currency
	Description *string
	Category    *domain.Category
	DueDate     *time.Time
}

// Create validates the input, normalizes the amount into the base currency and
// stores a new active debt.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Debt, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	debt := domain.Debt{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		Type:         in.Type,
		PersonName:   in.PersonName,
		Amount:       in.Amount,
		Currency:     in.Currency,
		AmountInBase: s.rates.ToBase(ctx, in.Amount, in.Currency),
		Description:  in.Description,
		Category:     in.Category,
		Status:       domain.StatusActive,
		DueDate:      in.DueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.debts.InsertOne(ctx, &debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

// List returns all debts of the owner in natural storage order
func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	return s.debts.FindMany(ctx, ownerID)
}

// Get returns the owner's debt with the given id
func (s *Service) Get(ctx context.Context, ownerID, id string) (*domain.Debt, error) {
	return s.debts.FindOne(ctx, ownerID, id)
}

// Update applies a partial update. When the amount or the currency changes the
// normalized amount is recomputed from the resulting pair, not just the
// changed field.
func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) (*domain.Debt, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}
	current, err := s.debts.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.PersonName != nil {
		fields["person_name"] = *in.PersonName
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.DueDate != nil {
		fields["due_date"] = in.DueDate
	}
	if in.Amount != nil || in.Currency != nil {
		amount := current.Amount
		if in.Amount != nil {
			amount = *in.Amount
			fields["amount"] = amount
		}
		currency := current.Currency
		if in.Currency != nil {
			currency = *in.Currency
			fields["currency"] = currency
		}
		fields["amount_in_base"] = s.rates.ToBase(ctx, amount, currency)
	}
	if err := s.debts.UpdateOne(ctx, ownerID, id, fields); err != nil {
		return nil, err
	}
	return s.debts.FindOne(ctx, ownerID, id)
}

// Delete removes the owner's debt with the given id
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.debts.DeleteOne(ctx, ownerID, id)
}

// SetPaid marks the debt paid and stamps the paid timestamp. Repeating the
// call keeps the debt paid and refreshes the timestamps.
func (s *Service) SetPaid(ctx context.Context, ownerID, id string) (*domain.Debt, error) {
	now := time.Now().UTC()
	fields := map[string]any{
		"status":     domain.StatusPaid,
		"paid_at":    &now,
		"updated_at": now,
	}
	if err := s.debts.UpdateOne(ctx, ownerID, id, fields); err != nil {
		return nil, err
	}
	return s.debts.FindOne(ctx, ownerID, id)
}

// SetUnpaid reverts the debt to active and clears the paid timestamp
func (s *Service) SetUnpaid(ctx context.Context, ownerID, id string) (*domain.Debt, error) {
	fields := map[string]any{
		"status":     domain.StatusActive,
		"paid_at":    nil,
		"updated_at": time.Now().UTC(),
	}
	if err := s.debts.UpdateOne(ctx, ownerID, id, fields); err != nil {
		return nil, err
	}
	return s.debts.FindOne(ctx, ownerID, id)
}

// validateCreate checks the caller-supplied fields before storage is touched
func validateCreate(in CreateInput) error {
	if !in.Type.Valid() {
		return &domain.ValidationError{Field: "debt_type", Reason: "unknown debt direction"}
	}
	if in.PersonName == "" {
		return &domain.ValidationError{Field: "person_name", Reason: "must not be empty"}
	}
	if in.Amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if !in.Currency.Valid() {
		return &domain.ValidationError{Field: "currency", Reason: "unsupported currency code"}
	}
	if !in.Category.Valid() {
		return &domain.ValidationError{Field: "category", Reason: "unknown category"}
	}
	return nil
}

// validateUpdate checks the supplied subset of fields
func validateUpdate(in UpdateInput) error {
	if in.PersonName != nil && *in.PersonName == "" {
		return &domain.ValidationError{Field: "person_name", Reason: "must not be empty"}
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if in.Currency != nil && !in.Currency.Valid() {
		return &domain.ValidationError{Field: "currency", Reason: "unsupported currency code"}
	}
	if in.Category != nil && !in.Category.Valid() {
		return &domain.ValidationError{Field: "category", Reason: "unknown category"}
	}
	return nil
}
