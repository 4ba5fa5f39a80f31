package repository

import (
	"context"

	"debt_tracker/internal/domain"
)

// UserStore persists identities. Emails are unique across the collection.
type UserStore interface {
	// InsertOne stores a new user. Returns domain.ErrDuplicateEmail when the
	// email is already taken.
	InsertOne(ctx context.Context, u *domain.User) error
	// FindByEmail returns the user with the given email, or domain.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DebtStore persists debts. Every lookup and mutation filters on the record id
// and the owner id jointly, so another owner's record behaves exactly like a
// missing one. Each operation touches a single record.
type DebtStore interface {
	// InsertOne stores a new debt.
	InsertOne(ctx context.Context, d *domain.Debt) error
	// FindMany returns all debts of an owner in natural storage order.
	FindMany(ctx context.Context, ownerID string) ([]domain.Debt, error)
	// FindOne returns the owner's debt with the given id, or domain.ErrNotFound.
	FindOne(ctx context.Context, ownerID, id string) (*domain.Debt, error)
	// UpdateOne applies the given column/value pairs to the owner's debt with
	// the given id. Returns domain.ErrNotFound when no such record exists.
	UpdateOne(ctx context.Context, ownerID, id string, fields map[string]any) error
	// DeleteOne removes the owner's debt with the given id, or returns
	// domain.ErrNotFound.
	DeleteOne(ctx context.Context, ownerID, id string) error
}
