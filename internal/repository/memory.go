package repository

import (
	"context"
	"sync"
	"time"

	"debt_tracker/internal/domain"
)

// MemoryUserStore is an in-memory user collection with the same contract as
// the MySQL store. Used by tests and local development.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]domain.User // keyed by email
}

// NewMemoryUserStore returns an empty in-memory user store
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]domain.User)}
}

// InsertOne stores a new user
func (s *MemoryUserStore) InsertOne(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	s.users[u.Email] = *u
	return nil
}

// FindByEmail returns the user with the given email
func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// MemoryDebtStore is an in-memory debt collection. Natural storage order is
// insertion order.
type MemoryDebtStore struct {
	mu    sync.Mutex
	debts []domain.Debt
}

// NewMemoryDebtStore returns an empty in-memory debt store
func NewMemoryDebtStore() *MemoryDebtStore {
	return &MemoryDebtStore{}
}

// InsertOne stores a new debt
func (s *MemoryDebtStore) InsertOne(ctx context.Context, d *domain.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debts = append(s.debts, *d)
	return nil
}

// FindMany returns all debts of an owner in insertion order
func (s *MemoryDebtStore) FindMany(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Debt
	for _, d := range s.debts {
		if d.UserID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

// FindOne returns the owner's debt with the given id
func (s *MemoryDebtStore) FindOne(ctx context.Context, ownerID, id string) (*domain.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debts {
		if d.ID == id && d.UserID == ownerID {
			out := d
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateOne applies the given column/value pairs to the owner's debt
func (s *MemoryDebtStore) UpdateOne(ctx context.Context, ownerID, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.debts {
		if s.debts[i].ID == id && s.debts[i].UserID == ownerID {
			applyFields(&s.debts[i], fields)
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteOne removes the owner's debt with the given id
func (s *MemoryDebtStore) DeleteOne(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.debts {
		if s.debts[i].ID == id && s.debts[i].UserID == ownerID {
			s.debts = append(s.debts[:i], s.debts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// applyFields mirrors the column names the MySQL store accepts
func applyFields(d *domain.Debt, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "person_name":
			d.PersonName = v.(string)
		case "amount":
			d.Amount = v.(float64)
		case "currency":
			d.Currency = v.(domain.Currency)
		case "amount_in_base":
			d.AmountInBase = v.(float64)
		case "description":
			d.Description = v.(string)
		case "category":
			d.Category = v.(domain.Category)
		case "due_date":
			if v == nil {
				d.DueDate = nil
			} else {
				d.DueDate = v.(*time.Time)
			}
		case "status":
			d.Status = v.(domain.Status)
		case "paid_at":
			if v == nil {
				d.PaidAt = nil
			} else {
				d.PaidAt = v.(*time.Time)
			}
		case "updated_at":
			d.UpdatedAt = v.(time.Time)
		}
	}
}
