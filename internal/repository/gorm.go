package repository

import (
	"context"
	"errors"

	"gorm.io/gorm" // GORM ORM library

	"debt_tracker/internal/domain"
)

// GormUserStore is the MySQL-backed user collection
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore wraps a gorm handle. The handle must be opened with
// TranslateError so duplicate-key violations surface as gorm.ErrDuplicatedKey.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// InsertOne stores a new user
func (s *GormUserStore) InsertOne(ctx context.Context, u *domain.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with the given email
func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GormDebtStore is the MySQL-backed debt collection
type GormDebtStore struct {
	db *gorm.DB
}

// NewGormDebtStore wraps a gorm handle
func NewGormDebtStore(db *gorm.DB) *GormDebtStore {
	return &GormDebtStore{db: db}
}

// InsertOne stores a new debt
func (s *GormDebtStore) InsertOne(ctx context.Context, d *domain.Debt) error {
	return s.db.WithContext(ctx).Create(d).Error
}

// FindMany returns all debts of an owner in natural storage order
func (s *GormDebtStore) FindMany(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	var debts []domain.Debt
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// FindOne returns the owner's debt with the given id
func (s *GormDebtStore) FindOne(ctx context.Context, ownerID, id string) (*domain.Debt, error) {
	var d domain.Debt
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// UpdateOne applies the given column/value pairs to the owner's debt
func (s *GormDebtStore) UpdateOne(ctx context.Context, ownerID, id string, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&domain.Debt{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows both for missing records and for
		// writes that change nothing, so distinguish with a lookup.
		if _, err := s.FindOne(ctx, ownerID, id); err != nil {
			return err
		}
	}
	return nil
}

// DeleteOne removes the owner's debt with the given id
func (s *GormDebtStore) DeleteOne(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Debt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
