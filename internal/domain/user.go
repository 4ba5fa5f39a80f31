package domain

import "time"

// User Model
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`     // UUID primary key
	Email     string    `gorm:"unique;not null" json:"email"`     // Unique email, stored as given
	Password  string    `gorm:"not null" json:"-"`                // Bcrypt hash, never serialized
	FullName  string    `gorm:"not null" json:"full_name"`        // Display name
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"` // Timestamp of registration
}
