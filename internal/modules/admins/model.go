package admins

import "time"

// Admin is a back-office account. The shop runs with a handful of these.
type Admin struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	Email            string     `gorm:"size:255;not null;uniqueIndex:ux_admins_email"`
	PasswordHash     string     `gorm:"column:password;size:255;not null"`
	ResetToken       *string    `gorm:"column:reset_token;size:64"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

func (Admin) TableName() string { return "admins" }

// Identity is the public shape of an admin (no secrets).
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (a Admin) Identity() Identity {
	return Identity{ID: a.ID, Email: a.Email}
}
