package admins

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("admin not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) FindByEmail(ctx context.Context, email string) (Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Admin{}, ErrNotFound
	}
	return a, err
}

// FindByResetToken matches the sha256 hex of a reset token, unexpired only.
func (r *Repo) FindByResetToken(ctx context.Context, tokenHash string) (Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", tokenHash, time.Now()).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Admin{}, ErrNotFound
	}
	return a, err
}

func (r *Repo) Create(ctx context.Context, email, passwordHash string) (Admin, error) {
	a := Admin{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *Repo) UpdatePassword(ctx context.Context, adminID int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", adminID).
		Updates(map[string]any{
			"password":   passwordHash,
			"updated_at": time.Now(),
		}).Error
}

// UpdateResetToken sets or clears (nil, nil) the stored reset token hash.
func (r *Repo) UpdateResetToken(ctx context.Context, adminID int64, tokenHash *string, expiry *time.Time) error {
	return r.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", adminID).
		Updates(map[string]any{
			"reset_token":        tokenHash,
			"reset_token_expiry": expiry,
			"updated_at":         time.Now(),
		}).Error
}
