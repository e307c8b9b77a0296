package company

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("company not found")

// Company is the shop's own identity card, shown on the public site.
// There is a single row; GET returns the first one.
type Company struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     *string   `gorm:"size:512" json:"address,omitempty"`
	Phone       *string   `gorm:"size:32" json:"phone,omitempty"`
	Email       *string   `gorm:"size:255" json:"email,omitempty"`
	Website     *string   `gorm:"size:255" json:"website,omitempty"`
	Siret       *string   `gorm:"size:32" json:"siret,omitempty"`
	TVANumber   *string   `gorm:"column:tva_number;size:32" json:"tva_number,omitempty"`
	LogoURL     *string   `gorm:"column:logo_url;size:512" json:"logo_url,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Company) TableName() string { return "company" }

type UpdateInput struct {
	Name        *string
	Description *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	Siret       *string
	TVANumber   *string
	LogoURL     *string
}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Get(ctx context.Context) (Company, error) {
	var c Company
	err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Company{}, ErrNotFound
	}
	return c, err
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (Company, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Website != nil {
		updates["website"] = *in.Website
	}
	if in.Siret != nil {
		updates["siret"] = *in.Siret
	}
	if in.TVANumber != nil {
		updates["tva_number"] = *in.TVANumber
	}
	if in.LogoURL != nil {
		updates["logo_url"] = *in.LogoURL
	}

	res := r.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return Company{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Company{}, ErrNotFound
	}

	var c Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return Company{}, err
	}
	return c, nil
}
