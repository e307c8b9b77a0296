package products

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("product not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

const withCategory = "products.*, categories.name AS category_name"

func (r *Repo) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Product{}).
		Select(withCategory).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.base(ctx).Order("products.created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.base(ctx).Where("products.id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) ListFeatured(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.base(ctx).
		Where("products.is_featured = ? AND products.is_available = ?", true, true).
		Order("products.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) ListAvailable(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.base(ctx).
		Where("products.is_available = ?", true).
		Order("products.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) ListByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	var items []Product
	err := r.base(ctx).
		Where("products.category_id = ?", categoryID).
		Order("products.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Product, error) {
	p := Product{
		Name:        in.Name,
		Description: in.Description,
		PriceHT:     in.PriceHT,
		TVA:         in.TVA,
		IsAvailable: in.IsAvailable,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsFresh:     in.IsFresh,
		IsFeatured:  in.IsFeatured,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return r.Get(ctx, p.ID)
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (Product, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PriceHT != nil {
		updates["price_ht"] = *in.PriceHT
	}
	if in.TVA != nil {
		updates["tva"] = *in.TVA
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.IsFresh != nil {
		updates["is_fresh"] = *in.IsFresh
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}

	res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Product{}, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAvailability backs the out-of-stock / back-in-stock admin shortcuts.
func (r *Repo) SetAvailability(ctx context.Context, id int64, available bool) (Product, error) {
	v := available
	return r.Update(ctx, id, UpdateInput{IsAvailable: &v})
}
