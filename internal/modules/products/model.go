package products

import "time"

// Product is a catalog item. Prices are stored before tax (HT) with a TVA
// percentage; availability is a plain boolean, there is no stock count.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	PriceHT     float64   `gorm:"column:price_ht;not null" json:"price_ht"`
	TVA         float64   `gorm:"column:tva;not null" json:"tva"`
	IsAvailable bool      `gorm:"column:is_available;not null;default:true" json:"is_available"`
	ImageURL    *string   `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	CategoryID  int64     `gorm:"column:category_id;not null;index:ix_products_category_id" json:"category_id"`
	IsFresh     bool      `gorm:"column:is_fresh;not null;default:false" json:"is_fresh"`
	IsFeatured  bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Resolved via the category join on reads; never written.
	CategoryName string `gorm:"column:category_name;->" json:"category_name,omitempty"`
}

func (Product) TableName() string { return "products" }

// CreateInput carries the validated fields for a new product.
type CreateInput struct {
	Name        string
	Description string
	PriceHT     float64
	TVA         float64
	IsAvailable bool
	ImageURL    *string
	CategoryID  int64
	IsFresh     bool
	IsFeatured  bool
}

// UpdateInput is a partial update: nil pointers leave the column untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	PriceHT     *float64
	TVA         *float64
	IsAvailable *bool
	ImageURL    *string
	CategoryID  *int64
	IsFresh     *bool
	IsFeatured  *bool
}
