package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Relation fields serialize as null when the relation was not loaded
// (or, for Category on a product, when category_id dangles) and as an
// empty collection when it was loaded and is empty.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category_id"`
	Category    *Category       `json:"category"`
}

// ProductPage is one page of a product listing plus the metadata a
// client needs to compute the total number of pages.
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}

// CategoryUpdate carries the fields of a partial category update.
// A nil field means "leave unchanged".
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// ProductUpdate carries the fields of a partial product update.
// A nil field means "leave unchanged".
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *int
}

// IsEmpty reports whether the update would change nothing.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.CategoryID == nil
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
