package model

import "github.com/shopspring/decimal"

type Product struct {
	ID                  int64               `db:"id" json:"id"`
	Category            Category            `db:"category" json:"category"`
	Brand               Brand               `db:"brand" json:"brand"`
	Name                string              `db:"name" json:"name"`
	Description         string              `db:"description" json:"description"`
	Cost                decimal.Decimal     `db:"cost" json:"cost"`
	DiscountCost        decimal.NullDecimal `db:"discount_cost" json:"discount_cost"` // Derived from the governing discount
	DiscountDescription string              `db:"discount_description" json:"discount_description"`
	DiscountID          *int64              `db:"discount_id" json:"discount_id"`
	AmountInStock       int                 `db:"amount_in_stock" json:"amount_in_stock"`
	Version             int64               `db:"version" json:"version"` // Concurrency token
	Flavors             []*Flavor           `db:"-" json:"flavors"`
	Pictures            []Picture           `db:"-" json:"pictures"`
}

type Flavor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Picture struct {
	ID            int64   `db:"id" json:"id"`
	ProductID     int64   `db:"product_id" json:"product_id"`
	Path          string  `db:"path" json:"path"`
	NutritionPath *string `db:"nutrition_path" json:"nutrition_path"`
}

type BasketItem struct {
	ProductID int64 `json:"product_id"`
	Amount    int   `json:"amount"`
}

// HasFlavor reports whether flavorID is one of the product's flavors.
func (p *Product) HasFlavor(flavorID int64) bool {
	for _, f := range p.Flavors {
		if f != nil && f.ID == flavorID {
			return true
		}
	}
	return false
}
