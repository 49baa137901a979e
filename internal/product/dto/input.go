package dto

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
)

type PictureInput struct {
	Path          string `json:"path"`
	NutritionPath string `json:"nutrition_path"`
}

// ProductInput carries a full product for create and edit. On edit, Version
// must hold the concurrency token the caller read.
type ProductInput struct {
	ID                  int64               `json:"id"`
	Version             int64               `json:"version"`
	Category            model.Category      `json:"category"`
	Brand               model.Brand         `json:"brand"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	Cost                decimal.Decimal     `json:"cost"`
	DiscountCost        decimal.NullDecimal `json:"discount_cost"`
	DiscountDescription string              `json:"discount_description"`
	AmountInStock       int                 `json:"amount_in_stock"`
	FlavorIDs           []int64             `json:"flavor_ids"`
	Pictures            []PictureInput      `json:"pictures"`
}

func (in *ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %d", model.ErrValidation, in.Category)
	}
	if !in.Brand.Valid() {
		return fmt.Errorf("%w: unknown brand %d", model.ErrValidation, in.Brand)
	}
	if in.Cost.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative", model.ErrValidation)
	}
	if in.AmountInStock < 0 {
		return fmt.Errorf("%w: amount in stock must not be negative", model.ErrValidation)
	}
	for _, p := range in.Pictures {
		if strings.TrimSpace(p.Path) == "" {
			return fmt.Errorf("%w: picture path is required", model.ErrValidation)
		}
	}
	return nil
}
