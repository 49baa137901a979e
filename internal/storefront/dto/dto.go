package dto

import "github.com/fekuna/omnipos-catalog-service/internal/model"

// ProductCard is a listing entry annotated for the current visitor.
type ProductCard struct {
	model.Product
	Rating        float64 `json:"rating"`
	IsInFavorites bool    `json:"is_in_favorites"`
}

type ProductDetails struct {
	model.Product
	Feedbacks     []model.Feedback `json:"feedbacks"`
	IsInFavorites bool             `json:"is_in_favorites"`
}
