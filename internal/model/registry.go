package model

import "github.com/google/uuid"

type Favorites struct {
	UserID   uuid.UUID `json:"user_id"`
	Products []Product `json:"products"`
}

type ComparisonEntry struct {
	UserID  uuid.UUID `json:"user_id"`
	Product Product   `json:"product"`
	Flavor  Flavor    `json:"flavor"`
}
