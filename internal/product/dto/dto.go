package dto

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type ListFilter struct {
	All        bool
	Category   model.Category
	HandoffIDs []int64 // Results handed over from an earlier request; returned as-is when set
}
