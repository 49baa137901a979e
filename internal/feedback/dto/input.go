package dto

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// AddFeedbackInput is the body of POST /api/feedbacks.
type AddFeedbackInput struct {
	ProductID int64  `json:"productId"`
	UserID    string `json:"userId"`
	Login     string `json:"login"`
	Text      string `json:"text"`
	Grade     int    `json:"grade"`
}

func (i *AddFeedbackInput) Validate() error {
	i.Text = strings.TrimSpace(i.Text)
	if i.ProductID <= 0 {
		return fmt.Errorf("%w: product id is required", model.ErrValidation)
	}
	if i.Text == "" {
		return fmt.Errorf("%w: feedback text is required", model.ErrValidation)
	}
	if i.Grade < 1 || i.Grade > 5 {
		return fmt.Errorf("%w: grade must be between 1 and 5", model.ErrValidation)
	}
	return nil
}
