package dto

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type DiscountInput struct {
	Percent     int
	Description string
}

func (i *DiscountInput) Validate() error {
	if i.Percent < 0 || i.Percent > 100 {
		return fmt.Errorf("%w: percent must be between 0 and 100", model.ErrValidation)
	}
	i.Description = strings.TrimSpace(i.Description)
	return nil
}
