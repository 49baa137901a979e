package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

const maxNameLength = 64

type FlavorInput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (i *FlavorInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return fmt.Errorf("%w: flavor name is required", model.ErrValidation)
	}
	if utf8.RuneCountInString(i.Name) > maxNameLength {
		return fmt.Errorf("%w: flavor name is longer than %d characters", model.ErrValidation, maxNameLength)
	}
	return nil
}
