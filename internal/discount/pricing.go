package discount

import (
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountedCost returns cost reduced by percent, rounded up to whole cents.
// A zero percent still rounds cost up to cents.
func DiscountedCost(cost decimal.Decimal, percent int) (decimal.Decimal, error) {
	if percent < 0 || percent > 100 {
		return decimal.Zero, fmt.Errorf("%w: discount percent %d out of range", model.ErrValidation, percent)
	}

	cents := cost.Mul(hundred).Mul(decimal.NewFromInt(int64(100 - percent))).Div(hundred)
	return cents.Ceil().Div(hundred), nil
}
