package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/models"
)

// RoundingTolerance is the largest difference accepted when reconciling
// amounts in the currency's unit (one cent).
var RoundingTolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// ShareOf returns percent% of total, rounded to cents.
// Based on the rule: share = round(total × percent / 100, 2)
func ShareOf(total, percent decimal.Decimal) (decimal.Decimal, error) {
	if !total.IsPositive() {
		return decimal.Zero, models.Validationf("total must be positive")
	}
	if !percent.IsPositive() || percent.GreaterThan(hundred) {
		return decimal.Zero, models.Validationf("share percent %s must be in (0, 100]", percent)
	}
	return total.Mul(percent).Div(hundred).Round(2), nil
}

// ValidateShare checks that an explicit split amount fits inside its transaction.
func ValidateShare(total, share decimal.Decimal) error {
	if !share.IsPositive() {
		return models.Validationf("split amount must be positive")
	}
	if share.GreaterThan(total) {
		return models.Validationf("split amount %s exceeds transaction amount %s",
			share.StringFixed(2), total.StringFixed(2))
	}
	return nil
}

// Reconciles reports whether a and b agree within RoundingTolerance.
func Reconciles(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(RoundingTolerance)
}
