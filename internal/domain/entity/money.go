package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

// maxDecimalPlaces is the precision accepted for money amounts
const maxDecimalPlaces = 2

// ParseAmount converts a non-negative decimal string into cents.
// "12" -> 1200, "12.5" -> 1250, "12.50" -> 1250.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, errs.NewValidationError("amount", "is required")
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.NewValidationError("amount", "must not be negative")
	}

	whole, frac, found := strings.Cut(amount, ".")
	if found && strings.Contains(frac, ".") {
		return 0, errs.NewValidationError("amount", "invalid number format")
	}
	if len(frac) > maxDecimalPlaces {
		return 0, errs.NewValidationError("amount", fmt.Sprintf("at most %d decimal places allowed", maxDecimalPlaces))
	}
	if whole == "" {
		whole = "0"
	}
	frac += strings.Repeat("0", maxDecimalPlaces-len(frac))

	for _, part := range []string{whole, frac} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return 0, errs.NewValidationError("amount", "invalid number format")
			}
		}
	}

	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, errs.NewValidationError("amount", err.Error())
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two places
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
