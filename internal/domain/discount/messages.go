package discount

import (
	"errors"
	"fmt"
)

// UserMessage maps an evaluation failure to the text shown to shoppers.
// It returns "" for errors that are not evaluation failures.
func UserMessage(err error) string {
	var minErr *MinimumPurchaseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &minErr):
		return fmt.Sprintf("Minimum purchase of £%s required", minErr.Minimum.String())
	case errors.Is(err, ErrCodeRequired):
		return "Code is required"
	case errors.Is(err, ErrInvalidCode):
		return "Invalid code"
	case errors.Is(err, ErrCodeExpired):
		return "Code expired"
	case errors.Is(err, ErrUsageLimit):
		return "Code usage limit reached"
	default:
		return ""
	}
}

// IsRejection reports whether err is a shopper-facing evaluation failure.
func IsRejection(err error) bool {
	return UserMessage(err) != ""
}
