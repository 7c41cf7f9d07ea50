package commands

import (
	"errors"

	"gin-storefront/internal/pkg/errs"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrUserInactive         = errs.New("user inactive")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")

	ErrCartEmpty           = errs.New("cart is empty")
	ErrInvalidCart         = errs.New("cart contains an invalid line")
	ErrInvalidAddress      = errs.New("shipping address is invalid")
	ErrDiscountRejected    = errs.New("discount code rejected")
	ErrNoEligibleLines     = errs.New("no cart line is purchasable through the checkout backend")
	ErrMixedCart           = errs.New("cart mixes lines the checkout backend cannot sell")
	ErrCheckoutRejected    = errs.New("checkout backend rejected the cart")
	ErrCheckoutUnavailable = errs.New("checkout backend unavailable")
	ErrInvalidProfile      = errs.New("profile is invalid")

	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

// RejectionError is a refusal whose Message can be shown to shoppers verbatim.
type RejectionError struct {
	Message string
	Kind    error
}

func (e *RejectionError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

func reject(kind error, message string) error {
	return &RejectionError{Message: message, Kind: kind}
}

// RejectionMessage returns the shopper-facing message carried by err, if any.
func RejectionMessage(err error) (string, bool) {
	var re *RejectionError
	if errors.As(err, &re) {
		return re.Message, true
	}
	return "", false
}
