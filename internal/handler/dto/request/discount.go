package request

import "github.com/shopspring/decimal"

// ValidateDiscountRequest leaves code optional so a blank code gets the validator's own message.
type ValidateDiscountRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
