package response

import "gin-storefront/internal/usecase/commands"

type ValidateDiscountResponse struct {
	Valid    bool     `json:"valid"`
	Discount *float64 `json:"discount,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func FromDiscountValidation(v *commands.DiscountValidation) ValidateDiscountResponse {
	if !v.Valid {
		return ValidateDiscountResponse{Valid: false, Error: v.Message}
	}
	amount := money(v.Discount)
	return ValidateDiscountResponse{Valid: true, Discount: &amount}
}
