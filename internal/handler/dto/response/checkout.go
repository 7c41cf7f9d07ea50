package response

type CheckoutResponse struct {
	URL string `json:"url"`
}
