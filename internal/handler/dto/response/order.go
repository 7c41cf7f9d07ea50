package response

import (
	"time"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderProductResponse struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

type OrderItemResponse struct {
	ProductID string               `json:"productId"`
	VariantID string               `json:"variantId,omitempty"`
	Quantity  int                  `json:"quantity"`
	Price     float64              `json:"price"`
	Product   OrderProductResponse `json:"product"`
}

type OrderResponse struct {
	ID              string                `json:"id"`
	OrderNumber     string                `json:"orderNumber"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"paymentStatus"`
	PaymentMethod   string                `json:"paymentMethod"`
	Subtotal        float64               `json:"subtotal"`
	Shipping        float64               `json:"shipping"`
	Tax             float64               `json:"tax"`
	Discount        float64               `json:"discount"`
	DiscountCode    string                `json:"discountCode,omitempty"`
	Total           float64               `json:"total"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time             `json:"createdAt"`
	Items           []OrderItemResponse   `json:"items" copier:"-"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func FromOrderViews(views []queries.OrderView) (OrderListResponse, error) {
	res := OrderListResponse{Orders: make([]OrderResponse, 0, len(views))}
	for i := range views {
		var o OrderResponse
		if err := copier.CopyWithOption(&o, &views[i], copyOption); err != nil {
			return OrderListResponse{}, err
		}
		o.Items = make([]OrderItemResponse, 0, len(views[i].Items))
		for _, it := range views[i].Items {
			images := []string{}
			if it.Image != "" {
				images = append(images, it.Image)
			}
			o.Items = append(o.Items, OrderItemResponse{
				ProductID: it.ProductID,
				VariantID: it.VariantID,
				Quantity:  it.Quantity,
				Price:     money(it.Price),
				Product:   OrderProductResponse{Name: it.Name, Images: images},
			})
		}
		res.Orders = append(res.Orders, o)
	}
	return res, nil
}
