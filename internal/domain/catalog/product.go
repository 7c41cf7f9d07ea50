package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

const Uncategorized = "Uncategorized"

// Product is the consumer-facing shape shared by every catalog source.
type Product struct {
	ID             string
	ShopifyID      string
	Handle         string
	Name           string
	Description    string
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	// Images keeps source order; Images[0] is the primary image.
	Images    []string
	Category  string
	Brand     *string
	SKU       string
	Inventory int
	IsActive  bool
	Tags      []string
	Variants  []Variant
	CreatedAt *time.Time
}

type Variant struct {
	ID                string
	ShopifyID         string
	Title             string
	Price             decimal.Decimal
	CompareAtPrice    *decimal.Decimal
	AvailableForSale  bool
	QuantityAvailable int
	SKU               string
}

func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Review is a shopper review shown on product detail.
type Review struct {
	ID         string
	Rating     int
	Comment    string
	AuthorName string
	CreatedAt  time.Time
}

// ProductDetail is a product with its review summary.
type ProductDetail struct {
	Product
	Reviews       []Review
	AverageRating float64
	ReviewCount   int
}

// NewProductDetail computes the average rating rounded to one decimal.
func NewProductDetail(p Product, reviews []Review) ProductDetail {
	if reviews == nil {
		reviews = []Review{}
	}
	return ProductDetail{
		Product:       p,
		Reviews:       reviews,
		AverageRating: AverageRating(reviews),
		ReviewCount:   len(reviews),
	}
}

func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
	return avg.InexactFloat64()
}
