package response

import (
	"time"

	"gin-storefront/internal/domain/catalog"
)

type VariantResponse struct {
	ID                string   `json:"id"`
	ShopifyID         string   `json:"shopifyId,omitempty"`
	Title             string   `json:"title"`
	Price             float64  `json:"price"`
	CompareAtPrice    *float64 `json:"compareAtPrice"`
	AvailableForSale  bool     `json:"availableForSale"`
	QuantityAvailable int      `json:"quantityAvailable"`
	SKU               string   `json:"sku,omitempty"`
}

type ProductResponse struct {
	ID             string            `json:"id"`
	ShopifyID      string            `json:"shopifyId,omitempty"`
	Handle         string            `json:"handle,omitempty"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	CompareAtPrice *float64          `json:"compareAtPrice"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Brand          *string           `json:"brand"`
	SKU            string            `json:"sku,omitempty"`
	Inventory      int               `json:"inventory"`
	IsActive       bool              `json:"isActive"`
	Tags           []string          `json:"tags"`
	Variants       []VariantResponse `json:"variants,omitempty"`
	CreatedAt      *time.Time        `json:"createdAt,omitempty"`
}

type ReviewResponse struct {
	ID        string           `json:"id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment"`
	User      ReviewerResponse `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

type ReviewerResponse struct {
	Name string `json:"name"`
}

type ProductDetailResponse struct {
	ProductResponse
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type ProductDetailEnvelope struct {
	Product ProductDetailResponse `json:"product"`
}

func FromProduct(p catalog.Product) ProductResponse {
	res := ProductResponse{
		ID:             p.ID,
		ShopifyID:      p.ShopifyID,
		Handle:         p.Handle,
		Name:           p.Name,
		Description:    p.Description,
		Price:          money(p.Price),
		CompareAtPrice: moneyPtr(p.CompareAtPrice),
		Images:         nonNil(p.Images),
		Category:       p.Category,
		Brand:          p.Brand,
		SKU:            p.SKU,
		Inventory:      p.Inventory,
		IsActive:       p.IsActive,
		Tags:           nonNil(p.Tags),
		CreatedAt:      p.CreatedAt,
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, VariantResponse{
			ID:                v.ID,
			ShopifyID:         v.ShopifyID,
			Title:             v.Title,
			Price:             money(v.Price),
			CompareAtPrice:    moneyPtr(v.CompareAtPrice),
			AvailableForSale:  v.AvailableForSale,
			QuantityAvailable: v.QuantityAvailable,
			SKU:               v.SKU,
		})
	}
	return res
}

func FromProducts(products []catalog.Product) ProductListResponse {
	res := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		res.Products = append(res.Products, FromProduct(p))
	}
	return res
}

func FromProductDetail(d *catalog.ProductDetail) ProductDetailEnvelope {
	reviews := make([]ReviewResponse, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			User:      ReviewerResponse{Name: r.AuthorName},
			CreatedAt: r.CreatedAt,
		})
	}
	return ProductDetailEnvelope{Product: ProductDetailResponse{
		ProductResponse: FromProduct(d.Product),
		Reviews:         reviews,
		AverageRating:   d.AverageRating,
		ReviewCount:     d.ReviewCount,
	}}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
