package shopify

import (
	"strings"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

const (
	productGIDPrefix = "gid://shopify/Product/"
	variantGIDPrefix = "gid://shopify/ProductVariant/"
)

// LegacyID returns the last path segment of a global id.
func LegacyID(gid string) string {
	if i := strings.LastIndex(gid, "/"); i >= 0 {
		return gid[i+1:]
	}
	return gid
}

// VariantGID accepts either a numeric variant id or a full global id.
func VariantGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return variantGIDPrefix + id
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// toProduct maps a Storefront product onto the shape the local catalog serves.
func toProduct(n productNode) catalog.Product {
	variants := make([]catalog.Variant, 0, len(n.Variants.Edges))
	inventory := 0
	for _, e := range n.Variants.Edges {
		v := e.Node
		qty := patch.Coalesce(v.QuantityAvailable, 0)
		inventory += qty
		variants = append(variants, catalog.Variant{
			ID:                LegacyID(v.ID),
			ShopifyID:         v.ID,
			Title:             v.Title,
			Price:             amountOrZero(v.Price),
			CompareAtPrice:    amountPtr(v.CompareAtPrice),
			AvailableForSale:  v.AvailableForSale,
			QuantityAvailable: qty,
			SKU:               v.SKU,
		})
	}

	images := make([]string, 0, len(n.Images.Edges))
	for _, e := range n.Images.Edges {
		if e.Node.URL != "" {
			images = append(images, e.Node.URL)
		}
	}

	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	p := catalog.Product{
		ID:          LegacyID(n.ID),
		ShopifyID:   n.ID,
		Handle:      n.Handle,
		Name:        n.Title,
		Description: n.Description,
		Images:      images,
		Category:    category(n),
		Inventory:   inventory,
		IsActive:    true,
		Tags:        tags,
		Variants:    variants,
		CreatedAt:   n.CreatedAt,
	}

	if vendor := strings.TrimSpace(n.Vendor); vendor != "" {
		p.Brand = &vendor
	}

	var first *variantNode
	if len(n.Variants.Edges) > 0 {
		first = &n.Variants.Edges[0].Node
		p.SKU = first.SKU
	}

	switch {
	case first != nil && first.Price != nil:
		p.Price = first.Price.Amount
	case n.PriceRange != nil:
		p.Price = amountOrZero(n.PriceRange.MinVariantPrice)
	}

	switch {
	case first != nil && first.CompareAtPrice != nil:
		p.CompareAtPrice = amountPtr(first.CompareAtPrice)
	case n.CompareAtPriceRange != nil:
		p.CompareAtPrice = amountPtr(n.CompareAtPriceRange.MinVariantPrice)
	}
	return p
}

func category(n productNode) string {
	if t := strings.TrimSpace(n.ProductType); t != "" {
		return t
	}
	if len(n.Tags) > 0 && n.Tags[0] != "" {
		return n.Tags[0]
	}
	return catalog.Uncategorized
}

func amountOrZero(m *money) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return m.Amount
}

func amountPtr(m *money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	a := m.Amount
	return &a
}
