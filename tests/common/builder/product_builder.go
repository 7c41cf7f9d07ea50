//go:build unit || e2e

package builder

import (
	"time"

	"gin-storefront/internal/domain/catalog"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Images         []string
	Category       string
	Brand          string
	SKU            string
	Inventory      int
	Tags           []string
	IsActive       bool
	CreatedAt      time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Linen Shirt",
		Description: "Breathable summer shirt",
		Price:       decimal.RequireFromString("29.99"),
		Images:      []string{"https://cdn.example.com/linen-shirt.jpg"},
		Category:    "clothing",
		Brand:       "Atelier",
		SKU:         "LS-001",
		Inventory:   12,
		Tags:        []string{"summer"},
		IsActive:    true,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) WithCompareAt(price string) *ProductBuilder {
	d := decimal.RequireFromString(price)
	p.CompareAtPrice = &d
	return p
}

func (p *ProductBuilder) BuildDomain() catalog.Product {
	var brand *string
	if p.Brand != "" {
		b := p.Brand
		brand = &b
	}
	createdAt := p.CreatedAt
	return catalog.Product{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Images:         p.Images,
		Category:       p.Category,
		Brand:          brand,
		SKU:            p.SKU,
		Inventory:      p.Inventory,
		IsActive:       p.IsActive,
		Tags:           p.Tags,
		CreatedAt:      &createdAt,
	}
}

func (p *ProductBuilder) BuildDetail(reviews ...catalog.Review) *catalog.ProductDetail {
	detail := catalog.NewProductDetail(p.BuildDomain(), reviews)
	return &detail
}

func (p *ProductBuilder) BuildListRow() sqlc.ListActiveProductsRow {
	return sqlc.ListActiveProductsRow{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          pgconv.NumericFromDecimal(p.Price),
		CompareAtPrice: pgconv.NumericFromDecimalPtr(p.CompareAtPrice),
		Images:         p.Images,
		Category:       p.Category,
		Brand:          text(p.Brand),
		Sku:            text(p.SKU),
		Inventory:      int32(p.Inventory), // #nosec G115 -- test data
		IsActive:       p.IsActive,
		Tags:           p.Tags,
		CreatedAt:      pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *ProductBuilder) BuildGetRow() sqlc.GetProductByIDRow {
	return sqlc.GetProductByIDRow(p.BuildListRow())
}
