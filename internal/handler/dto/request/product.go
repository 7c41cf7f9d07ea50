package request

import (
	"errors"
	"strings"

	"gin-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var ErrInvalidPriceFilter = errors.New("invalid price filter")

type ListProductsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	SortBy   string `form:"sortBy"`
	Featured string `form:"featured"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

func (q *ListProductsQuery) ToFilter() (catalog.ListFilter, error) {
	minPrice, err := parsePrice(q.MinPrice)
	if err != nil {
		return catalog.ListFilter{}, err
	}
	maxPrice, err := parsePrice(q.MaxPrice)
	if err != nil {
		return catalog.ListFilter{}, err
	}

	return catalog.ListFilter{
		Category: q.Category,
		Search:   q.Search,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Featured: q.Featured == "true",
		Sort:     catalog.ParseSort(q.SortBy),
		Limit:    q.Limit,
	}.Normalized(), nil
}

func parsePrice(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, ErrInvalidPriceFilter
	}
	return &d, nil
}
