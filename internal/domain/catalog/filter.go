package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultLimit = 100
	MaxLimit     = 250
)

type SortBy string

const (
	SortNewest    SortBy = "newest"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortName      SortBy = "name"
)

// ParseSort falls back to newest for unknown values.
func ParseSort(s string) SortBy {
	switch SortBy(strings.TrimSpace(s)) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortName:
		return SortName
	default:
		return SortNewest
	}
}

type ListFilter struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Featured bool
	Sort     SortBy
	Limit    int
}

// Normalized trims text fields, applies the default sort and bounds the limit to [1, MaxLimit].
func (f ListFilter) Normalized() ListFilter {
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)
	if f.Sort == "" {
		f.Sort = SortNewest
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func (f ListFilter) HasPriceRange() bool {
	return f.MinPrice != nil || f.MaxPrice != nil
}

// MatchesPrice applies an inclusive [MinPrice, MaxPrice] range.
func (f ListFilter) MatchesPrice(p Product) bool {
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func FilterByPrice(products []Product, f ListFilter) []Product {
	if !f.HasPriceRange() {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.MatchesPrice(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts sorts in place. Ties keep input order; newest keeps the input order entirely.
func SortProducts(products []Product, by SortBy) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortName:
		col := collate.New(language.BritishEnglish, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
