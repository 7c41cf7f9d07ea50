package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gin-storefront/internal/domain/cart"
	"gin-storefront/internal/domain/user"

	"github.com/shopspring/decimal"
)

var ErrIncompleteAddress = errors.New("shipping address is incomplete")

const orderNumberPrefix = "GC-"

// NewOrderNumber derives the human-facing number from the creation instant.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s%d", orderNumberPrefix, now.UnixMilli())
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

// NewShippingAddress trims every field, requires name, first line, city and postcode,
// and defaults the country.
func NewShippingAddress(a ShippingAddress) (ShippingAddress, error) {
	a.FullName = strings.TrimSpace(a.FullName)
	a.Phone = strings.TrimSpace(a.Phone)
	a.AddressLine1 = strings.TrimSpace(a.AddressLine1)
	a.AddressLine2 = strings.TrimSpace(a.AddressLine2)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.ZipCode = strings.TrimSpace(a.ZipCode)
	a.Country = strings.TrimSpace(a.Country)

	var missing []string
	if a.FullName == "" {
		missing = append(missing, "fullName")
	}
	if a.AddressLine1 == "" {
		missing = append(missing, "addressLine1")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.ZipCode == "" {
		missing = append(missing, "zipCode")
	}
	if len(missing) > 0 {
		return ShippingAddress{}, fmt.Errorf("%w: missing %s", ErrIncompleteAddress, strings.Join(missing, ", "))
	}
	if a.Country == "" {
		a.Country = user.DefaultCountry
	}
	return a, nil
}

// LineItem is the immutable snapshot of a cart line taken at checkout.
type LineItem struct {
	ProductID string
	VariantID string
	Name      string
	Image     string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func SnapshotLines(lines []cart.Line) []LineItem {
	items := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, LineItem{
			ProductID: l.ProductID(),
			VariantID: l.VariantID(),
			Name:      l.Name(),
			Image:     l.Image(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
		})
	}
	return items
}
