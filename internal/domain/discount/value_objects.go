package discount

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidType          = errors.New("discount type must be percentage or fixed")
	ErrNegativeValue        = errors.New("discount value cannot be negative")
	ErrPercentageOutOfRange = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidWindow        = errors.New("discount validity window is inverted")
)

var hundred = decimal.NewFromInt(100)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func NewType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypePercentage, TypeFixed:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

// Code is the canonical, upper-cased form used for lookups.
type Code string

func NewCode(raw string) (Code, error) {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if c == "" {
		return "", ErrCodeRequired
	}
	return Code(c), nil
}

func (c Code) String() string { return string(c) }
