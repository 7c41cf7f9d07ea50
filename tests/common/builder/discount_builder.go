//go:build unit || e2e

package builder

import (
	"time"

	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountBuilder defaults to WELCOME10: 10% off with no minimum and no cap.
type DiscountBuilder struct {
	ID          uuid.UUID
	Code        string
	Type        string
	Value       decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	ValidFrom   time.Time
	ValidUntil  time.Time
	UsageLimit  *int32
	UsedCount   int32
	IsActive    bool
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:         uuid.New(),
		Code:       "WELCOME10",
		Type:       "percentage",
		Value:      decimal.NewFromInt(10),
		ValidFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
		IsActive:   true,
	}
}

func (d *DiscountBuilder) WithMinPurchase(amount string) *DiscountBuilder {
	m := decimal.RequireFromString(amount)
	d.MinPurchase = &m
	return d
}

func (d *DiscountBuilder) WithMaxDiscount(amount string) *DiscountBuilder {
	m := decimal.RequireFromString(amount)
	d.MaxDiscount = &m
	return d
}

func (d *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(d)
	return d
}

func (d *DiscountBuilder) AsFixed(amount string) *DiscountBuilder {
	d.Type = "fixed"
	d.Value = decimal.RequireFromString(amount)
	d.MaxDiscount = nil
	return d
}

func (d *DiscountBuilder) WithUsage(limit, used int32) *DiscountBuilder {
	d.UsageLimit = &limit
	d.UsedCount = used
	return d
}

func (d *DiscountBuilder) BuildSnapshot() *shared.DiscountSnapshot {
	return &shared.DiscountSnapshot{
		ID:          d.ID,
		Code:        d.Code,
		Type:        d.Type,
		Value:       d.Value,
		MinPurchase: d.MinPurchase,
		MaxDiscount: d.MaxDiscount,
		ValidFrom:   d.ValidFrom,
		ValidUntil:  d.ValidUntil,
		UsageLimit:  d.UsageLimit,
		UsedCount:   d.UsedCount,
		IsActive:    d.IsActive,
	}
}

func (d *DiscountBuilder) BuildRow() sqlc.GetDiscountCodeByCodeRow {
	return sqlc.GetDiscountCodeByCodeRow{
		ID:          d.ID,
		Code:        d.Code,
		Type:        d.Type,
		Value:       pgconv.NumericFromDecimal(d.Value),
		MinPurchase: pgconv.NumericFromDecimalPtr(d.MinPurchase),
		MaxDiscount: pgconv.NumericFromDecimalPtr(d.MaxDiscount),
		ValidFrom:   pgconv.TimeToPgtype(d.ValidFrom),
		ValidUntil:  pgconv.TimeToPgtype(d.ValidUntil),
		UsageLimit:  pgconv.Int32PtrToPgtype(d.UsageLimit),
		UsedCount:   d.UsedCount,
		IsActive:    d.IsActive,
	}
}
