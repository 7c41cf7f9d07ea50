package commands

//go:generate mockgen -source=discount.go -destination=../../../tests/mock/commands/discount.go -package=commandsmock

import (
	"context"
	"log/slog"

	"gin-storefront/internal/domain/discount"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type DiscountValidation struct {
	Valid    bool
	Discount decimal.Decimal
	Message  string
}

type DiscountCommands interface {
	// Validate never changes usage counters. Rejections are returned as a result, not an error.
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*DiscountValidation, error)
}

type discountCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountCommands(uow shared.UnitOfWork, clk clock.Clock) DiscountCommands {
	return &discountCommandsImpl{uow: uow, clock: clk}
}

func (uc *discountCommandsImpl) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*DiscountValidation, error) {
	_, amount, err := evaluateDiscount(ctx, uc.uow.CommandReads(), uc.clock, code, subtotal)
	if err != nil {
		if msg := discount.UserMessage(err); msg != "" {
			return &DiscountValidation{Valid: false, Message: msg}, nil
		}
		return nil, err
	}
	return &DiscountValidation{Valid: true, Discount: amount}, nil
}

// evaluateDiscount loads code and applies it to subtotal. Domain rejections come back unwrapped
// so discount.UserMessage can map them.
func evaluateDiscount(ctx context.Context, reads shared.CommandReads, clk clock.Clock, code string, subtotal decimal.Decimal) (*discount.DiscountCode, decimal.Decimal, error) {
	normalized, err := discount.NewCode(code)
	if err != nil {
		return nil, decimal.Zero, err
	}

	snap, err := reads.DiscountByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, decimal.Zero, discount.ErrInvalidCode
		}
		return nil, decimal.Zero, errs.Wrap(err, "load discount code")
	}

	dc, err := discount.NewDiscountCode(discount.Params{
		ID:          snap.ID,
		Code:        snap.Code,
		Type:        snap.Type,
		Value:       snap.Value,
		MinPurchase: snap.MinPurchase,
		MaxDiscount: snap.MaxDiscount,
		ValidFrom:   snap.ValidFrom,
		ValidUntil:  snap.ValidUntil,
		UsageLimit:  snap.UsageLimit,
		UsedCount:   snap.UsedCount,
		IsActive:    snap.IsActive,
	})
	if err != nil {
		slog.Warn("stored discount code is malformed", "code", normalized.String(), "error", err.Error())
		return nil, decimal.Zero, discount.ErrInvalidCode
	}

	amount, err := dc.Evaluate(clk.Now(), subtotal)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return dc, amount, nil
}
