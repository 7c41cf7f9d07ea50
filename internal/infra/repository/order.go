package repository

import (
	"context"
	"encoding/json"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	address, err := json.Marshal(o.ShippingAddress())
	if err != nil {
		return infra.WrapRepoErr("failed to encode shipping address", err)
	}

	err = r.queries.CreateOrder(ctx, tx, sqlc.CreateOrderParams{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          o.UserID(),
		Subtotal:        pgconv.NumericFromDecimal(o.Subtotal()),
		Shipping:        pgconv.NumericFromDecimal(o.Shipping()),
		Tax:             pgconv.NumericFromDecimal(o.Tax()),
		Discount:        pgconv.NumericFromDecimal(o.Discount()),
		DiscountCode:    pgconv.EmptyStringToPgtype(o.DiscountCode()),
		Total:           pgconv.NumericFromDecimal(o.Total()),
		ShippingAddress: address,
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Status:          o.Status().String(),
		PaymentIntentID: o.PaymentIntentID(),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for i, item := range o.Items() {
		err = r.queries.CreateOrderItem(ctx, tx, sqlc.CreateOrderItemParams{
			OrderID:   o.ID(),
			Position:  int32(i), // #nosec G115 -- cart size is small
			ProductID: item.ProductID,
			VariantID: pgconv.EmptyStringToPgtype(item.VariantID),
			Name:      item.Name,
			Image:     pgconv.EmptyStringToPgtype(item.Image),
			Quantity:  int32(item.Quantity), // #nosec G115 -- validated positive and small
			Price:     pgconv.NumericFromDecimal(item.UnitPrice),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}
