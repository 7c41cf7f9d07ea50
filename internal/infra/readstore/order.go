package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListOrdersByUserRow, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.ListOrderItemsByOrderIDsRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	if len(rows) == 0 {
		return []queries.OrderView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	itemRows, err := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	itemsByOrder := make(map[uuid.UUID][]queries.OrderItemView, len(rows))
	for _, it := range itemRows {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], queries.OrderItemView{
			ProductID: it.ProductID,
			VariantID: pgconv.StringFromPgtype(it.VariantID),
			Name:      it.Name,
			Image:     pgconv.StringFromPgtype(it.Image),
			Quantity:  int(it.Quantity),
			Price:     pgconv.DecimalFromNumeric(it.Price),
		})
	}

	views := make([]queries.OrderView, 0, len(rows))
	for _, row := range rows {
		items := itemsByOrder[row.ID]
		if items == nil {
			items = []queries.OrderItemView{}
		}
		views = append(views, queries.OrderView{
			ID:              row.ID,
			OrderNumber:     row.OrderNumber,
			Subtotal:        pgconv.DecimalFromNumeric(row.Subtotal),
			Shipping:        pgconv.DecimalFromNumeric(row.Shipping),
			Tax:             pgconv.DecimalFromNumeric(row.Tax),
			Discount:        pgconv.DecimalFromNumeric(row.Discount),
			DiscountCode:    pgconv.StringFromPgtype(row.DiscountCode),
			Total:           pgconv.DecimalFromNumeric(row.Total),
			ShippingAddress: decodeAddress(row.ID, row.ShippingAddress),
			PaymentMethod:   row.PaymentMethod,
			PaymentStatus:   row.PaymentStatus,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			Items:           items,
		})
	}
	return views, nil
}

// decodeAddress tolerates rows written by older clients; a bad payload yields an empty address.
func decodeAddress(orderID uuid.UUID, raw []byte) order.ShippingAddress {
	var addr order.ShippingAddress
	if len(raw) == 0 {
		return addr
	}
	if err := json.Unmarshal(raw, &addr); err != nil {
		slog.Warn("order has unreadable shipping address", "order_id", orderID, "error", err.Error())
		return order.ShippingAddress{}
	}
	return addr
}
