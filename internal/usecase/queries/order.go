package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type OrderQueries interface {
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

// ListUserOrders returns the user's orders newest first, each with its item snapshot.
func (q *orderQueriesImpl) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	orders, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []OrderView{}
	}
	return orders, nil
}
