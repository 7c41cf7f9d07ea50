package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/domain/user"
	sqlc "gin-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Discounts() DiscountRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	DiscountByCode(ctx context.Context, code string) (*DiscountSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type OrderRepository interface {
	// Create inserts the order header and its items in position order.
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type DiscountRepository interface {
	// Redeem increments usedCount only while the code is active and below its limit.
	// It reports false when no row qualified.
	Redeem(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpsertDefaultAddress(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, addr user.Address) error
}

type IdempotencyRepository interface {
	// Claim reports true when the key is new for this user or its previous claim has expired.
	Claim(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, orderID uuid.UUID, resultURL string) error
	// Release drops an unfinished claim so the client can retry with the same key.
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
}
