package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command read operations

type DiscountSnapshot struct {
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

type UserSnapshot struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Role           string
	Name           string
	Nickname       string
	Phone          string
	Location       string
	Preferences    string
	FavoriteStyles string
	IsActive       bool
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	Status      IdempotencyStatus
	OrderID     *uuid.UUID
	ResultURL   string
	ExpiresAt   time.Time
}
