package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"gin-storefront/internal/domain/cart"
	"gin-storefront/internal/domain/discount"
	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/domain/pricing"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgCartEmpty       = "Cart is empty"
	msgInvalidCartItem = "Invalid cart item"
	msgInvalidAddress  = "Shipping address is incomplete"
	msgUsageLimit      = "Code usage limit reached"
	msgNoShopifyLines  = "No valid Shopify products in cart. Please ensure products are from Shopify."
	msgMixedCart       = "Some items in your cart are not available from Shopify. Please remove them and try again."

	checkoutEndpoint = "POST /checkout/create"
	idempotencyTTL   = 24 * time.Hour
)

// CheckoutBackend hands a priced cart to a payment or commerce provider.
type CheckoutBackend interface {
	Method() order.PaymentMethod
	CreateSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
}

type CheckoutSessionRequest struct {
	OrderID       uuid.UUID
	OrderNumber   string
	CustomerEmail string
	Lines         []cart.Line
	Breakdown     pricing.Breakdown
	DiscountCode  string
}

type CheckoutSession struct {
	URL string
	// Reference is the provider's id for the session, stored as the order's payment intent.
	Reference string
}

// NewCheckoutRejection is returned by backends when the provider refuses the cart.
func NewCheckoutRejection(message string) error {
	return reject(ErrCheckoutRejected, message)
}

// NewNoEligibleLinesRejection is returned by backends that can sell none of the lines.
func NewNoEligibleLinesRejection() error {
	return reject(ErrNoEligibleLines, msgNoShopifyLines)
}

// NewMixedCartRejection is returned by backends that can sell only some of the lines.
// The order snapshot covers every line, so a partial cart would be charged less than it records.
func NewMixedCartRejection() error {
	return reject(ErrMixedCart, msgMixedCart)
}

type CheckoutItem struct {
	ProductID string
	VariantID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Image     string
}

type CreateCheckoutRequest struct {
	Items           []CheckoutItem
	ShippingAddress order.ShippingAddress
	DiscountCode    string
	// IdempotencyKey is optional; uuid.Nil disables replay protection.
	IdempotencyKey uuid.UUID
}

type CheckoutResult struct {
	URL         string
	OrderID     uuid.UUID
	OrderNumber string
	Breakdown   pricing.Breakdown
	// Replayed is set when the result was stored by an earlier request with the same key.
	Replayed bool
}

type CheckoutCommands interface {
	Create(ctx context.Context, req CreateCheckoutRequest, userID uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow        shared.UnitOfWork
	backend    CheckoutBackend
	calculator pricing.Calculator
	clock      clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, backend CheckoutBackend, calculator pricing.Calculator, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:        uow,
		backend:    backend,
		calculator: calculator,
		clock:      clk,
	}
}

func (uc *checkoutCommandsImpl) Create(ctx context.Context, req CreateCheckoutRequest, userID uuid.UUID) (*CheckoutResult, error) {
	if req.IdempotencyKey == uuid.Nil {
		return uc.create(ctx, req, userID)
	}

	replay, err := uc.claim(ctx, req, userID)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return replay, nil
	}

	result, err := uc.create(ctx, req, userID)
	if err != nil {
		uc.release(ctx, req.IdempotencyKey, userID)
		return nil, err
	}
	return result, nil
}

// claim returns a stored result for a completed key, or nil when this request now owns the key.
func (uc *checkoutCommandsImpl) claim(ctx context.Context, req CreateCheckoutRequest, userID uuid.UUID) (*CheckoutResult, error) {
	hash := requestHash(req)

	var existing *shared.IdempotencyRecord
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Idempotency().Claim(ctx, tx.DB(), req.IdempotencyKey, userID, checkoutEndpoint, hash, uc.clock.Now().Add(idempotencyTTL))
		if err != nil || claimed {
			return err
		}
		existing, err = tx.Idempotency().Get(ctx, tx.DB(), req.IdempotencyKey, userID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released by a failing request between our claim and read
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Mark(errs.Wrap(err, "claim idempotency key"), ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	switch {
	case existing.RequestHash != hash:
		return nil, ErrIdempotencyKeyReused
	case existing.Status != shared.IdempotencyCompleted:
		return nil, ErrIdempotencyInProgress
	}

	res := &CheckoutResult{URL: existing.ResultURL, Replayed: true}
	if existing.OrderID != nil {
		res.OrderID = *existing.OrderID
	}
	return res, nil
}

func (uc *checkoutCommandsImpl) release(ctx context.Context, key, userID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

// requestHash fingerprints the cart so a reused key with a different cart is detected.
func requestHash(req CreateCheckoutRequest) string {
	req.IdempotencyKey = uuid.Nil
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (uc *checkoutCommandsImpl) create(ctx context.Context, req CreateCheckoutRequest, userID uuid.UUID) (*CheckoutResult, error) {
	lines, err := toCartLines(req.Items)
	if err != nil {
		return nil, err
	}

	addr, err := order.NewShippingAddress(req.ShippingAddress)
	if err != nil {
		return nil, errs.Wrap(reject(ErrInvalidAddress, msgInvalidAddress), err.Error())
	}

	reads := uc.uow.CommandReads()
	customer, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "load checkout customer")
	}

	var code *discount.DiscountCode
	amount := decimal.Zero
	if req.DiscountCode != "" {
		code, amount, err = evaluateDiscount(ctx, reads, uc.clock, req.DiscountCode, pricing.Subtotal(lines))
		if err != nil {
			if msg := discount.UserMessage(err); msg != "" {
				return nil, reject(ErrDiscountRejected, msg)
			}
			return nil, err
		}
	}

	breakdown := uc.calculator.CalculateForCheckout(lines, amount)

	codeText := ""
	if code != nil {
		codeText = code.Code().String()
	}
	draft, err := order.NewDraft(userID, order.SnapshotLines(lines), breakdown, codeText, addr, uc.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "draft order")
	}

	session, err := uc.backend.CreateSession(ctx, CheckoutSessionRequest{
		OrderID:       draft.ID,
		OrderNumber:   draft.OrderNumber,
		CustomerEmail: customer.Email,
		Lines:         lines,
		Breakdown:     breakdown,
		DiscountCode:  draft.Code,
	})
	if err != nil {
		if _, ok := RejectionMessage(err); ok {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrCheckoutUnavailable)
	}

	placed, err := draft.Place(uc.backend.Method(), session.Reference)
	if err != nil {
		return nil, errs.Wrap(err, "place order")
	}

	redeem := code != nil && breakdown.Discount.IsPositive()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Orders().Create(ctx, tx.DB(), placed); derr != nil {
			return derr
		}
		if redeem {
			ok, derr := tx.Discounts().Redeem(ctx, tx.DB(), code.ID())
			if derr != nil {
				return derr
			}
			if !ok {
				return reject(ErrDiscountRejected, msgUsageLimit)
			}
		}
		if req.IdempotencyKey != uuid.Nil {
			return tx.Idempotency().Complete(ctx, tx.DB(), req.IdempotencyKey, userID, placed.ID(), session.URL)
		}
		return nil
	})
	if err != nil {
		slog.Warn("checkout session created but order was not recorded",
			"order_number", placed.OrderNumber(),
			"session_ref", session.Reference,
			"error", err.Error())
		return nil, err
	}

	return &CheckoutResult{
		URL:         session.URL,
		OrderID:     placed.ID(),
		OrderNumber: placed.OrderNumber(),
		Breakdown:   breakdown,
	}, nil
}

func toCartLines(items []CheckoutItem) ([]cart.Line, error) {
	if len(items) == 0 {
		return nil, reject(ErrCartEmpty, msgCartEmpty)
	}
	lines := make([]cart.Line, 0, len(items))
	for _, it := range items {
		l, err := cart.NewLine(it.ProductID, it.VariantID, it.Name, it.Price, it.Quantity, it.Image)
		if err != nil {
			return nil, errs.Wrap(reject(ErrInvalidCart, msgInvalidCartItem), err.Error())
		}
		lines = append(lines, l)
	}
	return lines, nil
}
