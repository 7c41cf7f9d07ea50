package seed

import (
	"context"
	"log/slog"
	"time"

	"gin-storefront/internal/domain/discount"
	"gin-storefront/internal/domain/user"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/password"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Queries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (uuid.UUID, error)
	CreateDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountCodeParams) (uuid.UUID, error)
}

type Account struct {
	Email    string
	Name     string
	Password string
	Role     user.Role
}

type Product struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Category       string
	SKU            string
	Inventory      int32
	Image          string
}

type Data struct {
	Accounts  []Account
	Products  []Product
	Discounts []string
}

// Result counts rows actually inserted; rows that already existed are skipped.
type Result struct {
	Users     int
	Products  int
	Discounts int
}

type Seeder struct {
	queries Queries
	db      sqlc.DBTX
	now     func() time.Time
}

func NewSeeder(queries Queries, db sqlc.DBTX) *Seeder {
	return &Seeder{queries: queries, db: db, now: time.Now}
}

func (s *Seeder) Run(ctx context.Context, data Data) (Result, error) {
	var res Result

	for _, a := range data.Accounts {
		hash, err := password.HashPasswordWithCost(a.Password, password.SeedCost)
		if err != nil {
			return res, errs.Wrapf(err, "hash password for %s", a.Email)
		}
		inserted, err := created(s.queries.CreateUser(ctx, s.db, sqlc.CreateUserParams{
			Lower:        a.Email,
			PasswordHash: hash,
			Role:         string(a.Role),
			Name:         pgconv.EmptyStringToPgtype(a.Name),
			IsActive:     true,
		}))
		if err != nil {
			return res, errs.Wrapf(err, "seed user %s", a.Email)
		}
		if inserted {
			res.Users++
		}
	}

	for _, p := range data.Products {
		images := []string{}
		if p.Image != "" {
			images = append(images, p.Image)
		}
		inserted, err := created(s.queries.CreateProduct(ctx, s.db, sqlc.CreateProductParams{
			Name:           p.Name,
			Description:    p.Description,
			Price:          pgconv.NumericFromDecimal(p.Price),
			CompareAtPrice: pgconv.NumericFromDecimalPtr(p.CompareAtPrice),
			Images:         images,
			Category:       p.Category,
			Sku:            pgconv.StringPtrToPgtype(ptr.NonEmpty(p.SKU)),
			Inventory:      p.Inventory,
			IsActive:       true,
			Tags:           []string{},
		}))
		if err != nil {
			return res, errs.Wrapf(err, "seed product %s", p.SKU)
		}
		if inserted {
			res.Products++
		}
	}

	now := s.now()
	for _, code := range data.Discounts {
		c, err := discount.NewCode(code)
		if err != nil {
			return res, errs.Wrapf(err, "seed discount %q", code)
		}
		inserted, err := created(s.queries.CreateDiscountCode(ctx, s.db, sqlc.CreateDiscountCodeParams{
			Upper:       c.String(),
			Type:        string(discount.TypePercentage),
			Value:       pgconv.NumericFromDecimal(decimal.NewFromInt(10)),
			MinPurchase: pgconv.NumericFromDecimal(decimal.Zero),
			ValidFrom:   pgconv.TimeToPgtype(now),
			ValidUntil:  pgconv.TimeToPgtype(now.AddDate(1, 0, 0)),
			IsActive:    true,
		}))
		if err != nil {
			return res, errs.Wrapf(err, "seed discount %s", c)
		}
		if inserted {
			res.Discounts++
		}
	}

	slog.Info("seed complete", "users", res.Users, "products", res.Products, "discounts", res.Discounts)
	return res, nil
}

// created reports whether an ON CONFLICT DO NOTHING insert returned a row.
func created(_ uuid.UUID, err error) (bool, error) {
	if pgconv.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func gbp(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default mirrors the demo store: an admin, a customer, six products and the welcome code.
func Default(adminPassword, customerPassword string) Data {
	return Data{
		Accounts: []Account{
			{Email: "admin@globalcity.com", Name: "Admin User", Password: adminPassword, Role: user.RoleAdmin},
			{Email: "customer@globalcity.com", Name: "Test Customer", Password: customerPassword, Role: user.RoleCustomer},
		},
		Products: []Product{
			{Name: "Classic Leather Bag", Description: "Premium leather bag perfect for everyday use. Durable and stylish design.", Price: gbp("89.99"), CompareAtPrice: ptr.Of(gbp("129.99")), Category: "Bags", SKU: "BAG-001", Inventory: 50, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800"},
			{Name: "Cotton Hoodie", Description: "Comfortable cotton hoodie with modern fit. Perfect for casual wear.", Price: gbp("49.99"), CompareAtPrice: ptr.Of(gbp("69.99")), Category: "Hoodies", SKU: "HOO-001", Inventory: 100, Image: "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800"},
			{Name: "Premium T-Shirt", Description: "High-quality cotton t-shirt with classic design. Available in multiple colors.", Price: gbp("24.99"), CompareAtPrice: ptr.Of(gbp("34.99")), Category: "T-Shirts", SKU: "TSH-001", Inventory: 150, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800"},
			{Name: "Slim Fit Trousers", Description: "Modern slim-fit trousers perfect for office or casual wear.", Price: gbp("59.99"), CompareAtPrice: ptr.Of(gbp("79.99")), Category: "Trousers", SKU: "TRO-001", Inventory: 75, Image: "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800"},
			{Name: "Winter Jacket", Description: "Warm and stylish winter jacket with water-resistant material.", Price: gbp("129.99"), CompareAtPrice: ptr.Of(gbp("179.99")), Category: "Jackets", SKU: "JAC-001", Inventory: 40, Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800"},
			{Name: "Athletic Sneakers", Description: "Comfortable athletic sneakers perfect for sports and daily activities.", Price: gbp("79.99"), CompareAtPrice: ptr.Of(gbp("99.99")), Category: "Sneakers", SKU: "SNE-001", Inventory: 60, Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800"},
		},
		Discounts: []string{"WELCOME10"},
	}
}
