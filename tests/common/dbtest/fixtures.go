//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, name, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role, "Test User")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

type ProductFixture struct {
	Name      string
	Price     string
	Category  string
	Tags      []string
	Inventory int
	Active    bool
	CreatedAt time.Time
}

func CreateTestProduct(t *testing.T, db DBLike, p ProductFixture) uuid.UUID {
	t.Helper()

	if p.Category == "" {
		p.Category = "general"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (name, description, price, images, category, inventory, is_active, tags, created_at)
		VALUES ($1, '', $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.Name, decimal.RequireFromString(p.Price), []string{"https://cdn.example.com/" + strings.ReplaceAll(strings.ToLower(p.Name), " ", "-") + ".jpg"},
		p.Category, p.Inventory, p.Active, p.Tags, p.CreatedAt).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestReview(t *testing.T, db DBLike, productID, userID uuid.UUID, rating int, comment string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO reviews (product_id, user_id, rating, comment) VALUES ($1, $2, $3, $4)",
		productID, userID, rating, comment)
	require.NoError(t, err)
}

// CreateTestDiscount inserts a percentage code valid from yesterday for a year.
func CreateTestDiscount(t *testing.T, db DBLike, code string, percent int, usageLimit *int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	now := time.Now()
	err := db.QueryRow(context.Background(), `
		INSERT INTO discount_codes (code, type, value, valid_from, valid_until, usage_limit)
		VALUES ($1, 'percentage', $2, $3, $4, $5)
		RETURNING id`,
		code, percent, now.Add(-24*time.Hour), now.Add(365*24*time.Hour), usageLimit).Scan(&id)
	require.NoError(t, err)

	return id
}

func DiscountUsedCount(t *testing.T, db DBLike, code string) int32 {
	t.Helper()

	var used int32
	err := db.QueryRow(context.Background(), "SELECT used_count FROM discount_codes WHERE code = $1", code).Scan(&used)
	require.NoError(t, err)
	return used
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO discount_codes (code, type, value, min_purchase, valid_from, valid_until, is_active)
		VALUES ('WELCOME10', 'percentage', 10, 0, NOW() - INTERVAL '1 day', NOW() + INTERVAL '365 days', true)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
