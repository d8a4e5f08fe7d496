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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside
// a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestUser inserts an active party and returns its id. An existing
// user with the same email is reused.
func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, name, address, role, is_active)
		VALUES ($1, $2, $3, '12 MG Road, Bengaluru', $4, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}
	return userID
}

type ProductFixture struct {
	VendorID   uuid.UUID
	Name       string
	DailyPrice string
	Deposit    string
	OnHand     int
}

// CreateTestProduct inserts a rentable product priced per day.
func CreateTestProduct(t *testing.T, db DBLike, p ProductFixture) uuid.UUID {
	t.Helper()

	if p.Name == "" {
		p.Name = "Test Product"
	}
	if p.DailyPrice == "" {
		p.DailyPrice = "100"
	}
	if p.Deposit == "" {
		p.Deposit = "0"
	}

	id := uuid.New()
	sku := "SKU-" + strings.ToUpper(id.String()[:8])
	_, err := db.Exec(context.Background(), `
		INSERT INTO products (id, vendor_id, name, sku, price_daily, security_deposit, quantity_on_hand, is_rentable, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, true)`,
		id, p.VendorID, p.Name, sku,
		decimal.RequireFromString(p.DailyPrice), decimal.RequireFromString(p.Deposit), p.OnHand)
	require.NoError(t, err)
	return id
}

// CreateTestCoupon inserts an active percentage coupon.
func CreateTestCoupon(t *testing.T, db DBLike, code string, percent int, usageLimit *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO coupons (id, code, discount_type, discount_value, usage_limit, is_active)
		VALUES ($1, $2, 'percentage', $3, $4, true)`,
		id, code, decimal.NewFromInt(int64(percent)), usageLimit)
	require.NoError(t, err)
	return id
}

// ProductStock reads the on-hand and reserved counters of a product.
func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) (onHand, reserved int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT quantity_on_hand, quantity_reserved FROM products WHERE id = $1", productID).
		Scan(&onHand, &reserved)
	require.NoError(t, err)
	return onHand, reserved
}

// CountRows counts rows of table matching an optional where clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// SeedReferenceData inserts the platform admin every test database starts
// with.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, name, role, is_active)
		VALUES ('admin@rental.test', 'Platform Admin', 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
