package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const couponColumns = `id, code, discount_type, discount_value, max_discount, min_order_value, valid_from, valid_to,
    usage_limit, used_count, is_active, created_at, updated_at`

func scanCoupon(row scanner) (Coupons, error) {
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MaxDiscount,
		&i.MinOrderValue,
		&i.ValidFrom,
		&i.ValidTo,
		&i.UsageLimit,
		&i.UsedCount,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCouponByCode = `-- name: GetCouponByCode :one
SELECT ` + couponColumns + ` FROM coupons WHERE code = $1
`

func (q *Queries) GetCouponByCode(ctx context.Context, db DBTX, code string) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByCode, code))
}

const incrementCouponUsage = `-- name: IncrementCouponUsage :execrows
UPDATE coupons
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1 AND is_active AND (usage_limit IS NULL OR used_count < usage_limit)
`

// Zero rows affected means the usage limit was reached concurrently.
func (q *Queries) IncrementCouponUsage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, incrementCouponUsage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
