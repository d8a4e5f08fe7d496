package repository

import (
	"context"

	"rental-core/internal/infra"
	"rental-core/internal/infra/sqlc"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/repository/coupon.go -package=repositorymock
type CouponWriteQueries interface {
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

// IncrementUsage bumps used_count. The update is guarded by the usage limit,
// so a coupon exhausted by a concurrent checkout reports KindConflict.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.IncrementCouponUsage(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon usage limit reached", nil, infra.KindConflict)
	}
	return nil
}
