package readstore

import (
	"context"
	"strings"

	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/readstore/coupon.go -package=readstoremock
type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
}

func NewCouponReadStore(queries CouponReadQueries) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
	}
}

// FindByCode looks the code up case-insensitively; codes are stored upper case.
func (r *CouponReadStore) FindByCode(ctx context.Context, db sqlc.DBTX, code string) (*shared.CouponSnapshot, error) {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))
	row, err := r.queries.GetCouponByCode(ctx, db, normalizedCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	snapshot, err := toCouponSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode coupon row", err)
	}
	return snapshot, nil
}

func toCouponSnapshotFromRow(row sqlc.Coupons) (*shared.CouponSnapshot, error) {
	var n converter.Numerics
	snapshot := &shared.CouponSnapshot{
		ID:            row.ID,
		Code:          row.Code,
		DiscountType:  row.DiscountType,
		DiscountValue: n.Dec(row.DiscountValue),
		MaxDiscount:   n.Ptr(row.MaxDiscount),
		MinOrderValue: n.Ptr(row.MinOrderValue),
		ValidFrom:     pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:       pgconv.TimePtrFromPgtype(row.ValidTo),
		UsedCount:     int(row.UsedCount),
		IsActive:      row.IsActive,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if n.Err != nil {
		return nil, n.Err
	}
	if limit := pgconv.Int32PtrFromPgtype(row.UsageLimit); limit != nil {
		l := int(*limit)
		snapshot.UsageLimit = &l
	}
	return snapshot, nil
}
