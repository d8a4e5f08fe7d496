package repository

import (
	"context"
	"time"

	"rental-core/internal/domain/product"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/repository/product.go -package=repositorymock
type ProductWriteQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	LockProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	ListVariantsByProductIDs(ctx context.Context, db sqlc.DBTX, productIDs []uuid.UUID) ([]sqlc.ProductVariants, error)
	UpdateProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductStockParams) (int64, error)
	UpdateVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVariantStockParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	variants, err := r.queries.ListVariantsByProductIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}
	p, err := converter.ProductToDomain(row, variants)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return p, nil
}

// LockForUpdate takes row locks in id order so concurrent checkouts touching
// the same products cannot deadlock.
func (r *ProductRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error) {
	out := make(map[uuid.UUID]*product.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.queries.LockProductsByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	variantRows, err := r.queries.ListVariantsByProductIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}

	byProduct := make(map[uuid.UUID][]sqlc.ProductVariants, len(rows))
	for _, v := range variantRows {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for _, row := range rows {
		p, err := converter.ProductToDomain(row, byProduct[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert product row", err)
		}
		out[row.ID] = p
	}
	return out, nil
}

// SaveStock writes the on-hand and reserved counters of the product and every
// variant. Other product columns are owned by the catalogue.
func (r *ProductRepository) SaveStock(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	updatedAt := pgconv.TimeToPgtype(time.Now())
	affected, err := r.queries.UpdateProductStock(ctx, tx, sqlc.UpdateProductStockParams{
		ID:               p.ID(),
		QuantityOnHand:   pgconv.IntToInt32(p.Stock().OnHand()),
		QuantityReserved: pgconv.IntToInt32(p.Stock().Reserved()),
		UpdatedAt:        updatedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}

	for _, v := range p.Variants() {
		_, err := r.queries.UpdateVariantStock(ctx, tx, sqlc.UpdateVariantStockParams{
			ID:               v.ID(),
			QuantityOnHand:   pgconv.IntToInt32(v.Stock().OnHand()),
			QuantityReserved: pgconv.IntToInt32(v.Stock().Reserved()),
			UpdatedAt:        updatedAt,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to update variant stock", err)
		}
	}
	return nil
}
