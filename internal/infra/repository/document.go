package repository

import (
	"context"

	"rental-core/internal/domain/order"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=document.go -destination=../../../tests/mock/repository/document.go -package=repositorymock
type DocumentWriteQueries interface {
	CreatePickupDocument(ctx context.Context, db sqlc.DBTX, arg sqlc.PickupDocuments) error
	GetPickupDocumentByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.PickupDocuments, error)
	UpdatePickupDocument(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePickupDocumentParams) (int64, error)
	CreateReturnDocument(ctx context.Context, db sqlc.DBTX, arg sqlc.ReturnDocuments) error
}

type DocumentRepository struct {
	queries DocumentWriteQueries
	db      sqlc.DBTX
}

func NewDocumentRepository(queries DocumentWriteQueries, db sqlc.DBTX) *DocumentRepository {
	return &DocumentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DocumentRepository) CreatePickup(ctx context.Context, tx sqlc.DBTX, d *order.PickupDocument) error {
	if err := r.queries.CreatePickupDocument(ctx, tx, converter.PickupDocumentToInfra(d)); err != nil {
		return infra.WrapRepoErr("failed to create pickup document", err)
	}
	return nil
}

func (r *DocumentRepository) FindPickupByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*order.PickupDocument, error) {
	row, err := r.queries.GetPickupDocumentByOrder(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pickup document not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pickup document", err)
	}
	return converter.PickupDocumentToDomain(row), nil
}

func (r *DocumentRepository) SavePickup(ctx context.Context, tx sqlc.DBTX, d *order.PickupDocument) error {
	affected, err := r.queries.UpdatePickupDocument(ctx, tx, sqlc.UpdatePickupDocumentParams{
		ID:         d.ID(),
		IsPickedUp: d.IsPickedUp(),
		PickedUpAt: pgconv.TimePtrToPgtype(d.PickedUpAt()),
		PickedUpBy: pgconv.UUIDPtrToPgtype(d.PickedUpBy()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update pickup document", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("pickup document not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DocumentRepository) CreateReturn(ctx context.Context, tx sqlc.DBTX, d *order.ReturnDocument) error {
	if err := r.queries.CreateReturnDocument(ctx, tx, converter.ReturnDocumentToInfra(d)); err != nil {
		return infra.WrapRepoErr("failed to create return document", err)
	}
	return nil
}
