package repository

import (
	"context"

	"rental-core/internal/domain/payment"
	"rental-core/internal/infra"
	"rental-core/internal/infra/repository/converter"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment.go -package=repositorymock
type PaymentWriteQueries interface {
	NextPaymentNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.Payments) error
	UpdatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.Payments) (int64, error)
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	GetPaymentByGatewayOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, gatewayOrderID string) (sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) NextNumber(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	seq, err := r.queries.NextPaymentNumber(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate payment number", err)
	}
	return seq, nil
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToInfra(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Save(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	affected, err := r.queries.UpdatePayment(ctx, tx, converter.PaymentToInfra(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, tx, id)
	return toPayment(row, err)
}

func (r *PaymentRepository) FindByGatewayOrderIDForUpdate(ctx context.Context, tx sqlc.DBTX, gatewayOrderID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByGatewayOrderIDForUpdate(ctx, tx, gatewayOrderID)
	return toPayment(row, err)
}

func toPayment(row sqlc.Payments, err error) (*payment.Payment, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err)
	}
	return p, nil
}
