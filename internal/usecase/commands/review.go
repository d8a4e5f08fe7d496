package commands

import (
	"context"

	domreview "rental-core/internal/domain/review"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=commandsmock
type ReviewCommands interface {
	CreateReview(ctx context.Context, actor shared.Actor, req CreateReviewRequest) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview stores one review per order and product, once the rental has
// come back.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actor shared.Actor, req CreateReviewRequest) (*CreateReviewResult, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}
	rev, err := domreview.NewReview(uuid.New(), actor.ID, req.ProductID, req.OrderID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := findOrder(ctx, tx, req.OrderID, false)
		if err != nil {
			return err
		}
		if err := domreview.CheckEligibility(o, actor.ID, req.ProductID); err != nil {
			return err
		}

		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return domreview.ErrReviewAlreadyExists
			}
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}
