package review

import (
	"time"

	"rental-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotEligible    = errs.InvalidState("order is not eligible for review")
	ErrProductNotInOrder   = errs.Validation("product was not rented in this order")
	ErrNotOrderOwner       = errs.Forbidden("order belongs to another customer")
	ErrReviewAlreadyExists = errs.Conflict("review already exists for this order and product")
)

type Review struct {
	id         uuid.UUID
	customerID uuid.UUID
	productID  uuid.UUID
	orderID    uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, customerID, productID, orderID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		customerID: customerID,
		productID:  productID,
		orderID:    orderID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) ProductID() uuid.UUID  { return r.productID }
func (r *Review) OrderID() uuid.UUID    { return r.orderID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
