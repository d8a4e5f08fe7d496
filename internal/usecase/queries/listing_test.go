//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-core/internal/domain/user"
	"rental-core/internal/usecase/queries"
	"rental-core/internal/usecase/shared"
	queriesmock "rental-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvoiceQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockInvoiceReadStore(ctrl)
	q := queries.NewInvoiceQueries(repo)

	customer := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	vendor := shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
	iv := &queries.InvoiceView{ID: uuid.New(), CustomerID: customer.ID, VendorID: vendor.ID, TotalAmount: decimal.NewFromInt(808)}

	t.Run("parties can read", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), iv.ID).Return(iv, nil).Times(2)

		for _, a := range []shared.Actor{customer, vendor} {
			got, err := q.GetByID(context.Background(), a, iv.ID)
			require.NoError(t, err)
			assert.Equal(t, iv.ID, got.ID)
		}
	})

	t.Run("other vendor is denied", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), iv.ID).Return(iv, nil)

		_, err := q.GetByID(context.Background(), shared.Actor{ID: uuid.New(), Role: user.RoleVendor}, iv.ID)
		assert.ErrorIs(t, err, queries.ErrInvoiceAccess)
	})

	t.Run("missing invoice", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := q.GetByID(context.Background(), vendor, id)
		assert.ErrorIs(t, err, queries.ErrInvoiceNotFound)
	})
}

func TestInvoiceQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockInvoiceReadStore(ctrl)
	q := queries.NewInvoiceQueries(repo)

	admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	vendorID := uuid.New()
	status := "posted"

	repo.EXPECT().
		List(gomock.Any(), queries.InvoiceFilters{Status: &status, VendorID: &vendorID}, (*queries.Keyset)(nil), int32(11)).
		Return([]*queries.InvoiceView{{ID: uuid.New()}}, nil)

	got, next, err := q.List(context.Background(), admin, queries.InvoiceFilters{Status: &status, VendorID: &vendorID}, nil, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Nil(t, next)
}

func TestPaymentQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockPaymentReadStore(ctrl)
	q := queries.NewPaymentQueries(repo)

	customer := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	cursor := &queries.Cursor{After: queries.EncodeAfterCursor(at, uuid.New())}

	repo.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()), int32(2)).
		DoAndReturn(func(_ context.Context, f queries.PaymentFilters, after *queries.Keyset, _ int32) ([]*queries.PaymentView, error) {
			require.NotNil(t, f.CustomerID)
			assert.Equal(t, customer.ID, *f.CustomerID)
			assert.True(t, at.Equal(after.CreatedAt))
			return []*queries.PaymentView{{ID: uuid.New(), CreatedAt: at}, {ID: uuid.New(), CreatedAt: at}}, nil
		})

	got, next, err := q.List(context.Background(), customer, queries.PaymentFilters{}, cursor, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NotNil(t, next)
}

func TestReviewQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReviewReadStore(ctrl)
	q := queries.NewReviewQueries(repo)
	productID := uuid.New()

	t.Run("list by product", func(t *testing.T) {
		repo.EXPECT().ListByProduct(gomock.Any(), productID, (*queries.Keyset)(nil), int32(21)).
			Return([]*queries.ReviewListItem{{ID: uuid.New(), Rating: 5}}, nil)

		got, next, err := q.ListByProduct(context.Background(), productID, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("rating stats", func(t *testing.T) {
		stats := &queries.ProductRatingStats{ProductID: productID, TotalReviews: 2, AverageRating: decimal.RequireFromString("4.5")}
		repo.EXPECT().GetProductRatingStats(gomock.Any(), productID).Return(stats, nil)

		got, err := q.GetProductRatingStats(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalReviews)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := q.ListByProduct(context.Background(), productID, &queries.Cursor{After: "nope"}, 5)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
