//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-core/internal/infra"
	"rental-core/internal/infra/readstore"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"
	readstoremock "rental-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// ListByProduct Tests
// =============================================================================

func TestReviewReadStore_ListByProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	lastCreatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	lastID := uuid.New()

	testCases := []struct {
		name          string
		after         *queries.Keyset
		setupMock     func(mock *readstoremock.MockReviewReadQueries)
		expectedCount int
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "first page: no keyset bound",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByProduct(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListReviewsByProductParams) ([]sqlc.ListReviewsByProductRow, error) {
						assert.Equal(t, productID, arg.ProductID)
						assert.False(t, arg.AfterCreatedAt.Valid)
						assert.False(t, arg.AfterID.Valid)
						assert.Equal(t, int32(21), arg.Limit)
						return []sqlc.ListReviewsByProductRow{
							createReviewRow(productID, 5, "Great!"),
							createReviewRow(productID, 3, "OK"),
						}, nil
					})
			},
			expectedCount: 2,
		},
		{
			name:  "next page: keyset bound passed through",
			after: &queries.Keyset{CreatedAt: lastCreatedAt, ID: lastID},
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByProduct(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListReviewsByProductParams) ([]sqlc.ListReviewsByProductRow, error) {
						assert.True(t, arg.AfterCreatedAt.Time.Equal(lastCreatedAt))
						assert.Equal(t, pgconv.UUIDToPgtype(lastID), arg.AfterID)
						return []sqlc.ListReviewsByProductRow{createReviewRow(productID, 4, "Good")}, nil
					})
			},
			expectedCount: 1,
		},
		{
			name: "empty product",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByProduct(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByProduct(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.ListByProduct(ctx, productID, tc.after, 21)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tc.expectedCount)
			for _, r := range result {
				assert.Equal(t, productID, r.ProductID)
				assert.Equal(t, "Asha", r.CustomerName)
			}
		})
	}
}

// =============================================================================
// GetProductRatingStats Tests
// =============================================================================

func TestReviewReadStore_GetProductRatingStats(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("success: average decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		mockQueries.EXPECT().GetProductRatingStats(ctx, gomock.Any(), productID).Return(sqlc.GetProductRatingStatsRow{
			TotalReviews:  4,
			AverageRating: pgconv.DecimalToNumeric(decimal.RequireFromString("4.25")),
		}, nil)

		stats, err := readstore.NewReviewReadStore(mockQueries, &mockDBTX{}).GetProductRatingStats(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, productID, stats.ProductID)
		assert.Equal(t, int64(4), stats.TotalReviews)
		assert.True(t, stats.AverageRating.Equal(decimal.RequireFromString("4.25")))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
		mockQueries.EXPECT().GetProductRatingStats(ctx, gomock.Any(), productID).Return(sqlc.GetProductRatingStatsRow{}, errDBConnectionLost)

		stats, err := readstore.NewReviewReadStore(mockQueries, &mockDBTX{}).GetProductRatingStats(ctx, productID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, stats)
	})
}

func createReviewRow(productID uuid.UUID, rating int32, comment string) sqlc.ListReviewsByProductRow {
	return sqlc.ListReviewsByProductRow{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Asha",
		ProductID:    productID,
		OrderID:      uuid.New(),
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    pgconv.TimeToPgtype(time.Now()),
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
