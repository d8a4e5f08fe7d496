//go:build unit

package repository_test

import (
	"context"
	"testing"

	"rental-core/internal/infra/repository"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	repositorymock "rental-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func productRow(id uuid.UUID, onHand, reserved int32) sqlc.Products {
	return sqlc.Products{
		ID:               id,
		VendorID:         uuid.New(),
		Name:             "Camera",
		Sku:              "CAM-" + id.String()[:8],
		PriceDaily:       pgconv.DecimalToNumeric(decimal.NewFromInt(500)),
		SecurityDeposit:  pgconv.DecimalToNumeric(decimal.NewFromInt(1000)),
		QuantityOnHand:   onHand,
		QuantityReserved: reserved,
		IsRentable:       true,
		IsPublished:      true,
	}
}

func TestProductRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: variants are attached to their product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewProductRepository(mockQueries, mockDB)

		a, b := uuid.New(), uuid.New()
		variantID := uuid.New()
		ids := []uuid.UUID{a, b}

		mockQueries.EXPECT().LockProductsByIDs(ctx, mockDB, ids).
			Return([]sqlc.Products{productRow(a, 5, 1), productRow(b, 2, 0)}, nil)
		mockQueries.EXPECT().ListVariantsByProductIDs(ctx, mockDB, ids).
			Return([]sqlc.ProductVariants{{
				ID:               variantID,
				ProductID:        b,
				Name:             "Large",
				Sku:              "CAM-L",
				QuantityOnHand:   1,
				QuantityReserved: 0,
			}}, nil)

		got, err := repo.LockForUpdate(ctx, mockDB, ids)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, 4, got[a].Stock().Available())
		assert.Empty(t, got[a].Variants())
		require.Len(t, got[b].Variants(), 1)
		assert.Equal(t, variantID, got[b].Variants()[0].ID())
	})

	t.Run("success: no ids issues no queries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewProductRepository(mockQueries, mockDB)

		got, err := repo.LockForUpdate(ctx, mockDB, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestProductRepository_SaveStock(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockProductWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewProductRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().GetProductByID(ctx, mockDB, id).Return(productRow(id, 3, 0), nil)
	mockQueries.EXPECT().ListVariantsByProductIDs(ctx, mockDB, []uuid.UUID{id}).Return(nil, nil)

	p, err := repo.FindByID(ctx, mockDB, id)
	require.NoError(t, err)
	require.NoError(t, p.Reserve(nil, 2))

	mockQueries.EXPECT().UpdateProductStock(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateProductStockParams) (int64, error) {
			assert.Equal(t, int32(3), arg.QuantityOnHand)
			assert.Equal(t, int32(2), arg.QuantityReserved)
			return 1, nil
		})

	require.NoError(t, repo.SaveStock(ctx, mockDB, p))
}
