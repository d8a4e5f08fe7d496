//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-core/internal/domain/order"
	"rental-core/internal/infra"
	"rental-core/internal/infra/readstore"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"
	readstoremock "rental-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(mock *readstoremock.MockOrderReadQueries)
		expectKind infra.RepositoryErrorKind
		verify     func(t *testing.T, ov *queries.OrderView)
	}{
		{
			name: "success: header and lines mapped",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(orderRow(orderID, "sale_order"), nil)
				mock.EXPECT().ListOrderItemsByOrderID(ctx, gomock.Any(), orderID).Return([]sqlc.OrderItems{orderItemRow(orderID)}, nil)
			},
			verify: func(t *testing.T, ov *queries.OrderView) {
				assert.Equal(t, orderID, ov.ID)
				assert.Equal(t, "SO0001", ov.OrderNumber)
				assert.True(t, ov.TotalAmount.Equal(decimal.RequireFromString("1180.00")))
				require.Len(t, ov.Items, 1)
				assert.Equal(t, int32(2), ov.Items[0].Quantity)
				assert.True(t, ov.Items[0].CGST.Equal(decimal.RequireFromString("90.00")))
			},
		},
		{
			name: "error: order not found",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: items query fails",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(orderRow(orderID, "sale_order"), nil)
				mock.EXPECT().ListOrderItemsByOrderID(ctx, gomock.Any(), orderID).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: corrupt numeric column",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				row := orderRow(orderID, "sale_order")
				row.TotalAmount = pgtype.Numeric{}
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(row, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
			store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			ov, err := store.FindByID(ctx, orderID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, ov)
				return
			}
			require.NoError(t, err)
			tc.verify(t, ov)
		})
	}
}

func TestOrderReadStore_FindOpenCart_NotFound(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
	mockQueries.EXPECT().GetOpenCartViewByCustomer(ctx, gomock.Any(), customerID).Return(sqlc.Orders{}, pgx.ErrNoRows)

	ov, err := readstore.NewOrderReadStore(mockQueries, &mockDBTX{}).FindOpenCart(ctx, customerID)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Nil(t, ov)
}

func TestOrderReadStore_List_Params(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	status := "confirmed"
	after := &queries.Keyset{CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), ID: uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
	mockQueries.EXPECT().ListOrders(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error) {
			assert.Equal(t, pgconv.UUIDToPgtype(customerID), arg.CustomerID)
			assert.False(t, arg.VendorID.Valid)
			assert.Equal(t, pgtype.Text{String: status, Valid: true}, arg.Status)
			assert.True(t, arg.AfterCreatedAt.Time.Equal(after.CreatedAt))
			assert.Equal(t, pgconv.UUIDToPgtype(after.ID), arg.AfterID)
			assert.Equal(t, int32(11), arg.Limit)
			return []sqlc.Orders{orderRow(uuid.New(), status)}, nil
		})

	rows, err := readstore.NewOrderReadStore(mockQueries, &mockDBTX{}).
		List(ctx, queries.OrderFilters{CustomerID: &customerID, Status: &status}, after, 11)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Items)
}

func TestOrderReadStore_ListByStatus_Params(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
	mockQueries.EXPECT().ListVendorOrdersByStatus(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListVendorOrdersByStatusParams) ([]sqlc.Orders, error) {
			assert.False(t, arg.VendorID.Valid, "admin scope has no vendor filter")
			assert.Equal(t, []string{"picked_up", "active", "late"}, arg.Statuses)
			assert.True(t, arg.RentalEndBefore.Time.Equal(now))
			assert.False(t, arg.RentalEndAfter.Valid)
			return nil, nil
		})

	rows, err := readstore.NewOrderReadStore(mockQueries, &mockDBTX{}).ListByStatus(ctx, nil,
		[]order.Status{order.StatusPickedUp, order.StatusActive, order.StatusLate}, &now, nil)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func orderRow(id uuid.UUID, status string) sqlc.Orders {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	num := func(s string) pgtype.Numeric { return pgconv.DecimalToNumeric(decimal.RequireFromString(s)) }
	return sqlc.Orders{
		ID:                id,
		OrderNumber:       "SO0001",
		CustomerID:        uuid.New(),
		VendorID:          uuid.New(),
		Status:            status,
		RentalStart:       pgconv.TimeToPgtype(start),
		RentalEnd:         pgconv.TimeToPgtype(start.AddDate(0, 0, 3)),
		DeliveryMethod:    "standard",
		Subtotal:          num("1000.00"),
		TaxRate:           num("18"),
		TaxAmount:         num("180.00"),
		DiscountAmount:    num("0"),
		SecurityDeposit:   num("0"),
		DeliveryCharges:   num("0"),
		LateFeesApplied:   num("0"),
		TotalAmount:       num("1180.00"),
		DownpaymentAmount: num("0"),
		CreatedAt:         pgconv.TimeToPgtype(start.Add(-time.Hour)),
		UpdatedAt:         pgconv.TimeToPgtype(start.Add(-time.Hour)),
	}
}

func orderItemRow(orderID uuid.UUID) sqlc.OrderItems {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	num := func(s string) pgtype.Numeric { return pgconv.DecimalToNumeric(decimal.RequireFromString(s)) }
	return sqlc.OrderItems{
		ID:               uuid.New(),
		OrderID:          orderID,
		ProductID:        uuid.New(),
		ProductName:      "Camera",
		ProductSku:       "CAM-1",
		Quantity:         2,
		UnitPrice:        num("166.67"),
		DepositPerUnit:   num("0"),
		RentalStart:      pgconv.TimeToPgtype(start),
		RentalEnd:        pgconv.TimeToPgtype(start.AddDate(0, 0, 3)),
		RentalPeriodType: "daily",
		DurationUnits:    3,
		LineSubtotal:     num("1000.00"),
		TaxAmount:        num("180.00"),
		Cgst:             num("90.00"),
		Sgst:             num("90.00"),
		Igst:             num("0"),
		LineTotal:        num("1180.00"),
	}
}
