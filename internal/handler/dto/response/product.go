package response

import (
	"time"

	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ProductID         uuid.UUID  `json:"product_id"`
	VariantID         *uuid.UUID `json:"variant_id,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	RequestedQuantity int        `json:"requested_quantity"`
	StockOnHand       int        `json:"stock_on_hand"`
	ReservedQuantity  int        `json:"reserved_quantity"`
	AvailableQuantity int        `json:"available_quantity"`
	IsAvailable       bool       `json:"is_available"`
	Conflicts         []string   `json:"conflicts,omitempty"`
}

type CalendarEntryResponse struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	OrderID       uuid.UUID  `json:"order_id"`
	OrderNumber   string     `json:"order_number"`
	VariantID     *uuid.UUID `json:"variant_id,omitempty"`
	Quantity      int32      `json:"quantity"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         time.Time  `json:"end_at"`
	StockStatus   string     `json:"stock_status"`
}

type CalendarResponse struct {
	ProductID uuid.UUID                `json:"product_id"`
	Entries   []*CalendarEntryResponse `json:"entries"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res := &AvailabilityResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCalendar(productID uuid.UUID, entries []*queries.CalendarEntry) (*CalendarResponse, error) {
	items, err := mapAll[queries.CalendarEntry, CalendarEntryResponse](entries)
	if err != nil {
		return nil, err
	}
	return &CalendarResponse{ProductID: productID, Entries: items}, nil
}
