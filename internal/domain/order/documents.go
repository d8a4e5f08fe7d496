package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const pickupInstructions = "Please bring a valid ID for verification"

type PickupDocument struct {
	id           uuid.UUID
	orderID      uuid.UUID
	number       string
	instructions string
	location     string
	scheduledAt  *time.Time
	isPickedUp   bool
	pickedUpAt   *time.Time
	pickedUpBy   *uuid.UUID
	createdAt    time.Time
}

func NewPickupDocument(o *Order, now time.Time) *PickupDocument {
	return &PickupDocument{
		id:           uuid.New(),
		orderID:      o.id,
		number:       "PU-" + o.number,
		instructions: pickupInstructions,
		location:     o.deliveryAddress,
		scheduledAt:  o.rentalStart,
		createdAt:    now,
	}
}

func ReconstructPickupDocument(
	id, orderID uuid.UUID,
	number, instructions, location string,
	scheduledAt *time.Time,
	isPickedUp bool,
	pickedUpAt *time.Time,
	pickedUpBy *uuid.UUID,
	createdAt time.Time,
) *PickupDocument {
	return &PickupDocument{
		id:           id,
		orderID:      orderID,
		number:       number,
		instructions: instructions,
		location:     location,
		scheduledAt:  scheduledAt,
		isPickedUp:   isPickedUp,
		pickedUpAt:   pickedUpAt,
		pickedUpBy:   pickedUpBy,
		createdAt:    createdAt,
	}
}

func (d *PickupDocument) ID() uuid.UUID           { return d.id }
func (d *PickupDocument) OrderID() uuid.UUID      { return d.orderID }
func (d *PickupDocument) Number() string          { return d.number }
func (d *PickupDocument) Instructions() string    { return d.instructions }
func (d *PickupDocument) Location() string        { return d.location }
func (d *PickupDocument) ScheduledAt() *time.Time { return d.scheduledAt }
func (d *PickupDocument) IsPickedUp() bool        { return d.isPickedUp }
func (d *PickupDocument) PickedUpAt() *time.Time  { return d.pickedUpAt }
func (d *PickupDocument) PickedUpBy() *uuid.UUID  { return d.pickedUpBy }
func (d *PickupDocument) CreatedAt() time.Time    { return d.createdAt }

func (d *PickupDocument) MarkPickedUp(by uuid.UUID, at time.Time) {
	d.isPickedUp = true
	d.pickedUpAt = &at
	d.pickedUpBy = &by
}

type ReturnDetails struct {
	ReturnedAt        time.Time
	ReceivedBy        uuid.UUID
	ConditionNotes    string
	DamageReported    bool
	DamageDescription string
	Notes             string
}

type ReturnDocument struct {
	id                uuid.UUID
	orderID           uuid.UUID
	number            string
	receivedBy        uuid.UUID
	conditionNotes    string
	damageReported    bool
	damageDescription string
	expectedReturn    *time.Time
	actualReturn      time.Time
	isLate            bool
	lateDays          int
	lateFee           decimal.Decimal
	createdAt         time.Time
}

func NewReturnDocument(o *Order, d ReturnDetails, late LateAssessment) *ReturnDocument {
	return &ReturnDocument{
		id:                uuid.New(),
		orderID:           o.id,
		number:            "RT-" + o.number,
		receivedBy:        d.ReceivedBy,
		conditionNotes:    d.ConditionNotes,
		damageReported:    d.DamageReported,
		damageDescription: d.DamageDescription,
		expectedReturn:    o.rentalEnd,
		actualReturn:      d.ReturnedAt,
		isLate:            late.IsLate(),
		lateDays:          late.DaysLate,
		lateFee:           late.Fee,
		createdAt:         d.ReturnedAt,
	}
}

func (d *ReturnDocument) ID() uuid.UUID              { return d.id }
func (d *ReturnDocument) OrderID() uuid.UUID         { return d.orderID }
func (d *ReturnDocument) Number() string             { return d.number }
func (d *ReturnDocument) ReceivedBy() uuid.UUID      { return d.receivedBy }
func (d *ReturnDocument) ConditionNotes() string     { return d.conditionNotes }
func (d *ReturnDocument) DamageReported() bool       { return d.damageReported }
func (d *ReturnDocument) DamageDescription() string  { return d.damageDescription }
func (d *ReturnDocument) ExpectedReturn() *time.Time { return d.expectedReturn }
func (d *ReturnDocument) ActualReturn() time.Time    { return d.actualReturn }
func (d *ReturnDocument) IsLate() bool               { return d.isLate }
func (d *ReturnDocument) LateDays() int              { return d.lateDays }
func (d *ReturnDocument) LateFee() decimal.Decimal   { return d.lateFee }
func (d *ReturnDocument) CreatedAt() time.Time       { return d.createdAt }
