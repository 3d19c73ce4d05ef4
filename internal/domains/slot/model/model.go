package model

import (
	roomModel "roomslots/internal/domains/room/model"
)

const (
	TableName  = "room_slots"
	EntityName = "slot"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldBookingDate    = "booking_date"
	FieldHour           = "hour"
	FieldIsAvailable    = "is_available"
	FieldAvailableSlots = "available_slots"
	FieldRoomName       = "room_name"
	FieldBusinessName   = "business_name"
)

// DefaultExcludedBusiness is the business whose slots are already complete in the source data.
const DefaultExcludedBusiness = "iEscape Rooms"

// Columns is the column order of slot files.
var Columns = []string{
	FieldID,
	FieldRoomID,
	FieldBookingDate,
	FieldHour,
	FieldIsAvailable,
	FieldAvailableSlots,
	FieldRoomName,
	FieldBusinessName,
}

// SortColumns is the composite key of the combined table.
var SortColumns = []string{
	FieldBookingDate,
	FieldHour,
	FieldBusinessName,
	FieldRoomName,
}

type Slot struct {
	ID             int    `db:"id"`
	RoomID         string `db:"room_id"         validate:"notblank"`
	BookingDate    string `db:"booking_date"    validate:"notblank"`
	Hour           int    `db:"hour"            validate:"gte=0,lte=23"`
	IsAvailable    bool   `db:"is_available"`
	AvailableSlots int    `db:"available_slots" validate:"gte=0"`
	RoomName       string `db:"room_name"`
	BusinessName   string `db:"business_name"`
}

// NewGeneratedSlot copies the room identity onto a slot for the given date and hour.
// An unavailable slot never reports free places.
func NewGeneratedSlot(id int, room roomModel.Room, bookingDate string, hour int, isAvailable bool, availableSlots int) Slot {
	if !isAvailable {
		availableSlots = 0
	}

	return Slot{
		ID:             id,
		RoomID:         room.RoomID,
		BookingDate:    bookingDate,
		Hour:           hour,
		IsAvailable:    isAvailable,
		AvailableSlots: availableSlots,
		RoomName:       room.RoomName,
		BusinessName:   room.BusinessName,
	}
}
