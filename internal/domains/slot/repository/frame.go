package repository

import (
	"cmp"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"roomslots/internal/domains/slot/model"
	"roomslots/shared/frame"
)

// Booleans are written the way the upstream export spells them.
const (
	boolTrue  = "True"
	boolFalse = "False"
)

var columnTypes = map[string]series.Type{
	model.FieldID:             series.Int,
	model.FieldRoomID:         series.String,
	model.FieldBookingDate:    series.String,
	model.FieldHour:           series.Int,
	model.FieldIsAvailable:    series.String,
	model.FieldAvailableSlots: series.Int,
	model.FieldRoomName:       series.String,
	model.FieldBusinessName:   series.String,
}

// ToFrame lays slots out in the slot file column order, with is_available spelled True or False.
func ToFrame(slots []model.Slot) dataframe.DataFrame {
	var (
		ids            = make([]int, len(slots))
		roomIDs        = make([]string, len(slots))
		bookingDates   = make([]string, len(slots))
		hours          = make([]int, len(slots))
		isAvailable    = make([]string, len(slots))
		availableSlots = make([]int, len(slots))
		roomNames      = make([]string, len(slots))
		businessNames  = make([]string, len(slots))
	)

	for i, slot := range slots {
		ids[i] = slot.ID
		roomIDs[i] = slot.RoomID
		bookingDates[i] = slot.BookingDate
		hours[i] = slot.Hour
		isAvailable[i] = formatBool(slot.IsAvailable)
		availableSlots[i] = slot.AvailableSlots
		roomNames[i] = slot.RoomName
		businessNames[i] = slot.BusinessName
	}

	return dataframe.New(
		series.New(ids, series.Int, model.FieldID),
		series.New(roomIDs, series.String, model.FieldRoomID),
		series.New(bookingDates, series.String, model.FieldBookingDate),
		series.New(hours, series.Int, model.FieldHour),
		series.New(isAvailable, series.String, model.FieldIsAvailable),
		series.New(availableSlots, series.Int, model.FieldAvailableSlots),
		series.New(roomNames, series.String, model.FieldRoomName),
		series.New(businessNames, series.String, model.FieldBusinessName),
	)
}

// FromFrame converts every row of a slot frame, failing on missing columns or unconvertible cells.
func FromFrame(df dataframe.DataFrame) ([]model.Slot, error) {
	ids, err := frame.Ints(df, model.FieldID)
	if err != nil {
		return nil, err
	}

	roomIDs, err := frame.Strings(df, model.FieldRoomID)
	if err != nil {
		return nil, err
	}

	bookingDates, err := frame.Strings(df, model.FieldBookingDate)
	if err != nil {
		return nil, err
	}

	hours, err := frame.Ints(df, model.FieldHour)
	if err != nil {
		return nil, err
	}

	isAvailable, err := frame.Bools(df, model.FieldIsAvailable)
	if err != nil {
		return nil, err
	}

	availableSlots, err := frame.Ints(df, model.FieldAvailableSlots)
	if err != nil {
		return nil, err
	}

	roomNames, err := frame.Strings(df, model.FieldRoomName)
	if err != nil {
		return nil, err
	}

	businessNames, err := frame.Strings(df, model.FieldBusinessName)
	if err != nil {
		return nil, err
	}

	slots := make([]model.Slot, df.Nrow())
	for i := range slots {
		slots[i] = model.Slot{
			ID:             ids[i],
			RoomID:         roomIDs[i],
			BookingDate:    bookingDates[i],
			Hour:           hours[i],
			IsAvailable:    isAvailable[i],
			AvailableSlots: availableSlots[i],
			RoomName:       roomNames[i],
			BusinessName:   businessNames[i],
		}
	}

	return slots, nil
}

// Sort orders slots by booking date, hour, business name and room name. Equal keys keep their order.
func Sort(slots []model.Slot) []model.Slot {
	sorted := slices.Clone(slots)

	slices.SortStableFunc(sorted, func(a, b model.Slot) int {
		return cmp.Or(
			cmp.Compare(a.BookingDate, b.BookingDate),
			cmp.Compare(a.Hour, b.Hour),
			cmp.Compare(a.BusinessName, b.BusinessName),
			cmp.Compare(a.RoomName, b.RoomName),
		)
	})

	return sorted
}

func formatBool(value bool) string {
	if value {
		return boolTrue
	}

	return boolFalse
}
