package model

const (
	EntityName = "room"

	FieldRoomID       = "room_id"
	FieldRoomName     = "room_name"
	FieldBusinessName = "business_name"
	FieldCapacity     = "capacity"
)

// Room is one entry of the rooms catalog. The catalog may carry more columns; only these are read.
type Room struct {
	RoomID       string `db:"room_id"       validate:"notblank"`
	RoomName     string `db:"room_name"`
	BusinessName string `db:"business_name"`
	Capacity     int    `db:"capacity"      validate:"gte=0"`
}
