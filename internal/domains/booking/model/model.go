package model

import "hallbook/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "booking_id"
	FieldHallID    = "hall_id"
	FieldUserID    = "user_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldPurpose   = "purpose"
	FieldStatus    = "status"
)

const (
	StatusConfirmed = "confirmed"
)

// Booking is an accepted reservation. StartTime and EndTime are opaque strings
// compared byte-wise, so ISO-8601 values order chronologically.
type Booking struct {
	ID        int64  `db:"booking_id"`
	HallID    int64  `db:"hall_id"`
	UserID    int64  `db:"user_id"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Purpose   string `db:"purpose"`
	Status    string `db:"status"`
	model.Metadata
}
