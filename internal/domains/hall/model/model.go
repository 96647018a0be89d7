package model

import "hallbook/shared/model"

const (
	TableName  = "halls"
	EntityName = "hall"

	FieldID         = "hall_id"
	FieldName       = "name"
	FieldCapacity   = "capacity"
	FieldFacilities = "facilities"
	FieldLocation   = "location"
)

type Hall struct {
	ID         int64  `db:"hall_id"`
	Name       string `db:"name"`
	Capacity   int    `db:"capacity"`
	Facilities string `db:"facilities"`
	Location   string `db:"location"`
	model.Metadata
}
