package model

import "time"

// Metadata is embedded by stored entities. It never appears on the wire.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"-"`
}
