package store

import "time"

// Record is the physical row backing every entity collection: the entity is
// stored as a JSON document keyed by (collection, key). The composite
// primary key doubles as the collection index.
type Record struct {
	Collection string    `gorm:"primaryKey;size:64" json:"collection"`
	Key        string    `gorm:"primaryKey;size:64" json:"key"`
	Data       []byte    `gorm:"not null" json:"data"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (Record) TableName() string { return "records" }
