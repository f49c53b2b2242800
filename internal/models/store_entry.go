package models

import "time"

// StoreEntry is one key of the record store. Value holds the JSON array of
// records for the collection named by Key.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
