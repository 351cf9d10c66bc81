package types

import "time"

// Setting is a single row of the local key-value store.
type Setting struct {
	Name      string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}
