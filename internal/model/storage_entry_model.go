package model

import "time"

// StorageEntry is one key of the durable local storage.
type StorageEntry struct {
	Key       string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *StorageEntry) TableName() string {
	return "storage_entries"
}
