package model

import (
	"time"

	"gorm.io/datatypes"
)

type KeyValueEntry struct {
	Key       string         `gorm:"type:varchar(128);primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (KeyValueEntry) TableName() string {
	return "kv_entries"
}
