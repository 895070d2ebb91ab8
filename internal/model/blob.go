package model

import (
	"time"

	"gorm.io/datatypes"
)

// Blob stores a whole serialized collection under a fixed key
type Blob struct {
	Key       string         `json:"key" gorm:"column:blob_key;primaryKey;type:varchar(100)"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}
