package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Collector represents the collectors table - one row per account that has
// ever owned a garment
type Collector struct {
	// Address is the lowercase account address, the primary key
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Garments holds the owned garment token ids in insertion order
	Garments datatypes.JSONSlice[string] `gorm:"column:garments"`
	// Children holds the owned child token ids in insertion order
	Children datatypes.JSONSlice[string] `gorm:"column:children"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Collector model
func (Collector) TableName() string {
	return "collectors"
}
