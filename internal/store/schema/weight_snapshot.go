package schema

import "time"

// WeightSnapshot represents the weight_snapshots table - the per-day
// weight series of a staker. The "guild:address:day" primary key keeps at
// most one row per staker per day: a second event on the same day
// overwrites the earlier snapshot.
type WeightSnapshot struct {
	// ID is the "guild:address:day" composite identifier, the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Guild is the guild name
	Guild string `gorm:"column:guild;not null;type:text;index:idx_weight_snapshots_guild_address"`
	// Address is the lowercase staker account address
	Address string `gorm:"column:address;not null;type:text;index:idx_weight_snapshots_guild_address"`
	// Day is the whole days elapsed since the weight contract's start time
	Day int64 `gorm:"column:day;not null"`
	// Weight is the staker's weight at snapshot time as a decimal string
	Weight string `gorm:"column:weight;not null;default:'0';type:numeric(78,0)"`
	// TotalWeight is the guild-wide weight at snapshot time
	TotalWeight string `gorm:"column:total_weight;not null;default:'0';type:numeric(78,0)"`
	// Timestamp is the block timestamp of the event that produced the
	// snapshot
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the WeightSnapshot model
func (WeightSnapshot) TableName() string {
	return "weight_snapshots"
}
