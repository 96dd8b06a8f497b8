package schema

import "time"

// ClapHistory represents the clap_history table - an append-only record of
// clap reactions per staker.
type ClapHistory struct {
	// ID is the "guild:address:timestamp" composite identifier, the
	// primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Guild is the guild name
	Guild string `gorm:"column:guild;not null;type:text;index"`
	// Address is the lowercase account address of the clapper
	Address string `gorm:"column:address;not null;type:text;index"`
	// Claps is the staker's cumulative clap count at event time
	Claps string `gorm:"column:claps;not null;default:'0';type:numeric(78,0)"`
	// Timestamp is the block timestamp of the clap event
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

// TableName specifies the table name for the ClapHistory model
func (ClapHistory) TableName() string {
	return "clap_history"
}
