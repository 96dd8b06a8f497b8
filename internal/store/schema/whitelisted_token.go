package schema

import "time"

// WhitelistedToken represents the whitelisted_tokens table - the registry
// of external NFT contracts eligible for whitelisted staking and
// reactions. Registration is idempotent.
type WhitelistedToken struct {
	// Address is the lowercase contract address, the primary key
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Name is the contract's name() value, empty when the call soft-failed
	Name string `gorm:"column:name;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the WhitelistedToken model
func (WhitelistedToken) TableName() string {
	return "whitelisted_tokens"
}
