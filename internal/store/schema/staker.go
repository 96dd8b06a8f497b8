package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Staker represents the stakers table - one row per account per guild
// staking program.
type Staker struct {
	// ID is the "guild:address" composite identifier, the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Guild is the guild name this staker belongs to
	Guild string `gorm:"column:guild;not null;type:text;index"`
	// Address is the lowercase staker account address
	Address string `gorm:"column:address;not null;type:text;index"`
	// StakedTokens holds the currently staked token ids. On unstake events
	// the whole list is replaced from the staking contract's view call.
	StakedTokens datatypes.JSONSlice[string] `gorm:"column:staked_tokens"`
	// TotalRewards accumulates paid rewards in wei as a decimal string
	TotalRewards string `gorm:"column:total_rewards;not null;default:'0';type:numeric(78,0)"`
	// Appraisals counts non-clap guild member reactions
	Appraisals string `gorm:"column:appraisals;not null;default:'0';type:numeric(78,0)"`
	// Claps counts clap reactions
	Claps string `gorm:"column:claps;not null;default:'0';type:numeric(78,0)"`
	// Favorites counts favorite reactions on whitelisted NFTs
	Favorites string `gorm:"column:favorites;not null;default:'0';type:numeric(78,0)"`
	// Follows counts follow reactions on whitelisted NFTs
	Follows string `gorm:"column:follows;not null;default:'0';type:numeric(78,0)"`
	// Shares counts share reactions on whitelisted NFTs
	Shares string `gorm:"column:shares;not null;default:'0';type:numeric(78,0)"`
	// MetaverseVisits counts metaverse reactions on whitelisted NFTs
	MetaverseVisits string `gorm:"column:metaverse_visits;not null;default:'0';type:numeric(78,0)"`
	// Weight is the staker's latest computed weight as a decimal string
	Weight string `gorm:"column:weight;not null;default:'0';type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Staker model
func (Staker) TableName() string {
	return "stakers"
}
