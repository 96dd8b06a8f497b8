package domain

import (
	"fmt"
	"time"
)

// StakerID builds the "guild:address" staker key.
func StakerID(guild, address string) string {
	return fmt.Sprintf("%s:%s", guild, NormalizeAddress(address))
}

// SnapshotID builds the "guild:address:day" weight snapshot key. One key
// per staker per day gives same-day overwrite for free.
func SnapshotID(guild, address string, day int64) string {
	return fmt.Sprintf("%s:%s:%d", guild, NormalizeAddress(address), day)
}

// ClapHistoryID builds the "guild:address:timestamp" clap history key.
func ClapHistoryID(guild, address string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", guild, NormalizeAddress(address), ts.Unix())
}

// AttributeID builds the "tokenID-index" garment attribute key.
func AttributeID(tokenID string, index int) string {
	return fmt.Sprintf("%s-%d", tokenID, index)
}
