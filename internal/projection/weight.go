package projection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

// refreshWeight recomputes a staker's weight and upserts the dated
// snapshot. One routine serves every guild; the mode picks which weight
// views to read. The two weight reads are independent try calls: either
// one soft-failing leaves its side at the previous (or zero) value.
//
// The snapshot key is guild:address:day, so a second event on the same
// day overwrites the earlier snapshot while a new day appends one. When
// the start time cannot be read the day is unknowable; the weight still
// updates but no snapshot is written, as a wrong day key would overwrite
// another day's history.
func (p *Projector) refreshWeight(ctx context.Context, event *domain.Event, guild domain.Guild, staker *schema.Staker) error {
	day, dayOK := p.snapshotDay(ctx, guild, event)

	var weight, totalWeight string
	var weightOK, totalOK bool
	switch guild.Mode {
	case domain.GuildModeWhitelistedNFT:
		weight, weightOK = p.caller.TryCalcNewWhitelistedNFTOwnerWeight(ctx, guild.WeightContract, staker.Address)
		totalWeight, totalOK = p.caller.TryCalcNewTotalWhitelistedNFTWeight(ctx, guild.WeightContract)
	default:
		weight, weightOK = p.caller.TryCalcNewOwnerWeight(ctx, guild.WeightContract, staker.Address)
		totalWeight, totalOK = p.caller.TryCalcNewWeight(ctx, guild.WeightContract)
	}

	if weightOK {
		staker.Weight = weight
	}
	if !totalOK {
		totalWeight = "0"
	}

	if !dayOK {
		logger.WarnCtx(ctx, "start time unavailable, skipping weight snapshot",
			zap.String("guild", guild.Name),
			zap.String("address", staker.Address))
		return nil
	}

	snapshot := &schema.WeightSnapshot{
		ID:          domain.SnapshotID(guild.Name, staker.Address, day),
		Guild:       guild.Name,
		Address:     staker.Address,
		Day:         day,
		Weight:      staker.Weight,
		TotalWeight: totalWeight,
		Timestamp:   event.Timestamp,
	}
	if err := p.store.SaveWeightSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save weight snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}

// snapshotDay derives the day index from the weight contract's start
// time. The start time is immutable on-chain, so the first successful
// read is cached per contract.
func (p *Projector) snapshotDay(ctx context.Context, guild domain.Guild, event *domain.Event) (int64, bool) {
	start, ok := p.startTimes[guild.WeightContract]
	if !ok {
		start, ok = p.caller.TryStartTime(ctx, guild.WeightContract)
		if !ok {
			return 0, false
		}
		p.startTimes[guild.WeightContract] = start
	}
	return domain.DayIndex(event.Timestamp, start), true
}
