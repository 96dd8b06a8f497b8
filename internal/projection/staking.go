package projection

import (
	"context"
	"fmt"

	"github.com/digitalax/dlx-indexer/internal/domain"
)

func (p *Projector) handleStaked(ctx context.Context, event *domain.Event, guild domain.Guild) error {
	staker, err := p.store.GetOrCreateStaker(ctx, guild.Name, event.Account)
	if err != nil {
		return fmt.Errorf("failed to load staker %s: %w", event.Account, err)
	}

	staker.StakedTokens = appendUnique(staker.StakedTokens, event.TokenID)
	if err := p.refreshWeight(ctx, event, guild, staker); err != nil {
		return err
	}

	if err := p.store.SaveStaker(ctx, staker); err != nil {
		return fmt.Errorf("failed to save staker %s: %w", staker.ID, err)
	}
	return nil
}

// handleUnstaked serves both Unstaked and EmergencyUnstake. The staked
// list is replaced wholesale from the contract's getStakedTokens view,
// which is treated as ground truth; the event payload's token id is not
// removed one-by-one. When the view call soft-fails the cached list is
// left untouched.
func (p *Projector) handleUnstaked(ctx context.Context, event *domain.Event, guild domain.Guild) error {
	staker, err := p.store.GetOrCreateStaker(ctx, guild.Name, event.Account)
	if err != nil {
		return fmt.Errorf("failed to load staker %s: %w", event.Account, err)
	}

	if tokens, ok := p.caller.TryStakedTokens(ctx, event.ContractAddress, staker.Address); ok {
		staker.StakedTokens = tokens
	}
	if err := p.refreshWeight(ctx, event, guild, staker); err != nil {
		return err
	}

	if err := p.store.SaveStaker(ctx, staker); err != nil {
		return fmt.Errorf("failed to save staker %s: %w", staker.ID, err)
	}
	return nil
}

func (p *Projector) handleRewardPaid(ctx context.Context, event *domain.Event, guild domain.Guild) error {
	staker, err := p.store.GetOrCreateStaker(ctx, guild.Name, event.Account)
	if err != nil {
		return fmt.Errorf("failed to load staker %s: %w", event.Account, err)
	}

	staker.TotalRewards = domain.AddDecimal(staker.TotalRewards, event.Amount)
	if err := p.refreshWeight(ctx, event, guild, staker); err != nil {
		return err
	}

	if err := p.store.SaveStaker(ctx, staker); err != nil {
		return fmt.Errorf("failed to save staker %s: %w", staker.ID, err)
	}
	return nil
}
