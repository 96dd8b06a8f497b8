package projection

import (
	"context"
	"fmt"

	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

// Reaction labels carried by appraisal and whitelisted-NFT reaction
// events.
const (
	ReactionClap      = "Clap"
	ReactionFavorite  = "Favorite"
	ReactionFollow    = "Follow"
	ReactionShare     = "Share"
	ReactionMetaverse = "Metaverse"
)

// handleAppraiseGuildMember bumps the counter matching the reaction
// label. A clap additionally appends a history row carrying the
// cumulative clap count at event time.
func (p *Projector) handleAppraiseGuildMember(ctx context.Context, event *domain.Event, guild domain.Guild) error {
	staker, err := p.store.GetOrCreateStaker(ctx, guild.Name, event.Account)
	if err != nil {
		return fmt.Errorf("failed to load staker %s: %w", event.Account, err)
	}

	quantity := event.Quantity
	if quantity == "" {
		quantity = "1"
	}

	if event.Reaction == ReactionClap {
		staker.Claps = domain.AddDecimal(staker.Claps, quantity)
		row := &schema.ClapHistory{
			ID:        domain.ClapHistoryID(guild.Name, staker.Address, event.Timestamp),
			Guild:     guild.Name,
			Address:   staker.Address,
			Claps:     staker.Claps,
			Timestamp: event.Timestamp,
		}
		if err := p.store.AppendClapHistory(ctx, row); err != nil {
			return fmt.Errorf("failed to append clap history %s: %w", row.ID, err)
		}
	} else {
		staker.Appraisals = domain.AddDecimal(staker.Appraisals, quantity)
	}

	if err := p.refreshWeight(ctx, event, guild, staker); err != nil {
		return err
	}

	if err := p.store.SaveStaker(ctx, staker); err != nil {
		return fmt.Errorf("failed to save staker %s: %w", staker.ID, err)
	}
	return nil
}

// handleWhitelistedNFTReaction bumps the counter matching the reaction
// label by the event-supplied quantity. Quantities are non-negative, so
// every counter is monotonically non-decreasing.
func (p *Projector) handleWhitelistedNFTReaction(ctx context.Context, event *domain.Event, guild domain.Guild) error {
	staker, err := p.store.GetOrCreateStaker(ctx, guild.Name, event.Account)
	if err != nil {
		return fmt.Errorf("failed to load staker %s: %w", event.Account, err)
	}

	quantity := event.Quantity
	if quantity == "" {
		quantity = "1"
	}

	switch event.Reaction {
	case ReactionFavorite:
		staker.Favorites = domain.AddDecimal(staker.Favorites, quantity)
	case ReactionFollow:
		staker.Follows = domain.AddDecimal(staker.Follows, quantity)
	case ReactionShare:
		staker.Shares = domain.AddDecimal(staker.Shares, quantity)
	case ReactionMetaverse:
		staker.MetaverseVisits = domain.AddDecimal(staker.MetaverseVisits, quantity)
	default:
		staker.Appraisals = domain.AddDecimal(staker.Appraisals, quantity)
	}

	if err := p.refreshWeight(ctx, event, guild, staker); err != nil {
		return err
	}

	if err := p.store.SaveStaker(ctx, staker); err != nil {
		return fmt.Errorf("failed to save staker %s: %w", staker.ID, err)
	}
	return nil
}

// handleAddWhitelistedTokens registers the batch of contracts carried by
// the event. Registration is idempotent; a name() soft-failure leaves
// the label empty.
func (p *Projector) handleAddWhitelistedTokens(ctx context.Context, event *domain.Event) error {
	for _, contract := range event.TokenContracts {
		address := domain.NormalizeAddress(contract)
		name, _ := p.caller.TryName(ctx, address)

		token := &schema.WhitelistedToken{
			Address: address,
			Name:    name,
		}
		if err := p.store.UpsertWhitelistedToken(ctx, token); err != nil {
			return fmt.Errorf("failed to upsert whitelisted token %s: %w", address, err)
		}
	}
	return nil
}
