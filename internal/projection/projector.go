package projection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/digitalax/dlx-indexer/internal/adapter"
	"github.com/digitalax/dlx-indexer/internal/chain"
	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/metadata"
	"github.com/digitalax/dlx-indexer/internal/metrics"
	"github.com/digitalax/dlx-indexer/internal/store"
)

// Handler applies one normalized event to the entity store
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Handler=MockHandler
type Handler interface {
	Handle(ctx context.Context, event *domain.Event) error
}

// Projector applies normalized blockchain events to the entity store.
// Handle must be called from a single goroutine, one event at a time, in
// stream order: every handler read-modify-writes store rows under that
// single-writer assumption.
type Projector struct {
	store   store.Store
	caller  chain.Caller
	fetcher metadata.Fetcher
	guilds  *domain.GuildSet
	clock   adapter.Clock

	// startTimes caches each weight contract's immutable start time.
	// Accessed from the single Handle goroutine only.
	startTimes map[string]uint64
}

// NewProjector creates a projector over the given store, chain view
// caller, and metadata fetcher.
func NewProjector(
	st store.Store,
	caller chain.Caller,
	fetcher metadata.Fetcher,
	guilds *domain.GuildSet,
	clock adapter.Clock,
) *Projector {
	return &Projector{
		store:      st,
		caller:     caller,
		fetcher:    fetcher,
		guilds:     guilds,
		clock:      clock,
		startTimes: make(map[string]uint64),
	}
}

// Handle dispatches one event to its handler. A returned error means the
// event was not applied and should be redelivered; ErrInvalidEvent and
// ErrUnknownGuild mean the event can never be applied.
func (p *Projector) Handle(ctx context.Context, event *domain.Event) error {
	if !event.Valid() {
		metrics.IncFailed(string(event.EventType))
		return fmt.Errorf("%w: type=%s tx=%s", domain.ErrInvalidEvent, event.EventType, event.TxHash)
	}

	start := p.clock.Now()
	err := p.dispatch(ctx, event)
	metrics.ObserveHandle(string(event.EventType), p.clock.Since(start))

	if err != nil {
		metrics.IncFailed(string(event.EventType))
		logger.ErrorCtx(ctx, err,
			zap.String("event_type", string(event.EventType)),
			zap.String("tx_hash", event.TxHash),
			zap.Uint64("block_number", event.BlockNumber))
		return err
	}

	metrics.IncProcessed(string(event.EventType))
	metrics.SetLastProcessedBlock(event.BlockNumber)
	return nil
}

func (p *Projector) dispatch(ctx context.Context, event *domain.Event) error {
	switch event.EventType {
	case domain.EventTypeTransfer:
		return p.handleTransfer(ctx, event)
	case domain.EventTypePrimarySalePriceSet:
		return p.handlePrimarySalePriceSet(ctx, event)
	case domain.EventTypeStaked:
		guild, err := p.guild(event)
		if err != nil {
			return err
		}
		return p.handleStaked(ctx, event, guild)
	case domain.EventTypeUnstaked, domain.EventTypeEmergencyUnstake:
		guild, err := p.guild(event)
		if err != nil {
			return err
		}
		return p.handleUnstaked(ctx, event, guild)
	case domain.EventTypeRewardPaid:
		guild, err := p.guild(event)
		if err != nil {
			return err
		}
		return p.handleRewardPaid(ctx, event, guild)
	case domain.EventTypeAppraiseGuildMember:
		guild, err := p.guild(event)
		if err != nil {
			return err
		}
		return p.handleAppraiseGuildMember(ctx, event, guild)
	case domain.EventTypeWhitelistedNFTReaction:
		guild, err := p.guild(event)
		if err != nil {
			return err
		}
		return p.handleWhitelistedNFTReaction(ctx, event, guild)
	case domain.EventTypeAddWhitelistedTokens:
		return p.handleAddWhitelistedTokens(ctx, event)
	default:
		return fmt.Errorf("%w: type=%s", domain.ErrInvalidEvent, event.EventType)
	}
}

func (p *Projector) guild(event *domain.Event) (domain.Guild, error) {
	guild, ok := p.guilds.ByName(event.Guild)
	if !ok {
		return domain.Guild{}, fmt.Errorf("%w: %s", domain.ErrUnknownGuild, event.Guild)
	}
	return guild, nil
}

// appendUnique appends v unless the list already contains it. The dedup
// guard makes event replay idempotent.
func appendUnique(list []string, v string) []string {
	for _, item := range list {
		if item == v {
			return list
		}
	}
	return append(list, v)
}

// removeString removes every occurrence of v, preserving order.
func removeString(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
