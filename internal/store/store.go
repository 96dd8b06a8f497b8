package store

import (
	"context"

	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetGarment retrieves a garment by token id, nil when absent
	GetGarment(ctx context.Context, tokenID string) (*schema.Garment, error)
	// SaveGarment creates or updates a garment
	SaveGarment(ctx context.Context, garment *schema.Garment) error
	// DeleteGarment removes a garment and its attribute rows
	DeleteGarment(ctx context.Context, tokenID string) error
	// ReplaceGarmentAttributes swaps a garment's attribute rows wholesale
	ReplaceGarmentAttributes(ctx context.Context, tokenID string, attributes []schema.GarmentAttribute) error
	// ListGarments retrieves garments ordered by token id
	ListGarments(ctx context.Context, limit int, offset int) ([]schema.Garment, int64, error)
	// GetGarmentAttributes retrieves a garment's attribute rows
	GetGarmentAttributes(ctx context.Context, tokenID string) ([]schema.GarmentAttribute, error)

	// GetCollector retrieves a collector by address, nil when absent
	GetCollector(ctx context.Context, address string) (*schema.Collector, error)
	// GetOrCreateCollector loads a collector or initializes one with empty
	// lists
	GetOrCreateCollector(ctx context.Context, address string) (*schema.Collector, error)
	// SaveCollector creates or updates a collector
	SaveCollector(ctx context.Context, collector *schema.Collector) error
	// ListCollectors retrieves collectors ordered by address
	ListCollectors(ctx context.Context, limit int, offset int) ([]schema.Collector, int64, error)

	// GetStaker retrieves a staker by guild and address, nil when absent
	GetStaker(ctx context.Context, guild, address string) (*schema.Staker, error)
	// GetOrCreateStaker loads a staker or initializes one with zeroed
	// counters
	GetOrCreateStaker(ctx context.Context, guild, address string) (*schema.Staker, error)
	// SaveStaker creates or updates a staker
	SaveStaker(ctx context.Context, staker *schema.Staker) error
	// ListStakers retrieves a guild's stakers ordered by address
	ListStakers(ctx context.Context, guild string, limit int, offset int) ([]schema.Staker, int64, error)

	// SaveWeightSnapshot creates or overwrites the snapshot row for its
	// staker-day key
	SaveWeightSnapshot(ctx context.Context, snapshot *schema.WeightSnapshot) error
	// ListWeightSnapshots retrieves a staker's snapshots ordered by day
	ListWeightSnapshots(ctx context.Context, guild, address string) ([]schema.WeightSnapshot, error)

	// AppendClapHistory appends a clap history row
	AppendClapHistory(ctx context.Context, row *schema.ClapHistory) error
	// ListClapHistory retrieves a staker's clap history ordered by time
	ListClapHistory(ctx context.Context, guild, address string) ([]schema.ClapHistory, error)

	// GetWhitelistedToken retrieves a registry row by address, nil when
	// absent
	GetWhitelistedToken(ctx context.Context, address string) (*schema.WhitelistedToken, error)
	// UpsertWhitelistedToken registers a contract, idempotently
	UpsertWhitelistedToken(ctx context.Context, token *schema.WhitelistedToken) error
	// ListWhitelistedTokens retrieves every registered contract
	ListWhitelistedTokens(ctx context.Context) ([]schema.WhitelistedToken, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
