package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the projection tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Collector{},
		&schema.Garment{},
		&schema.GarmentAttribute{},
		&schema.Staker{},
		&schema.WeightSnapshot{},
		&schema.ClapHistory{},
		&schema.WhitelistedToken{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero settings fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetGarment retrieves a garment by token id, nil when absent
func (s *pgStore) GetGarment(ctx context.Context, tokenID string) (*schema.Garment, error) {
	var garment schema.Garment
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&garment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}
	return &garment, nil
}

// SaveGarment creates or updates a garment
func (s *pgStore) SaveGarment(ctx context.Context, garment *schema.Garment) error {
	if err := s.db.WithContext(ctx).Save(garment).Error; err != nil {
		return fmt.Errorf("failed to save garment: %w", err)
	}
	return nil
}

// DeleteGarment removes a garment and its attribute rows in one transaction
func (s *pgStore) DeleteGarment(ctx context.Context, tokenID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token_id = ?", tokenID).Delete(&schema.GarmentAttribute{}).Error; err != nil {
			return fmt.Errorf("failed to delete garment attributes: %w", err)
		}
		if err := tx.Where("token_id = ?", tokenID).Delete(&schema.Garment{}).Error; err != nil {
			return fmt.Errorf("failed to delete garment: %w", err)
		}
		return nil
	})
}

// ReplaceGarmentAttributes swaps a garment's attribute rows wholesale
func (s *pgStore) ReplaceGarmentAttributes(ctx context.Context, tokenID string, attributes []schema.GarmentAttribute) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token_id = ?", tokenID).Delete(&schema.GarmentAttribute{}).Error; err != nil {
			return fmt.Errorf("failed to delete garment attributes: %w", err)
		}
		if len(attributes) == 0 {
			return nil
		}
		if err := tx.Create(&attributes).Error; err != nil {
			return fmt.Errorf("failed to create garment attributes: %w", err)
		}
		return nil
	})
}

// ListGarments retrieves garments ordered by token id
func (s *pgStore) ListGarments(ctx context.Context, limit int, offset int) ([]schema.Garment, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Garment{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count garments: %w", err)
	}

	var garments []schema.Garment
	err := s.db.WithContext(ctx).
		Preload("Attributes").
		Order("token_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&garments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list garments: %w", err)
	}

	return garments, total, nil
}

// GetGarmentAttributes retrieves a garment's attribute rows
func (s *pgStore) GetGarmentAttributes(ctx context.Context, tokenID string) ([]schema.GarmentAttribute, error) {
	var attributes []schema.GarmentAttribute
	err := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("id ASC").
		Find(&attributes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get garment attributes: %w", err)
	}
	return attributes, nil
}

// GetCollector retrieves a collector by address, nil when absent
func (s *pgStore) GetCollector(ctx context.Context, address string) (*schema.Collector, error) {
	var collector schema.Collector
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&collector).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collector: %w", err)
	}
	return &collector, nil
}

// GetOrCreateCollector loads a collector or initializes one with empty lists
func (s *pgStore) GetOrCreateCollector(ctx context.Context, address string) (*schema.Collector, error) {
	collector, err := s.GetCollector(ctx, address)
	if err != nil {
		return nil, err
	}
	if collector != nil {
		return collector, nil
	}

	collector = &schema.Collector{
		Address:  address,
		Garments: datatypes.JSONSlice[string]{},
		Children: datatypes.JSONSlice[string]{},
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(collector).Error; err != nil {
		return nil, fmt.Errorf("failed to create collector: %w", err)
	}

	return collector, nil
}

// SaveCollector creates or updates a collector
func (s *pgStore) SaveCollector(ctx context.Context, collector *schema.Collector) error {
	if err := s.db.WithContext(ctx).Save(collector).Error; err != nil {
		return fmt.Errorf("failed to save collector: %w", err)
	}
	return nil
}

// ListCollectors retrieves collectors ordered by address
func (s *pgStore) ListCollectors(ctx context.Context, limit int, offset int) ([]schema.Collector, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Collector{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collectors: %w", err)
	}

	var collectors []schema.Collector
	err := s.db.WithContext(ctx).
		Order("address ASC").
		Limit(limit).
		Offset(offset).
		Find(&collectors).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list collectors: %w", err)
	}

	return collectors, total, nil
}

// GetStaker retrieves a staker by guild and address, nil when absent
func (s *pgStore) GetStaker(ctx context.Context, guild, address string) (*schema.Staker, error) {
	var staker schema.Staker
	err := s.db.WithContext(ctx).Where("id = ?", domain.StakerID(guild, address)).First(&staker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staker: %w", err)
	}
	return &staker, nil
}

// GetOrCreateStaker loads a staker or initializes one with zeroed counters
func (s *pgStore) GetOrCreateStaker(ctx context.Context, guild, address string) (*schema.Staker, error) {
	staker, err := s.GetStaker(ctx, guild, address)
	if err != nil {
		return nil, err
	}
	if staker != nil {
		return staker, nil
	}

	staker = &schema.Staker{
		ID:              domain.StakerID(guild, address),
		Guild:           guild,
		Address:         domain.NormalizeAddress(address),
		StakedTokens:    datatypes.JSONSlice[string]{},
		TotalRewards:    "0",
		Appraisals:      "0",
		Claps:           "0",
		Favorites:       "0",
		Follows:         "0",
		Shares:          "0",
		MetaverseVisits: "0",
		Weight:          "0",
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(staker).Error; err != nil {
		return nil, fmt.Errorf("failed to create staker: %w", err)
	}

	return staker, nil
}

// SaveStaker creates or updates a staker
func (s *pgStore) SaveStaker(ctx context.Context, staker *schema.Staker) error {
	if err := s.db.WithContext(ctx).Save(staker).Error; err != nil {
		return fmt.Errorf("failed to save staker: %w", err)
	}
	return nil
}

// ListStakers retrieves a guild's stakers ordered by address
func (s *pgStore) ListStakers(ctx context.Context, guild string, limit int, offset int) ([]schema.Staker, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Staker{}).Where("guild = ?", guild).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stakers: %w", err)
	}

	var stakers []schema.Staker
	err := s.db.WithContext(ctx).
		Where("guild = ?", guild).
		Order("address ASC").
		Limit(limit).
		Offset(offset).
		Find(&stakers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stakers: %w", err)
	}

	return stakers, total, nil
}

// SaveWeightSnapshot creates or overwrites the snapshot row for its
// staker-day key
func (s *pgStore) SaveWeightSnapshot(ctx context.Context, snapshot *schema.WeightSnapshot) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight", "total_weight", "timestamp"}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to save weight snapshot: %w", err)
	}
	return nil
}

// ListWeightSnapshots retrieves a staker's snapshots ordered by day
func (s *pgStore) ListWeightSnapshots(ctx context.Context, guild, address string) ([]schema.WeightSnapshot, error) {
	var snapshots []schema.WeightSnapshot
	err := s.db.WithContext(ctx).
		Where("guild = ? AND address = ?", guild, address).
		Order("day ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list weight snapshots: %w", err)
	}
	return snapshots, nil
}

// AppendClapHistory appends a clap history row. Replays of the same event
// hit the same primary key and are ignored.
func (s *pgStore) AppendClapHistory(ctx context.Context, row *schema.ClapHistory) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to append clap history: %w", err)
	}
	return nil
}

// ListClapHistory retrieves a staker's clap history ordered by time
func (s *pgStore) ListClapHistory(ctx context.Context, guild, address string) ([]schema.ClapHistory, error) {
	var rows []schema.ClapHistory
	err := s.db.WithContext(ctx).
		Where("guild = ? AND address = ?", guild, address).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clap history: %w", err)
	}
	return rows, nil
}

// GetWhitelistedToken retrieves a registry row by address, nil when absent
func (s *pgStore) GetWhitelistedToken(ctx context.Context, address string) (*schema.WhitelistedToken, error) {
	var token schema.WhitelistedToken
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get whitelisted token: %w", err)
	}
	return &token, nil
}

// UpsertWhitelistedToken registers a contract, idempotently
func (s *pgStore) UpsertWhitelistedToken(ctx context.Context, token *schema.WhitelistedToken) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(token).Error
	if err != nil {
		return fmt.Errorf("failed to upsert whitelisted token: %w", err)
	}
	return nil
}

// ListWhitelistedTokens retrieves every registered contract
func (s *pgStore) ListWhitelistedTokens(ctx context.Context) ([]schema.WhitelistedToken, error) {
	var tokens []schema.WhitelistedToken
	err := s.db.WithContext(ctx).Order("address ASC").Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelisted tokens: %w", err)
	}
	return tokens, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)
	value := strconv.FormatUint(blockNumber, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
