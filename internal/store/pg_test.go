package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/digitalax/dlx-indexer/internal/store"
	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

func newTestStore(t *testing.T) store.Store {
	// foreign keys on, so the attribute -> garment constraint is enforced
	// like it is on Postgres
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return store.NewPGStore(db)
}

func TestGarmentLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// missing ids load as nil, not as an error
	garment, err := s.GetGarment(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, garment)

	owner := "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	require.NoError(t, s.SaveGarment(ctx, &schema.Garment{
		TokenID:          "1",
		Owner:            &owner,
		Name:             "Hoodie",
		PrimarySalePrice: "0",
	}))
	require.NoError(t, s.ReplaceGarmentAttributes(ctx, "1", []schema.GarmentAttribute{
		{ID: "1-0", TokenID: "1", TraitType: "Designer", Value: "Z"},
		{ID: "1-1", TokenID: "1", TraitType: "Color", Value: "Black"},
	}))

	garment, err = s.GetGarment(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, garment)
	assert.Equal(t, "Hoodie", garment.Name)

	attributes, err := s.GetGarmentAttributes(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, attributes, 2)

	// replace is wholesale, not additive
	require.NoError(t, s.ReplaceGarmentAttributes(ctx, "1", []schema.GarmentAttribute{
		{ID: "1-0", TokenID: "1", TraitType: "Designer", Value: "W"},
	}))
	attributes, err = s.GetGarmentAttributes(ctx, "1")
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "W", attributes[0].Value)

	require.NoError(t, s.DeleteGarment(ctx, "1"))

	garment, err = s.GetGarment(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, garment)

	attributes, err = s.GetGarmentAttributes(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, attributes)
}

func TestGetOrCreateCollector_Defaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	collector, err := s.GetOrCreateCollector(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	require.NotNil(t, collector)

	// empty collections, never null
	assert.NotNil(t, collector.Garments)
	assert.NotNil(t, collector.Children)
	assert.Empty(t, collector.Garments)

	collector.Garments = append(collector.Garments, "7")
	require.NoError(t, s.SaveCollector(ctx, collector))

	again, err := s.GetOrCreateCollector(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, []string(again.Garments))
}

func TestGetOrCreateStaker_Defaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	staker, err := s.GetOrCreateStaker(ctx, "gdn", "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	require.NoError(t, err)
	require.NotNil(t, staker)

	assert.Equal(t, "gdn:0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", staker.ID)
	assert.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", staker.Address)
	assert.Empty(t, staker.StakedTokens)
	assert.Equal(t, "0", staker.TotalRewards)
	assert.Equal(t, "0", staker.Claps)
	assert.Equal(t, "0", staker.Weight)
}

func TestSaveWeightSnapshot_SameDayOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Unix(1600000000, 0)
	first := &schema.WeightSnapshot{
		ID:          "gdn:0xaaaa:3",
		Guild:       "gdn",
		Address:     "0xaaaa",
		Day:         3,
		Weight:      "10",
		TotalWeight: "100",
		Timestamp:   base,
	}
	require.NoError(t, s.SaveWeightSnapshot(ctx, first))

	second := &schema.WeightSnapshot{
		ID:          "gdn:0xaaaa:3",
		Guild:       "gdn",
		Address:     "0xaaaa",
		Day:         3,
		Weight:      "20",
		TotalWeight: "120",
		Timestamp:   base.Add(time.Hour),
	}
	require.NoError(t, s.SaveWeightSnapshot(ctx, second))

	third := &schema.WeightSnapshot{
		ID:          "gdn:0xaaaa:4",
		Guild:       "gdn",
		Address:     "0xaaaa",
		Day:         4,
		Weight:      "30",
		TotalWeight: "130",
		Timestamp:   base.Add(25 * time.Hour),
	}
	require.NoError(t, s.SaveWeightSnapshot(ctx, third))

	snapshots, err := s.ListWeightSnapshots(ctx, "gdn", "0xaaaa")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "20", snapshots[0].Weight)
	assert.Equal(t, "120", snapshots[0].TotalWeight)
	assert.Equal(t, int64(4), snapshots[1].Day)
}

func TestAppendClapHistory_ReplayIgnored(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	row := &schema.ClapHistory{
		ID:        "gdn:0xaaaa:1600000000",
		Guild:     "gdn",
		Address:   "0xaaaa",
		Claps:     "1",
		Timestamp: time.Unix(1600000000, 0),
	}
	require.NoError(t, s.AppendClapHistory(ctx, row))
	require.NoError(t, s.AppendClapHistory(ctx, row))

	rows, err := s.ListClapHistory(ctx, "gdn", "0xaaaa")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpsertWhitelistedToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	token := &schema.WhitelistedToken{
		Address: "0x7777777777777777777777777777777777777777",
	}
	require.NoError(t, s.UpsertWhitelistedToken(ctx, token))

	// a later registration may fill in the name
	named := &schema.WhitelistedToken{
		Address: "0x7777777777777777777777777777777777777777",
		Name:    "CryptoKicks",
	}
	require.NoError(t, s.UpsertWhitelistedToken(ctx, named))

	tokens, err := s.ListWhitelistedTokens(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "CryptoKicks", tokens[0].Name)
}

func TestBlockCursor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cursor, err := s.GetBlockCursor(ctx, "eip155:137")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)

	require.NoError(t, s.SetBlockCursor(ctx, "eip155:137", 12345678))
	require.NoError(t, s.SetBlockCursor(ctx, "eip155:137", 12345700))

	cursor, err = s.GetBlockCursor(ctx, "eip155:137")
	require.NoError(t, err)
	assert.Equal(t, uint64(12345700), cursor)

	// cursors are per chain
	other, err := s.GetBlockCursor(ctx, "eip155:1")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), other)
}

func TestListGarments_Pagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.SaveGarment(ctx, &schema.Garment{TokenID: id, PrimarySalePrice: "0"}))
	}
	require.NoError(t, s.ReplaceGarmentAttributes(ctx, "1", []schema.GarmentAttribute{
		{ID: "1-0", TokenID: "1", TraitType: "Designer", Value: "Z"},
	}))

	garments, total, err := s.ListGarments(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, garments, 2)

	// attribute rows come along with the listing
	require.Len(t, garments[0].Attributes, 1)
	assert.Equal(t, "Designer", garments[0].Attributes[0].TraitType)
	assert.Empty(t, garments[1].Attributes)

	garments, total, err = s.ListGarments(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, garments, 1)
}
