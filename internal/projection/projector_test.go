package projection_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/digitalax/dlx-indexer/internal/adapter"
	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/metadata"
	"github.com/digitalax/dlx-indexer/internal/mocks"
	"github.com/digitalax/dlx-indexer/internal/projection"
	"github.com/digitalax/dlx-indexer/internal/store"
)

const (
	garmentContract    = "0x1111111111111111111111111111111111111111"
	gdnStakingContract = "0x2222222222222222222222222222222222222222"
	gdnWeightContract  = "0x3333333333333333333333333333333333333333"
	nftStakingContract = "0x4444444444444444444444444444444444444444"
	nftWeightContract  = "0x5555555555555555555555555555555555555555"

	alice = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	bob   = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	// weight contract start time, a fixed anchor for day derivation
	startTime = uint64(1600000000)
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testEnv struct {
	projector *projection.Projector
	store     store.Store
	caller    *mocks.MockCaller
	fetcher   *mocks.MockFetcher
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller) *testEnv {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	st := store.NewPGStore(db)
	mockCaller := mocks.NewMockCaller(ctrl)
	mockFetcher := mocks.NewMockFetcher(ctrl)

	guilds := domain.NewGuildSet([]domain.Guild{
		{
			Name:            "gdn",
			Mode:            domain.GuildModeMember,
			StakingContract: gdnStakingContract,
			WeightContract:  gdnWeightContract,
		},
		{
			Name:                       "minecraft",
			Mode:                       domain.GuildModeWhitelistedNFT,
			StakingContract:            nftStakingContract,
			WhitelistedStakingContract: nftStakingContract,
			WeightContract:             nftWeightContract,
		},
	})

	return &testEnv{
		projector: projection.NewProjector(st, mockCaller, mockFetcher, guilds, adapter.NewClock()),
		store:     st,
		caller:    mockCaller,
		fetcher:   mockFetcher,
	}
}

// dayTime returns a block timestamp n days plus a few seconds after the
// weight contract start time
func dayTime(day int64) time.Time {
	return time.Unix(int64(startTime)+day*domain.SecondsPerDay+100, 0)
}

func transferEvent(tokenID string, from, to *string) *domain.Event {
	return &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: garmentContract,
		EventType:       domain.EventTypeTransfer,
		FromAddress:     from,
		ToAddress:       to,
		TokenID:         tokenID,
		TxHash:          "0xtx",
		BlockNumber:     100,
		Timestamp:       dayTime(0),
	}
}

func stakingEvent(eventType domain.EventType, guild, contract, account, tokenID string, ts time.Time) *domain.Event {
	return &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: contract,
		EventType:       eventType,
		Guild:           guild,
		Account:         account,
		TokenID:         tokenID,
		TxHash:          "0xtx",
		BlockNumber:     100,
		Timestamp:       ts,
	}
}

func addr(s string) *string { return &s }

// expectMemberWeight wires the weight refresh calls for the gdn guild
func (env *testEnv) expectMemberWeight(weight, total string) {
	env.caller.EXPECT().TryStartTime(gomock.Any(), gdnWeightContract).Return(startTime, true).AnyTimes()
	env.caller.EXPECT().TryCalcNewOwnerWeight(gomock.Any(), gdnWeightContract, gomock.Any()).Return(weight, true).AnyTimes()
	env.caller.EXPECT().TryCalcNewWeight(gomock.Any(), gdnWeightContract).Return(total, true).AnyTimes()
}

func TestHandle_Mint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	raw := json.RawMessage(`{"name":"X","description":"Y","attributes":[{"trait_type":"Designer","value":"Z"}]}`)
	env.caller.
		EXPECT().
		TryTokenURI(gomock.Any(), garmentContract, "9").
		Return("ipfs://QmGarment/9.json", true)
	env.fetcher.
		EXPECT().
		Fetch(gomock.Any(), "ipfs://QmGarment/9.json").
		Return(&metadata.Garment{
			Name:        "X",
			Description: "Y",
			Attributes: []metadata.Attribute{
				{TraitType: "Designer", Value: "Z"},
			},
			Raw:  raw,
			Hash: "deadbeef",
		}, true)

	err := env.projector.Handle(ctx, transferEvent("9", nil, addr(alice)))
	require.NoError(t, err)

	garment, err := env.store.GetGarment(ctx, "9")
	require.NoError(t, err)
	require.NotNil(t, garment)
	assert.Equal(t, "X", garment.Name)
	assert.Equal(t, "Y", garment.Description)
	assert.Equal(t, "Z", garment.Designer)
	assert.Equal(t, "ipfs://QmGarment/9.json", garment.TokenURI)
	assert.Equal(t, "deadbeef", garment.MetadataHash)
	require.NotNil(t, garment.Owner)
	assert.Equal(t, alice, *garment.Owner)

	attributes, err := env.store.GetGarmentAttributes(ctx, "9")
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "9-0", attributes[0].ID)
	assert.Equal(t, "Designer", attributes[0].TraitType)
	assert.Equal(t, "Z", attributes[0].Value)

	collector, err := env.store.GetCollector(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, collector)
	assert.Equal(t, []string{"9"}, []string(collector.Garments))
}

func TestHandle_Mint_MetadataUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.
		EXPECT().
		TryTokenURI(gomock.Any(), garmentContract, "9").
		Return("https://example.com/9.json", true)
	env.fetcher.
		EXPECT().
		Fetch(gomock.Any(), "https://example.com/9.json").
		Return(nil, false)

	err := env.projector.Handle(ctx, transferEvent("9", nil, addr(alice)))
	require.NoError(t, err)

	garment, err := env.store.GetGarment(ctx, "9")
	require.NoError(t, err)
	require.NotNil(t, garment)
	assert.Empty(t, garment.Name)
	assert.Empty(t, garment.Description)
	assert.Equal(t, "https://example.com/9.json", garment.TokenURI)

	attributes, err := env.store.GetGarmentAttributes(ctx, "9")
	require.NoError(t, err)
	assert.Empty(t, attributes)
}

func TestHandle_Transfer_MovesTokenBetweenCollectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryTokenURI(gomock.Any(), garmentContract, "9").Return("", false)

	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", nil, addr(alice))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(alice), addr(bob))))

	garment, err := env.store.GetGarment(ctx, "9")
	require.NoError(t, err)
	require.NotNil(t, garment.Owner)
	assert.Equal(t, bob, *garment.Owner)

	fromCollector, err := env.store.GetCollector(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, []string(fromCollector.Garments))

	toCollector, err := env.store.GetCollector(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, []string(toCollector.Garments))
}

func TestHandle_Transfer_ReplayDoesNotDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryTokenURI(gomock.Any(), garmentContract, "9").Return("", false)

	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", nil, addr(alice))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(alice), addr(bob))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(alice), addr(bob))))

	toCollector, err := env.store.GetCollector(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, []string(toCollector.Garments))
}

func TestHandle_Burn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	raw := json.RawMessage(`{"name":"X","attributes":[{"trait_type":"Designer","value":"Z"}]}`)
	env.caller.EXPECT().TryTokenURI(gomock.Any(), garmentContract, "9").Return("ipfs://QmGarment/9.json", true)
	env.fetcher.EXPECT().Fetch(gomock.Any(), "ipfs://QmGarment/9.json").Return(&metadata.Garment{
		Name:       "X",
		Attributes: []metadata.Attribute{{TraitType: "Designer", Value: "Z"}},
		Raw:        raw,
	}, true)

	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", nil, addr(alice))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(alice), nil)))

	garment, err := env.store.GetGarment(ctx, "9")
	require.NoError(t, err)
	assert.Nil(t, garment)

	// attribute rows go with the garment
	attributes, err := env.store.GetGarmentAttributes(ctx, "9")
	require.NoError(t, err)
	assert.Empty(t, attributes)

	collector, err := env.store.GetCollector(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, []string(collector.Garments))
}

func TestHandle_SingleOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryTokenURI(gomock.Any(), garmentContract, "9").Return("", false)

	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", nil, addr(alice))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(alice), addr(bob))))
	require.NoError(t, env.projector.Handle(ctx, transferEvent("9", addr(bob), addr(alice))))

	// after any number of transfers the token id lives in exactly one list
	collectors, _, err := env.store.ListCollectors(ctx, 10, 0)
	require.NoError(t, err)
	holders := 0
	for _, c := range collectors {
		for _, id := range c.Garments {
			if id == "9" {
				holders++
			}
		}
	}
	assert.Equal(t, 1, holders)
}

func TestHandle_PrimarySalePriceSet_LazyCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryTokenURI(gomock.Any(), garmentContract, "12").Return("", false)

	event := &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: garmentContract,
		EventType:       domain.EventTypePrimarySalePriceSet,
		TokenID:         "12",
		Amount:          "120000000000000000000",
		TxHash:          "0xtx",
		BlockNumber:     100,
		Timestamp:       dayTime(0),
	}
	require.NoError(t, env.projector.Handle(ctx, event))

	garment, err := env.store.GetGarment(ctx, "12")
	require.NoError(t, err)
	require.NotNil(t, garment)
	assert.Equal(t, "120000000000000000000", garment.PrimarySalePrice)
	assert.Nil(t, garment.Owner)
}

func TestHandle_PrimarySalePriceSet_LazyCreateWithMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	raw := json.RawMessage(`{"name":"X","attributes":[{"trait_type":"Designer","value":"Z"}]}`)
	env.caller.
		EXPECT().
		TryTokenURI(gomock.Any(), garmentContract, "42").
		Return("ipfs://QmGarment/42.json", true)
	env.fetcher.
		EXPECT().
		Fetch(gomock.Any(), "ipfs://QmGarment/42.json").
		Return(&metadata.Garment{
			Name:       "X",
			Attributes: []metadata.Attribute{{TraitType: "Designer", Value: "Z"}},
			Raw:        raw,
		}, true)

	// the price event lands before the mint was indexed; the garment and
	// its attribute rows must both come out of this one event
	event := &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: garmentContract,
		EventType:       domain.EventTypePrimarySalePriceSet,
		TokenID:         "42",
		Amount:          "5000000000000000000",
		TxHash:          "0xtx",
		BlockNumber:     100,
		Timestamp:       dayTime(0),
	}
	require.NoError(t, env.projector.Handle(ctx, event))

	garment, err := env.store.GetGarment(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, garment)
	assert.Equal(t, "5000000000000000000", garment.PrimarySalePrice)
	assert.Equal(t, "X", garment.Name)
	assert.Equal(t, "Z", garment.Designer)

	attributes, err := env.store.GetGarmentAttributes(ctx, "42")
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "Designer", attributes[0].TraitType)
}

func TestHandle_Staked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.expectMemberWeight("50", "200")

	event := stakingEvent(domain.EventTypeStaked, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, event))

	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	require.NotNil(t, staker)
	assert.Equal(t, []string{"5"}, []string(staker.StakedTokens))
	assert.Equal(t, "50", staker.Weight)

	snapshots, err := env.store.ListWeightSnapshots(ctx, "gdn", alice)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, int64(3), snapshots[0].Day)
	assert.Equal(t, "50", snapshots[0].Weight)
	assert.Equal(t, "200", snapshots[0].TotalWeight)
}

func TestHandle_EmergencyUnstake_ReplacesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.expectMemberWeight("0", "200")

	staked := stakingEvent(domain.EventTypeStaked, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, staked))

	// the chain's view call is ground truth for the new list
	env.caller.
		EXPECT().
		TryStakedTokens(gomock.Any(), gdnStakingContract, alice).
		Return([]string{}, true)

	unstaked := stakingEvent(domain.EventTypeEmergencyUnstake, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, unstaked))

	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Empty(t, []string(staker.StakedTokens))
}

func TestHandle_Unstaked_ViewCallFailureKeepsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.expectMemberWeight("10", "200")

	staked := stakingEvent(domain.EventTypeStaked, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, staked))

	env.caller.
		EXPECT().
		TryStakedTokens(gomock.Any(), gdnStakingContract, alice).
		Return(nil, false)

	unstaked := stakingEvent(domain.EventTypeUnstaked, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, unstaked))

	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, []string(staker.StakedTokens))
}

func TestHandle_RewardPaid_Accumulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.expectMemberWeight("10", "200")

	reward := func(amount string) *domain.Event {
		e := stakingEvent(domain.EventTypeRewardPaid, "gdn", gdnStakingContract, alice, "", dayTime(3))
		e.Amount = amount
		return e
	}

	require.NoError(t, env.projector.Handle(ctx, reward("1000000000000000000")))
	require.NoError(t, env.projector.Handle(ctx, reward("500000000000000000")))

	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", staker.TotalRewards)
}

func TestHandle_WeightSnapshotAcrossDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryStartTime(gomock.Any(), gdnWeightContract).Return(startTime, true).AnyTimes()
	env.caller.EXPECT().TryCalcNewWeight(gomock.Any(), gdnWeightContract).Return("1000", true).AnyTimes()

	weights := []string{"10", "20", "30"}
	call := 0
	env.caller.
		EXPECT().
		TryCalcNewOwnerWeight(gomock.Any(), gdnWeightContract, alice).
		DoAndReturn(func(context.Context, string, string) (string, bool) {
			w := weights[call]
			call++
			return w, true
		}).
		Times(3)

	reward := func(ts time.Time) *domain.Event {
		e := stakingEvent(domain.EventTypeRewardPaid, "gdn", gdnStakingContract, alice, "", ts)
		e.Amount = "1"
		return e
	}

	// two touches on day 3 overwrite in place, day 4 appends
	require.NoError(t, env.projector.Handle(ctx, reward(dayTime(3))))
	require.NoError(t, env.projector.Handle(ctx, reward(dayTime(3).Add(time.Hour))))
	require.NoError(t, env.projector.Handle(ctx, reward(dayTime(4))))

	snapshots, err := env.store.ListWeightSnapshots(ctx, "gdn", alice)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, int64(3), snapshots[0].Day)
	assert.Equal(t, "20", snapshots[0].Weight)
	assert.Equal(t, int64(4), snapshots[1].Day)
	assert.Equal(t, "30", snapshots[1].Weight)
}

func TestHandle_StartTimeUnavailableSkipsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryStartTime(gomock.Any(), gdnWeightContract).Return(uint64(0), false)
	env.caller.EXPECT().TryCalcNewOwnerWeight(gomock.Any(), gdnWeightContract, alice).Return("50", true)
	env.caller.EXPECT().TryCalcNewWeight(gomock.Any(), gdnWeightContract).Return("200", true)

	event := stakingEvent(domain.EventTypeStaked, "gdn", gdnStakingContract, alice, "5", dayTime(3))
	require.NoError(t, env.projector.Handle(ctx, event))

	// the weight still updates, but no snapshot lands on a guessed day key
	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Equal(t, "50", staker.Weight)

	snapshots, err := env.store.ListWeightSnapshots(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestHandle_StartTimeReadOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryStartTime(gomock.Any(), gdnWeightContract).Return(startTime, true).Times(1)
	env.caller.EXPECT().TryCalcNewOwnerWeight(gomock.Any(), gdnWeightContract, alice).Return("10", true).AnyTimes()
	env.caller.EXPECT().TryCalcNewWeight(gomock.Any(), gdnWeightContract).Return("100", true).AnyTimes()

	reward := func(ts time.Time) *domain.Event {
		e := stakingEvent(domain.EventTypeRewardPaid, "gdn", gdnStakingContract, alice, "", ts)
		e.Amount = "1"
		return e
	}

	require.NoError(t, env.projector.Handle(ctx, reward(dayTime(3))))
	require.NoError(t, env.projector.Handle(ctx, reward(dayTime(4))))

	snapshots, err := env.store.ListWeightSnapshots(ctx, "gdn", alice)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, int64(3), snapshots[0].Day)
	assert.Equal(t, int64(4), snapshots[1].Day)
}

func TestHandle_AppraiseGuildMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.expectMemberWeight("10", "200")

	appraise := func(reaction string, ts time.Time) *domain.Event {
		e := stakingEvent(domain.EventTypeAppraiseGuildMember, "gdn", gdnStakingContract, alice, "", ts)
		e.Reaction = reaction
		return e
	}

	require.NoError(t, env.projector.Handle(ctx, appraise("Clap", dayTime(3))))
	require.NoError(t, env.projector.Handle(ctx, appraise("Clap", dayTime(3).Add(time.Minute))))
	require.NoError(t, env.projector.Handle(ctx, appraise("Love", dayTime(3).Add(2*time.Minute))))

	staker, err := env.store.GetStaker(ctx, "gdn", alice)
	require.NoError(t, err)
	assert.Equal(t, "2", staker.Claps)
	assert.Equal(t, "1", staker.Appraisals)

	history, err := env.store.ListClapHistory(ctx, "gdn", alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1", history[0].Claps)
	assert.Equal(t, "2", history[1].Claps)
}

func TestHandle_WhitelistedNFTReaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.caller.EXPECT().TryStartTime(gomock.Any(), nftWeightContract).Return(startTime, true).AnyTimes()
	env.caller.EXPECT().TryCalcNewWhitelistedNFTOwnerWeight(gomock.Any(), nftWeightContract, alice).Return("77", true).AnyTimes()
	env.caller.EXPECT().TryCalcNewTotalWhitelistedNFTWeight(gomock.Any(), nftWeightContract).Return("500", true).AnyTimes()

	react := func(reaction, quantity string) *domain.Event {
		return &domain.Event{
			Chain:           domain.ChainPolygonMainnet,
			ContractAddress: nftStakingContract,
			EventType:       domain.EventTypeWhitelistedNFTReaction,
			Guild:           "minecraft",
			Account:         alice,
			TokenContract:   "0x6666666666666666666666666666666666666666",
			TokenID:         "1",
			Reaction:        reaction,
			Quantity:        quantity,
			TxHash:          "0xtx",
			BlockNumber:     100,
			Timestamp:       dayTime(5),
		}
	}

	require.NoError(t, env.projector.Handle(ctx, react("Favorite", "3")))
	require.NoError(t, env.projector.Handle(ctx, react("Follow", "1")))
	require.NoError(t, env.projector.Handle(ctx, react("Share", "2")))
	require.NoError(t, env.projector.Handle(ctx, react("Metaverse", "4")))
	require.NoError(t, env.projector.Handle(ctx, react("Favorite", "1")))

	staker, err := env.store.GetStaker(ctx, "minecraft", alice)
	require.NoError(t, err)
	assert.Equal(t, "4", staker.Favorites)
	assert.Equal(t, "1", staker.Follows)
	assert.Equal(t, "2", staker.Shares)
	assert.Equal(t, "4", staker.MetaverseVisits)
	assert.Equal(t, "77", staker.Weight)
}

func TestHandle_AddWhitelistedTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	named := "0x7777777777777777777777777777777777777777"
	nameless := "0x8888888888888888888888888888888888888888"

	env.caller.EXPECT().TryName(gomock.Any(), named).Return("CryptoKicks", true).Times(2)
	env.caller.EXPECT().TryName(gomock.Any(), nameless).Return("", false)

	event := &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: nftStakingContract,
		EventType:       domain.EventTypeAddWhitelistedTokens,
		TokenContracts:  []string{named, nameless},
		TxHash:          "0xtx",
		BlockNumber:     100,
		Timestamp:       dayTime(0),
	}
	require.NoError(t, env.projector.Handle(ctx, event))

	// registration is idempotent
	replay := &domain.Event{
		Chain:           domain.ChainPolygonMainnet,
		ContractAddress: nftStakingContract,
		EventType:       domain.EventTypeAddWhitelistedTokens,
		TokenContracts:  []string{named},
		TxHash:          "0xtx",
		BlockNumber:     101,
		Timestamp:       dayTime(0),
	}
	require.NoError(t, env.projector.Handle(ctx, replay))

	tokens, err := env.store.ListWhitelistedTokens(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	token, err := env.store.GetWhitelistedToken(ctx, named)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "CryptoKicks", token.Name)
}

func TestHandle_InvalidEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	event := &domain.Event{
		Chain:     "eip155:999",
		EventType: domain.EventTypeTransfer,
		TokenID:   "1",
		TxHash:    "0xtx",
	}
	err := env.projector.Handle(context.Background(), event)
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
}

func TestHandle_UnknownGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	event := stakingEvent(domain.EventTypeStaked, "nosuchguild", gdnStakingContract, alice, "5", dayTime(0))
	err := env.projector.Handle(context.Background(), event)
	assert.ErrorIs(t, err, domain.ErrUnknownGuild)
}
