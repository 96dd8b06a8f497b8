package ethereum_test

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/mocks"
	"github.com/digitalax/dlx-indexer/internal/providers/ethereum"
)

const (
	garmentContract = "0x1111111111111111111111111111111111111111"
	stakingContract = "0x2222222222222222222222222222222222222222"
	weightContract  = "0x3333333333333333333333333333333333333333"
	alice           = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	bob             = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	blockNumber = uint64(24_500_000)
	blockTime   = int64(1_700_000_000)
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

func testGuilds() *domain.GuildSet {
	return domain.NewGuildSet([]domain.Guild{
		{
			Name:            "gdn",
			Mode:            domain.GuildModeMember,
			StakingContract: stakingContract,
			WeightContract:  weightContract,
		},
	})
}

func newParser(t *testing.T, client *mocks.MockEthClient) *ethereum.Parser {
	parser, err := ethereum.NewParser(domain.ChainPolygonMainnet, client, testGuilds())
	require.NoError(t, err)
	return parser
}

// pack ABI-encodes event data the way a node would
func pack(t *testing.T, typs []string, values ...interface{}) []byte {
	args := make(abi.Arguments, 0, len(typs))
	for _, typ := range typs {
		ty, err := abi.NewType(typ, "", nil)
		require.NoError(t, err)
		args = append(args, abi.Argument{Type: ty})
	}
	data, err := args.Pack(values...)
	require.NoError(t, err)
	return data
}

func addressTopic(addr string) common.Hash {
	return common.BytesToHash(common.HexToAddress(addr).Bytes())
}

func uintTopic(v int64) common.Hash {
	return common.BigToHash(big.NewInt(v))
}

func testLog(contract string, topics []common.Hash, data []byte) types.Log {
	return types.Log{
		Address:     common.HexToAddress(contract),
		Topics:      topics,
		Data:        data,
		BlockNumber: blockNumber,
		TxHash:      common.HexToHash("0xdead"),
		TxIndex:     3,
		Index:       7,
	}
}

func expectBlock(mockClient *mocks.MockEthClient) {
	header := &types.Header{
		Number: new(big.Int).SetUint64(blockNumber),
		Time:   uint64(blockTime),
	}
	mockClient.
		EXPECT().
		BlockByNumber(gomock.Any(), new(big.Int).SetUint64(blockNumber)).
		Return(types.NewBlockWithHeader(header), nil)
}

func TestParser_ParseLog(t *testing.T) {
	tests := []struct {
		name       string
		log        types.Log
		setupMocks func(*mocks.MockEthClient)
		verify     func(*testing.T, *domain.Event)
		skipped    bool
		wantErr    bool
	}{
		{
			name: "ERC721 transfer",
			log: testLog(garmentContract, []common.Hash{
				crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
				addressTopic(alice),
				addressTopic(bob),
				uintTopic(42),
			}, nil),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeTransfer, event.EventType)
				assert.Equal(t, domain.ChainPolygonMainnet, event.Chain)
				assert.Equal(t, garmentContract, event.ContractAddress)
				require.NotNil(t, event.FromAddress)
				assert.Equal(t, common.HexToAddress(alice).Hex(), *event.FromAddress)
				require.NotNil(t, event.ToAddress)
				assert.Equal(t, common.HexToAddress(bob).Hex(), *event.ToAddress)
				assert.Equal(t, "42", event.TokenID)
				assert.Equal(t, "1", event.Quantity)
				assert.Equal(t, blockNumber, event.BlockNumber)
				assert.Equal(t, uint(7), event.LogIndex)
				assert.Equal(t, time.Unix(blockTime, 0), event.Timestamp)
			},
		},
		{
			name: "ERC20 transfer is skipped",
			log: testLog(garmentContract, []common.Hash{
				crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
				addressTopic(alice),
				addressTopic(bob),
			}, common.BigToHash(big.NewInt(1000)).Bytes()),
			setupMocks: expectBlock,
			skipped:    true,
		},
		{
			name: "primary sale price set",
			log: testLog(garmentContract, []common.Hash{
				crypto.Keccak256Hash([]byte("TokenPrimarySalePriceSet(uint256,uint256)")),
				uintTopic(42),
			}, common.BigToHash(big.NewInt(5_000_000)).Bytes()),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypePrimarySalePriceSet, event.EventType)
				assert.Equal(t, "42", event.TokenID)
				assert.Equal(t, "5000000", event.Amount)
			},
		},
		{
			name: "staked event carries guild annotation",
			log: testLog(stakingContract, []common.Hash{
				crypto.Keccak256Hash([]byte("Staked(address,uint256)")),
				addressTopic(alice),
			}, common.BigToHash(big.NewInt(42)).Bytes()),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeStaked, event.EventType)
				assert.Equal(t, "gdn", event.Guild)
				assert.Equal(t, domain.GuildModeMember, event.Mode)
				assert.Equal(t, common.HexToAddress(alice).Hex(), event.Account)
				assert.Equal(t, "42", event.TokenID)
			},
		},
		{
			name: "staked event from unconfigured contract is skipped",
			log: testLog("0x9999999999999999999999999999999999999999", []common.Hash{
				crypto.Keccak256Hash([]byte("Staked(address,uint256)")),
				addressTopic(alice),
			}, common.BigToHash(big.NewInt(42)).Bytes()),
			setupMocks: expectBlock,
			skipped:    true,
		},
		{
			name: "emergency unstake",
			log: testLog(stakingContract, []common.Hash{
				crypto.Keccak256Hash([]byte("EmergencyUnstake(address,uint256)")),
				addressTopic(alice),
			}, common.BigToHash(big.NewInt(42)).Bytes()),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeEmergencyUnstake, event.EventType)
				assert.Equal(t, "gdn", event.Guild)
			},
		},
		{
			name: "reward paid",
			log: testLog(stakingContract, []common.Hash{
				crypto.Keccak256Hash([]byte("RewardPaid(address,uint256)")),
				addressTopic(alice),
			}, common.BigToHash(big.NewInt(123_456)).Bytes()),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeRewardPaid, event.EventType)
				assert.Equal(t, "123456", event.Amount)
				assert.Equal(t, common.HexToAddress(alice).Hex(), event.Account)
			},
		},
		{
			name: "appraise guild member",
			log: testLog(weightContract, []common.Hash{
				crypto.Keccak256Hash([]byte("AppraiseGuildMember(string,address)")),
			}, pack(t, []string{"string", "address"}, "Clap", common.HexToAddress(bob))),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeAppraiseGuildMember, event.EventType)
				assert.Equal(t, "gdn", event.Guild)
				assert.Equal(t, "Clap", event.Reaction)
				assert.Equal(t, common.HexToAddress(bob).Hex(), event.Account)
				assert.Equal(t, "1", event.Quantity)
			},
		},
		{
			name: "whitelisted NFT reaction",
			log: testLog(weightContract, []common.Hash{
				crypto.Keccak256Hash([]byte("WhitelistedNFTReaction(string,uint256,address,uint256,address)")),
			}, pack(t,
				[]string{"string", "uint256", "address", "uint256", "address"},
				"Favorite", big.NewInt(3), common.HexToAddress(garmentContract), big.NewInt(42), common.HexToAddress(bob))),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeWhitelistedNFTReaction, event.EventType)
				assert.Equal(t, "Favorite", event.Reaction)
				assert.Equal(t, "3", event.Quantity)
				assert.Equal(t, garmentContract, event.TokenContract)
				assert.Equal(t, "42", event.TokenID)
				assert.Equal(t, common.HexToAddress(bob).Hex(), event.Account)
			},
		},
		{
			name: "add whitelisted tokens",
			log: testLog(weightContract, []common.Hash{
				crypto.Keccak256Hash([]byte("AddWhitelistedTokens(address[])")),
			}, pack(t, []string{"address[]"}, []common.Address{
				common.HexToAddress(alice),
				common.HexToAddress(bob),
			})),
			setupMocks: expectBlock,
			verify: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, domain.EventTypeAddWhitelistedTokens, event.EventType)
				require.Len(t, event.TokenContracts, 2)
				assert.Equal(t, common.HexToAddress(alice).Hex(), event.TokenContracts[0])
				assert.Equal(t, common.HexToAddress(bob).Hex(), event.TokenContracts[1])
			},
		},
		{
			name: "unknown signature",
			log: testLog(garmentContract, []common.Hash{
				crypto.Keccak256Hash([]byte("Approval(address,address,uint256)")),
				addressTopic(alice),
				addressTopic(bob),
				uintTopic(42),
			}, nil),
			setupMocks: expectBlock,
			wantErr:    true,
		},
		{
			name:       "log without topics",
			log:        testLog(garmentContract, nil, nil),
			setupMocks: func(mockClient *mocks.MockEthClient) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockEthClient(ctrl)
			tt.setupMocks(mockClient)

			parser := newParser(t, mockClient)

			event, err := parser.ParseLog(context.Background(), tt.log)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.skipped {
				assert.Nil(t, event)
				return
			}

			require.NotNil(t, event)
			assert.True(t, event.Valid(), "parsed event should be structurally valid")
			tt.verify(t, event)
		})
	}
}

func TestParser_BlockTimeCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockEthClient(ctrl)
	// two logs from the same block fetch the header once
	expectBlock(mockClient)

	parser := newParser(t, mockClient)

	log := testLog(garmentContract, []common.Hash{
		crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
		addressTopic(alice),
		addressTopic(bob),
		uintTopic(42),
	}, nil)

	first, err := parser.ParseLog(context.Background(), log)
	require.NoError(t, err)
	second, err := parser.ParseLog(context.Background(), log)
	require.NoError(t, err)

	assert.Equal(t, first.Timestamp, second.Timestamp)
}
