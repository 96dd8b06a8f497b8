package chain

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/digitalax/dlx-indexer/internal/adapter"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/metrics"
)

// viewABI covers every contract view function the projector reads. All
// functions are constant so a single combined ABI is enough.
const viewABI = `[
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"id","type":"uint256"}],"name":"uri","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"user","type":"address"}],"name":"getStakedTokens","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"startTime","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"calcNewWeight","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"calcNewOwnerWeight","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"calcNewTotalWhitelistedNFTWeight","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"calcNewWhitelistedNFTOwnerWeight","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// Caller reads contract view functions with soft-failure semantics: a
// revert or transport error yields ok=false and a warn log, never an
// error. Handlers degrade to defaults instead of aborting.
//
//go:generate mockgen -source=caller.go -destination=../mocks/caller.go -package=mocks -mock_names=Caller=MockCaller
type Caller interface {
	// TryOwnerOf reads ownerOf(tokenId), lowercase hex on success
	TryOwnerOf(ctx context.Context, contract, tokenID string) (string, bool)
	// TryTokenURI reads tokenURI(tokenId)
	TryTokenURI(ctx context.Context, contract, tokenID string) (string, bool)
	// TryURI reads uri(id)
	TryURI(ctx context.Context, contract, tokenID string) (string, bool)
	// TryName reads name()
	TryName(ctx context.Context, contract string) (string, bool)
	// TryStakedTokens reads getStakedTokens(user) as decimal strings
	TryStakedTokens(ctx context.Context, contract, account string) ([]string, bool)
	// TryStartTime reads startTime()
	TryStartTime(ctx context.Context, contract string) (uint64, bool)
	// TryCalcNewWeight reads the guild-wide weight for member guilds
	TryCalcNewWeight(ctx context.Context, contract string) (string, bool)
	// TryCalcNewOwnerWeight reads a staker's weight for member guilds
	TryCalcNewOwnerWeight(ctx context.Context, contract, owner string) (string, bool)
	// TryCalcNewTotalWhitelistedNFTWeight reads the guild-wide weight for
	// whitelisted guilds
	TryCalcNewTotalWhitelistedNFTWeight(ctx context.Context, contract string) (string, bool)
	// TryCalcNewWhitelistedNFTOwnerWeight reads a staker's weight for
	// whitelisted guilds
	TryCalcNewWhitelistedNFTOwnerWeight(ctx context.Context, contract, owner string) (string, bool)
}

type caller struct {
	client adapter.EthClient
	abi    abi.ABI
}

// NewCaller creates a view caller on top of an Ethereum RPC client
func NewCaller(client adapter.EthClient) (Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(viewABI))
	if err != nil {
		return nil, err
	}
	return &caller{client: client, abi: parsed}, nil
}

// call packs, executes, and unpacks one view call. Every failure path
// returns nil, false; the caller decides the default.
func (c *caller) call(ctx context.Context, contract, method string, args ...interface{}) ([]interface{}, bool) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		logger.WarnCtx(ctx, "failed to pack contract call",
			zap.String("method", method),
			zap.String("contract", contract),
			zap.Error(err))
		metrics.IncContractCallFailed(method)
		return nil, false
	}

	contractAddr := common.HexToAddress(contract)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		logger.WarnCtx(ctx, "contract call reverted",
			zap.String("method", method),
			zap.String("contract", contract),
			zap.Error(err))
		metrics.IncContractCallFailed(method)
		return nil, false
	}

	values, err := c.abi.Unpack(method, result)
	if err != nil {
		logger.WarnCtx(ctx, "failed to unpack contract call result",
			zap.String("method", method),
			zap.String("contract", contract),
			zap.Error(err))
		metrics.IncContractCallFailed(method)
		return nil, false
	}

	return values, true
}

func (c *caller) callString(ctx context.Context, contract, method string, args ...interface{}) (string, bool) {
	values, ok := c.call(ctx, contract, method, args...)
	if !ok || len(values) == 0 {
		return "", false
	}
	s, ok := values[0].(string)
	return s, ok
}

func (c *caller) callBigInt(ctx context.Context, contract, method string, args ...interface{}) (*big.Int, bool) {
	values, ok := c.call(ctx, contract, method, args...)
	if !ok || len(values) == 0 {
		return nil, false
	}
	n, ok := values[0].(*big.Int)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

func parseTokenID(ctx context.Context, tokenID string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		logger.WarnCtx(ctx, "invalid token id", zap.String("token_id", tokenID))
		return nil, false
	}
	return n, true
}

// TryOwnerOf reads ownerOf(tokenId), lowercase hex on success
func (c *caller) TryOwnerOf(ctx context.Context, contract, tokenID string) (string, bool) {
	id, ok := parseTokenID(ctx, tokenID)
	if !ok {
		return "", false
	}
	values, ok := c.call(ctx, contract, "ownerOf", id)
	if !ok || len(values) == 0 {
		return "", false
	}
	addr, ok := values[0].(common.Address)
	if !ok {
		return "", false
	}
	return strings.ToLower(addr.Hex()), true
}

// TryTokenURI reads tokenURI(tokenId)
func (c *caller) TryTokenURI(ctx context.Context, contract, tokenID string) (string, bool) {
	id, ok := parseTokenID(ctx, tokenID)
	if !ok {
		return "", false
	}
	return c.callString(ctx, contract, "tokenURI", id)
}

// TryURI reads uri(id)
func (c *caller) TryURI(ctx context.Context, contract, tokenID string) (string, bool) {
	id, ok := parseTokenID(ctx, tokenID)
	if !ok {
		return "", false
	}
	return c.callString(ctx, contract, "uri", id)
}

// TryName reads name()
func (c *caller) TryName(ctx context.Context, contract string) (string, bool) {
	return c.callString(ctx, contract, "name")
}

// TryStakedTokens reads getStakedTokens(user) as decimal strings
func (c *caller) TryStakedTokens(ctx context.Context, contract, account string) ([]string, bool) {
	values, ok := c.call(ctx, contract, "getStakedTokens", common.HexToAddress(account))
	if !ok || len(values) == 0 {
		return nil, false
	}
	ids, ok := values[0].([]*big.Int)
	if !ok {
		return nil, false
	}
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, id.String())
	}
	return tokens, true
}

// TryStartTime reads startTime()
func (c *caller) TryStartTime(ctx context.Context, contract string) (uint64, bool) {
	n, ok := c.callBigInt(ctx, contract, "startTime")
	if !ok || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// TryCalcNewWeight reads the guild-wide weight for member guilds
func (c *caller) TryCalcNewWeight(ctx context.Context, contract string) (string, bool) {
	n, ok := c.callBigInt(ctx, contract, "calcNewWeight")
	if !ok {
		return "", false
	}
	return n.String(), true
}

// TryCalcNewOwnerWeight reads a staker's weight for member guilds
func (c *caller) TryCalcNewOwnerWeight(ctx context.Context, contract, owner string) (string, bool) {
	n, ok := c.callBigInt(ctx, contract, "calcNewOwnerWeight", common.HexToAddress(owner))
	if !ok {
		return "", false
	}
	return n.String(), true
}

// TryCalcNewTotalWhitelistedNFTWeight reads the guild-wide weight for
// whitelisted guilds
func (c *caller) TryCalcNewTotalWhitelistedNFTWeight(ctx context.Context, contract string) (string, bool) {
	n, ok := c.callBigInt(ctx, contract, "calcNewTotalWhitelistedNFTWeight")
	if !ok {
		return "", false
	}
	return n.String(), true
}

// TryCalcNewWhitelistedNFTOwnerWeight reads a staker's weight for
// whitelisted guilds
func (c *caller) TryCalcNewWhitelistedNFTOwnerWeight(ctx context.Context, contract, owner string) (string, bool) {
	n, ok := c.callBigInt(ctx, contract, "calcNewWhitelistedNFTOwnerWeight", common.HexToAddress(owner))
	if !ok {
		return "", false
	}
	return n.String(), true
}
