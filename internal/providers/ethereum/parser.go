package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/digitalax/dlx-indexer/internal/adapter"
	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
)

// Event signatures
var (
	// Transfer event signature - shared by ERC20 and ERC721
	// ERC20: Transfer(address indexed from, address indexed to, uint256 value) - 3 topics
	// ERC721: Transfer(address indexed from, address indexed to, uint256 indexed tokenId) - 4 topics
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// Garment NFT TokenPrimarySalePriceSet(uint256 indexed tokenId, uint256 salePrice)
	primarySalePriceSetEventSignature = crypto.Keccak256Hash([]byte("TokenPrimarySalePriceSet(uint256,uint256)"))

	// Staking contract Staked(address indexed owner, uint256 tokenId)
	stakedEventSignature = crypto.Keccak256Hash([]byte("Staked(address,uint256)"))

	// Staking contract Unstaked(address indexed owner, uint256 tokenId)
	unstakedEventSignature = crypto.Keccak256Hash([]byte("Unstaked(address,uint256)"))

	// Staking contract EmergencyUnstake(address indexed owner, uint256 tokenId)
	emergencyUnstakeEventSignature = crypto.Keccak256Hash([]byte("EmergencyUnstake(address,uint256)"))

	// Staking contract RewardPaid(address indexed owner, uint256 reward)
	rewardPaidEventSignature = crypto.Keccak256Hash([]byte("RewardPaid(address,uint256)"))

	// Weight contract AppraiseGuildMember(string reaction, address appraiser)
	appraiseGuildMemberEventSignature = crypto.Keccak256Hash([]byte("AppraiseGuildMember(string,address)"))

	// Weight contract WhitelistedNFTReaction(string reaction, uint256 quantity, address tokenContract, uint256 tokenId, address appraiser)
	whitelistedNFTReactionEventSignature = crypto.Keccak256Hash([]byte("WhitelistedNFTReaction(string,uint256,address,uint256,address)"))

	// Whitelist registry AddWhitelistedTokens(address[] tokens)
	addWhitelistedTokensEventSignature = crypto.Keccak256Hash([]byte("AddWhitelistedTokens(address[])"))
)

// eventsABI describes the non-indexed payloads of the events whose data
// section carries dynamic types and therefore needs ABI decoding. Events
// whose payload is a single word are decoded directly from the raw data.
const eventsABI = `[
	{"type":"event","name":"AppraiseGuildMember","inputs":[
		{"name":"reaction","type":"string","indexed":false},
		{"name":"appraiser","type":"address","indexed":false}]},
	{"type":"event","name":"WhitelistedNFTReaction","inputs":[
		{"name":"reaction","type":"string","indexed":false},
		{"name":"quantity","type":"uint256","indexed":false},
		{"name":"tokenContract","type":"address","indexed":false},
		{"name":"tokenId","type":"uint256","indexed":false},
		{"name":"appraiser","type":"address","indexed":false}]},
	{"type":"event","name":"AddWhitelistedTokens","inputs":[
		{"name":"tokens","type":"address[]","indexed":false}]}
]`

// Parser turns raw contract logs into normalized events. Staking and
// reaction logs are annotated with the guild that owns the emitting
// contract; logs from contracts no guild claims are dropped.
type Parser struct {
	client  adapter.EthClient
	chainID domain.Chain
	guilds  *domain.GuildSet
	abi     abi.ABI

	// logs arrive in block order, so remembering the last block's
	// timestamp avoids refetching it for every log in the block
	lastBlockNumber uint64
	lastBlockTime   time.Time
}

// NewParser creates a log parser for one chain.
func NewParser(chainID domain.Chain, client adapter.EthClient, guilds *domain.GuildSet) (*Parser, error) {
	parsed, err := abi.JSON(strings.NewReader(eventsABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse events ABI: %w", err)
	}

	return &Parser{
		client:  client,
		chainID: chainID,
		guilds:  guilds,
		abi:     parsed,
	}, nil
}

// Signatures returns every topic the parser understands, for use in a
// log filter query.
func Signatures() []common.Hash {
	return []common.Hash{
		transferEventSignature,
		primarySalePriceSetEventSignature,
		stakedEventSignature,
		unstakedEventSignature,
		emergencyUnstakeEventSignature,
		rewardPaidEventSignature,
		appraiseGuildMemberEventSignature,
		whitelistedNFTReactionEventSignature,
		addWhitelistedTokensEventSignature,
	}
}

// ParseLog converts a contract log into a normalized event. A nil event
// with a nil error means the log is recognized but intentionally skipped.
func (p *Parser) ParseLog(ctx context.Context, vLog types.Log) (*domain.Event, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("log without topics: tx %s", vLog.TxHash.Hex())
	}

	timestamp, err := p.blockTime(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Chain:           p.chainID,
		ContractAddress: domain.NormalizeAddress(vLog.Address.Hex()),
		TxHash:          vLog.TxHash.Hex(),
		BlockNumber:     vLog.BlockNumber,
		LogIndex:        vLog.Index,
		TxIndex:         uint64(vLog.TxIndex),
		Timestamp:       timestamp,
	}

	switch vLog.Topics[0] {
	case transferEventSignature:
		// This signature is shared by ERC20 and ERC721.
		// ERC20 has 3 topics (signature, from, to) with value in data.
		// ERC721 has 4 topics (signature, from, to, tokenId) with no data.
		if len(vLog.Topics) == 3 {
			logger.Debug("Skipping ERC20 transfer event",
				zap.String("contract", vLog.Address.Hex()),
				zap.String("txHash", vLog.TxHash.Hex()))
			return nil, nil
		}
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid Transfer event: expected 3 or 4 topics, got %d", len(vLog.Topics))
		}

		fromAddress := common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.FromAddress = &fromAddress
		toAddress := common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.ToAddress = &toAddress
		event.TokenID = new(big.Int).SetBytes(vLog.Topics[3].Bytes()).String()
		event.Quantity = "1"
		event.EventType = domain.EventTypeTransfer

	case primarySalePriceSetEventSignature:
		// TokenPrimarySalePriceSet(uint256 indexed tokenId, uint256 salePrice)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid TokenPrimarySalePriceSet event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid TokenPrimarySalePriceSet event: insufficient data")
		}

		event.TokenID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).String()
		event.Amount = new(big.Int).SetBytes(vLog.Data[0:32]).String()
		event.EventType = domain.EventTypePrimarySalePriceSet

	case stakedEventSignature, unstakedEventSignature, emergencyUnstakeEventSignature:
		// Staked/Unstaked/EmergencyUnstake(address indexed owner, uint256 tokenId)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid staking event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid staking event: insufficient data")
		}
		if skip := p.annotateGuild(event, vLog); skip {
			return nil, nil
		}

		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.TokenID = new(big.Int).SetBytes(vLog.Data[0:32]).String()
		switch vLog.Topics[0] {
		case stakedEventSignature:
			event.EventType = domain.EventTypeStaked
		case unstakedEventSignature:
			event.EventType = domain.EventTypeUnstaked
		default:
			event.EventType = domain.EventTypeEmergencyUnstake
		}

	case rewardPaidEventSignature:
		// RewardPaid(address indexed owner, uint256 reward)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid RewardPaid event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid RewardPaid event: insufficient data")
		}
		if skip := p.annotateGuild(event, vLog); skip {
			return nil, nil
		}

		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.Amount = new(big.Int).SetBytes(vLog.Data[0:32]).String()
		event.EventType = domain.EventTypeRewardPaid

	case appraiseGuildMemberEventSignature:
		// AppraiseGuildMember(string reaction, address appraiser)
		if skip := p.annotateGuild(event, vLog); skip {
			return nil, nil
		}

		values, err := p.abi.Unpack("AppraiseGuildMember", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack AppraiseGuildMember event: %w", err)
		}

		reaction, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid AppraiseGuildMember event: reaction is not a string")
		}
		appraiser, ok := values[1].(common.Address)
		if !ok {
			return nil, fmt.Errorf("invalid AppraiseGuildMember event: appraiser is not an address")
		}

		event.Reaction = reaction
		event.Account = appraiser.Hex()
		event.Quantity = "1"
		event.EventType = domain.EventTypeAppraiseGuildMember

	case whitelistedNFTReactionEventSignature:
		// WhitelistedNFTReaction(string reaction, uint256 quantity, address tokenContract, uint256 tokenId, address appraiser)
		if skip := p.annotateGuild(event, vLog); skip {
			return nil, nil
		}

		values, err := p.abi.Unpack("WhitelistedNFTReaction", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack WhitelistedNFTReaction event: %w", err)
		}

		reaction, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid WhitelistedNFTReaction event: reaction is not a string")
		}
		quantity, ok := values[1].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid WhitelistedNFTReaction event: quantity is not a uint256")
		}
		tokenContract, ok := values[2].(common.Address)
		if !ok {
			return nil, fmt.Errorf("invalid WhitelistedNFTReaction event: tokenContract is not an address")
		}
		tokenID, ok := values[3].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("invalid WhitelistedNFTReaction event: tokenId is not a uint256")
		}
		appraiser, ok := values[4].(common.Address)
		if !ok {
			return nil, fmt.Errorf("invalid WhitelistedNFTReaction event: appraiser is not an address")
		}

		event.Reaction = reaction
		event.Quantity = quantity.String()
		event.TokenContract = domain.NormalizeAddress(tokenContract.Hex())
		event.TokenID = tokenID.String()
		event.Account = appraiser.Hex()
		event.EventType = domain.EventTypeWhitelistedNFTReaction

	case addWhitelistedTokensEventSignature:
		// AddWhitelistedTokens(address[] tokens)
		values, err := p.abi.Unpack("AddWhitelistedTokens", vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack AddWhitelistedTokens event: %w", err)
		}

		tokens, ok := values[0].([]common.Address)
		if !ok {
			return nil, fmt.Errorf("invalid AddWhitelistedTokens event: tokens is not an address array")
		}

		contracts := make([]string, 0, len(tokens))
		for _, token := range tokens {
			contracts = append(contracts, token.Hex())
		}
		event.TokenContracts = contracts
		event.EventType = domain.EventTypeAddWhitelistedTokens

	default:
		return nil, fmt.Errorf("unknown event signature: %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// annotateGuild stamps the event with the guild owning the emitting
// contract. Returns true when no configured guild claims the contract,
// which means the log is not ours to project.
func (p *Parser) annotateGuild(event *domain.Event, vLog types.Log) bool {
	guild, ok := p.guilds.ByContract(vLog.Address.Hex())
	if !ok {
		logger.Debug("Skipping event from contract outside any guild",
			zap.String("contract", vLog.Address.Hex()),
			zap.String("txHash", vLog.TxHash.Hex()))
		return true
	}

	event.Guild = guild.Name
	event.Mode = guild.Mode
	return false
}

func (p *Parser) blockTime(ctx context.Context, blockNumber uint64) (time.Time, error) {
	if blockNumber == p.lastBlockNumber && !p.lastBlockTime.IsZero() {
		return p.lastBlockTime, nil
	}

	block, err := p.client.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get block %d: %w", blockNumber, err)
	}

	p.lastBlockNumber = blockNumber
	p.lastBlockTime = time.Unix(int64(block.Time()), 0) //nolint:gosec,G115

	return p.lastBlockTime, nil
}
