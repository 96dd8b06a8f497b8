package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainPolygonMainnet  Chain = "eip155:137"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet ||
		chain == ChainPolygonMainnet ||
		chain == ChainEthereumSepolia
}

// EventType represents the type of blockchain event consumed by the projector
type EventType string

const (
	EventTypeTransfer               EventType = "transfer"
	EventTypePrimarySalePriceSet    EventType = "primary_sale_price_set"
	EventTypeStaked                 EventType = "staked"
	EventTypeUnstaked               EventType = "unstaked"
	EventTypeEmergencyUnstake       EventType = "emergency_unstake"
	EventTypeRewardPaid             EventType = "reward_paid"
	EventTypeAppraiseGuildMember    EventType = "appraise_guild_member"
	EventTypeWhitelistedNFTReaction EventType = "whitelisted_nft_reaction"
	EventTypeAddWhitelistedTokens   EventType = "add_whitelisted_tokens"
)

// TransferKind classifies a Transfer event by its from/to addresses
type TransferKind string

const (
	TransferKindMint     TransferKind = "mint"
	TransferKindBurn     TransferKind = "burn"
	TransferKindTransfer TransferKind = "transfer"
)

// Event represents a normalized blockchain event.
// This is the standard format published to NATS and delivered, one at a
// time and in stream order, to the projection handlers.
type Event struct {
	Chain           Chain     `json:"chain"`                     // e.g., "eip155:137"
	ContractAddress string    `json:"contract_address"`          // emitting contract
	EventType       EventType `json:"event_type"`                // transfer, staked, ...
	Guild           string    `json:"guild,omitempty"`           // guild name for staking/reaction events
	Mode            GuildMode `json:"mode,omitempty"`            // member or whitelisted_nft
	FromAddress     *string   `json:"from_address,omitempty"`    // transfer sender
	ToAddress       *string   `json:"to_address,omitempty"`      // transfer recipient
	Account         string    `json:"account,omitempty"`         // staker / appraiser / reward recipient
	TokenID         string    `json:"token_id,omitempty"`        // decimal token id
	TokenContract   string    `json:"token_contract,omitempty"`  // whitelisted NFT contract for reaction events
	TokenContracts  []string  `json:"token_contracts,omitempty"` // registration events carry a batch
	Reaction        string    `json:"reaction,omitempty"`        // reaction label
	Quantity        string    `json:"quantity,omitempty"`        // decimal quantity
	Amount          string    `json:"amount,omitempty"`          // decimal reward / sale price in wei
	TxHash          string    `json:"tx_hash"`                   // transaction hash
	BlockNumber     uint64    `json:"block_number"`              // block number
	LogIndex        uint      `json:"log_index"`                 // log index within the block
	TxIndex         uint64    `json:"tx_index"`                  // transaction index in the block
	Timestamp       time.Time `json:"timestamp"`                 // block timestamp
}

// TransferKind classifies the event's transfer direction. Only meaningful
// for EventTypeTransfer.
func (e *Event) TransferKind() TransferKind {
	if IsZeroAddress(e.FromAddress) {
		return TransferKindMint
	}
	if IsZeroAddress(e.ToAddress) {
		return TransferKindBurn
	}
	return TransferKindTransfer
}

// Valid performs structural validation of the event before it is handed
// to a projection handler.
func (e *Event) Valid() bool {
	if !IsValidChain(e.Chain) {
		return false
	}
	if e.TxHash == "" {
		return false
	}

	switch e.EventType {
	case EventTypeTransfer:
		if e.TokenID == "" {
			return false
		}
		// a transfer from zero to zero is meaningless
		if IsZeroAddress(e.FromAddress) && IsZeroAddress(e.ToAddress) {
			return false
		}
	case EventTypePrimarySalePriceSet:
		if e.TokenID == "" || e.Amount == "" {
			return false
		}
	case EventTypeStaked, EventTypeUnstaked, EventTypeEmergencyUnstake:
		if e.Account == "" || e.TokenID == "" || e.Guild == "" {
			return false
		}
	case EventTypeRewardPaid:
		if e.Account == "" || e.Amount == "" || e.Guild == "" {
			return false
		}
	case EventTypeAppraiseGuildMember:
		if e.Account == "" || e.Reaction == "" || e.Guild == "" {
			return false
		}
	case EventTypeWhitelistedNFTReaction:
		if e.Account == "" || e.Reaction == "" || e.Guild == "" || e.TokenContract == "" {
			return false
		}
	case EventTypeAddWhitelistedTokens:
		if len(e.TokenContracts) == 0 {
			return false
		}
	default:
		return false
	}

	return true
}

// IsZeroAddress reports whether the address is nil, empty, or the
// Ethereum zero address.
func IsZeroAddress(address *string) bool {
	if address == nil || *address == "" {
		return true
	}
	return strings.EqualFold(*address, EthereumZeroAddress)
}

// NormalizeAddress lowercases a hex address. Entity keys are lowercase
// hex account addresses, so every address entering the store goes
// through here first.
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// SecondsPerDay is the length of a weight-snapshot day.
const SecondsPerDay = 86400

// DayIndex derives the snapshot day for an event: whole days elapsed
// between the weight contract's start time and the event timestamp.
// Events before the start time map to day zero.
func DayIndex(eventTime time.Time, startTime uint64) int64 {
	ts := eventTime.Unix()
	if ts < 0 || uint64(ts) <= startTime {
		return 0
	}
	return (ts - int64(startTime)) / SecondsPerDay
}
