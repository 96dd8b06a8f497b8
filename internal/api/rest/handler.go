package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/digitalax/dlx-indexer/internal/api/rest/dto"
	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetGarment retrieves a single garment with its attributes
	// GET /api/v1/garments/:token_id
	GetGarment(c *gin.Context)

	// ListGarments retrieves garments ordered by token id
	// GET /api/v1/garments?limit=<limit>&offset=<offset>
	ListGarments(c *gin.Context)

	// GetCollector retrieves a single collector by address
	// GET /api/v1/collectors/:address
	GetCollector(c *gin.Context)

	// ListCollectors retrieves collectors ordered by address
	// GET /api/v1/collectors?limit=<limit>&offset=<offset>
	ListCollectors(c *gin.Context)

	// GetStaker retrieves a single guild staker
	// GET /api/v1/guilds/:guild/stakers/:address
	GetStaker(c *gin.Context)

	// ListStakers retrieves a guild's stakers ordered by address
	// GET /api/v1/guilds/:guild/stakers?limit=<limit>&offset=<offset>
	ListStakers(c *gin.Context)

	// ListWeightSnapshots retrieves a staker's daily weight series
	// GET /api/v1/guilds/:guild/stakers/:address/snapshots
	ListWeightSnapshots(c *gin.Context)

	// ListClapHistory retrieves a staker's clap history ordered by time
	// GET /api/v1/guilds/:guild/stakers/:address/claps
	ListClapHistory(c *gin.Context)

	// ListWhitelistedTokens retrieves every registered external contract
	// GET /api/v1/whitelisted-tokens
	ListWhitelistedTokens(c *gin.Context)

	// GetBlockCursor retrieves the last processed block for a chain
	// (requires authentication)
	// GET /api/v1/ops/cursor/:chain
	GetBlockCursor(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store  store.Store
	guilds *domain.GuildSet
}

// NewHandler creates a new REST API handler over the entity store
func NewHandler(s store.Store, guilds *domain.GuildSet) Handler {
	return &handler{
		store:  s,
		guilds: guilds,
	}
}

// GetGarment retrieves a single garment with its attributes
func (h *handler) GetGarment(c *gin.Context) {
	tokenID := c.Param("token_id")
	if tokenID == "" {
		respondBadRequest(c, "Token ID is required")
		return
	}

	garment, err := h.store.GetGarment(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve garment")
		return
	}
	if garment == nil {
		respondNotFound(c, fmt.Sprintf("Garment %s not found", tokenID))
		return
	}

	attributes, err := h.store.GetGarmentAttributes(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve garment attributes")
		return
	}

	c.JSON(http.StatusOK, dto.FromGarment(garment, attributes))
}

// ListGarments retrieves garments ordered by token id
func (h *handler) ListGarments(c *gin.Context) {
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	garments, total, err := h.store.ListGarments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list garments")
		return
	}

	items := make([]dto.Garment, 0, len(garments))
	for i := range garments {
		items = append(items, *dto.FromGarment(&garments[i], garments[i].Attributes))
	}

	c.JSON(http.StatusOK, dto.Page[dto.Garment]{
		Items:  items,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetCollector retrieves a single collector by address
func (h *handler) GetCollector(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	collector, err := h.store.GetCollector(c.Request.Context(), domain.NormalizeAddress(address))
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve collector")
		return
	}
	if collector == nil {
		respondNotFound(c, fmt.Sprintf("Collector %s not found", domain.NormalizeAddress(address)))
		return
	}

	c.JSON(http.StatusOK, dto.FromCollector(collector))
}

// ListCollectors retrieves collectors ordered by address
func (h *handler) ListCollectors(c *gin.Context) {
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collectors, total, err := h.store.ListCollectors(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list collectors")
		return
	}

	items := make([]dto.Collector, 0, len(collectors))
	for i := range collectors {
		items = append(items, *dto.FromCollector(&collectors[i]))
	}

	c.JSON(http.StatusOK, dto.Page[dto.Collector]{
		Items:  items,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetStaker retrieves a single guild staker
func (h *handler) GetStaker(c *gin.Context) {
	guild, address, ok := h.stakerParams(c)
	if !ok {
		return
	}

	staker, err := h.store.GetStaker(c.Request.Context(), guild, address)
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve staker")
		return
	}
	if staker == nil {
		respondNotFound(c, fmt.Sprintf("Staker %s not found in guild %s", address, guild))
		return
	}

	c.JSON(http.StatusOK, dto.FromStaker(staker))
}

// ListStakers retrieves a guild's stakers ordered by address
func (h *handler) ListStakers(c *gin.Context) {
	guild, ok := h.guildParam(c)
	if !ok {
		return
	}

	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	stakers, total, err := h.store.ListStakers(c.Request.Context(), guild, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list stakers")
		return
	}

	items := make([]dto.Staker, 0, len(stakers))
	for i := range stakers {
		items = append(items, *dto.FromStaker(&stakers[i]))
	}

	c.JSON(http.StatusOK, dto.Page[dto.Staker]{
		Items:  items,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// ListWeightSnapshots retrieves a staker's daily weight series
func (h *handler) ListWeightSnapshots(c *gin.Context) {
	guild, address, ok := h.stakerParams(c)
	if !ok {
		return
	}

	snapshots, err := h.store.ListWeightSnapshots(c.Request.Context(), guild, address)
	if err != nil {
		respondInternalError(c, err, "Failed to list weight snapshots")
		return
	}

	items := make([]dto.WeightSnapshot, 0, len(snapshots))
	for i := range snapshots {
		items = append(items, *dto.FromWeightSnapshot(&snapshots[i]))
	}

	c.JSON(http.StatusOK, items)
}

// ListClapHistory retrieves a staker's clap history ordered by time
func (h *handler) ListClapHistory(c *gin.Context) {
	guild, address, ok := h.stakerParams(c)
	if !ok {
		return
	}

	rows, err := h.store.ListClapHistory(c.Request.Context(), guild, address)
	if err != nil {
		respondInternalError(c, err, "Failed to list clap history")
		return
	}

	items := make([]dto.ClapHistoryEntry, 0, len(rows))
	for i := range rows {
		items = append(items, *dto.FromClapHistory(&rows[i]))
	}

	c.JSON(http.StatusOK, items)
}

// ListWhitelistedTokens retrieves every registered external contract
func (h *handler) ListWhitelistedTokens(c *gin.Context) {
	tokens, err := h.store.ListWhitelistedTokens(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list whitelisted tokens")
		return
	}

	items := make([]dto.WhitelistedToken, 0, len(tokens))
	for i := range tokens {
		items = append(items, *dto.FromWhitelistedToken(&tokens[i]))
	}

	c.JSON(http.StatusOK, items)
}

// GetBlockCursor retrieves the last processed block for a chain
func (h *handler) GetBlockCursor(c *gin.Context) {
	chain := c.Param("chain")
	if !domain.IsValidChain(domain.Chain(chain)) {
		respondBadRequest(c, "Invalid chain")
		return
	}

	blockNumber, err := h.store.GetBlockCursor(c.Request.Context(), chain)
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve block cursor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chain":        chain,
		"block_number": blockNumber,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// guildParam extracts and validates the :guild path parameter. A false
// return means the response has already been written.
func (h *handler) guildParam(c *gin.Context) (string, bool) {
	name := c.Param("guild")
	if _, ok := h.guilds.ByName(name); !ok {
		respondNotFound(c, fmt.Sprintf("Guild %s not found", name))
		return "", false
	}
	return name, true
}

// stakerParams extracts and validates the :guild and :address path
// parameters
func (h *handler) stakerParams(c *gin.Context) (string, string, bool) {
	guild, ok := h.guildParam(c)
	if !ok {
		return "", "", false
	}
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid address")
		return "", "", false
	}
	return guild, domain.NormalizeAddress(address), true
}
