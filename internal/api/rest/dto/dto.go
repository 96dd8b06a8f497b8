package dto

import (
	"time"

	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

// Garment is the REST representation of a garment NFT
type Garment struct {
	TokenID          string             `json:"token_id"`
	Owner            *string            `json:"owner"`
	Designer         string             `json:"designer,omitempty"`
	TokenURI         string             `json:"token_uri"`
	Name             string             `json:"name,omitempty"`
	Description      string             `json:"description,omitempty"`
	ImageURL         string             `json:"image_url,omitempty"`
	AnimationURL     string             `json:"animation_url,omitempty"`
	PrimarySalePrice string             `json:"primary_sale_price"`
	Attributes       []GarmentAttribute `json:"attributes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// GarmentAttribute is one metadata trait of a garment
type GarmentAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Collector is the REST representation of a collector account
type Collector struct {
	Address   string    `json:"address"`
	Garments  []string  `json:"garments"`
	Children  []string  `json:"children"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Staker is the REST representation of a guild staker
type Staker struct {
	Guild           string    `json:"guild"`
	Address         string    `json:"address"`
	StakedTokens    []string  `json:"staked_tokens"`
	TotalRewards    string    `json:"total_rewards"`
	Appraisals      string    `json:"appraisals"`
	Claps           string    `json:"claps"`
	Favorites       string    `json:"favorites"`
	Follows         string    `json:"follows"`
	Shares          string    `json:"shares"`
	MetaverseVisits string    `json:"metaverse_visits"`
	Weight          string    `json:"weight"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WeightSnapshot is one day of a staker's weight series
type WeightSnapshot struct {
	Guild       string    `json:"guild"`
	Address     string    `json:"address"`
	Day         int64     `json:"day"`
	Weight      string    `json:"weight"`
	TotalWeight string    `json:"total_weight"`
	Timestamp   time.Time `json:"timestamp"`
}

// ClapHistoryEntry is one clap reaction record of a staker
type ClapHistoryEntry struct {
	Guild     string    `json:"guild"`
	Address   string    `json:"address"`
	Claps     string    `json:"claps"`
	Timestamp time.Time `json:"timestamp"`
}

// WhitelistedToken is one registered external NFT contract
type WhitelistedToken struct {
	Address   string    `json:"address"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is the envelope for paginated list responses
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// FromGarment converts a garment record, attributes optional
func FromGarment(g *schema.Garment, attributes []schema.GarmentAttribute) *Garment {
	out := &Garment{
		TokenID:          g.TokenID,
		Owner:            g.Owner,
		Designer:         g.Designer,
		TokenURI:         g.TokenURI,
		Name:             g.Name,
		Description:      g.Description,
		ImageURL:         g.ImageURL,
		AnimationURL:     g.AnimationURL,
		PrimarySalePrice: g.PrimarySalePrice,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
	for _, a := range attributes {
		out.Attributes = append(out.Attributes, GarmentAttribute{
			TraitType: a.TraitType,
			Value:     a.Value,
		})
	}
	return out
}

// FromCollector converts a collector record
func FromCollector(c *schema.Collector) *Collector {
	garments := []string(c.Garments)
	if garments == nil {
		garments = []string{}
	}
	children := []string(c.Children)
	if children == nil {
		children = []string{}
	}
	return &Collector{
		Address:   c.Address,
		Garments:  garments,
		Children:  children,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromStaker converts a staker record
func FromStaker(s *schema.Staker) *Staker {
	tokens := []string(s.StakedTokens)
	if tokens == nil {
		tokens = []string{}
	}
	return &Staker{
		Guild:           s.Guild,
		Address:         s.Address,
		StakedTokens:    tokens,
		TotalRewards:    s.TotalRewards,
		Appraisals:      s.Appraisals,
		Claps:           s.Claps,
		Favorites:       s.Favorites,
		Follows:         s.Follows,
		Shares:          s.Shares,
		MetaverseVisits: s.MetaverseVisits,
		Weight:          s.Weight,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromWeightSnapshot converts a weight snapshot record
func FromWeightSnapshot(w *schema.WeightSnapshot) *WeightSnapshot {
	return &WeightSnapshot{
		Guild:       w.Guild,
		Address:     w.Address,
		Day:         w.Day,
		Weight:      w.Weight,
		TotalWeight: w.TotalWeight,
		Timestamp:   w.Timestamp,
	}
}

// FromClapHistory converts a clap history record
func FromClapHistory(c *schema.ClapHistory) *ClapHistoryEntry {
	return &ClapHistoryEntry{
		Guild:     c.Guild,
		Address:   c.Address,
		Claps:     c.Claps,
		Timestamp: c.Timestamp,
	}
}

// FromWhitelistedToken converts a whitelisted token record
func FromWhitelistedToken(t *schema.WhitelistedToken) *WhitelistedToken {
	return &WhitelistedToken{
		Address:   t.Address,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
