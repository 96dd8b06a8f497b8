package domain

// GuildMode selects how a guild's staking weight is derived. Member
// guilds stake the guild's own membership NFTs; whitelisted guilds stake
// NFTs from an allowlist of external contracts.
type GuildMode string

const (
	GuildModeMember         GuildMode = "member"
	GuildModeWhitelistedNFT GuildMode = "whitelisted_nft"
)

// Guild describes one staking community tracked by the projector. The
// same handler code serves every guild; only the configuration differs.
type Guild struct {
	Name                       string    `json:"name"`
	Mode                       GuildMode `json:"mode"`
	StakingContract            string    `json:"staking_contract"`
	WhitelistedStakingContract string    `json:"whitelisted_staking_contract,omitempty"`
	WeightContract             string    `json:"weight_contract"`
}

// GuildSet indexes guilds by name and by the contracts that emit their
// events.
type GuildSet struct {
	byName     map[string]Guild
	byContract map[string]Guild
}

// NewGuildSet builds the lookup maps for a list of configured guilds.
// Contract addresses are normalized so lookups are case-insensitive.
func NewGuildSet(guilds []Guild) *GuildSet {
	s := &GuildSet{
		byName:     make(map[string]Guild),
		byContract: make(map[string]Guild),
	}
	for _, g := range guilds {
		g.StakingContract = NormalizeAddress(g.StakingContract)
		g.WeightContract = NormalizeAddress(g.WeightContract)
		if g.WhitelistedStakingContract != "" {
			g.WhitelistedStakingContract = NormalizeAddress(g.WhitelistedStakingContract)
		}
		s.byName[g.Name] = g
		s.byContract[g.StakingContract] = g
		s.byContract[g.WeightContract] = g
		if g.WhitelistedStakingContract != "" {
			s.byContract[g.WhitelistedStakingContract] = g
		}
	}
	return s
}

// ByName returns the guild with the given name.
func (s *GuildSet) ByName(name string) (Guild, bool) {
	g, ok := s.byName[name]
	return g, ok
}

// ByContract returns the guild owning the given contract address.
func (s *GuildSet) ByContract(address string) (Guild, bool) {
	g, ok := s.byContract[NormalizeAddress(address)]
	return g, ok
}

// All returns every configured guild.
func (s *GuildSet) All() []Guild {
	guilds := make([]Guild, 0, len(s.byName))
	for _, g := range s.byName {
		guilds = append(guilds, g)
	}
	return guilds
}
