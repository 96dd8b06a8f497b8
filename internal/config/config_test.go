package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalax/dlx-indexer/internal/domain"
)

func TestLoadEthereumEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EthereumEmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:137"
  start_block: 1000
contracts:
  garment_nft: "0x1111111111111111111111111111111111111111"
  marketplace: "0x2222222222222222222222222222222222222222"
  whitelisted_token_registry: "0x3333333333333333333333333333333333333333"
guilds:
  - name: gdn
    mode: member
    staking_contract: "0x4444444444444444444444444444444444444444"
    whitelisted_staking_contract: "0x5555555555555555555555555555555555555555"
    weight_contract: "0x6666666666666666666666666666666666666666"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EthereumEmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "ws://localhost:8545", cfg.Ethereum.WebSocketURL)
				assert.Equal(t, "eip155:137", string(cfg.Ethereum.ChainID))
				assert.Equal(t, uint64(1000), cfg.Ethereum.StartBlock)
				assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.Contracts.GarmentNFT)
				require.Len(t, cfg.Guilds, 1)
				assert.Equal(t, "gdn", cfg.Guilds[0].Name)
				assert.Equal(t, "member", cfg.Guilds[0].Mode)
				assert.Equal(t, "0x4444444444444444444444444444444444444444", cfg.Guilds[0].StakingContract)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EthereumEmitterConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "DLX_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "eip155:137", string(cfg.Ethereum.ChainID))
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadEthereumEmitterConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadProjectorConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *ProjectorConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-projector"
ethereum:
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:137"
metadata:
  ipfs_gateways:
    - "https://ipfs.io"
    - "https://gateway.pinata.cloud"
  http_timeout: "10s"
guilds:
  - name: gdn
    mode: member
    staking_contract: "0x4444444444444444444444444444444444444444"
    weight_contract: "0x6666666666666666666666666666666666666666"
  - name: look
    mode: whitelisted_nft
    staking_contract: "0x7777777777777777777777777777777777777777"
    weight_contract: "0x8888888888888888888888888888888888888888"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ProjectorConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "test-projector", cfg.NATS.ConsumerName)
				assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
				assert.Len(t, cfg.Metadata.IPFSGateways, 2)
				assert.Equal(t, "10s", cfg.Metadata.HTTPTimeout.String())
				require.Len(t, cfg.Guilds, 2)
				assert.Equal(t, "whitelisted_nft", cfg.Guilds[1].Mode)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ethereum:
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ProjectorConfig) {
				assert.Equal(t, "DLX_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "projector", cfg.NATS.ConsumerName)
				assert.Equal(t, "30s", cfg.NATS.AckWait.String())
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, []string{"https://ipfs.io"}, cfg.Metadata.IPFSGateways)
				assert.Equal(t, "30s", cfg.Metadata.HTTPTimeout.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadProjectorConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	configFile := `
server:
  port: 9000
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key1"
    - "key2"
`

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configFile), 0600))

	cfg, err := LoadAPIConfig(path, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
	assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
}

func TestGuilds(t *testing.T) {
	entries := []GuildConfig{
		{
			Name:            "gdn",
			Mode:            "whitelisted_nft",
			StakingContract: "0x4444444444444444444444444444444444444444",
			WeightContract:  "0x6666666666666666666666666666666666666666",
		},
		{
			Name:            "look",
			StakingContract: "0x7777777777777777777777777777777777777777",
			WeightContract:  "0x8888888888888888888888888888888888888888",
		},
	}

	guilds := Guilds(entries)
	require.Len(t, guilds, 2)
	assert.Equal(t, domain.GuildModeWhitelistedNFT, guilds[0].Mode)
	// missing mode falls back to member
	assert.Equal(t, domain.GuildModeMember, guilds[1].Mode)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=user password=pass dbname=db sslmode=disable",
		cfg.DSN())
}
