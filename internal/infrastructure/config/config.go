package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server  Server  `mapstructure:"server"`
	Chain   Chain   `mapstructure:"chain"`
	Payload Payload `mapstructure:"payload"`
}

// Server configuration
type Server struct {
	Port string `mapstructure:"port"`
}

// Chain maps a network to its JSON-RPC endpoint. Keys are normalized with
// NormalizeNetworkKey: viper lowercases map keys when reading yaml, so the
// map can never be keyed by display name.
type Chain struct {
	RPCURLs map[string]string `mapstructure:"rpcUrls"`
}

// NormalizeNetworkKey canonicalizes a network name for RPC endpoint lookups.
// Consumers of Chain.RPCURLs must index with it.
func NormalizeNetworkKey(network string) string {
	return strings.ToLower(strings.TrimSpace(network))
}

// Payload holds the gateway's RSA public key used to seal transfer
// payloads. Either the PEM text inline or a file path to it.
type Payload struct {
	PublicKeyPEM  string `mapstructure:"publicKeyPem"`
	PublicKeyFile string `mapstructure:"publicKeyFile"`
}

// defaultRPCURLs are public endpoints; override per environment.
var defaultRPCURLs = map[string]string{
	"Base":            "https://mainnet.base.org",
	"Arbitrum One":    "https://arb1.arbitrum.io/rpc",
	"BNB Smart Chain": "https://bsc-dataseed.binance.org",
	"Polygon":         "https://polygon-rpc.com",
	"Scroll":          "https://rpc.scroll.io",
	"Optimism":        "https://mainnet.optimism.io",
}

// LoadConfig loads configuration from YAML file
// Uses CONFIG_ENV environment variable to determine which config file to load
func LoadConfig(configDir string) (*Config, error) {
	configEnv := os.Getenv("CONFIG_ENV")
	if configEnv == "" {
		configEnv = "local"
	}

	// Load base app-config.yaml as template/defaults (if it exists)
	baseConfigPath := fmt.Sprintf("%s/app-config.yaml", configDir)
	baseConfigExists := false
	if _, err := os.Stat(baseConfigPath); err == nil {
		viper.SetConfigFile(baseConfigPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read base config file: %w", err)
		}
		baseConfigExists = true
	}

	// Load environment-specific config (e.g., local.yaml when CONFIG_ENV=local)
	envConfigPath := fmt.Sprintf("%s/%s.yaml", configDir, configEnv)
	if _, err := os.Stat(envConfigPath); err == nil {
		viper.SetConfigFile(envConfigPath)
		if baseConfigExists {
			if err := viper.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to merge env config file: %w", err)
			}
		} else {
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read env config file: %w", err)
			}
		}
	}

	// Also read from environment variables (with prefix)
	viper.SetEnvPrefix("NGATE")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "NGATE_SERVER_PORT", "PORT")
	viper.BindEnv("payload.publicKeyPem", "NGATE_PAYLOAD_PUBLIC_KEY_PEM")
	viper.BindEnv("payload.publicKeyFile", "NGATE_PAYLOAD_PUBLIC_KEY_FILE")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults if not provided
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	// Re-key the RPC map through NormalizeNetworkKey before filling in
	// defaults, otherwise a yaml override of "Polygon" lands under
	// viper's lowercased key and the default wins for the key callers
	// actually look up.
	rpcURLs := make(map[string]string, len(cfg.Chain.RPCURLs))
	for network, url := range cfg.Chain.RPCURLs {
		if url == "" {
			continue
		}
		rpcURLs[NormalizeNetworkKey(network)] = url
	}
	for network, url := range defaultRPCURLs {
		key := NormalizeNetworkKey(network)
		if rpcURLs[key] == "" {
			rpcURLs[key] = url
		}
	}
	cfg.Chain.RPCURLs = rpcURLs

	// Resolve the public key file if the PEM isn't inline
	if cfg.Payload.PublicKeyPEM == "" && cfg.Payload.PublicKeyFile != "" {
		pemBytes, err := os.ReadFile(cfg.Payload.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload public key file: %w", err)
		}
		cfg.Payload.PublicKeyPEM = string(pemBytes)
	}

	return &cfg, nil
}
