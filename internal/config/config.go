package config

import (
	"fmt"

	pkgconfig "github.com/weiawesome/wes-io-live/hashid-service/pkg/config"
	"github.com/weiawesome/wes-io-live/hashid-service/pkg/hashids"
)

// DefaultNamespace is the namespace built from the top-level hashids section.
const DefaultNamespace = "default"

type Config struct {
	Server     ServerConfig
	GRPC       GRPCConfig
	HashIDs    NamespaceConfig            `mapstructure:"hashids"`
	Namespaces map[string]NamespaceConfig `mapstructure:"namespaces"`
	Salt       SaltConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GRPCConfig struct {
	Host string
	Port int
}

// NamespaceConfig configures one hashids encoder.
type NamespaceConfig struct {
	Alphabet  string `mapstructure:"alphabet"`
	Salt      string `mapstructure:"salt"`
	MinLength int    `mapstructure:"min_length"`
}

type SaltConfig struct {
	Size int `mapstructure:"size"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads ./config/config.yaml and the environment.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8094)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50057)
	v.SetDefault("hashids.alphabet", hashids.DefaultAlphabet)
	v.SetDefault("hashids.salt", "")
	v.SetDefault("hashids.min_length", 0)
	v.SetDefault("salt.size", 32)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("hashids.alphabet", "HASHIDS_ALPHABET")
	v.BindEnv("hashids.salt", "HASHIDS_SALT")
	v.BindEnv("hashids.min_length", "HASHIDS_MIN_LENGTH")
	v.BindEnv("salt.size", "SALT_SIZE")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, ok := cfg.Namespaces[DefaultNamespace]; ok {
		return nil, fmt.Errorf("namespace %q is reserved for the hashids section", DefaultNamespace)
	}

	return &cfg, nil
}

// AllNamespaces returns the configured namespaces plus the default one.
func (c *Config) AllNamespaces() map[string]NamespaceConfig {
	all := make(map[string]NamespaceConfig, len(c.Namespaces)+1)
	for name, ns := range c.Namespaces {
		all[name] = ns
	}
	all[DefaultNamespace] = c.HashIDs
	return all
}
