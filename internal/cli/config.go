package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendMongo = "mongo"
	CacheBackendNone  = "none"
)

// Config holds user configuration loaded from config.toml.
//
// Example:
//
//	scheme = "six-state"
//	scale = 2
//
//	[solver]
//	path = "/usr/local/bin/concorde"
//	args = ["-x"]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
type Config struct {
	Scheme tomo.Scheme  `toml:"scheme"`
	Scale  int          `toml:"scale"`
	Solver SolverConfig `toml:"solver"`
	Cache  CacheConfig  `toml:"cache"`
}

// SolverConfig points at the external TSP solver executable.
type SolverConfig struct {
	Path string   `toml:"path"`
	Args []string `toml:"args"`
}

// CacheConfig selects and parameterizes the tour cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Scheme: pipeline.DefaultScheme,
		Scale:  pipeline.DefaultScale,
		Cache:  CacheConfig{Backend: CacheBackendFile},
	}
}

// LoadConfig reads a TOML config file from path. A missing file is not an
// error; defaults are returned. Unknown keys and invalid values are.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scheme != "" {
		if err := tomo.ValidateScheme(c.Scheme); err != nil {
			return err
		}
	}
	if c.Scale < 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	switch c.Cache.Backend {
	case "", CacheBackendFile, CacheBackendRedis, CacheBackendMongo, CacheBackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}
