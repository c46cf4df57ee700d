// Package cli implements the tomotsp command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rhosak/tomo-tsp/pkg/buildinfo"
	"github.com/rhosak/tomo-tsp/pkg/cache"
	"github.com/rhosak/tomo-tsp/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tomotsp"

	// tourCollection is the Mongo collection holding cached tours.
	tourCollection = "tours"

	// cacheConnectTimeout bounds backend dial time at startup.
	cacheConnectTimeout = 5 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the configuration
// loaded from the standard config path (defaults apply when no file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	cfg, err := LoadConfig(configPath())
	if err != nil {
		c.Logger.Warn("config file ignored", "error", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tomotsp",
		Short:        "Tomotsp optimizes measurement ordering for quantum state tomography",
		Long:         `Tomotsp reduces the wall-clock time of quantum state tomography by reordering wave plate configurations. It models the configuration space as a traveling salesman problem and delegates to an exact external solver.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.problemCommand())
	root.AddCommand(c.tourCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

// newCache selects the cache backend from configuration. Backend failures
// degrade to a null cache so a dead Redis or Mongo never blocks a solve.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheConnectTimeout)
	defer cancel()

	switch c.Config.Cache.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr, c.Config.Cache.RedisPassword, c.Config.Cache.RedisDB)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	case CacheBackendMongo:
		mc, err := cache.NewMongoCache(ctx, c.Config.Cache.MongoURI, c.Config.Cache.MongoDatabase, tourCollection)
		if err != nil {
			c.Logger.Warn("mongo cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return mc, nil
	default:
		dir := c.Config.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// pipelineOptions builds pipeline options seeded from configuration.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Scheme:     c.Config.Scheme,
		Scale:      c.Config.Scale,
		SolverPath: c.Config.Solver.Path,
		SolverArgs: c.Config.Solver.Args,
		Logger:     c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tomotsp/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file path using XDG standard
// (~/.config/tomotsp/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
