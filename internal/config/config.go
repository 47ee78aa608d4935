package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Scraper  ScraperConfig  `mapstructure:"scraper"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ScraperConfig holds the batch run inputs, outputs and HTTP settings
type ScraperConfig struct {
	InputFile       string         `mapstructure:"input_file"`
	OutputFile      string         `mapstructure:"output_file"`
	ImageDir        string         `mapstructure:"image_dir"`
	Timeout         int            `mapstructure:"timeout"`           // Per-request timeout in seconds
	MaxImageWorkers int            `mapstructure:"max_image_workers"` // 0 fetches every image of a page at once
	UserAgent       string         `mapstructure:"user_agent"`
	ContinueOnError bool           `mapstructure:"continue_on_error"`
	ImageRewrites   []ImageRewrite `mapstructure:"image_rewrites"`
}

// ImageRewrite replaces a CDN host+path prefix with a canonical one
type ImageRewrite struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// DatabaseConfig holds the optional Postgres sink configuration
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RedisConfig holds the optional Redis stream sink and run state configuration
type RedisConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	Database     int    `mapstructure:"database"`
	StreamPrefix string `mapstructure:"stream_prefix"`
	StatePrefix  string `mapstructure:"state_prefix"`
}

// flagKeys maps CLI flag names onto config keys
var flagKeys = map[string]string{
	"input":             "scraper.input_file",
	"output":            "scraper.output_file",
	"images":            "scraper.image_dir",
	"continue-on-error": "scraper.continue_on_error",
	"log-level":         "log.level",
}

// Load loads configuration from an optional YAML file with .env, environment
// variable and CLI flag overrides. An empty configFile looks for ./config.yaml
// and falls back to defaults when it does not exist.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the scraper cannot run with
func (c *Config) Validate() error {
	if c.Scraper.InputFile == "" {
		return fmt.Errorf("scraper.input_file must not be empty")
	}
	if c.Scraper.OutputFile == "" {
		return fmt.Errorf("scraper.output_file must not be empty")
	}
	if c.Scraper.ImageDir == "" {
		return fmt.Errorf("scraper.image_dir must not be empty")
	}
	if c.Scraper.Timeout < 1 {
		return fmt.Errorf("scraper.timeout must be at least 1 second")
	}
	if c.Scraper.MaxImageWorkers < 0 {
		return fmt.Errorf("scraper.max_image_workers must not be negative")
	}
	for i, rw := range c.Scraper.ImageRewrites {
		if rw.From == "" {
			return fmt.Errorf("scraper.image_rewrites[%d].from must not be empty", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scraper.input_file", "new_links.txt")
	v.SetDefault("scraper.output_file", "data.json")
	v.SetDefault("scraper.image_dir", "images")
	v.SetDefault("scraper.timeout", 60)
	v.SetDefault("scraper.max_image_workers", 0)
	v.SetDefault("scraper.user_agent", "panduit-scraper/1.0")
	v.SetDefault("scraper.continue_on_error", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "panduit")
	v.SetDefault("database.user", "panduit_user")
	v.SetDefault("database.password", "panduit_pass")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.stream_prefix", "panduit:stream:")
	v.SetDefault("redis.state_prefix", "panduit:run:")
}
