// Package config loads quizai settings from a YAML file, QUIZAI_*
// environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. QUIZAI_LLM_PROVIDER.
const EnvPrefix = "QUIZAI"

// Config is the full application configuration.
type Config struct {
	LLM        llm.Config       `mapstructure:"llm"`
	DB         DBConfig         `mapstructure:"db"`
	Log        logger.Config    `mapstructure:"log"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Server     ServerConfig     `mapstructure:"server"`
	Generation GenerationConfig `mapstructure:"generation"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// DBConfig locates the SQLite database.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig configures the optional Redis quiz cache.
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// GenerationConfig tunes quiz generation requests.
type GenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// AnalysisConfig tunes history analysis.
type AnalysisConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"`
	MaxTokens   int `mapstructure:"max_tokens"`
}

// Options carries command-line overrides. Empty fields are ignored.
type Options struct {
	ConfigFile string
	DBPath     string
	LogLevel   string
}

// Load reads configuration. A missing default config file is not an error;
// a missing explicitly requested file is.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if opts.DBPath != "" {
		v.Set("db.path", opts.DBPath)
	}
	if opts.LogLevel != "" {
		v.Set("log.level", opts.LogLevel)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.LLM = resolveProvider(cfg.LLM)

	return &cfg, nil
}

// Dir returns the directory holding config.yaml.
func Dir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "quizai"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "quizai"), nil
}

// LLMConfigured reports whether an LLM provider was selected.
func (c *Config) LLMConfigured() bool {
	return c.LLM.Provider != ""
}

// resolveProvider fills in the provider when none was named explicitly.
// A key present in the config wins over the standard API key variables.
func resolveProvider(c llm.Config) llm.Config {
	if c.Provider != "" {
		return c
	}
	for _, p := range []string{llm.ProviderGemini, llm.ProviderOpenAI, llm.ProviderAnthropic, llm.ProviderOpenRouter} {
		c.Provider = p
		if c.HasKey() {
			return c
		}
	}
	c.Provider = ""
	if found, ok := llm.DiscoverConfig(c); ok {
		return found
	}
	return c
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	// Provider stays empty so that discovery runs when nothing is set.
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)

	v.SetDefault("db.path", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")

	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", time.Hour)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)

	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.max_tokens", 8192)

	v.SetDefault("analysis.max_attempts", 20)
	v.SetDefault("analysis.max_tokens", 2048)
}
