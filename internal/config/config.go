package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	DefaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
)

type Config struct {
	TelegramToken string `mapstructure:"telegram_token"`
	LogLevel      string `mapstructure:"log_level"`
	TMDB          struct {
		APIKey       string        `mapstructure:"api_key"`
		BaseURL      string        `mapstructure:"base_url"`
		ImageBaseURL string        `mapstructure:"image_base_url"`
		Language     string        `mapstructure:"language"`
		Timeout      time.Duration `mapstructure:"timeout"`
		MaxRetries   int           `mapstructure:"max_retries"`
	} `mapstructure:"tmdb"`
	Redis struct {
		Address  string        `mapstructure:"address"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Cache struct {
		Provider string        `mapstructure:"provider"` // "memory" or "redis"
		Size     int           `mapstructure:"size"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Image struct {
		CacheSize int           `mapstructure:"cache_size"`
		CacheTTL  time.Duration `mapstructure:"cache_ttl"`
		Fallback  string        `mapstructure:"fallback"`
	} `mapstructure:"image"`
	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"metrics"`
}

var (
	mu           sync.RWMutex
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// Load reads .env (if present), configs/config.yml (if present) and the
// environment, configures the global log level and stores the result as the
// global config.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger := GetLogger()
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg, err := LoadConfig(viper.New(), configFile)
	if err != nil {
		return nil, err
	}

	configureLogger(cfg.LogLevel)

	mu.Lock()
	globalConfig = cfg
	mu.Unlock()

	logger := GetLogger()
	logger.Debug().Msg("Configuration loaded successfully")
	return cfg, nil
}

// LoadConfig fills a Config from v. An empty configFile searches for
// config.yml in ./configs and the working directory.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MOVIEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"telegram_token": "TELEGRAM_TOKEN",
		"tmdb.api_key":   "TMDB_API_KEY",
		"log_level":      "LOG_LEVEL",
		"redis.address":  "REDIS_ADDRESS",
	}
	logger := GetLogger()
	for key, env := range bindings {
		if err := v.BindEnv(key, "MOVIEHUB_"+strings.ToUpper(strings.NewReplacer(".", "_").Replace(key)), env); err != nil {
			logger.Error().Err(err).Str("key", key).Msg("Failed to bind environment variable")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("tmdb.base_url", DefaultTMDBBaseURL)
	v.SetDefault("tmdb.image_base_url", DefaultImageBaseURL)
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.timeout", 10*time.Second)
	v.SetDefault("tmdb.max_retries", 2)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", 30*time.Minute)
	v.SetDefault("image.cache_size", 512)
	v.SetDefault("image.cache_ttl", 6*time.Hour)
	v.SetDefault("image.fallback", "./static/not-found.png")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", "0.0.0.0")
	v.SetDefault("metrics.port", 9090)
}

func configureLogger(levelName string) {
	mu.Lock()
	defer mu.Unlock()

	level := zerolog.InfoLevel
	if levelName != "" {
		if parsed, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsed
		} else {
			logger.Warn().Str("invalid_level", levelName).Msg("Invalid log level, using default 'info'")
		}
	}
	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)
}

func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}

func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
