package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultTMDBBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, DefaultImageBaseURL, cfg.TMDB.ImageBaseURL)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "memory", cfg.Cache.Provider)
	assert.Equal(t, 256, cfg.Cache.Size)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
log_level: debug
tmdb:
  language: de-DE
  max_retries: 5
cache:
  provider: redis
  ttl: 1h
metrics:
  enabled: true
  port: 9100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TMDB_API_KEY", "secret-key")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
	assert.Equal(t, 5, cfg.TMDB.MaxRetries)
	assert.Equal(t, "secret-key", cfg.TMDB.APIKey)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, "redis", cfg.Cache.Provider)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoad_LoggerSafeForConcurrentReaders(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					logger := GetLogger()
					_ = logger.GetLevel()
				}
			}
		}()
	}

	for i := 0; i < 3; i++ {
		_, err := Load("")
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, zerolog.WarnLevel, GetLogger().GetLevel())
	assert.Equal(t, "warn", GetConfig().LogLevel)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
