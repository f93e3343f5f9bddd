package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: every default is applied
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.Equal(t, time.Second, conf.BotDelay)
		assert.Equal(t, int64(0), conf.Seed)
		assert.False(t, conf.Board.Preset())
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:", conf.Redis.KeyPrefix)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		// Given: a config file presetting the board and redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
bot-delay: 250ms
seed: 99
board:
  rows: 6
  cols: 7
  length-to-win: 4
redis:
  enabled: true
  host: cache
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 250*time.Millisecond, conf.BotDelay)
		assert.Equal(t, int64(99), conf.Seed)
		assert.True(t, conf.Board.Preset())
		assert.Equal(t, entity.Settings{Rows: 6, Cols: 7, LengthToWin: 4}, conf.Board.Settings())
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:", conf.Redis.KeyPrefix)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("board: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
