package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env-default:"warn"`
	LogFile  string        `yaml:"log-file" env-default:""`
	Board    Board         `yaml:"board"`
	BotDelay time.Duration `yaml:"bot-delay" env-default:"1s"`
	Seed     int64         `yaml:"seed" env-default:"0"`
	Redis    Redis         `yaml:"redis"`
}

// Board presets the game shape. Zero values mean "ask at startup".
type Board struct {
	Rows        int `yaml:"rows" env-default:"0"`
	Cols        int `yaml:"cols" env-default:"0"`
	LengthToWin int `yaml:"length-to-win" env-default:"0"`
}

type Redis struct {
	Enabled   bool   `yaml:"enabled" env-default:"false"`
	Host      string `yaml:"host" env-default:"localhost"`
	Port      string `yaml:"port" env-default:"6379"`
	DB        int    `yaml:"db" env-default:"0"`
	KeyPrefix string `yaml:"key-prefix" env-default:"tictactoe:"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path, or only applies defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Preset reports whether any board value was configured.
func (that *Board) Preset() bool {
	return that.Rows != 0 || that.Cols != 0 || that.LengthToWin != 0
}

func (that *Board) Settings() entity.Settings {
	return entity.Settings{
		Rows:        that.Rows,
		Cols:        that.Cols,
		LengthToWin: that.LengthToWin,
	}
}
