package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	term := console.New(in, out)
	defer term.Close()

	if err := term.Announce("TIC TAC TOE"); err != nil {
		return err
	}

	settings, err := resolveSettings(ctx, log, conf, term)
	if err != nil {
		return ignoreInterrupt(fmt.Errorf("failed to read board settings: %w", err))
	}

	rng := rand.New(rand.NewSource(seed(conf))) //nolint: gosec // game randomness, not security

	opts := []usecase.Option{usecase.WithBotDelay(conf.BotDelay)}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
		if err != nil {
			// the ledger is optional, the game goes on without it
			log.Warn("results ledger disabled", "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			resultRepo := repository.NewResultRepository(redisStorage.Connection, conf.Redis.KeyPrefix)
			opts = append(opts, usecase.WithResultRepo(resultRepo))
		}
	}

	gameManager := usecase.NewGameManager(logger, term, service.NewBotService(rng), rng, opts...)

	if _, err = gameManager.Play(ctx, settings); err != nil {
		return ignoreInterrupt(fmt.Errorf("game aborted: %w", err))
	}

	return nil
}

// resolveSettings uses the configured board when it is valid and asks otherwise.
func resolveSettings(ctx context.Context, log *slog.Logger, conf *config.Config, term *console.Terminal) (entity.Settings, error) {
	if conf.Board.Preset() {
		settings := conf.Board.Settings()

		err := settings.Validate()
		if err == nil {
			return settings, nil
		}

		log.Warn("ignoring configured board", "error", err)
	}

	return term.ReadSettings(ctx)
}

func seed(conf *config.Config) int64 {
	if conf.Seed != 0 {
		return conf.Seed
	}

	return time.Now().UnixNano()
}

// ignoreInterrupt treats a signal or closed input as a clean exit.
func ignoreInterrupt(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
