package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type terminal interface {
	ReadMove(ctx context.Context, board *entity.Board) (entity.Coord, error)
	ShowBoard(board *entity.Board) error
	Announce(format string, args ...any) error
}

type botService interface {
	ChooseMove(board *entity.Board) (entity.Coord, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Recent(ctx context.Context, limit int64) ([]*entity.Result, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

// recentShown is how many past winners are listed after a game.
const recentShown = 5

type randSource interface {
	Intn(n int) int
}

type Option func(*GameManager)

// WithResultRepo records every finished game and prints the running totals.
// Without it nothing is stored.
func WithResultRepo(repo resultRepo) Option {
	return func(that *GameManager) {
		that.resultRepo = repo
	}
}

// WithBotDelay pauses before each computer move. Zero disables the pause.
func WithBotDelay(delay time.Duration) Option {
	return func(that *GameManager) {
		that.botDelay = delay
	}
}

func WithClock(now func() time.Time) Option {
	return func(that *GameManager) {
		that.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(that *GameManager) {
		that.newID = newID
	}
}

// GameManager runs one human-versus-computer game from empty board to outcome.
type GameManager struct {
	logger *slog.Logger

	terminal   terminal
	bot        botService
	resultRepo resultRepo
	rng        randSource

	botDelay time.Duration
	now      func() time.Time
	newID    func() string
}

func NewGameManager(logger *slog.Logger, terminal terminal, bot botService, rng randSource, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game-manager"),

		terminal: terminal,
		bot:      bot,
		rng:      rng,

		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// Play runs a game to completion and returns it in its final state.
func (that *GameManager) Play(ctx context.Context, settings entity.Settings) (*entity.Game, error) {
	game, err := that.createGame(settings)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", game.ID)
	log.Info("game started",
		"rows", settings.Rows, "cols", settings.Cols, "length_to_win", settings.LengthToWin,
		"human_mark", that.humanMark(game).String())

	if err = that.terminal.ShowBoard(game.Board); err != nil {
		return game, err
	}

	for game.IsOngoing() {
		player := game.PlayerByMark(game.Turn)

		at, err := that.nextMove(ctx, game, player)
		if err != nil {
			return game, fmt.Errorf("failed get move: %w", err)
		}

		if err = tictactoe.MakeTurn(game, player.Mark, at); err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("move played", "player", player.Name, "mark", player.Mark.String(), "row", at.Row, "col", at.Col)

		if err = that.terminal.ShowBoard(game.Board); err != nil {
			return game, err
		}

		if err = that.terminal.Announce(""); err != nil {
			return game, err
		}
	}

	if err = that.announceOutcome(game); err != nil {
		return game, err
	}

	log.Info("game finished", "winner", entity.NewResult(game, that.now()).Winner, "moves", game.Moves)

	if err = that.recordResult(ctx, game); err != nil {
		return game, err
	}

	return game, nil
}

func (that *GameManager) createGame(settings entity.Settings) (*entity.Game, error) {
	// whoever draws X moves first
	humanMark, botMark := entity.MarkX, entity.MarkO
	if that.rng.Intn(2) != 0 {
		humanMark, botMark = botMark, humanMark
	}

	return entity.NewGame(that.newID(), settings, entity.NewHuman(humanMark), entity.NewBot(botMark))
}

func (that *GameManager) nextMove(ctx context.Context, game *entity.Game, player *entity.Player) (entity.Coord, error) {
	if !player.Bot {
		if err := that.terminal.Announce("\nYOUR MOVE"); err != nil {
			return entity.Coord{}, err
		}

		return that.terminal.ReadMove(ctx, game.Board)
	}

	if err := that.terminal.Announce("\nCOMPUTER MOVES"); err != nil {
		return entity.Coord{}, err
	}

	if err := that.pause(ctx); err != nil {
		return entity.Coord{}, err
	}

	return that.bot.ChooseMove(game.Board)
}

func (that *GameManager) pause(ctx context.Context) error {
	if that.botDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.botDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *GameManager) announceOutcome(game *entity.Game) error {
	if game.IsDraw() {
		return that.terminal.Announce("DRAW")
	}

	return that.terminal.Announce("Winner is: %s!", game.Winner)
}

// recordResult stores the outcome and prints the ledger totals. Storage
// failures are logged only; an error is returned when the terminal fails.
func (that *GameManager) recordResult(ctx context.Context, game *entity.Game) error {
	if that.resultRepo == nil {
		return nil
	}

	log := that.logger.With("method", "recordResult", "game_id", game.ID)

	if err := that.resultRepo.Save(ctx, entity.NewResult(game, that.now())); err != nil {
		log.Error("failed to record result", "error", err)
		return nil
	}

	log.Info("result recorded")

	stats, err := that.resultRepo.Stats(ctx)
	if err != nil {
		log.Error("failed to get stats", "error", err)
		return nil
	}

	if err = that.terminal.Announce("Games played: %d (human %d, computer %d, draws %d)",
		stats.Games(), stats.HumanWins, stats.BotWins, stats.Draws); err != nil {
		return err
	}

	recent, err := that.resultRepo.Recent(ctx, recentShown)
	if err != nil {
		log.Error("failed to get recent results", "error", err)
		return nil
	}

	winners := make([]string, 0, len(recent))
	for _, result := range recent {
		winners = append(winners, result.Winner)
	}

	return that.terminal.Announce("Last results: %s", strings.Join(winners, " "))
}

func (that *GameManager) humanMark(game *entity.Game) entity.Cell {
	for _, player := range game.Players {
		if !player.Bot {
			return player.Mark
		}
	}

	return entity.Empty
}
