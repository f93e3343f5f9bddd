package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var errRedisDown = errors.New("redis down")

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockResultRepo) Recent(ctx context.Context, limit int64) ([]*entity.Result, error) {
	args := that.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Result), args.Error(1)
}

func (that *mockResultRepo) Stats(ctx context.Context) (*entity.Stats, error) {
	args := that.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Stats), args.Error(1)
}

type sequenceRand struct {
	values []int
	calls  int
}

func (that *sequenceRand) Intn(n int) int {
	v := that.values[that.calls%len(that.values)] % n
	that.calls++

	return v
}

var fixedNow = time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

func newManager(input string, out io.Writer, coin int, botMoves []int, opts ...Option) *GameManager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	term := console.New(strings.NewReader(input), out)
	bot := service.NewBotService(&sequenceRand{values: botMoves})

	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "game-1" }),
	}, opts...)

	return NewGameManager(logger, term, bot, &sequenceRand{values: []int{coin}}, opts...)
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()
	classic := entity.Settings{Rows: 3, Cols: 3, LengthToWin: 3}

	t.Run("Human completes the top row", func(t *testing.T) {
		// Given: the human draws X and the bot fills the middle row
		out := &bytes.Buffer{}
		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, &entity.Result{
			GameID:      "game-1",
			Rows:        3,
			Cols:        3,
			LengthToWin: 3,
			Winner:      "x",
			WinnerName:  "human",
			Moves:       5,
			FinishedAt:  fixedNow,
		}).Return(nil).Once()
		repo.On("Stats", mock.Anything).Return(&entity.Stats{XWins: 2, OWins: 1, Draws: 1, HumanWins: 2, BotWins: 1}, nil).Once()
		repo.On("Recent", mock.Anything, int64(recentShown)).Return([]*entity.Result{
			{GameID: "game-1", Winner: "x"},
			{GameID: "game-0", Winner: "-"},
		}, nil).Once()

		manager := newManager("1\n1\n1\n2\n1\n3\n", out, 0, []int{1, 0, 1, 1}, WithResultRepo(repo))

		// When: the game is played
		game, err := manager.Play(ctx, classic)

		// Then: X wins right after the third mark in row 0
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, 5, game.Moves)
		assert.Contains(t, out.String(), "YOUR MOVE")
		assert.Contains(t, out.String(), "COMPUTER MOVES")
		assert.True(t, strings.HasSuffix(out.String(),
			"Winner is: x!\nGames played: 4 (human 2, computer 1, draws 1)\nLast results: x -\n"))
		repo.AssertExpectations(t)
	})

	t.Run("Bot wins on the diagonal and storage failure is not fatal", func(t *testing.T) {
		// Given: the human draws O, so the bot opens and walks the main diagonal
		out := &bytes.Buffer{}
		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Winner == "x" && result.WinnerName == "computer"
		})).Return(errRedisDown).Once()

		manager := newManager("1\n2\n1\n3\n", out, 1, []int{0, 0, 1, 1, 2, 2}, WithResultRepo(repo))

		// When: the game is played
		game, err := manager.Play(ctx, classic)

		// Then: the computer's mark wins and the game still ends cleanly
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.True(t, game.PlayerByMark(entity.MarkX).Bot)
		assert.Equal(t, entity.MarkX, game.Board.At(2, 2))
		assert.True(t, strings.HasSuffix(out.String(), "Winner is: x!\n"))
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Stats", mock.Anything)
		repo.AssertNotCalled(t, "Recent", mock.Anything, mock.Anything)
	})

	t.Run("Ledger read failure keeps the outcome", func(t *testing.T) {
		// Given: the result is saved but the totals can't be read
		out := &bytes.Buffer{}
		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("Stats", mock.Anything).Return(nil, errRedisDown).Once()

		manager := newManager("1\n1\n", out, 0, []int{0, 1}, WithResultRepo(repo))

		// When: a drawn game is played
		game, err := manager.Play(ctx, entity.Settings{Rows: 1, Cols: 2, LengthToWin: 2})

		// Then: the outcome stands and no totals are printed
		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.True(t, strings.HasSuffix(out.String(), "DRAW\n"))
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Recent", mock.Anything, mock.Anything)
	})

	t.Run("Full board without a run is a draw", func(t *testing.T) {
		out := &bytes.Buffer{}
		manager := newManager("1\n1\n", out, 0, []int{0, 1})

		game, err := manager.Play(ctx, entity.Settings{Rows: 1, Cols: 2, LengthToWin: 2})

		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.True(t, strings.HasSuffix(out.String(), "DRAW\n"))
	})

	t.Run("Invalid human input is re-prompted", func(t *testing.T) {
		out := &bytes.Buffer{}
		manager := newManager("9\n9\nx\n1\n1\n1\n", out, 0, []int{0})

		game, err := manager.Play(ctx, entity.Settings{Rows: 2, Cols: 2, LengthToWin: 1})

		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, 1, game.Moves)
		assert.Contains(t, out.String(), "Input out of bounds.")
		assert.Contains(t, out.String(), "Input must be integer.")
	})

	t.Run("Cancellation during the bot pause stops the game", func(t *testing.T) {
		// Given: the bot moves first and would wait an hour
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		manager := newManager("", io.Discard, 1, []int{0}, WithBotDelay(time.Hour))

		// When: the game is played with a cancelled context
		game, err := manager.Play(cancelled, classic)

		// Then: the context error is returned and no move was made
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, game.Moves)
	})

	t.Run("Closed input ends the game with an error", func(t *testing.T) {
		manager := newManager("", io.Discard, 0, []int{0})

		_, err := manager.Play(ctx, classic)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Invalid settings", func(t *testing.T) {
		manager := newManager("", io.Discard, 0, []int{0})

		_, err := manager.Play(ctx, entity.Settings{Rows: 2, Cols: 2, LengthToWin: 3})

		require.Error(t, err)
	})
}
