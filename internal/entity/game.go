package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	// PlayerTie is the recorded winner of a drawn game.
	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID          string
	Board       *Board
	LengthToWin int
	Turn        Cell
	Winner      Cell
	Status      string
	Moves       int
	Players     []*Player
}

// NewGame creates an ongoing game on an empty board. X always moves first.
func NewGame(id string, settings Settings, players ...*Player) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(settings.Rows, settings.Cols)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:          id,
		Board:       board,
		LengthToWin: settings.LengthToWin,
		Turn:        MarkX,
		Winner:      Empty,
		Status:      StatusOngoing,
		Players:     players,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// PlayerByMark returns the player holding mark, or nil.
func (that *Game) PlayerByMark(mark Cell) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// Result summarizes a finished game for the results ledger.
type Result struct {
	GameID      string    `json:"game_id"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	LengthToWin int       `json:"length_to_win"`
	Winner      string    `json:"winner"`
	WinnerName  string    `json:"winner_name,omitempty"`
	Moves       int       `json:"moves"`
	FinishedAt  time.Time `json:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	result := &Result{
		GameID:      game.ID,
		Rows:        game.Board.Rows(),
		Cols:        game.Board.Cols(),
		LengthToWin: game.LengthToWin,
		Winner:      PlayerTie,
		Moves:       game.Moves,
		FinishedAt:  finishedAt.UTC(),
	}

	if game.Winner != Empty {
		result.Winner = game.Winner.String()
		if player := game.PlayerByMark(game.Winner); player != nil {
			result.WinnerName = player.Name
		}
	}

	return result
}
