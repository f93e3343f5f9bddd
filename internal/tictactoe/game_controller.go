package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn places mark at the given cell and resolves the game outcome.
// The winner is always the mover, since only the mark just placed can complete a run.
func MakeTurn(gameInstance *entity.Game, mark entity.Cell, at entity.Coord) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := gameInstance.Board.Set(at, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Moves++
	updateGameStatus(gameInstance, mark, at)

	return nil
}

// validateMove - checks that the right mark is moving.
func validateMove(gameInstance *entity.Game, mark entity.Cell) error {
	if mark == entity.Empty || gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks win first, then draw, after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Cell, at entity.Coord) {
	switch {
	case CheckWinAt(gameInstance.Board, gameInstance.LengthToWin, at):
		gameInstance.Winner = mark
		gameInstance.Status = entity.StatusFinished
	case IsDraw(gameInstance.Board, gameInstance.LengthToWin):
		gameInstance.Winner = entity.Empty
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Turn = mark.Opponent()
	}
}
