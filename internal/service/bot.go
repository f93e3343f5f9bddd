package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Rand is the random source the bot samples from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type BotService interface {
	ChooseMove(board *entity.Board) (entity.Coord, error)
}

type botService struct {
	rng Rand
}

func NewBotService(rng Rand) BotService {
	return &botService{rng: rng}
}

// ChooseMove samples uniform random coordinates until it hits an empty cell.
func (that *botService) ChooseMove(board *entity.Board) (entity.Coord, error) {
	if board.IsFull() {
		return entity.Coord{}, fmt.Errorf("bot failed to choose move: %w", apperror.ErrNoAvailableMoves)
	}

	for {
		at := entity.Coord{
			Row: that.rng.Intn(board.Rows()),
			Col: that.rng.Intn(board.Cols()),
		}

		if board.At(at.Row, at.Col) == entity.Empty {
			return at, nil
		}
	}
}
