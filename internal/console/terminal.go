package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

type line struct {
	text string
	err  error
}

// Terminal reads answers line by line and writes prompts, boards and messages.
type Terminal struct {
	out   io.Writer
	lines <-chan line

	done      chan struct{}
	closeOnce sync.Once
}

// New starts a reader goroutine on in. It exits when in is exhausted, or
// after Close once the pending read returns.
func New(in io.Reader, out io.Writer) *Terminal {
	lines := make(chan line)
	done := make(chan struct{})

	go func() {
		defer close(lines)

		send := func(l line) bool {
			select {
			case <-done:
				return false
			default:
			}

			select {
			case lines <- l:
				return true
			case <-done:
				return false
			}
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if !send(line{text: scanner.Text()}) {
				return
			}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		send(line{err: err})
	}()

	return &Terminal{out: out, lines: lines, done: done}
}

// Close stops delivering input. Later reads return io.EOF.
func (that *Terminal) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// ReadSettings asks for rows, columns and length to win until they form a valid game.
func (that *Terminal) ReadSettings(ctx context.Context) (entity.Settings, error) {
	for {
		settings, err := that.readSettings(ctx)
		if err == nil {
			return settings, nil
		}

		if err = that.reportInvalid(err); err != nil {
			return entity.Settings{}, err
		}
	}
}

func (that *Terminal) readSettings(ctx context.Context) (entity.Settings, error) {
	var settings entity.Settings

	fields := []struct {
		prompt string
		dst    *int
	}{
		{prompt: "Enter Rows (int): ", dst: &settings.Rows},
		{prompt: "Enter Columns (int): ", dst: &settings.Cols},
		{prompt: "Enter Length to Win (int): ", dst: &settings.LengthToWin},
	}

	for _, field := range fields {
		text, err := that.ask(ctx, field.prompt)
		if err != nil {
			return entity.Settings{}, err
		}

		if *field.dst, err = service.ParseInt(text); err != nil {
			return entity.Settings{}, err
		}
	}

	return settings, settings.Validate()
}

// ReadMove asks for a 1-based row and column until they name a free cell.
func (that *Terminal) ReadMove(ctx context.Context, board *entity.Board) (entity.Coord, error) {
	for {
		rowText, err := that.ask(ctx, fmt.Sprintf("Enter Row (1-%d): ", board.Rows()))
		if err != nil {
			return entity.Coord{}, err
		}

		colText, err := that.ask(ctx, fmt.Sprintf("Enter Column (1-%d): ", board.Cols()))
		if err != nil {
			return entity.Coord{}, err
		}

		at, err := service.ValidateHumanMove(board, rowText, colText)
		if err == nil {
			return at, nil
		}

		if err = that.reportInvalid(err); err != nil {
			return entity.Coord{}, err
		}
	}
}

// ShowBoard prints the board.
func (that *Terminal) ShowBoard(board *entity.Board) error {
	if err := RenderBoard(that.out, board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Terminal) Announce(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// reportInvalid prints a message for recoverable input errors and hands back anything else.
func (that *Terminal) reportInvalid(err error) error {
	var occupied *service.OccupiedError

	switch {
	case errors.Is(err, apperror.ErrParse):
		return that.Announce("Input must be integer.")
	case errors.Is(err, apperror.ErrOutOfBounds):
		return that.Announce("Input out of bounds.")
	case errors.As(err, &occupied):
		return that.Announce("Board on %d %d is already filled.", occupied.At.Row, occupied.At.Col)
	case errors.Is(err, entity.ErrNonPositiveSettings):
		return that.Announce("Rows/Cols or Length to Win can't be 0 or less.")
	case errors.Is(err, entity.ErrWinLengthTooLong):
		return that.Announce("Length to win can't be greater than Rows or Cols")
	default:
		return err
	}
}

func (that *Terminal) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := io.WriteString(that.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	select {
	case <-that.done:
		return "", io.EOF
	default:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", io.EOF
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}
