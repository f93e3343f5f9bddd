package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// recentLimit caps the list of recent game ids.
const recentLimit = 100

const (
	statsXWins     = "wins:x"
	statsOWins     = "wins:o"
	statsDraws     = "draws"
	statsHumanWins = "wins:human"
	statsBotWins   = "wins:computer"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	Recent(ctx context.Context, limit int64) ([]*entity.Result, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
	prefix string
}

// NewResultRepository keeps every key under prefix so several ledgers can share a database.
func NewResultRepository(client *redis.Client, prefix string) ResultRepository {
	return &dbResult{
		client: client,
		prefix: prefix,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, that.resultKey(result.GameID), resultJSON, 0)
		pipe.LPush(ctx, that.recentKey(), result.GameID)
		pipe.LTrim(ctx, that.recentKey(), 0, recentLimit-1)

		for _, field := range statsFields(result) {
			pipe.HIncrBy(ctx, that.statsKey(), field, 1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// Recent returns up to limit results, newest first. Ids whose record is gone are skipped.
func (that *dbResult) Recent(ctx context.Context, limit int64) ([]*entity.Result, error) {
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}

	ids, err := that.client.LRange(ctx, that.recentKey(), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Result{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = that.resultKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	results := make([]*entity.Result, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var result entity.Result
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) Stats(ctx context.Context) (*entity.Stats, error) {
	fields, err := that.client.HGetAll(ctx, that.statsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &entity.Stats{}
	targets := map[string]*int64{
		statsXWins:     &stats.XWins,
		statsOWins:     &stats.OWins,
		statsDraws:     &stats.Draws,
		statsHumanWins: &stats.HumanWins,
		statsBotWins:   &stats.BotWins,
	}

	for field, dst := range targets {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *dst, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse stats field %s: %w", field, err)
		}
	}

	return stats, nil
}

func (that *dbResult) resultKey(id string) string {
	return that.prefix + "result:" + id
}

func (that *dbResult) recentKey() string {
	return that.prefix + "results:recent"
}

func (that *dbResult) statsKey() string {
	return that.prefix + "results:stats"
}

func statsFields(result *entity.Result) []string {
	switch result.Winner {
	case entity.PlayerTie:
		return []string{statsDraws}
	case entity.MarkX.String():
		return append([]string{statsXWins}, winnerNameField(result.WinnerName)...)
	case entity.MarkO.String():
		return append([]string{statsOWins}, winnerNameField(result.WinnerName)...)
	default:
		return nil
	}
}

func winnerNameField(name string) []string {
	switch name {
	case entity.HumanName:
		return []string{statsHumanWins}
	case entity.BotName:
		return []string{statsBotWins}
	default:
		return nil
	}
}
