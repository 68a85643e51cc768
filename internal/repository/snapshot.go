package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/catanview/internal/apperror"
	"github.com/rocketscienceinc/catanview/internal/entity"
)

const matchKeyPrefix = "match:"

// SnapshotRepository - cache of fetched match histories.
type SnapshotRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id int) (*entity.Match, error)
	DeleteByID(ctx context.Context, id int) error
}

type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository - entries expire after ttl; zero keeps them forever.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSnapshot) Save(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	if err = that.client.Set(ctx, matchKey(match.ID), matchJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, id int) (*entity.Match, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSnapshotNotCached
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.Match
	if err = json.Unmarshal(response, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

func (that *dbSnapshot) DeleteByID(ctx context.Context, id int) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSnapshotNotCached
	}

	return nil
}

func matchKey(id int) string {
	return matchKeyPrefix + strconv.Itoa(id)
}
