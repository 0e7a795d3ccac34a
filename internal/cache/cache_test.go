package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)
	ctx := context.Background()

	key := "quizai:quiz:abc"

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"title":"Go"}`)
		val, err := c.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"title":"Go"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := c.Get(ctx, key)
		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := c.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NotErrorIs(t, err, ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	assert.NoError(t, c.Set(ctx, "k", "v", time.Hour))

	redisErr := errors.New("read only replica")
	mock.ExpectSet("k", "v", time.Minute).SetErr(redisErr)
	assert.ErrorIs(t, c.Set(ctx, "k", "v", time.Minute), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_DeleteAndPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db)
	ctx := context.Background()

	mock.ExpectDel("k").SetVal(1)
	assert.NoError(t, c.Delete(ctx, "k"))

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, c.Ping(ctx))

	mock.ExpectPing().SetErr(errors.New("down"))
	assert.Error(t, c.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
