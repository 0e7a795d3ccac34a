package quiz

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/cache"
	"github.com/abhisek/quizai/internal/logger"
)

const cacheKeyPrefix = "quizai:quiz:"

// CachedGenerator serves repeated requests for the same topic, format,
// difficulty and count from a cache. Cache failures are logged and the
// inner generator is used instead.
type CachedGenerator struct {
	inner Generator
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedGenerator wraps inner with c. A zero ttl keeps entries forever.
func NewCachedGenerator(inner Generator, c cache.Cache, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{inner: inner, cache: c, ttl: ttl}
}

func (g *CachedGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	input = input.Normalize()

	// A cached quiz could repeat questions the player has already seen.
	if len(input.PriorQuestions) > 0 {
		return g.inner.Generate(ctx, input)
	}

	log := logger.Get()
	key := CacheKey(input)

	val, err := g.cache.Get(ctx, key)
	switch {
	case err == nil:
		var q Quiz
		if jerr := json.Unmarshal([]byte(val), &q); jerr == nil && !q.IsEmpty() {
			log.Debug("quiz cache hit", zap.String("key", key))
			return &q, nil
		}
		log.Warn("discarding unreadable cached quiz", zap.String("key", key))
	case errors.Is(err, cache.ErrCacheMiss):
	default:
		log.Warn("quiz cache read failed", zap.String("key", key), zap.Error(err))
	}

	q, err := g.inner.Generate(ctx, input)
	if err != nil || q.IsEmpty() {
		return q, err
	}

	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal quiz for cache: %w", err)
	}
	if err := g.cache.Set(ctx, key, string(data), g.ttl); err != nil {
		log.Warn("quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
	return q, nil
}

// CacheKey derives the cache key for a normalized input.
func CacheKey(input GenerateInput) string {
	s := fmt.Sprintf("%s|%s|%s|%d",
		strings.ToLower(strings.Join(strings.Fields(input.Topic), " ")),
		input.Format, input.Difficulty, input.Count)
	sum := sha1.Sum([]byte(s))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
