package remote

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
)

// DefaultCacheKey holds the fetch-all snapshot.
const DefaultCacheKey = "roster:snapshot"

// CachedSource keeps a Redis copy of the fetch-all result in front of another
// Source. Cache failures are logged and bypassed.
type CachedSource struct {
	inner  Source
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource wraps inner.
func NewCachedSource(inner Source, client *redis.Client, key string, ttl time.Duration, logger *zap.Logger) *CachedSource {
	if key == "" {
		key = DefaultCacheKey
	}
	return &CachedSource{inner: inner, client: client, key: key, ttl: ttl, logger: logger}
}

// FetchAll serves the snapshot when cached, otherwise loads and stores it.
func (s *CachedSource) FetchAll(ctx context.Context) ([]RawRecord, error) {
	cached, err := s.client.Get(ctx, s.key).Bytes()
	switch {
	case err == nil:
		var records []RawRecord
		if err := json.Unmarshal(cached, &records); err == nil {
			s.logger.Debug("roster snapshot cache hit", zap.Int("count", len(records)))
			return records, nil
		}
		s.logger.Warn("discarding unreadable roster snapshot", zap.String("key", s.key))
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("roster snapshot cache read failed", zap.Error(err))
	}

	records, err := s.inner.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("encode roster snapshot", zap.Error(err))
		return records, nil
	}
	if err := s.client.Set(ctx, s.key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("roster snapshot cache write failed", zap.Error(err))
	}
	return records, nil
}

// Create forwards to the inner source and drops the snapshot on success.
func (s *CachedSource) Create(ctx context.Context, fields domain.EmployeeFields) (RawRecord, error) {
	record, err := s.inner.Create(ctx, fields)
	if err != nil {
		return RawRecord{}, err
	}
	s.invalidate(ctx)
	return record, nil
}

// Delete forwards to the inner source and drops the snapshot on success.
func (s *CachedSource) Delete(ctx context.Context, remoteID string) error {
	if err := s.inner.Delete(ctx, remoteID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedSource) invalidate(ctx context.Context) {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		s.logger.Warn("roster snapshot invalidation failed", zap.Error(err))
	}
}
