package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const KeyPrefix = "yt_user:"

func Key(sid string) string {
	return KeyPrefix + sid
}

//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, sid string, s Session) error
	// Load mengembalikan (nil, nil) bila session tidak ada atau isinya rusak.
	Load(ctx context.Context, sid string) (*Session, error)
	Clear(ctx context.Context, sid string) error
}

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore membuat store session di Redis. ttl 0 berarti tanpa kedaluwarsa.
func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Store {
	l := zap.L().Named("session.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.store")
	}
	return &redisStore{rdb: rdb, ttl: ttl, logger: l}
}

func (s *redisStore) Save(ctx context.Context, sid string, sess Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key(sid), payload, s.ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, sid string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, Key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || !sess.Valid() {
		// isi rusak dibuang diam-diam, dianggap belum login
		s.logger.Warn("discarding corrupt session", zap.String("session_id", sid))
		_ = s.rdb.Del(ctx, Key(sid)).Err()
		return nil, nil
	}
	return &sess, nil
}

func (s *redisStore) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, Key(sid)).Err()
}
