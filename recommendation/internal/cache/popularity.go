package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/recommendation/config"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

const popularKey = "recommendation:popular"

// ErrMiss is returned by a Store that has no value for a key.
var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisStore struct {
	rdb *goredis.Client
}

// NewRedisStore connects to Redis. It returns nil when no address is
// configured, which disables caching.
func NewRedisStore(ctx context.Context, cfg config.Redis) (Store, func() error, error) {
	if cfg.Addr == "" {
		return nil, func() error { return nil }, nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, errors.Wrap(err, "redis ping")
	}
	return &redisStore{rdb: rdb}, rdb.Close, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Loader reads the popularity ranking from the source of truth.
type Loader func(ctx context.Context, limit int) ([]model.PopularBook, error)

// Popularity caches the head of the all-time popularity ranking. Cache
// failures are logged and fall through to the loader.
type Popularity struct {
	store Store
	load  Loader
	ttl   time.Duration
	size  int
	log   *zap.Logger
}

// DefaultRankingSize is how many ranked books are cached.
const DefaultRankingSize = 100

// NewPopularity wraps load with a cache. A nil store disables caching.
func NewPopularity(store Store, load Loader, ttl time.Duration, log *zap.Logger) *Popularity {
	return &Popularity{
		store: store,
		load:  load,
		ttl:   ttl,
		size:  DefaultRankingSize,
		log:   log.Named("popularity"),
	}
}

// Top returns up to limit books, most borrowed first.
func (p *Popularity) Top(ctx context.Context, limit int) ([]model.PopularBook, error) {
	if limit <= 0 {
		return []model.PopularBook{}, nil
	}
	if p.store == nil || limit > p.size {
		return p.load(ctx, limit)
	}

	ranking, err := p.cached(ctx)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			p.log.Warn("read cache", zap.Error(err))
		}
		ranking, err = p.load(ctx, p.size)
		if err != nil {
			return nil, err
		}
		p.save(ctx, ranking)
	}
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// Invalidate drops the cached ranking after the ledger changed.
func (p *Popularity) Invalidate(ctx context.Context) {
	if p.store == nil {
		return
	}
	if err := p.store.Del(ctx, popularKey); err != nil {
		p.log.Warn("invalidate cache", zap.Error(err))
	}
}

func (p *Popularity) cached(ctx context.Context) ([]model.PopularBook, error) {
	raw, err := p.store.Get(ctx, popularKey)
	if err != nil {
		return nil, err
	}
	var ranking []model.PopularBook
	if err = json.Unmarshal(raw, &ranking); err != nil {
		return nil, errors.Wrap(err, "decode ranking")
	}
	return ranking, nil
}

func (p *Popularity) save(ctx context.Context, ranking []model.PopularBook) {
	raw, err := json.Marshal(ranking)
	if err != nil {
		p.log.Warn("encode ranking", zap.Error(err))
		return
	}
	if err = p.store.Set(ctx, popularKey, raw, p.ttl); err != nil {
		p.log.Warn("write cache", zap.Error(err))
	}
}
