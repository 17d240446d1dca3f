package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/clients"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

var _ usecase.KeyValueRepository = (*KVRepo)(nil)

// KVRepo stores values as plain Redis strings under a common prefix.
type KVRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewKVRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *KVRepo {
	return &KVRepo{
		client: client,
		cfg:    cfg,
	}
}

// Get returns e.ErrKeyNotFound on a miss.
func (k *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := k.client.Client.Get(ctx, k.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrKeyNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// Set stores value without expiration unless StateTTL is configured.
func (k *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Client.Set(ctx, k.redisKey(key), value, k.cfg.StateTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (k *KVRepo) Delete(ctx context.Context, key string) error {
	if err := k.client.Client.Del(ctx, k.redisKey(key)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// redisKey namespaces key so several storefronts can share one database.
func (k *KVRepo) redisKey(key string) string {
	if k.cfg.KeyPrefix == "" {
		return key
	}
	return k.cfg.KeyPrefix + ":" + key
}
