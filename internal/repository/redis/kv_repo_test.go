package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/pkg/clients"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, prefix string, ttl time.Duration) (*KVRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisCfg := &cfg.RedisCfg{
		Addr:        mr.Addr(),
		DialTimeout: time.Second,
		Timeout:     time.Second,
		KeyPrefix:   prefix,
		StateTTL:    ttl,
	}

	client := clients.NewRedisClient(redisCfg)
	t.Cleanup(func() { _ = client.Client.Close() })
	require.NoError(t, client.Ping(context.Background()))

	return NewKVRepo(client, redisCfg), mr
}

func TestKVRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss", func(t *testing.T) {
		repo, _ := newTestRepo(t, "", 0)

		_, err := repo.Get(ctx, "pokeshop-cart")
		assert.ErrorIs(t, err, e.ErrKeyNotFound)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		repo, mr := newTestRepo(t, "pokeshop", 0)

		require.NoError(t, repo.Set(ctx, "pokeshop-cart", []byte(`{"1":2}`)))

		raw, err := mr.Get("pokeshop:pokeshop-cart")
		require.NoError(t, err)
		assert.Equal(t, `{"1":2}`, raw)
		assert.Zero(t, mr.TTL("pokeshop:pokeshop-cart"))

		got, err := repo.Get(ctx, "pokeshop-cart")
		require.NoError(t, err)
		assert.Equal(t, `{"1":2}`, string(got))

		require.NoError(t, repo.Delete(ctx, "pokeshop-cart"))
		assert.False(t, mr.Exists("pokeshop:pokeshop-cart"))
	})

	t.Run("TTL", func(t *testing.T) {
		repo, mr := newTestRepo(t, "", time.Hour)

		require.NoError(t, repo.Set(ctx, "pokeshop-favourites", []byte(`[1]`)))
		assert.Equal(t, time.Hour, mr.TTL("pokeshop-favourites"))
	})

	t.Run("ServerDown", func(t *testing.T) {
		repo, mr := newTestRepo(t, "", 0)
		mr.Close()

		_, err := repo.Get(ctx, "pokeshop-cart")
		require.Error(t, err)
		assert.NotErrorIs(t, err, e.ErrKeyNotFound)
	})
}
