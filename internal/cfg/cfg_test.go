package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("KAFKA_BROKERS", "")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, c.Storage.Backend)
	assert.Equal(t, "pokeshop-cart", c.Storage.CartKey)
	assert.Equal(t, "pokeshop-favourites", c.Storage.FavouritesKey)
	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, "8091", c.Grpc.Port)
	assert.Equal(t, "£", c.Storefront.CurrencySymbol)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Nil(t, c.Db)
	assert.Nil(t, c.Redis)
	assert.Nil(t, c.Kafka)
}

func TestLoadRedis(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("READ_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "4s")
	t.Setenv("STATE_TTL", "720h")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	require.NotNil(t, c.Redis)
	assert.Equal(t, StorageRedis, c.Storage.Backend)
	assert.Equal(t, "redis:6379", c.Redis.Addr)
	assert.Equal(t, 4*time.Second, c.Redis.Timeout)
	assert.Equal(t, 720*time.Hour, c.Redis.StateTTL)
	assert.Equal(t, "pokeshop", c.Redis.KeyPrefix)
}

func TestLoadPostgres(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	t.Run("MissingCredentials", func(t *testing.T) {
		t.Setenv("POSTGRES_USER", "")
		_, err := Load(logger.NewNopLogger())
		assert.Error(t, err)
	})

	t.Run("Complete", func(t *testing.T) {
		t.Setenv("POSTGRES_USER", "shop")
		t.Setenv("POSTGRES_PASSWORD", "secret")
		t.Setenv("POSTGRES_DB", "pokeshop")

		c, err := Load(logger.NewNopLogger())
		require.NoError(t, err)
		require.NotNil(t, c.Db)
		assert.Equal(t, "localhost", c.Db.Host)
		assert.Equal(t, "db/migrations", c.Db.MigrationsPath)
	})
}

func TestLoadKafka(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_PARTITIONS", "6")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, c.Kafka)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 6, c.Kafka.Partitions)
	assert.Equal(t, "pokeshop-activity", c.Kafka.Topic)

	t.Setenv("KAFKA_PARTITIONS", "six")
	_, err = Load(logger.NewNopLogger())
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Backend", "STORAGE_BACKEND", "etcd"},
		{"HTTPTimeout", "HTTP_READ_TIMEOUT", "soon"},
		{"ShutdownTimeout", "SHUTDOWN_TIMEOUT", "10"},
		{"SameKeys", "FAVOURITES_STORAGE_KEY", "pokeshop-cart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(logger.NewNopLogger())
			assert.Error(t, err)
		})
	}

	t.Run("BackendSentinel", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "etcd")
		_, err := Load(logger.NewNopLogger())
		assert.ErrorIs(t, err, e.ErrUnknownStorageBackend)
	})
}
