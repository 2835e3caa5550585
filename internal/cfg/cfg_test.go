package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CART_STORAGE", "")
	t.Setenv("ORDER_STORAGE", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("LEDGER_FILE", "")
	t.Setenv("HTTP_PORT", "")

	c, err := Load(logger.Nop())
	require.NoError(t, err)

	require.Equal(t, "8080", c.Http.Port)
	require.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	require.Equal(t, []string{"*"}, c.Http.CORSOrigins)
	require.Equal(t, "orders.xlsx", c.Ledger.File)
	require.Equal(t, "Orders", c.Ledger.SheetName)
	require.False(t, c.Ledger.Strict)
	require.Equal(t, StorageMemory, c.Cart.Storage)
	require.Equal(t, StorageMemory, c.Order.Storage)
	require.Nil(t, c.Redis)
	require.Nil(t, c.Db)
	require.False(t, c.Kafka.Enabled)
	require.False(t, c.Minio.Enabled)
}

func TestLoadRedisAndKafka(t *testing.T) {
	t.Setenv("CART_STORAGE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CART_TTL", "24h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("ORDER_STORAGE", "")
	t.Setenv("MINIO_ENDPOINT", "")

	c, err := Load(logger.Nop())
	require.NoError(t, err)

	require.Equal(t, "cache:6379", c.Redis.Addr)
	require.Equal(t, 24*time.Hour, c.Redis.CartTTL)
	require.True(t, c.Kafka.Enabled)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	require.Equal(t, "orders.placed", c.Kafka.Topic)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("CART_STORAGE", "mongo")

	_, err := Load(logger.Nop())
	require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
}

func TestLoadPostgresRequiresCredentials(t *testing.T) {
	t.Setenv("CART_STORAGE", "")
	t.Setenv("ORDER_STORAGE", "postgres")
	t.Setenv("POSTGRES_USER", "")

	_, err := Load(logger.Nop())
	require.Error(t, err)
}
