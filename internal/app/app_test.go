package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func memoryConfig(ledgerFile string, strict bool) *config.Config {
	return &config.Config{
		Http: &config.HTTPConfig{
			Port:         "0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
			CORSOrigins:  []string{"*"},
		},
		Catalog: &config.CatalogCfg{},
		Ledger:  &config.LedgerCfg{File: ledgerFile, SheetName: "Orders", Strict: strict},
		Cart:    &config.CartCfg{Storage: config.StorageMemory},
		Order:   &config.OrderCfg{Storage: config.StorageMemory},
		Kafka:   &config.KafkaCfg{},
		Minio:   &config.MinIOCfg{},
	}
}

func TestNewAppInMemory(t *testing.T) {
	ledgerFile := filepath.Join(t.TempDir(), "orders.xlsx")

	a, err := NewApp(memoryConfig(ledgerFile, false), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a.server)
	require.FileExists(t, ledgerFile)

	require.NoError(t, a.closer.Close(context.Background()))
}

func TestNewAppLedgerNotWritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	ledgerFile := filepath.Join(blocker, "orders.xlsx")

	a, err := NewApp(memoryConfig(ledgerFile, false), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, a.closer.Close(context.Background()))

	_, err = NewApp(memoryConfig(ledgerFile, true), logger.Nop())
	require.Error(t, err)
}
