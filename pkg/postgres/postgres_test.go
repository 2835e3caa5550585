package postgres

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&cfg.PGDBCfg{
		Host: "db", Port: "5432", User: "shop", Password: "secret", DBName: "storefront", SSLMode: "disable",
	})

	require.Equal(t, "host=db port=5432 user=shop password=secret dbname=storefront sslmode=disable", dsn)
}
