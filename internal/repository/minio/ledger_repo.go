package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// LedgerRepo сохраняет копии журнала заказов в MinIO.
type LedgerRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewLedgerRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *LedgerRepo {
	return &LedgerRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает объект целиком, перезаписывая предыдущую версию.
func (l *LedgerRepo) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := l.mc.PutObject(ctx, l.cfg.BucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
