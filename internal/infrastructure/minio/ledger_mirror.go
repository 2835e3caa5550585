package minio

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/jitter"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileLedger — локальный журнал, содержимое которого можно выгрузить целиком.
type FileLedger interface {
	Append(ctx context.Context, order *domain.Order) error
	Snapshot() ([]byte, error)
	Path() string
}

type ObjectRepository interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// MirroredLedger пишет заказ в локальный журнал и в фоне выгружает его копию в MinIO.
// Ошибки выгрузки только логируются: на результат Append они не влияют.
// Пока идёт выгрузка, новые записи помечают копию устаревшей, и после завершения
// выгружается свежий снимок, так что параллельно работает не больше одной выгрузки.
type MirroredLedger struct {
	ledger     FileLedger
	repo       ObjectRepository
	logger     logger.Logger
	objectKey  string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	shutdownCtx context.Context
	wg          sync.WaitGroup
	mu          sync.Mutex
	running     bool
	dirty       bool
}

func NewMirroredLedger(ledger FileLedger, repo ObjectRepository, maxRetries int, logger logger.Logger, shutdownCtx context.Context) *MirroredLedger {
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &MirroredLedger{
		ledger:      ledger,
		repo:        repo,
		logger:      logger,
		objectKey:   "ledger/" + filepath.Base(ledger.Path()),
		maxRetries:  maxRetries,
		baseDelay:   time.Second,
		maxDelay:    30 * time.Second,
		shutdownCtx: shutdownCtx,
	}
}

func (m *MirroredLedger) Append(ctx context.Context, order *domain.Order) error {
	if err := m.ledger.Append(ctx, order); err != nil {
		return err
	}

	m.schedule()
	return nil
}

// Sync запускает выгрузку текущего журнала (например, при старте).
func (m *MirroredLedger) Sync() {
	m.schedule()
}

func (m *MirroredLedger) schedule() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		m.dirty = true
		return
	}

	m.running = true
	m.wg.Add(1)
	go m.loop()
}

func (m *MirroredLedger) loop() {
	defer m.wg.Done()

	for {
		m.upload()

		m.mu.Lock()
		if !m.dirty {
			m.running = false
			m.mu.Unlock()
			return
		}
		m.dirty = false
		m.mu.Unlock()
	}
}

// upload выгружает снимок журнала с экспоненциальной задержкой и jitter между попытками.
func (m *MirroredLedger) upload() {
	const op = "MirroredLedger.upload"

	data, err := m.ledger.Snapshot()
	if err != nil {
		m.logger.Warnf("%s: snapshot failed: %v", op, err)
		return
	}

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for attempt := 0; attempt < m.maxRetries; attempt++ {
		err = m.repo.Upload(ctx, m.objectKey, data, xlsxContentType)
		if err == nil {
			m.logger.Debugf("%s: mirrored %s (%d bytes)", op, m.objectKey, len(data))
			return
		}

		if attempt == m.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(m.baseDelay, m.maxDelay, attempt, jitter.DefaultJitter)
		m.logger.Warnf("%s: upload failed, retrying in %v (attempt %d): %v", op, sleepTime, attempt+1, err)

		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			m.logger.Warnf("%s: interrupted by shutdown, key=%s", op, m.objectKey)
			return
		}
	}

	m.logger.Errorf(e.Wrap(op, err), "ledger mirror gave up after %d attempts", m.maxRetries)
}

// WaitForUploads ожидает завершения фоновых выгрузок с учётом таймаута завершения приложения.
func (m *MirroredLedger) WaitForUploads(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ledger mirror timeout during shutdown: %w", ctx.Err())
	}
}
