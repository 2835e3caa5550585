package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/excel"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront-backend/internal/infrastructure/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/storefront-backend/internal/repository/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/DRSN-tech/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/moby/locker"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 10 * time.Second
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *v1Http.Server
	closer *closer.Closer
}

// NewApp собирает зависимости приложения. Все открытые ресурсы регистрируются в closer
// и при ошибке инициализации закрываются.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0),
	}

	if err := a.init(); err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(ctx); cerr != nil {
			logger.Warnf("cleanup after failed init: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	// Контекст фоновых задач отменяется последним, после ожидания выгрузок
	bgCtx, bgCancel := context.WithCancel(context.Background())
	a.closer.AddSimple("background tasks", func() error {
		bgCancel()
		return nil
	})

	catalogRepo, err := catalog.NewCatalogRepo(a.cfg.Catalog.File)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	cartRepo, err := a.initCartRepo(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	orderRepo, err := a.initOrderRepo(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ledger, err := a.initLedger(ctx, bgCtx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	events, err := a.initEvents()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	cartLocker := locker.New()

	catalogUC := usecase.NewCatalogUC(catalogRepo)
	cartUC := usecase.NewCartUC(cartRepo, catalogRepo, cartLocker, a.logger)
	orderUC := usecase.NewOrderUC(cartRepo, orderRepo, ledger, events, cartLocker, a.logger, a.cfg.Ledger.Strict)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(a.cfg.Http.CORSOrigins, catalogUC, cartUC, orderUC)

	a.server = v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add("http server", a.server.Stop)

	return nil
}

func (a *App) initCartRepo(ctx context.Context) (usecase.CartRepository, error) {
	if a.cfg.Cart.Storage != config.StorageRedis {
		a.logger.Infof("cart storage: memory")
		return memory.NewCartRepo(), nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.AddSimple("redis", redisClient.Close)

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.logger.Infof("cart storage: redis at %s", a.cfg.Redis.Addr)
	return redis.NewCartRepo(redisClient, redisConv.NewCartConverterImpl(), a.cfg.Redis), nil
}

func (a *App) initOrderRepo(ctx context.Context) (usecase.OrderRepository, error) {
	if a.cfg.Order.Storage != config.StoragePostgres {
		a.logger.Infof("order storage: memory (orders are lost on restart, the ledger file keeps a copy)")
		return memory.NewOrderRepo(), nil
	}

	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddSimple("postgres", db.Close)

	a.logger.Infof("order storage: postgres at %s:%s", a.cfg.Db.Host, a.cfg.Db.Port)
	return pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverterImpl()), nil
}

// initLedger готовит файл журнала. Без строгого режима ошибка подготовки только логируется:
// запись будет повторена при оформлении заказа.
func (a *App) initLedger(ctx context.Context, bgCtx context.Context) (usecase.OrderLedger, error) {
	fileLedger := excel.NewLedger(a.cfg.Ledger.File, a.cfg.Ledger.SheetName, a.logger)
	if err := fileLedger.Init(); err != nil {
		if a.cfg.Ledger.Strict {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.logger.Warnf("order ledger %s is not writable yet: %v", fileLedger.Path(), err)
	}

	if a.cfg.Minio == nil || !a.cfg.Minio.Enabled {
		return fileLedger, nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ledgerRepo := s3Repo.NewLedgerRepo(minioClient, a.cfg.Minio)
	mirror := minioInfra.NewMirroredLedger(fileLedger, ledgerRepo, a.cfg.Minio.MaxRetries, a.logger, bgCtx)
	a.closer.Add("ledger mirror", mirror.WaitForUploads)
	mirror.Sync()

	a.logger.Infof("order ledger mirrored to bucket %s", a.cfg.Minio.BucketName)
	return mirror, nil
}

func (a *App) initEvents() (usecase.OrderEventPublisher, error) {
	if a.cfg.Kafka == nil || !a.cfg.Kafka.Enabled {
		return nil, nil
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddSimple("kafka producer", producer.Close)

	if err := producer.EnsureTopic(topicTimeout); err != nil {
		a.logger.Warnf("kafka topic %s is not ready: %v", a.cfg.Kafka.Topic, err)
	}

	return producer, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.server.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		_ = db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
