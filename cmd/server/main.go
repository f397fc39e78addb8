package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/portfolio/api/handler"
	"github.com/fastygo/portfolio/internal/config"
	"github.com/fastygo/portfolio/internal/infrastructure/buffer"
	"github.com/fastygo/portfolio/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/portfolio/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/portfolio/internal/infrastructure/redis"
	"github.com/fastygo/portfolio/internal/middleware"
	"github.com/fastygo/portfolio/internal/portfolio"
	"github.com/fastygo/portfolio/internal/ratelimit"
	"github.com/fastygo/portfolio/internal/router"
	"github.com/fastygo/portfolio/internal/services"
	"github.com/fastygo/portfolio/internal/services/lifecycle"
	"github.com/fastygo/portfolio/pkg/httpcontext"
	"github.com/fastygo/portfolio/pkg/logger"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/repository/memory"
	"github.com/fastygo/portfolio/repository/postgres"
	redisRepo "github.com/fastygo/portfolio/repository/redis"
	"github.com/fastygo/portfolio/usecase"
	aboutUC "github.com/fastygo/portfolio/usecase/about"
	authUC "github.com/fastygo/portfolio/usecase/auth"
	blogUC "github.com/fastygo/portfolio/usecase/blog"
	certificateUC "github.com/fastygo/portfolio/usecase/certificate"
	contactUC "github.com/fastygo/portfolio/usecase/contact"
	heroUC "github.com/fastygo/portfolio/usecase/hero"
	projectUC "github.com/fastygo/portfolio/usecase/project"
	statUC "github.com/fastygo/portfolio/usecase/stat"
)

type repositories struct {
	hero         repository.HeroRepository
	about        repository.AboutRepository
	projects     repository.ProjectRepository
	certificates repository.CertificateRepository
	blogs        repository.BlogRepository
	stats        repository.StatRepository
	contacts     repository.ContactRepository
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		hero:         postgres.NewHeroRepository(pool),
		about:        postgres.NewAboutRepository(pool),
		projects:     postgres.NewProjectRepository(pool),
		certificates: postgres.NewCertificateRepository(pool),
		blogs:        postgres.NewBlogRepository(pool),
		stats:        postgres.NewStatRepository(pool),
		contacts:     postgres.NewContactRepository(pool),
	}
}

func memoryRepositories() repositories {
	return repositories{
		hero:         memory.NewHeroRepository(),
		about:        memory.NewAboutRepository(),
		projects:     memory.NewProjectRepository(),
		certificates: memory.NewCertificateRepository(),
		blogs:        memory.NewBlogRepository(),
		stats:        memory.NewStatRepository(),
		contacts:     memory.NewContactRepository(),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger = zapLogger.With(zap.String("app", cfg.AppName), zap.String("env", cfg.Environment))

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.Context(context.Background())
	defer cancel()

	mon := monitor.New(10*time.Second, zapLogger)
	scheduler := services.NewScheduler(zapLogger)

	var repos repositories
	var bufferStore *buffer.Store
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if err := pgInfra.RunMigrations(cfg.Database, cfg.Migrations, zapLogger); err != nil {
			zapLogger.Fatal("migrations failed", zap.Error(err))
		}
		pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
		if err != nil {
			zapLogger.Fatal("postgres connection failed", zap.Error(err))
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pgInfra.Close(pool, zapLogger)
			return nil
		})
		mon.Register("postgresql", monitor.PostgresProbe(pool))
		repos = postgresRepositories(pool)

		bufferStore, err = buffer.Open(cfg.Buffer.Path, "")
		if err != nil {
			zapLogger.Fatal("failed to open buffer store", zap.Error(err))
		}
		manager.RegisterCloser("buffer", bufferStore.Close)
		mon.WatchBuffer(bufferStore)
	default:
		zapLogger.Warn("using in-memory store; content is lost on restart")
		repos = memoryRepositories()
	}

	var redisClient *goRedis.Client
	if cfg.RateLimit.Driver == config.DriverRedis {
		redisClient, err = redisInfra.NewClient(appCtx, cfg.Redis, zapLogger)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		manager.RegisterCloser("redis", redisClient.Close)
		mon.Register("redis", monitor.RedisProbe(redisClient))
	}

	var sessions repository.SessionRepository = memory.NewSessionRepository()
	contactLimits := ratelimit.Config{Limit: cfg.RateLimit.ContactLimit, Window: cfg.RateLimit.ContactWindow}
	var contactLimiter ratelimit.Limiter
	if redisClient != nil {
		sessions = redisRepo.NewSessionRepository(redisClient, cfg.JWT.TTL)
		contactLimiter = ratelimit.NewRedisLimiter(redisClient, contactLimits, "portfolio:ratelimit:contact:")
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(contactLimits)
		if err := scheduler.Every("ratelimit_sweep", time.Minute, func(context.Context) error {
			if removed := memLimiter.Sweep(); removed > 0 {
				zapLogger.Debug("rate limiter swept", zap.Int("keys", removed))
			}
			return nil
		}); err != nil {
			zapLogger.Fatal("schedule rate limiter sweep", zap.Error(err))
		}
		contactLimiter = memLimiter
	}

	heroUseCase := heroUC.New(repos.hero, zapLogger)
	aboutUseCase := aboutUC.New(repos.about, zapLogger)
	projectUseCase := projectUC.New(repos.projects, zapLogger)
	certificateUseCase := certificateUC.New(repos.certificates, zapLogger)
	blogUseCase := blogUC.New(repos.blogs, zapLogger)
	statUseCase := statUC.New(repos.stats, zapLogger)
	contactUseCase := contactUC.New(repos.contacts, zapLogger)
	authUseCase := authUC.New(sessions, authUC.Config{
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		TTL:               cfg.JWT.TTL,
	}, zapLogger)
	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" || cfg.JWT.Secret == "" {
		zapLogger.Warn("admin login disabled: ADMIN_EMAIL, ADMIN_PASSWORD_HASH and JWT_SECRET must all be set")
	}

	gateway := portfolio.NewLocalGateway(portfolio.Services{
		Hero:         heroUseCase,
		About:        aboutUseCase,
		Projects:     projectUseCase,
		Certificates: certificateUseCase,
		Blogs:        blogUseCase,
		Stats:        statUseCase,
	})
	fetcher := portfolio.NewFetcher(gateway, zapLogger)

	// Failed document sub-writes are parked in bolt and replayed through
	// the same gateway once postgres answers again.
	var retryBuffer usecase.RetryBuffer
	if bufferStore != nil {
		bufferProcessor := services.NewBufferProcessor(bufferStore, mon, portfolio.NewReplayer(gateway), zapLogger, services.ProcessorConfig{
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		})
		retryBuffer = bufferProcessor
		if err := scheduler.Every("buffer_drain", cfg.Buffer.SyncInterval, bufferProcessor.Drain); err != nil {
			zapLogger.Fatal("schedule buffer drain", zap.Error(err))
		}
	}
	writer := portfolio.NewWriter(gateway, retryBuffer, zapLogger)

	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})
	scheduler.Start()
	manager.Register("scheduler", scheduler.Stop)

	deps := apiHandler.Deps{
		Adapter:    httpcontext.NewAdapter(cfg.Context.RequestTimeout),
		Logger:     zapLogger,
		Production: cfg.IsProduction(),
	}
	handlers := router.Handlers{
		Hero:         apiHandler.NewHeroHandler(heroUseCase, deps),
		About:        apiHandler.NewAboutHandler(aboutUseCase, deps),
		Projects:     apiHandler.NewProjectHandler(projectUseCase, deps),
		Certificates: apiHandler.NewCertificateHandler(certificateUseCase, deps),
		Blogs:        apiHandler.NewBlogHandler(blogUseCase, deps),
		Stats:        apiHandler.NewStatHandler(statUseCase, deps),
		Contact:      apiHandler.NewContactHandler(contactUseCase, deps),
		Auth:         apiHandler.NewAuthHandler(authUseCase, deps),
		Portfolio:    apiHandler.NewPortfolioHandler(fetcher, writer, deps),
		Health:       apiHandler.NewHealthHandler(mon, deps),
	}

	r := router.New(handlers, router.Guards{
		Auth:         middleware.BearerAuth(authUseCase, zapLogger),
		ContactLimit: middleware.RateLimit(contactLimiter, zapLogger),
	})

	server := &fasthttp.Server{
		Handler: router.Wrap(r.Handler,
			middleware.AccessLog(zapLogger),
			middleware.CORS(cfg.CORS.AllowedOrigins),
		),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("store", cfg.Store.Driver),
			zap.String("rate_limit", cfg.RateLimit.Driver),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
