package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/ascend/internal/assistant"
	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/bodyweight"
	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/config"
	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/middleware"
	"github.com/2beens/ascend/internal/records"
	"github.com/2beens/ascend/internal/stats"
	"github.com/2beens/ascend/internal/telemetry/metrics"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/users"
	"github.com/2beens/ascend/internal/workout"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mcpSecret         string // shared secret for agents calling /mcp

	config       *config.Config
	dbPool       *pgxpool.Pool
	catalogCache *freecache.Cache

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	MCPSecret               string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Debugln("db schema migrated")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry("ascend", pgxpoolCollector)
	metricsManager := metrics.NewManager("ascend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(time.Hour * 8)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "ascend-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:       params.Config,
		dbPool:       dbPool,
		mcpSecret:    params.MCPSecret,
		catalogCache: freecache.NewCache(params.Config.CatalogCacheSizeBytes),

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// statsService is shared by the dashboard routes and the MCP tools.
func (s *Server) statsService() *stats.Service {
	return stats.NewService(stats.NewServiceParams{
		Repo:       stats.NewRepo(s.dbPool),
		Catalog:    catalog.NewRepo(s.dbPool),
		Users:      users.NewRepo(s.dbPool),
		Cache:      s.catalogCache,
		CacheTTL:   s.config.CatalogCacheTTL(),
		WindowDays: s.config.RecentWindowDays,
	})
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(
		users.NewService(usersRepo, s.authService, s.metricsManager),
		usersRepo,
	)
	usersHandler.SetupRoutes(r)

	catalogHandler := catalog.NewHandler(catalog.NewRepo(s.dbPool))
	catalogHandler.SetupRoutes(r)

	recordsHandler := records.NewHandler(records.NewRepo(s.dbPool))
	recordsHandler.SetupRoutes(r)

	workoutHandler := workout.NewHandler(
		workout.NewBuilder(workout.NewPgTransactor(s.dbPool), s.metricsManager),
		workout.NewRepo(s.dbPool),
	)
	workoutHandler.SetupRoutes(r)

	bodyweightHandler := bodyweight.NewHandler(bodyweight.NewRepo(s.dbPool))
	bodyweightHandler.SetupRoutes(r)

	statsService := s.statsService()
	statsHandler := stats.NewHandler(statsService)
	statsHandler.SetupRoutes(r)

	mcpHandler := assistant.NewHTTPHandler(assistant.NewServer(statsService))
	r.Handle("/mcp", mcpHandler).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET").Name("root")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.mcpSecret, s.loginChecker)

	r.Use(middleware.RecoverPanics(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RateLimit(s.rateLimiter, "main", []middleware.RateLimitRule{
		{Method: "POST", Path: "/login", AllowedPerMin: s.config.LoginRateLimitAllowedPerMin},
		{Method: "POST", Path: "/register", AllowedPerMin: s.config.LoginRateLimitAllowedPerMin},
		{Method: "POST", Path: "/sessions", AllowedPerMin: s.config.SessionRateLimitAllowedPerMin},
	}, s.metricsManager))
	r.Use(middleware.LimitAndDrainBody(maxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
