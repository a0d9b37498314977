package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/generation"
	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	gymstatsmcp "github.com/2beens/gymcoach/internal/gymstats/mcp"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/gymstats/suggestions"
	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiSecret         string // used by the gymcoach apps
	mcpSecret         string // used by MCP clients on /mcp
	versionInfo       string

	config           *config.Config
	dbPool           *pgxpool.Pool
	redisClient      *redis.Client
	rateLimiter      middleware.RequestRateLimiter
	generator        generation.Generator
	suggestionsStore suggestions.Store
	cycleCatalog     *cycles.Catalog

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	APISecret               string
	MCPSecret               string
	GeneratorAPIKey         string
	RedisPassword           string
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
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus(db.NewPoolCollector(dbPool, params.Config.PostgresDBName))
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymcoach-backend")
	if err != nil {
		return nil, err
	}

	generator, err := generation.NewFromConfig(ctx, params.Config.Generator, params.GeneratorAPIKey)
	if err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}

	cycleCatalog, err := cycles.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load cycle catalog: %w", err)
	}

	suggestionsStore, err := newSuggestionsStore(params.Config.SuggestionsCache, rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		apiSecret:   params.APISecret,
		mcpSecret:   params.MCPSecret,
		versionInfo: params.VersionInfo,

		dbPool:           dbPool,
		redisClient:      rdb,
		rateLimiter:      redis_rate.NewLimiter(rdb),
		generator:        generator,
		suggestionsStore: suggestionsStore,
		cycleCatalog:     cycleCatalog,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newSuggestionsStore(kind string, rdb *redis.Client) (suggestions.Store, error) {
	switch kind {
	case "redis", "":
		return suggestions.NewRedisStore(rdb), nil
	case "memory":
		return suggestions.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown suggestions cache: %s", kind)
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "gymcoach")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	sessionsRepo := sessions.NewRepo(s.dbPool)
	catalogRepo := catalog.NewRepo(s.dbPool)
	exerciseCatalog := catalog.New(catalogRepo)
	cycleService := cycles.NewService(s.cycleCatalog, cycles.NewStateRepo(s.dbPool), nil)
	eventsRepo := events.NewRepo(s.dbPool)

	// one analysis cache for the coach endpoints and the suggestions
	analyzer := analysis.NewAnalyzer(analysis.AnalyzerParams{
		Metrics: s.metricsManager,
	})

	coachService := coach.NewService(coach.ServiceParams{
		Sessions:        sessionsRepo,
		Cycles:          cycleService,
		Catalog:         exerciseCatalog,
		CustomExercises: catalogRepo,
		Analyzer:        analyzer,
	})
	suggestionsService := suggestions.NewService(suggestions.ServiceParams{
		Sessions:    sessionsRepo,
		Weights:     eventsRepo,
		Cycles:      cycleService,
		Catalog:     exerciseCatalog,
		Analyzer:    analyzer,
		Generator:   s.generator,
		Store:       s.suggestionsStore,
		Metrics:     s.metricsManager,
		MaxAttempts: s.config.Generator.MaxAttempts,
		CallTimeout: time.Duration(s.config.Generator.CallTimeoutSeconds) * time.Second,
	})

	coachHandler := coach.NewHandler(coachService, suggestionsService)
	coachHandler.SetupRoutes(r, s.rateLimiter, s.metricsManager, s.config.SuggestionsPerMinute)

	eventsHandler := events.NewHandler(events.NewService(eventsRepo))
	r.HandleFunc("/gymstats/events/report/weight", eventsHandler.HandleAddWeightReport).Methods("POST", "OPTIONS").Name("weight-report")

	mcpServer := gymstatsmcp.NewServer(gymstatsmcp.NewPoolSchemaRepo(s.dbPool), coachService)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiSecret, s.mcpSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// suggestions wait on the generator, up to max attempts times the call timeout
		WriteTimeout: 3 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
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

	// stop taking requests first, in flight ones still need redis and the db
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
