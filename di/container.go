package di

import (
	"context"
	"fmt"
	"log"

	"farm-dashboard/api"
	"farm-dashboard/api/weathercsv"
	"farm-dashboard/config"
	"farm-dashboard/dao/redis"
	"farm-dashboard/db"
	"farm-dashboard/observability"
	"farm-dashboard/server"
	"farm-dashboard/server/handlers"
	services "farm-dashboard/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds all application dependencies.
type Container struct {
	Config                    *config.Config
	RedisClient               db.RedisClient
	RedisCropSelectionDao     *redis.RedisCropSelectionDAO
	WeatherSource             weathercsv.CSVSource
	Metrics                   *observability.Metrics
	CropCatalog               *services.CropCatalog
	DashboardService          *services.DashboardService
	CropSelectionService      *services.CropSelectionService
	DashboardHandler          *handlers.DashboardHandler
	CropHandler               *handlers.CropHandler
	MuxRouter                 *mux.Router
	Router                    *server.Router
	DashboardHttpServer       *server.DashboardHttpServer
	DashboardRefresherService *services.DashboardRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.Env != "prod" {
		log.Printf("Using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGoRedisClient(ctx, redisInternalClient)
	}
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	redisCropSelectionDao := redis.NewRedisCropSelectionDAO(redisClient)

	var weatherSource weathercsv.CSVSource
	if cfg.UsesHTTPSource() {
		log.Printf("Loading weather data from %s", cfg.DataBaseURL)
		weatherSource = weathercsv.NewWeatherCSVClient(api.NewHTTPClient(cfg.DataBaseURL, cfg.HTTPTimeout))
	} else {
		log.Printf("Loading weather data from %s", cfg.ResourcesDir)
		weatherSource = weathercsv.NewWeatherCSVFileSource(cfg.ResourcesDir)
	}

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()
	catalog := services.NewCropCatalog()

	dashboardService := services.NewDashboardService(weatherSource, cfg.WeatherCSV, cfg.AnalyzedCSV, clock, metrics)
	cropSelectionService := services.NewCropSelectionService(catalog, redisCropSelectionDao, dashboardService, metrics)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	cropHandler := handlers.NewCropHandler(catalog, cropSelectionService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, cropHandler, promhttp.Handler(), muxRouter)
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.HTTPAddr, cfg.ShutdownTimeout)

	dashboardRefresherService := services.NewDashboardRefresherService(dashboardService, clock)

	return &Container{
		Config:                    cfg,
		RedisClient:               redisClient,
		RedisCropSelectionDao:     redisCropSelectionDao,
		WeatherSource:             weatherSource,
		Metrics:                   metrics,
		CropCatalog:               catalog,
		DashboardService:          dashboardService,
		CropSelectionService:      cropSelectionService,
		DashboardHandler:          dashboardHandler,
		CropHandler:               cropHandler,
		MuxRouter:                 muxRouter,
		Router:                    router,
		DashboardHttpServer:       dashboardHttpServer,
		DashboardRefresherService: dashboardRefresherService,
	}, nil
}
