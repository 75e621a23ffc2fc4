package main

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "yatra-api/configs"
	_ "yatra-api/docs"
	"yatra-api/internal/application/controller"
	"yatra-api/internal/application/middleware"
	"yatra-api/internal/application/processor"
	"yatra-api/internal/application/schedule"
	"yatra-api/internal/domain/gateway/api"
	"yatra-api/internal/domain/gateway/cache"
	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/gateway/queue"
	"yatra-api/internal/domain/usecase/health"
	"yatra-api/internal/domain/usecase/travel"
	"yatra-api/internal/infra/aws"
	gormdb "yatra-api/internal/infra/database/gorm"
	"yatra-api/internal/infra/database/sqldb"
	pkghttp "yatra-api/pkg/http"
	"yatra-api/pkg/log"
	"yatra-api/pkg/msg"
	"yatra-api/pkg/redis"
	"yatra-api/pkg/resource"
	"yatra-api/pkg/sqs"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// @title Yatra API
// @description Travel information aggregation API for Indian cities
// @version 1.0
// @BasePath /api
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init Redis (optional; the encyclopedia cache and scheduler lock need it)
	var redisClient *redis.Client
	if resource.GetString("app.cache.host") != "" {
		redisClient = redis.NewClient(&redis.Config{
			Host:            resource.GetString("app.cache.host"),
			Port:            resource.GetInt("app.cache.port"),
			Password:        resource.GetString("app.cache.password"),
			Database:        resource.GetInt("app.cache.database"),
			DialTimeout:     resource.GetDuration("app.cache.dial-timeout"),
			ReadTimeout:     resource.GetDuration("app.cache.read-timeout"),
			WriteTimeout:    resource.GetDuration("app.cache.write-timeout"),
			DefaultCacheTTL: resource.GetDuration("app.cache.default-ttl"),
			CacheTTLs: map[string]time.Duration{
				"encyclopedia": resource.GetDuration("app.cache.encyclopedia-ttl"),
			},
		})
	}

	var encyclopediaCache *redis.Cache
	if redisClient != nil {
		encyclopediaCache = redis.NewCache(redisClient, "encyclopedia")
	}

	// Init API gateways
	clientOptions := pkghttp.ClientOptions{
		ReadTimeout:       resource.GetDuration("app.sources.read-timeout"),
		ConnectionTimeout: resource.GetDuration("app.sources.connection-timeout"),
	}
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.sources.weather.base-url"),
		resource.GetString("app.sources.weather.api-key"),
		clientOptions)
	newsGateway := api.NewNewsGateway(resource.GetString("app.sources.news.base-url"), clientOptions)
	encyclopediaGateway := api.NewEncyclopediaGateway(
		resource.GetString("app.sources.encyclopedia.base-url"),
		encyclopediaCache,
		clientOptions)

	// Init repository: Postgres when configured, in-memory otherwise
	var travelGateway db.TravelGateway
	var dbHealthGateway db.HealthDBGateway
	if resource.GetString("app.db.host") != "" {
		sqlDB, err := sqldb.Connect()
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		travelGateway = db.NewSQLTravelGateway(sqlDB)

		gormDB, err := gormdb.Connect()
		if err != nil {
			log.Fatalf("Failed to connect database for health checks: %v", err)
		}
		dbHealthGateway = db.NewGormHealthDBGateway(gormDB)
	} else {
		log.Warn("No database configured, using in-memory repository")
		travelGateway = db.NewMemoryTravelGateway()
		dbHealthGateway = db.NewMemoryHealthDBGateway()
	}

	// Init queue
	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)
	queueHealthGateway := queue.NewQueueHealthGateway()
	queueName := resource.GetString("app.refresh.queue-name")

	// Init UseCase
	travelUseCase := travel.NewTravelUseCase(
		queueName,
		resource.GetInt("app.refresh.batch-size"),
		resource.GetBool("app.weather.persist-fallback"),
		queueSender,
		weatherGateway,
		newsGateway,
		encyclopediaGateway,
		travelGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, queueHealthGateway, cache.NewRedisHealthGateway(redisClient))

	// Init Controller
	travelController := controller.NewTravelController(apiGroup, travelUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	travelController.InitTravelRoutes()
	healthController.InitHealthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init refresh worker
	refreshProcessor := processor.NewRefreshProcessor(travelUseCase)
	worker, err := sqs.NewWorker(sqsClient, queueName, refreshProcessor, &sqs.WorkerConfig{
		PoolSize: resource.GetInt("app.refresh.worker-pool-size"),
	})
	if err != nil {
		log.Warnf("Refresh worker not started: %v", err)
	} else {
		queueHealthGateway.RegisterWorker("refresh", worker)
		go worker.Start(ctx)
	}

	// Init Schedule
	if redisClient != nil {
		refreshScheduler := schedule.NewRefreshScheduler(
			travelUseCase,
			redisClient,
			resource.GetString("app.refresh.cron"),
			resource.GetInt("app.refresh.lock-ttl-seconds"),
			resource.GetInt("app.refresh.lock-refresh-seconds"))
		refreshScheduler.InitRefreshScheduleTasks(ctx)
	} else {
		log.Warn("No cache configured, refresh scheduler disabled")
	}

	sweeper, err := schedule.NewSnapshotSweeper(
		travelGateway,
		queueSender,
		queueName,
		resource.GetInt("app.refresh.batch-size"),
		resource.GetDuration("app.refresh.sweep-interval"))
	if err != nil {
		log.Warnf("Snapshot sweeper not created: %v", err)
	} else if err := sweeper.Start(); err != nil {
		log.Warnf("Snapshot sweeper not started: %v", err)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
