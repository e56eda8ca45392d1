package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "auth-api/configs"
	_ "auth-api/docs"
	"auth-api/internal/application/controller"
	appmw "auth-api/internal/application/middleware"
	"auth-api/internal/application/processor"
	"auth-api/internal/application/schedule"
	apigw "auth-api/internal/domain/gateway/api"
	"auth-api/internal/domain/gateway/cache"
	"auth-api/internal/domain/gateway/db"
	"auth-api/internal/domain/gateway/queue"
	"auth-api/internal/domain/usecase/auth"
	"auth-api/internal/domain/usecase/health"
	"auth-api/internal/domain/usecase/user"
	"auth-api/internal/infra/aws"
	infracache "auth-api/internal/infra/cache"
	infragorm "auth-api/internal/infra/database/gorm"
	"auth-api/internal/infra/database/sqlc"
	"auth-api/pkg/http"
	"auth-api/pkg/log"
	"auth-api/pkg/msg"
	"auth-api/pkg/redis"
	"auth-api/pkg/resource"
	"auth-api/pkg/sqs"
	"auth-api/pkg/token"
)

// @title User Authentication API
// @version 1.0.1
// @description Simple authentication API with user management, JWT tokens and breach-screened passwords.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	api := e.Group(resource.GetString("app.server.context-path"))
	appmw.SetupRequestLogger(e)

	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)

	tokenManager := token.NewManager(
		resource.GetString("app.auth.jwt-secret"),
		resource.GetString("app.auth.jwt-issuer"),
		resource.GetDuration("app.auth.access-token-ttl"),
	)

	// Init Gateways
	dbGateway := db.NewSQLCHealthDBGateway(sqlc.Db)
	userGateway := db.NewSQLCUserGateway(sqlc.Db)
	tokenGateway := db.NewGormRefreshTokenGateway(infragorm.Db)
	userCacheGateway := cache.NewRedisUserCacheGateway(infracache.Client, resource.GetDuration("app.users.cache-ttl"))
	queueHealthGateway := queue.NewQueueHealthGateway()
	breachGateway := apigw.NewBreachGateway(resource.GetString("app.security.pwned-passwords-url"), http.ClientOptions{})

	// Init UseCases
	userUseCase := user.NewUserUseCase(user.Config{
		EventQueueName:   resource.GetString("app.users.events.queue"),
		ScreenPasswords:  resource.GetBool("app.security.screen-passwords"),
		EnforceScreening: resource.GetBool("app.security.enforce-screening"),
	}, userGateway, userCacheGateway, queueSender, breachGateway)
	authUseCase := auth.NewAuthUseCase(userGateway, tokenGateway, tokenManager,
		resource.GetDuration("app.auth.refresh-token-ttl"))
	healthUseCase := health.NewHealthUseCase(dbGateway, userCacheGateway, queueHealthGateway)

	// Init login rate limiter
	loginLimiter, err := redis.NewRateLimiter(infracache.Client,
		redis.NewRateLimiterOptions().
			WithMaxPerWindow(resource.GetInt("app.auth.login-rate-limit.max-attempts")).
			WithWindow(resource.GetDuration("app.auth.login-rate-limit.window")).
			WithNamespace("login_attempts"))
	if err != nil {
		log.Fatalf("Failed to create login rate limiter: %v", err)
	}

	// Init Controllers
	healthController := controller.NewHealthController(e, api, healthUseCase)
	userController := controller.NewUserController(api, userUseCase)
	authController := controller.NewAuthController(api, authUseCase,
		appmw.RequireAuth(tokenManager), appmw.LoginRateLimit(loginLimiter))

	// Init Routes
	healthController.InitHealthRoutes()
	userController.InitUserRoutes()
	authController.InitAuthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init user events worker
	eventQueue := resource.GetString("app.users.events.queue")
	eventProcessor := processor.NewUserEventProcessor(userCacheGateway, tokenGateway)
	eventWorker, err := sqs.NewWorker(ctx, sqsClient, eventQueue, eventProcessor, &sqs.WorkerConfig{
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     20,
		PoolSize:            resource.GetInt("app.users.events.worker-pool-size"),
	})
	if err != nil {
		log.Errorf("User events worker will not be started: %v", err)
	} else {
		queueHealthGateway.RegisterWorker(eventQueue, eventWorker)
		eventWorker.Start(ctx)
	}

	// Init Schedules
	tokenScheduler := schedule.NewTokenScheduler(authUseCase, infracache.Client, &schedule.TokenSchedulerConfig{
		CronExpression:  resource.GetString("app.auth.token-purge.cron"),
		LockTTL:         time.Duration(resource.GetInt("app.auth.token-purge.lock-ttl-seconds")) * time.Second,
		RefreshInterval: time.Duration(resource.GetInt("app.auth.token-purge.lock-refresh-seconds")) * time.Second,
	})
	tokenScheduler.InitTokenScheduleTasks(ctx)

	statsScheduler, err := schedule.NewStatsScheduler(userUseCase, resource.GetDuration("app.users.stats.interval"))
	if err != nil {
		log.Errorf("Stats scheduler will not be started: %v", err)
	} else if err := statsScheduler.InitStatsScheduleTasks(); err != nil {
		log.Errorf("Failed to start stats scheduler: %v", err)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
