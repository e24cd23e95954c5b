package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"ordering/cmd"
	_ "ordering/docs"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/generated/servers"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	orderMetrics := metrics.NewOrderMetrics()

	gormDB := openDatabase(configs)
	if err := postgres.MigrateTables(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	notifier, err := kafka.NewNotifier(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaOrderEventsTopic,
		logger,
		orderMetrics,
	)
	if err != nil {
		log.Fatalf("Error connecting to kafka: %v", err)
	}
	defer func() {
		_ = notifier.Close()
	}()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		notifier,
		logger,
	)

	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleOrdersCommandHandler(),
		orderTTL(configs),
		logger,
		orderMetrics,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, orderMetrics, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		OrderTTLMinutes:       goDotEnvVariable("ORDER_TTL_MINUTES"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func orderTTL(configs cmd.Config) time.Duration {
	minutes, err := strconv.Atoi(configs.OrderTTLMinutes)
	if err != nil || minutes <= 0 {
		log.Fatalf("Error parsing ORDER_TTL_MINUTES: %q", configs.OrderTTLMinutes)
	}
	return time.Duration(minutes) * time.Minute
}

func startWebServer(app cmd.CompositionRoot, orderMetrics *metrics.OrderMetrics, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		orderMetrics,
	)

	api := e.Group("/api/v1",
		httpadapter.MetricsMiddleware(orderMetrics),
		httpadapter.IdentityMiddleware(),
	)
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
