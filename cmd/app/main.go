package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"freight/cmd"
	freighthttp "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/rabbit"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	gormDB, err := postgres.Connect(ctx, configs.PostgresDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	publisher, err := rabbit.NewPublisher(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to message broker: %v", err)
	}
	defer func() { _ = publisher.Close() }()

	registry := prometheus.NewRegistry()
	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		logger,
		registry,
	)

	jobManager := jobs.NewJobManager(app.CreateAssignNearestDriverCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, registry, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
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

func startWebServer(app *cmd.CompositionRoot, registry *prometheus.Registry, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	server := freighthttp.NewServer(
		app.CreateCreateDriverCommandHandler(),
		app.CreateUpdateDriverLocationCommandHandler(),
		app.CreateStartTripCommandHandler(),
		app.CreateEndTripCommandHandler(),
		app.CreateCreateLoadCommandHandler(),
		app.CreateAssignLoadCommandHandler(),
		app.CreateUpdateLoadStatusCommandHandler(),
		app.CreateGetDriverQueryHandler(),
		app.CreateGetLoadsQueryHandler(),
		app.CreateFindNearbyDriversQueryHandler(),
		app.CreateFindNearbyLoadsQueryHandler(),
		app.CreateGetTripHistoryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
