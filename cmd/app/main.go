package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tracking/cmd"
	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres/parcelrepo"
	"tracking/internal/generated/servers"

	_ "tracking/docs" // swagger docs registration

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	echo_swagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbConnectAttempts = 10
	dbConnectBackoff  = 2 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		NotificationServiceURL: goDotEnvVariable("NOTIFICATION_SERVICE_URL"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:          goDotEnvVariable("REDIS_PASSWORD"),
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

// mustConnectDB opens the database through lib/pq and waits for it to come
// up before handing the connection to GORM. The service usually starts
// alongside the database, so the first pings are expected to fail.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	for attempt := 1; ; attempt++ {
		err = sqlDB.Ping()
		if err == nil {
			break
		}
		if attempt >= dbConnectAttempts {
			log.Fatalf("Database is not reachable after %d attempts: %v", attempt, err)
		}
		time.Sleep(dbConnectBackoff)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.DetailsDTO{},
		&parcelrepo.HistoryDTO{},
		&parcelrepo.TrackingDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echo_swagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateRegisterParcelCommandHandler(),
		app.CreateMarkAtCentralCommandHandler(),
		app.CreateMarkInRouteCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		logger,
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
