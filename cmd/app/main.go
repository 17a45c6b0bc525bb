package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"logistica/cmd"
	_ "logistica/docs"
	"logistica/internal/adapters/out/postgres/deliveryrepo"
	"logistica/internal/adapters/out/postgres/userrepo"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/core/domain/model/user"
	"logistica/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Logistica API
// @version 1.0
// @description REST backend for the furniture delivery tracking panel.
// @BasePath /
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seedAdminUser(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, relying on process environment")
	}

	ttlHours, err := strconv.Atoi(envOrDefault("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		log.Fatalf("TOKEN_TTL_HOURS must be a positive integer")
	}

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(ttlHours) * time.Hour,
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(configs.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &userrepo.UserDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedAdminUser creates the initial operator account when it does not exist
// yet. An existing account is left untouched so password changes survive
// restarts.
func seedAdminUser(configs cmd.Config, db *gorm.DB) {
	if configs.AdminUsername == "" || configs.AdminPassword == "" {
		log.Warnf("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	ctx := context.Background()
	repo := userrepo.NewGormUserRepository(db)

	_, err := repo.GetByUsername(ctx, configs.AdminUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	admin, err := user.NewUser(kernel.NewUUID(), configs.AdminUsername, configs.AdminPassword)
	if err != nil {
		log.Fatalf("Invalid admin credentials: %v", err)
	}

	if err = repo.Add(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Infof("Seeded admin user %q", configs.AdminUsername)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	// 100 requests per 15 minutes per client, matching the admin panel's
	// expected traffic profile.
	e.Use(echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(100.0 / (15 * 60)),
				Burst:     100,
				ExpiresIn: 15 * time.Minute,
			},
		),
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
