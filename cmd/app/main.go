package main

import (
	"fmt"
	"os"
	"strconv"

	"foodex/cmd"
	httpin "foodex/internal/adapters/in/http"
	"foodex/internal/adapters/out/catalogseed"
	"foodex/internal/adapters/out/postgres/catalogrepo"
	"foodex/internal/adapters/out/postgres/orderrepo"
	"foodex/internal/adapters/out/postgres/userrepo"
	"foodex/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()

	db := openDatabase(config)
	migrate(db)

	if err := catalogseed.Apply(db); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	root := cmd.NewCompositionRoot(config, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if config.DispatchJobEnabled {
		jobManager := jobs.NewJobManager(root.CreateDispatchCourierCommandHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             envOrDefault("DB_USER", "postgres"),
		DBPassword:         envOrDefault("DB_PASSWORD", "postgres"),
		DBName:             envOrDefault("DB_NAME", "foodex"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:          mustEnv("JWT_SECRET"),
		TokenTTLHours:      envIntOrDefault("TOKEN_TTL_HOURS", 24),
		BcryptCost:         envIntOrDefault("BCRYPT_COST", 0),
		DispatchJobEnabled: envOrDefault("DISPATCH_JOB_ENABLED", "true") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func openDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	authenticateHandler, err := root.CreateAuthenticateQueryHandler()
	if err != nil {
		log.Fatalf("Error creating authenticate handler: %v", err)
	}

	server := httpin.NewServer(
		root.TokenService(),
		root.CreateRegisterUserCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateAdvanceOrderStatusCommandHandler(),
		root.CreateAssignCourierCommandHandler(),
		authenticateHandler,
		root.CreateGetOrderQueryHandler(),
		root.CreateGetUncompletedOrdersQueryHandler(),
		root.CreateGetRestaurantMenuQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
