package main

import (
	"fmt"
	"log/slog"
	"os"

	"studiodesk/cmd"
	"studiodesk/internal/adapters/out/postgres/catalogrepo"
	"studiodesk/internal/adapters/out/postgres/cleanupqueuerepo"
	"studiodesk/internal/adapters/out/postgres/orderrepo"
	"studiodesk/internal/adapters/out/postgres/serviceorderrepo"
	"studiodesk/internal/adapters/out/postgres/transactionrepo"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDatabase(configs)
	redisClient := connectRedis(configs)
	cloudinaryClient := mustConnectCloudinary(configs)

	app := cmd.NewCompositionRoot(configs, db, redisClient, cloudinaryClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:           goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:       goDotEnvVariable("REDIS_PASSWORD"),
		CatalogCacheTTL:     goDotEnvVariable("CATALOG_CACHE_TTL"),
		CloudinaryCloudName: goDotEnvVariable("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    goDotEnvVariable("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: goDotEnvVariable("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    goDotEnvVariable("CLOUDINARY_FOLDER"),
		CleanupSchedule:     goDotEnvVariable("CLEANUP_SCHEDULE"),
		ReceiptAge:          goDotEnvVariable("RECEIPT_AGE"),
		UploadRetention:     goDotEnvVariable("UPLOAD_RETENTION"),
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

func mustConnectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&transactionrepo.TransactionDTO{},
		&serviceorderrepo.ServiceOrderDTO{},
		&catalogrepo.ItemDTO{},
		&catalogrepo.AddonDTO{},
		&catalogrepo.PricingRuleDTO{},
		&cleanupqueuerepo.CleanupEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func connectRedis(configs cmd.Config) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
}

func mustConnectCloudinary(configs cmd.Config) *cloudinary.Cloudinary {
	client, err := cloudinary.NewFromParams(
		configs.CloudinaryCloudName,
		configs.CloudinaryAPIKey,
		configs.CloudinaryAPISecret,
	)
	if err != nil {
		log.Fatalf("Failed to configure cloudinary: %v", err)
	}
	return client
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
