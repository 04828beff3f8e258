package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mmrivera/portfolio-backend/api"
	"github.com/mmrivera/portfolio-backend/auth"
	"github.com/mmrivera/portfolio-backend/config"
	"github.com/mmrivera/portfolio-backend/database"
	"github.com/mmrivera/portfolio-backend/models"
	"github.com/mmrivera/portfolio-backend/services"
	"github.com/mmrivera/portfolio-backend/storage"
)

func main() {
	fmt.Println("Initializing portfolio backend...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	authService := auth.NewService(
		currentDB.UserRepo(),
		auth.NewNotifier(),
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
	)

	if err := bootstrapAdmin(cfg, currentDB); err != nil {
		fmt.Printf("Error bootstrapping admin user: %v\n", err)
		os.Exit(1)
	}

	var files storage.FileStore = storage.Unconfigured{}
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg)
		if err != nil {
			fmt.Printf("Error initializing object storage: %v\n", err)
			os.Exit(1)
		}
		files = s3Store
	} else {
		log.Warn().Msg("S3_BUCKET not set; asset uploads are disabled")
	}

	mailer := services.NewMailer(cfg)
	if !mailer.Configured() {
		log.Warn().Msg("Resend not configured; contact relay is disabled")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, currentDB, files, authService, mailer)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// bootstrapAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on
// first start; subsequent starts leave the stored account alone.
func bootstrapAdmin(cfg *config.Config, db database.Database) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	existing, err := db.UserRepo().FindByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("Creating admin user")
	return db.UserRepo().Add(&models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
	})
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
