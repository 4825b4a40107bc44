package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vijayleo46/portfolio-backend/api"
	"github.com/vijayleo46/portfolio-backend/config"
	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var db *gorm.DB
	var err error

	dbType := config.GetString(cfg, "DB_TYPE", "sqlite")
	fmt.Printf("DB_TYPE: %s\n", dbType)
	switch dbType {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "POSTGRES_HOST", "localhost"),
			config.GetString(cfg, "POSTGRES_USER", "postgres"),
			config.GetString(cfg, "POSTGRES_PASSWORD", ""),
			config.GetString(cfg, "POSTGRES_DB", "portfolio"),
			config.GetString(cfg, "POSTGRES_PORT", "5432"),
			config.GetString(cfg, "POSTGRES_SSLMODE", "disable"),
		)
		fmt.Println("Connecting to Postgres database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      newLogger,
		})
	case "sqlite":
		dbPath := config.GetString(cfg, "SQLITE_PATH", "portfolio.db")
		fmt.Printf("Opening sqlite database at %s...\n", dbPath)
		db, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
			Logger: newLogger,
		})
	default:
		fmt.Println("Unsupported DB_TYPE. Exiting...")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// If seeding fixture data, run the loader and exit
	if config.GetBool(cfg, "SEED_DATA", false) {
		fmt.Println("Seeding portfolio fixture data...")
		if err := currentDB.Seed(); err != nil {
			fmt.Printf("Error seeding data: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Seeding complete.")
		return
	}

	// The Gemini credential is injected here once; the chat service never
	// reads the environment at call time. A missing key surfaces as the
	// provider's own authentication error on the first chatbot call.
	completer := services.NewGeminiCompleter(
		context.Background(),
		config.GetString(cfg, "GEMINI_API_KEY", ""),
		config.GetString(cfg, "GEMINI_MODEL", services.DefaultChatModel),
	)
	chat := services.NewChatService(completer, currentDB)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, chat)
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

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
