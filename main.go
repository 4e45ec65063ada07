package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"bloglist/internal/handlers"
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/internal/services"
	"bloglist/pkg/events"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":3003")
	viper.SetDefault("DATABASE_DSN", "bloglist.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Database (GORM) ---
	db, err := gorm.Open(openDialector(databaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var eventsClient *events.Client
	if rabbitMQURL != "" {
		eventsClient, err = events.NewClient(events.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer eventsClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; blog event publishing disabled")
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)
	blogService := services.NewBlogService(blogRepo, userRepo, eventsClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService, authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	blogHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if eventsClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for blog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received blog event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := eventsClient.ConsumeBlogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDialector picks the GORM driver from the DSN shape: a postgres DSN or
// URL selects the postgres driver, anything else is treated as a sqlite path.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
