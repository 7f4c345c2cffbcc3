package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/rashadgasimli/coffee-shop-api/docs" // Import generated docs
	"github.com/rashadgasimli/coffee-shop-api/internal/config"
	"github.com/rashadgasimli/coffee-shop-api/internal/controllers"
	"github.com/rashadgasimli/coffee-shop-api/internal/database"
	"github.com/rashadgasimli/coffee-shop-api/internal/middleware"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
	"github.com/rashadgasimli/coffee-shop-api/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// How long a delete-confirmation token stays redeemable
const deletionConfirmTTL = 2 * time.Minute

var (
	db            *gorm.DB
	configuration *config.Config

	catalogController controllers.CatalogController
	authController    *controllers.AuthController
	coffeeAdmin       controllers.CoffeeAdminController
	sizeAdmin         controllers.SizeController
	extraAdmin        controllers.ExtraController
	deletionCtrl      controllers.DeletionController
	uploadCtrl        controllers.UploadController
)

// @title Coffee Shop API
// @version 1.0
// @description Catalog and admin API for a coffee-shop menu
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize image storage
	store, err := storage.NewDiskStore(configuration.StorageDir, configuration.PublicBaseURL)
	checkPanicErr(err)

	// Initialize services and controllers
	coffeeService := services.NewCoffeeService(db)
	sizeService := services.NewSizeService(db)
	extraService := services.NewExtraService(db)
	userService := services.NewUserService(db)
	deletionService := services.NewDeletionService(deletionConfirmTTL)

	catalogController = controllers.NewCatalogController(coffeeService, sizeService, extraService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	coffeeAdmin = controllers.NewCoffeeAdminController(coffeeService, deletionService, configuration)
	sizeAdmin = controllers.NewSizeController(sizeService, deletionService)
	extraAdmin = controllers.NewExtraController(extraService, deletionService)
	deletionCtrl = controllers.NewDeletionController(deletionService, coffeeService, sizeService, extraService)
	uploadCtrl = controllers.NewUploadController(store)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and returns a gorm.DB instance
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  "disable",
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	checkPanicErr(database.Migrate(db))

	// Create only if is empty
	var count int64
	db.Model(&models.Coffee{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with initial data
func seedDatabase() {
	log.Info("Seeding database with initial data")
	coffees := []models.Coffee{
		{Name: "Espresso", Category: "Hot", Price: 2.20, Calories: 5, Description: "Short and strong"},
		{Name: "Latte", Category: "Hot", Price: 4.50, Calories: 180, Description: "Espresso with steamed milk"},
		{Name: "Iced Americano", Category: "Cold", Price: 3.80, Calories: 15, Description: "Espresso over ice"},
	}
	for _, coffee := range coffees {
		db.Create(&coffee)
	}

	sizes := []models.Size{
		{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1},
		{Key: "md", Label: "Medium", Factor: 1, SortOrder: 2},
		{Key: "lg", Label: "Large", Factor: 1.5, SortOrder: 3},
	}
	for _, size := range sizes {
		db.Create(&size)
	}

	extras := []models.Extra{
		{Name: "Milk", Price: 0.50, SortOrder: 1},
		{Name: "Caramel Syrup", Price: 0.75, SortOrder: 2},
		{Name: "Extra Shot", Price: 1.00, SortOrder: 3},
	}
	for _, extra := range extras {
		db.Create(&extra)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Uploaded images are served straight from the storage directory
	router.Static("/images", configuration.StorageDir)

	api := router.Group("/api")
	{
		// Public catalog
		api.GET("/coffees", catalogController.GetAllCoffees)
		api.POST("/coffees", catalogController.CreateCoffeeRaw)
		api.GET("/menu", catalogController.GetMenu)
		api.POST("/quote", catalogController.Quote)

		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/session", middleware.JWTAuth(), authController.Session)
		}

		// Admin console (requires a privileged session; the token is
		// re-validated on every request)
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth())
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/coffees", coffeeAdmin.ListCoffees)
			admin.POST("/coffees", coffeeAdmin.CreateCoffee)
			admin.PUT("/coffees/:id", coffeeAdmin.UpdateCoffee)
			admin.DELETE("/coffees/:id", coffeeAdmin.RequestDelete)

			admin.GET("/sizes", sizeAdmin.ListSizes)
			admin.POST("/sizes", sizeAdmin.CreateSize)
			admin.PUT("/sizes/:key", sizeAdmin.UpdateSize)
			admin.DELETE("/sizes/:key", sizeAdmin.RequestDelete)

			admin.GET("/extras", extraAdmin.ListExtras)
			admin.POST("/extras", extraAdmin.CreateExtra)
			admin.PUT("/extras/:name", extraAdmin.UpdateExtra)
			admin.DELETE("/extras/:name", extraAdmin.RequestDelete)

			admin.POST("/deletions/:token", deletionCtrl.ConfirmDeletion)
			admin.POST("/images", uploadCtrl.UploadImage)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "coffee-shop-api",
	})
}
