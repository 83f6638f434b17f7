package config

import (
	"EcoMart-Backend/internal/api/handlers"
	"EcoMart-Backend/internal/api/routes"
	"EcoMart-Backend/internal/middleware"
	"EcoMart-Backend/internal/utils"
	"EcoMart-Backend/internal/utils/mailing"
	"EcoMart-Backend/internal/utils/storage"
	"EcoMart-Backend/pkg/basket"
	"EcoMart-Backend/pkg/catalog"
	"EcoMart-Backend/pkg/checkout"
	"EcoMart-Backend/pkg/jwt"
	"EcoMart-Backend/pkg/review"
	"EcoMart-Backend/pkg/user"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	rdb := redis.NewClient(&redis.Options{
		Addr:     utils.GetConfig("REDIS_ADDR"),
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCachedCatalogRepository(catalog.NewCatalogRepository(db), rdb)
	basketRepository := basket.NewBasketRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	checkoutRepository := checkout.NewCheckoutRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	catalogService := catalog.NewCatalogService(catalogRepository, rdb, s3)
	basketService := basket.NewBasketService(basketRepository, catalogRepository)
	reviewService := review.NewReviewService(reviewRepository, catalogRepository, userRepository)
	checkoutService := checkout.NewCheckoutService(
		checkoutRepository,
		basketService,
		checkout.NewMidtransGateway(),
		mailer,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	basketHandler := handlers.NewBasketHandler(basketService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CatalogHandler:  catalogHandler,
		BasketHandler:   basketHandler,
		ReviewHandler:   reviewHandler,
		CheckoutHandler: checkoutHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
