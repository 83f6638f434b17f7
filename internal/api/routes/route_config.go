package routes

import (
	"EcoMart-Backend/internal/api/handlers"
	"EcoMart-Backend/internal/middleware"
	"EcoMart-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CatalogHandler  handlers.CatalogHandler
	BasketHandler   handlers.BasketHandler
	ReviewHandler   handlers.ReviewHandler
	CheckoutHandler handlers.CheckoutHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Basket()
	c.Checkout()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Catalog() {
	items := c.App.Group("/api/v1/items")
	{
		items.Get("", c.CatalogHandler.GetItems)
		items.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.CatalogHandler.AddItem)
		items.Get("/:name", c.CatalogHandler.GetItemDetails)
		items.Get("/:name/reviews", c.ReviewHandler.GetReviews)
		items.Post("/:name/reviews", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.WriteReview)
	}
}

func (c *Config) Basket() {
	basket := c.App.Group("/api/v1/basket", c.Middleware.AuthMiddleware(c.JWTService))
	{
		basket.Get("", c.BasketHandler.GetBasket)
		basket.Post("", c.BasketHandler.AddItem)
		basket.Put("", c.BasketHandler.SetQuantity)
	}
}

func (c *Config) Checkout() {
	c.App.Post("/api/v1/checkout", c.Middleware.AuthMiddleware(c.JWTService), c.CheckoutHandler.Checkout)
	c.App.Get("/api/v1/orders/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CheckoutHandler.GetOrder)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.CheckoutHandler.MidtransWebhookHandler)
}
