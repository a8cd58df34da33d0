package main

import (
	"log"
	"strings"

	"github.com/Sakibhasan202/Walkin/internal/auth"
	"github.com/Sakibhasan202/Walkin/internal/config"
	"github.com/Sakibhasan202/Walkin/internal/dashboard"
	"github.com/Sakibhasan202/Walkin/internal/history"
	"github.com/Sakibhasan202/Walkin/internal/images"
	"github.com/Sakibhasan202/Walkin/internal/inventory"
	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/pos"
	"github.com/Sakibhasan202/Walkin/internal/purchase"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	store.Init()

	resolver := images.NewClient(cfg)
	checkout := pos.NewCheckout(pos.NewSimulator())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Yönetim uçları (sadece admin): kasiyer hesapları ve katalog
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/users", auth.CreateUserHandler())

	adminRoutes.Post("/items", inventory.CreateItemHandler(resolver))
	adminRoutes.Put("/items/:id", inventory.UpdateItemHandler())
	adminRoutes.Delete("/items/:id", inventory.DeleteItemHandler())

	// Katalog listesi (tüm authenticated kullanıcılar)
	protected.Get("/items", inventory.ListItemsHandler())

	// POS: sepet
	protected.Get("/pos/cart", pos.GetCartHandler())
	protected.Post("/pos/cart/items", pos.AddToCartHandler())
	protected.Put("/pos/cart/items/:id", pos.UpdateQuantityHandler())
	protected.Delete("/pos/cart/items/:id", pos.RemoveFromCartHandler())
	protected.Delete("/pos/cart", pos.ClearCartHandler())

	// POS: checkout akışı
	protected.Get("/pos/checkout", checkout.StateHandler())
	protected.Post("/pos/checkout/begin", checkout.BeginHandler())
	protected.Post("/pos/checkout/confirm", checkout.ConfirmHandler())
	protected.Post("/pos/checkout/cancel", checkout.CancelHandler())

	// Stok alımı
	protected.Post("/restock", purchase.RestockHandler())

	// İşlem geçmişi
	protected.Get("/transactions", history.ListTransactionsHandler())

	// Dashboard
	protected.Get("/dashboard/kpis", dashboard.KPIHandler())
	protected.Get("/dashboard/sales-chart", dashboard.SalesChartHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
