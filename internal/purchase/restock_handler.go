package purchase

import (
	"github.com/Sakibhasan202/Walkin/internal/history"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type RestockRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// POST /api/restock
// Tek adımlık akış: stok artar, deftere PURCHASE düşer, KPI maliyeti güncellenir.
// Sayısal doğrulama burada yapılır; workflow'a temiz değer gider. Ürün bu
// arada silindiyse stok değişmez ama kayıt "Unknown Item" adıyla yine yazılır.
func RestockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RestockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_id zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity pozitif olmalı")
		}
		if body.UnitCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "UnitCost negatif olamaz")
		}

		tx := store.App.Restock(body.ItemID, body.Quantity, body.UnitCost)
		return c.Status(fiber.StatusCreated).JSON(history.ToTransactionResponse(tx))
	}
}
