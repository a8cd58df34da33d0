package inventory

import (
	"strings"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/images"
	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateItemRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url"` // Opsiyonel, boşsa görsel üretilir
}

type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	ImageURL *string  `json:"image_url"`
}

func toItemResponse(it models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Type:      it.Type,
		Price:     it.Price,
		Stock:     it.Stock,
		ImageURL:  it.ImageURL,
		CreatedAt: it.CreatedAt,
	}
}

// GET /api/items?search=aero&in_stock=true
// search isim veya kategoride büyük/küçük harf duyarsız arama yapar.
// in_stock=true POS ekranı için stoğu bitenleri gizler.
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := c.Query("search")
		inStockOnly := c.Query("in_stock") == "true"

		items := store.App.Items(search, inStockOnly)

		res := make([]ItemResponse, 0, len(items))
		for _, it := range items {
			res = append(res, toItemResponse(it))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/items (sadece admin)
// image_url verilmemişse isim ve kategoriden görsel üretilir; üretim
// başarısız olsa bile resolver placeholder döndürdüğü için istek başarısız
// olmaz.
func CreateItemHandler(resolver images.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Type = strings.TrimSpace(body.Type)

		if body.Name == "" || body.Type == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve type zorunlu")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price negatif olamaz")
		}
		if body.Stock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stock negatif olamaz")
		}

		imageURL := strings.TrimSpace(body.ImageURL)
		if imageURL == "" {
			imageURL = resolver.Resolve(c.UserContext(), body.Name, body.Type)
		}

		item := store.App.AddItem(body.Name, body.Type, body.Price, body.Stock, imageURL)
		return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
	}
}

// PUT /api/admin/items/:id
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		upd := store.ItemUpdate{
			Price:    body.Price,
			Stock:    body.Stock,
			ImageURL: body.ImageURL,
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			upd.Name = &name
		}

		if body.Type != nil {
			itemType := strings.TrimSpace(*body.Type)
			if itemType == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Type boş olamaz")
			}
			upd.Type = &itemType
		}

		if body.Price != nil && *body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price negatif olamaz")
		}
		if body.Stock != nil && *body.Stock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stock negatif olamaz")
		}

		item, ok := store.App.UpdateItem(id, upd)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(toItemResponse(item))
	}
}

// DELETE /api/admin/items/:id
// Olmayan id için de 204 döner (idempotent). Defterdeki geçmiş kayıtlara
// dokunulmaz.
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store.App.DeleteItem(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}
