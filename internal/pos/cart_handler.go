package pos

import (
	"errors"

	"github.com/Sakibhasan202/Walkin/internal/auth"
	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CartLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	Subtotal   float64            `json:"subtotal"`
	Tax        float64            `json:"tax"`
	Total      float64            `json:"total"` // subtotal x 1.08
}

type AddToCartRequest struct {
	ItemID string `json:"item_id"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

func toCartResponse(lines []models.CartLine) CartResponse {
	res := CartResponse{Lines: make([]CartLineResponse, 0, len(lines))}
	for _, l := range lines {
		res.Lines = append(res.Lines, CartLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Type:      l.Type,
			Price:     l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			LineTotal: l.Price * float64(l.Quantity),
		})
		res.TotalItems += l.Quantity
	}
	res.Subtotal = store.CartSubtotal(lines)
	res.Tax = res.Subtotal * store.TaxRate
	res.Total = res.Subtotal * (1 + store.TaxRate)
	return res
}

func cartError(err error) error {
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
	case errors.Is(err, store.ErrLineNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Sepette böyle bir satır yok")
	case errors.Is(err, store.ErrStockExceeded):
		return fiber.NewError(fiber.StatusConflict, "Stok yetersiz")
	default:
		return err
	}
}

// GET /api/pos/cart
func GetCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}
		return c.JSON(toCartResponse(store.App.Cart(userID)))
	}
}

// POST /api/pos/cart/items
// Üründen sepete: varsa adet +1, yoksa yeni satır. Stok sınırı aşılırsa
// 409 döner, sepet değişmez.
func AddToCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var body AddToCartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_id zorunlu")
		}

		lines, err := store.App.AddToCart(userID, body.ItemID)
		if err != nil {
			return cartError(err)
		}
		return c.JSON(toCartResponse(lines))
	}
}

// PUT /api/pos/cart/items/:id
// delta pozitif ya da negatif olabilir; sonuç 0 veya altına inerse satır
// silinir, stok aşılırsa 409 ve satır olduğu gibi kalır.
func UpdateQuantityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if body.Delta == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "delta sıfır olamaz")
		}

		lines, err := store.App.UpdateCartQuantity(userID, c.Params("id"), body.Delta)
		if err != nil {
			return cartError(err)
		}
		return c.JSON(toCartResponse(lines))
	}
}

// DELETE /api/pos/cart/items/:id
func RemoveFromCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}
		return c.JSON(toCartResponse(store.App.RemoveFromCart(userID, c.Params("id"))))
	}
}

// DELETE /api/pos/cart
func ClearCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}
		store.App.ClearCart(userID)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
