package pos

import (
	"errors"
	"log"

	"github.com/Sakibhasan202/Walkin/internal/auth"
	"github.com/Sakibhasan202/Walkin/internal/history"
	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type Checkout struct {
	sessions  *SessionManager
	processor PaymentProcessor
}

func NewCheckout(processor PaymentProcessor) *Checkout {
	return &Checkout{
		sessions:  NewSessionManager(),
		processor: processor,
	}
}

// advance - processing sonrası zorunlu geçişler. Bugünkü tabloda bu geçişler
// hiç hata vermez; tablo değişir de verirlerse sessizce yutulmasın.
func (h *Checkout) advance(userID string, states ...CheckoutState) {
	for _, st := range states {
		if err := h.sessions.Transition(userID, st); err != nil {
			log.Println("Checkout durum geçişi yapılamadı:", st, err)
		}
	}
}

type ConfirmRequest struct {
	PaymentMethod string `json:"payment_method"` // CASH | CARD | QR
}

type CheckoutStateResponse struct {
	State CheckoutState `json:"state"`
}

type CheckoutResultResponse struct {
	State       CheckoutState               `json:"state"`
	Transaction history.TransactionResponse `json:"transaction"`
}

// GET /api/pos/checkout
func (h *Checkout) StateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}
		return c.JSON(CheckoutStateResponse{State: h.sessions.State(userID)})
	}
}

// POST /api/pos/checkout/begin
// Sepet doluysa ödeme yöntemi seçimine geçilir.
func (h *Checkout) BeginHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		if len(store.App.Cart(userID)) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sepet boş")
		}

		if err := h.sessions.Transition(userID, StateAwaitingPayment); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Checkout zaten başlatılmış")
		}
		return c.JSON(CheckoutStateResponse{State: StateAwaitingPayment})
	}
}

// POST /api/pos/checkout/cancel
// Ödeme ekranından vazgeçiş; sepet korunur.
func (h *Checkout) CancelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		if err := h.sessions.Transition(userID, StateIdle); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Bu durumda iptal edilemez")
		}
		return c.JSON(CheckoutStateResponse{State: StateIdle})
	}
}

// POST /api/pos/checkout/confirm
// Ödeme onayı. processing sırasında gelen ikinci confirm 409 alır. Ödeme
// başarısız olursa durum failed üzerinden awaiting_payment'a döner, sepete
// ve deftere dokunulmaz. Başarıda stok düşümü + SALE kaydı + KPI artımı tek
// adımda işlenir, sepet boşalır ve oturum kapanır.
func (h *Checkout) ConfirmHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var body ConfirmRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		var method models.PaymentMethod
		switch models.PaymentMethod(body.PaymentMethod) {
		case models.PaymentCash, models.PaymentCard, models.PaymentQR:
			method = models.PaymentMethod(body.PaymentMethod)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "payment_method CASH, CARD veya QR olmalı")
		}

		if err := h.sessions.Transition(userID, StateProcessing); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Önce checkout başlatılmalı")
		}

		// Sepetin ödeme anındaki fotoğrafı. Tahsilat da defter kaydı da bu
		// fotoğraftan hesaplanır; ödeme beklerken sepet değişse bile çekilen
		// tutarla kaydedilen tutar ayrışamaz.
		lines := store.App.Cart(userID)
		if len(lines) == 0 {
			// Begin'den sonra sepet boşaltıldıysa (aynı kullanıcının ikinci
			// tarayıcı sekmesi gibi) satış düşülmez.
			h.advance(userID, StateFailed, StateAwaitingPayment)
			return fiber.NewError(fiber.StatusConflict, "Sepet boşalmış, satış kaydedilmedi")
		}

		amount := store.CartSubtotal(lines) * (1 + store.TaxRate)

		if err := h.processor.Process(c.UserContext(), amount, method); err != nil {
			log.Println("Ödeme başarısız:", err)
			h.advance(userID, StateFailed, StateAwaitingPayment)
			return fiber.NewError(fiber.StatusBadGateway, "Ödeme alınamadı, tekrar dene")
		}

		tx, err := store.App.CommitSale(userID, lines, method)
		if err != nil {
			if errors.Is(err, store.ErrEmptyCart) {
				h.advance(userID, StateFailed, StateAwaitingPayment)
				return fiber.NewError(fiber.StatusConflict, "Sepet boşalmış, satış kaydedilmedi")
			}
			return err
		}

		h.advance(userID, StateSuccess, StateIdle)

		return c.JSON(CheckoutResultResponse{
			State:       StateSuccess,
			Transaction: history.ToTransactionResponse(tx),
		})
	}
}
