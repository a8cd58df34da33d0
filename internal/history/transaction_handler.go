package history

import (
	"sort"
	"strings"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type TransactionResponse struct {
	ID            string                    `json:"id"`
	Type          models.TransactionType    `json:"type"`
	Date          time.Time                 `json:"date"`
	Items         []TransactionLineResponse `json:"items"`
	TotalAmount   float64                   `json:"total_amount"`
	PaymentMethod models.PaymentMethod      `json:"payment_method,omitempty"`
}

type TransactionLineResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func ToTransactionResponse(tx models.Transaction) TransactionResponse {
	items := make([]TransactionLineResponse, 0, len(tx.Items))
	for _, l := range tx.Items {
		items = append(items, TransactionLineResponse{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
		})
	}
	return TransactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Date:          tx.Date,
		Items:         items,
		TotalAmount:   tx.TotalAmount,
		PaymentMethod: tx.PaymentMethod,
	}
}

// GET /api/transactions?type=SALE&search=backpack
// En yeni kayıt üstte döner; bu sadece sunum sırası, defterin saklama sırası
// hep ekleme sırasıdır. search satır adlarında büyük/küçük harf duyarsız
// arama yapar.
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		typeFilter := strings.ToUpper(c.Query("type", "ALL"))
		if typeFilter != "ALL" &&
			typeFilter != string(models.TransactionSale) &&
			typeFilter != string(models.TransactionPurchase) {
			return fiber.NewError(fiber.StatusBadRequest, "type ALL, SALE veya PURCHASE olmalı")
		}

		search := strings.ToLower(strings.TrimSpace(c.Query("search")))

		txs := store.App.Transactions()

		res := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			if typeFilter != "ALL" && string(tx.Type) != typeFilter {
				continue
			}
			if search != "" && !matchesLine(tx, search) {
				continue
			}
			res = append(res, ToTransactionResponse(tx))
		}

		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Date.After(res[j].Date)
		})

		return c.JSON(res)
	}
}

func matchesLine(tx models.Transaction, search string) bool {
	for _, l := range tx.Items {
		if strings.Contains(strings.ToLower(l.Name), search) {
			return true
		}
	}
	return false
}
