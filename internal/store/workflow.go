package store

import (
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"

	"github.com/google/uuid"
)

// TaxRate - satışta bir kez uygulanan sabit vergi çarpanı.
const TaxRate = 0.08

// CommitSale - checkout'un kalıcı kısmı. cart, ödeme alınmadan önce çekilen
// sepet fotoğrafıdır; deftere düşen tutar canlı sepetten değil bu fotoğraftan
// hesaplanır, tahsil edilen tutarla ayrışamaz. Tek kilit altında üç mutasyon:
//  1. her sepet satırı için stok düşümü (0'ın altına inmez, reddetmek yerine
//     0'a sabitlenir - belgelenmiş politika)
//  2. deftere SALE kaydı (satır kopyaları, toplam = ara toplam x 1.08)
//  3. KPI artımları (ciro vergi öncesi ara toplam, adet, büyüme +0.1)
// Ödeme simülasyonu burada değil; çağıran başarılı ödemeden sonra gelir.
func (s *State) CommitSale(userID string, cart []models.CartLine, method models.PaymentMethod) (models.Transaction, error) {
	if len(cart) == 0 {
		return models.Transaction{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	totalQty := 0
	lines := make([]models.TransactionLine, 0, len(cart))

	for _, cl := range cart {
		subtotal += cl.Price * float64(cl.Quantity)
		totalQty += cl.Quantity
		lines = append(lines, models.TransactionLine{
			Name:     cl.Name,
			Quantity: cl.Quantity,
			Price:    cl.Price,
		})

		for i := range s.items {
			if s.items[i].ID == cl.ItemID {
				s.items[i].Stock -= cl.Quantity
				if s.items[i].Stock < 0 {
					s.items[i].Stock = 0
				}
				break
			}
		}
	}

	tx := models.Transaction{
		ID:            uuid.NewString(),
		Type:          models.TransactionSale,
		Date:          time.Now(),
		Items:         lines,
		TotalAmount:   round2(subtotal * (1 + TaxRate)),
		PaymentMethod: method,
	}
	s.ledger = append(s.ledger, tx)

	s.stats.TotalRevenue += subtotal
	s.stats.TotalSales += totalQty
	s.stats.SalesGrowth += 0.1

	delete(s.carts, userID)
	return copyTransaction(tx), nil
}

// Restock - stok alımı. Ürün katalogdan silinmişse stok değişmez ama kayıt
// yine düşülür, satır adı "Unknown Item" olur. Adet ve
// maliyet doğrulaması çağıranın sorumluluğunda, buraya temiz değer gelir.
func (s *State) Restock(itemID string, quantity int, unitCost float64) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemName := "Unknown Item"
	for i := range s.items {
		if s.items[i].ID == itemID {
			itemName = s.items[i].Name
			s.items[i].Stock += quantity
			break
		}
	}

	total := round2(float64(quantity) * unitCost)
	tx := models.Transaction{
		ID:   uuid.NewString(),
		Type: models.TransactionPurchase,
		Date: time.Now(),
		Items: []models.TransactionLine{
			{Name: itemName, Quantity: quantity, Price: unitCost},
		},
		TotalAmount: total,
	}
	s.ledger = append(s.ledger, tx)

	s.stats.TotalBuy += total
	return copyTransaction(tx)
}
