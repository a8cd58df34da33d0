package store

import (
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"

	"github.com/google/uuid"
)

// Seed - demo verisi. Kalıcı katman olmadığı için her açılışta aynı başlangıç
// durumu kurulur: üç ürün, iki geçmiş işlem ve KPI taban değerleri.
func (s *State) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.items = []models.InventoryItem{
		{
			ID:        uuid.NewString(),
			Name:      "Walkin Aero Sneakers",
			Type:      "Footwear",
			Price:     129.99,
			Stock:     45,
			ImageURL:  "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&q=80&w=400&h=400",
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Urban Backpack",
			Type:      "Accessories",
			Price:     89.50,
			Stock:     22,
			ImageURL:  "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&q=80&w=400&h=400",
			CreatedAt: now.Add(-100 * time.Second),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Classic Tee White",
			Type:      "Apparel",
			Price:     35.00,
			Stock:     120,
			ImageURL:  "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=400&h=400",
			CreatedAt: now.Add(-200 * time.Second),
		},
	}

	s.ledger = []models.Transaction{
		{
			ID:            uuid.NewString(),
			Type:          models.TransactionSale,
			Date:          now.Add(-time.Hour),
			Items:         []models.TransactionLine{{Name: "Urban Backpack", Quantity: 1, Price: 89.50}},
			TotalAmount:   96.66,
			PaymentMethod: models.PaymentCard,
		},
		{
			ID:          uuid.NewString(),
			Type:        models.TransactionPurchase,
			Date:        now.Add(-24 * time.Hour),
			Items:       []models.TransactionLine{{Name: "Classic Tee White", Quantity: 50, Price: 15.00}},
			TotalAmount: 750.00,
		},
	}

	// Geçmiş dönem taban değerleri, seed defteriyle birebir örtüşmez.
	s.stats = models.KPIStats{
		TotalRevenue: 24500,
		TotalSales:   154,
		TotalBuy:     12400,
		SalesGrowth:  12.5,
	}
}
