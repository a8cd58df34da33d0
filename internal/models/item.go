package models

import "time"

// InventoryItem - katalogdaki ürün
type InventoryItem struct {
	ID        string
	Name      string
	Type      string  // kategori (Footwear, Apparel, Accessories vs.)
	Price     float64 // birim satış fiyatı
	Stock     int     // mevcut stok adedi, hiçbir zaman negatif olmaz
	ImageURL  string  // üretilen görsel ya da placeholder
	CreatedAt time.Time
}
