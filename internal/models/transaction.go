package models

import "time"

// TransactionType - işlem tipi
type TransactionType string

const (
	TransactionSale     TransactionType = "SALE"     // satış
	TransactionPurchase TransactionType = "PURCHASE" // stok alımı
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentQR   PaymentMethod = "QR"
)

// TransactionLine - işlem anındaki satır fotoğrafı.
// Ürün sonradan silinse veya yeniden adlandırılsa bile geçmiş kayıtlar değişmez.
type TransactionLine struct {
	Name     string
	Quantity int
	Price    float64 // SALE için birim satış fiyatı, PURCHASE için birim maliyet
}

// Transaction - defterdeki tek kayıt. Oluşturulduktan sonra asla değişmez.
type Transaction struct {
	ID            string
	Type          TransactionType
	Date          time.Time
	Items         []TransactionLine
	TotalAmount   float64       // SALE için vergi dahil, PURCHASE için adet x maliyet
	PaymentMethod PaymentMethod // sadece SALE için dolu
}
