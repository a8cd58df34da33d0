package models

// CartLine - sepetteki tek satır. Ürün alanlarının sepete eklenme anındaki
// kopyasını taşır; fiyat checkout onayına kadar bu kopyadan okunur.
type CartLine struct {
	ItemID   string
	Name     string
	Type     string
	Price    float64
	ImageURL string
	Quantity int // her zaman > 0, ürünün o anki stoğunu aşamaz
}
