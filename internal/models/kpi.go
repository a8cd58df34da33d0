package models

// KPIStats - dashboard özet metrikleri.
// Defterden yeniden hesaplanmaz; her checkout/restock sonrasında artımlı güncellenir.
type KPIStats struct {
	TotalRevenue float64 // vergi öncesi satış cirosu
	TotalSales   int     // satılan toplam adet
	TotalBuy     float64 // stok alım maliyeti
	SalesGrowth  float64 // büyüme göstergesi (yüzde)
}
