package dashboard

import (
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type KPIResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	TotalBuy     float64 `json:"total_buy"`
	SalesGrowth  float64 `json:"sales_growth"`
}

// GET /api/dashboard/kpis
// Artımlı tutulan snapshot; defterden yeniden hesaplanmaz (O(1) güncelleme
// tercihi). Snapshot'a sadece checkout ve restock akışları yazar.
func KPIHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := store.App.KPI()
		return c.JSON(KPIResponse{
			TotalRevenue: stats.TotalRevenue,
			TotalSales:   stats.TotalSales,
			TotalBuy:     stats.TotalBuy,
			SalesGrowth:  stats.SalesGrowth,
		})
	}
}
