package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"
	"github.com/Sakibhasan202/Walkin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SalesChartPoint struct {
	Label string  `json:"label"` // tarih / hafta başlangıcı / ay başlangıcı
	Sales float64 `json:"sales"`
	Buy   float64 `json:"buy"`
}

type SalesChartGrandTotals struct {
	Sales float64 `json:"sales"`
	Buy   float64 `json:"buy"`
}

type SalesChartResponse struct {
	Period      string                `json:"period"` // daily | weekly | monthly
	From        string                `json:"from"`
	Points      []SalesChartPoint     `json:"points"`
	GrandTotals SalesChartGrandTotals `json:"grand_totals"`
}

// GET /api/dashboard/sales-chart?period=daily&count=7
// Defter üzerinden satış/alım toplamlarını tarih kovalarına katlar. Sadece
// okuma modeli; KPI snapshot'ına hiç dokunmaz.
func SalesChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily") // daily | weekly | monthly
		countStr := c.Query("count", "")

		var count int
		if countStr == "" {
			switch period {
			case "weekly":
				count = 8
			case "monthly":
				count = 12
			default:
				period = "daily"
				count = 7
			}
		} else {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count geçersiz")
			}
		}

		now := time.Now()
		loc := now.Location()
		// bugünün 00:00'ı
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		var start time.Time

		switch period {
		case "weekly":
			start = truncateWeek(today).AddDate(0, 0, -7*(count-1))
		case "monthly":
			start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -(count - 1), 0)
		default:
			period = "daily"
			start = today.AddDate(0, 0, -(count - 1))
		}

		buckets := make(map[time.Time]*SalesChartPoint)

		for _, tx := range store.App.Transactions() {
			if tx.Date.Before(start) {
				continue
			}

			var bucket time.Time
			d := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, loc)
			switch period {
			case "weekly":
				bucket = truncateWeek(d)
			case "monthly":
				bucket = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, loc)
			default:
				bucket = d
			}

			p, ok := buckets[bucket]
			if !ok {
				p = &SalesChartPoint{Label: bucket.Format("2006-01-02")}
				buckets[bucket] = p
			}

			switch tx.Type {
			case models.TransactionSale:
				p.Sales += tx.TotalAmount
			case models.TransactionPurchase:
				p.Buy += tx.TotalAmount
			}
		}

		// map'ten slice'a taşı ve tarih sırasına koy
		keys := make([]time.Time, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

		points := make([]SalesChartPoint, 0, len(keys))
		grand := SalesChartGrandTotals{}
		for _, k := range keys {
			points = append(points, *buckets[k])
			grand.Sales += buckets[k].Sales
			grand.Buy += buckets[k].Buy
		}

		return c.JSON(SalesChartResponse{
			Period:      period,
			From:        start.Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		})
	}
}

// truncateWeek - haftanın pazartesi 00:00'ı.
func truncateWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
