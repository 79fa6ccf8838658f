package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dashkit/widget-adapter/internal/feeds"
	"github.com/dashkit/widget-adapter/pkg/adapter"
)

// RegisterRoutes wires the demo widget endpoints plus health and metrics.
func RegisterRoutes(app *fiber.App, ad *adapter.Adapter) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	w := app.Group("/widgets")
	w.Get("/orders/open", ad.Number(feeds.OpenOrders))
	w.Get("/revenue/monthly", ad.Number(feeds.MonthlyRevenue, adapter.WithParams(map[string]any{"absolute": "true"})))
	w.Get("/revenue/by-region", ad.PieChart(feeds.RevenueByRegion))
	w.Get("/revenue/quarter", ad.Bullet(feeds.QuarterRevenueBullet))
	w.Get("/signups/trend", ad.LineChart(feeds.SignupTrend))
	w.Get("/uptime", ad.GeckOMeter(feeds.UptimeMeter))
	w.Get("/support/funnel", ad.Funnel(feeds.SupportFunnel))
	w.Get("/pipelines/status", ad.RAG(feeds.PipelineStatus))
	w.Get("/alerts", ad.Text(feeds.RecentAlerts))
	w.Get("/releases", ad.List(feeds.RecentReleases))
}
