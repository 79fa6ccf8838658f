// Package feeds supplies the sample business-logic callables the demo
// service publishes. A real deployment registers its own functions; these
// exist so every widget kind has a live endpoint to poke at.
package feeds

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/dashkit/widget-adapter/pkg/widget"
)

// OpenOrders feeds a number widget with the current and previous counts.
func OpenOrders(_ *fiber.Ctx) (any, error) {
	return []widget.NumberItem{{Value: 42}, {Value: 40}}, nil
}

// MonthlyRevenue feeds a number widget from a decimal amount.
func MonthlyRevenue(_ *fiber.Ctx) (any, error) {
	return []widget.NumberItem{
		{Value: decimal.NewFromFloat(125430.55).InexactFloat64(), Prefix: "$"},
	}, nil
}

// RevenueByRegion feeds a pie chart.
func RevenueByRegion(_ *fiber.Ctx) (any, error) {
	return []widget.PieSlice{
		{Value: 112, Label: "EMEA", Colour: "3366cc"},
		{Value: 87, Label: "Americas", Colour: "dc3912"},
		{Value: 41, Label: "APAC", Colour: "ff9900"},
	}, nil
}

// SignupTrend feeds a line chart of weekly signups.
func SignupTrend(_ *fiber.Ctx) (any, error) {
	return widget.LineChart{
		Values: []float64{18, 25, 31, 29, 40, 52},
		XAxis:  []string{"wk 1", "wk 6"},
		YAxis:  []string{"0", "60"},
	}, nil
}

// UptimeMeter feeds a geck-o-meter with the 30-day uptime percentage.
func UptimeMeter(_ *fiber.Ctx) (any, error) {
	return widget.Meter{
		Value: 99.95,
		Min:   widget.MeterBound{Value: 99.0, Text: "SLO floor"},
		Max:   widget.MeterBound{Value: 100},
	}, nil
}

// SupportFunnel feeds a funnel of ticket resolution stages.
func SupportFunnel(_ *fiber.Ctx) (any, error) {
	return widget.Funnel{
		Stages: []widget.FunnelStage{
			{Value: widget.Pointer(320), Label: "opened"},
			{Value: widget.Pointer(270), Label: "triaged"},
			{Value: widget.Pointer(214), Label: "resolved"},
		},
	}, nil
}

// PipelineStatus feeds a RAG widget with deploy pipeline health.
func PipelineStatus(_ *fiber.Ctx) (any, error) {
	return []widget.RAGItem{
		{Value: widget.Pointer(1), Text: "failed"},
		{Value: widget.Pointer(3), Text: "degraded"},
		{Value: widget.Pointer(28), Text: "healthy"},
	}, nil
}

// RecentAlerts feeds a text widget.
func RecentAlerts(_ *fiber.Ctx) (any, error) {
	return []widget.TextItem{
		{Text: "disk usage above 80% on worker-3", Type: widget.TextWarn},
		{Text: "nightly batch completed", Type: widget.TextInfo},
	}, nil
}

// QuarterRevenueBullet feeds a bullet graph of revenue against target.
func QuarterRevenueBullet(_ *fiber.Ctx) (any, error) {
	return widget.Bullet{
		Label:       "Revenue Q3",
		Sublabel:    "USD",
		AxisPoints:  []float64{0, 200000, 400000, 600000, 800000, 1000000},
		Current:     widget.Span(584000),
		Comparative: 620000,
	}, nil
}

// RecentReleases feeds a list widget.
func RecentReleases(_ *fiber.Ctx) (any, error) {
	return []widget.ListItem{
		{Title: "v2.14.0", Label: "stable", LabelColor: "#108000", Description: "checkout rework"},
		{Title: "v2.15.0-rc1", Label: "candidate", Description: "pricing engine"},
	}, nil
}
