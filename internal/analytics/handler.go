package analytics

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/reading"
)

type Handler struct {
	Agg *Aggregator
	Log *zap.Logger
}

func NewHandler(agg *Aggregator, log *zap.Logger) *Handler {
	return &Handler{Agg: agg, Log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/analytics/"+OpTopPollutedZones, h.TopPollutedZones)
	r.GET("/analytics/"+OpInactiveDevices, h.InactiveDevices)
	r.GET("/analytics/"+OpUnservicedDevices, h.UnservicedDevices)
	r.GET("/analytics/"+OpMaintenanceByZone, h.MaintenanceByZone)
	r.GET("/analytics/"+OpDashboardSummary, h.DashboardSummary)
	r.GET("/analytics/"+OpTopDevicesByReadings, h.TopDevicesByReadings)
	r.GET("/analytics/"+OpAlertsByZone, h.AlertsByZone)
	r.GET("/analytics/"+OpAvgCostPerZone, h.AvgCostPerZone)
	r.GET("/analytics/"+OpDevicesNeedingReplacement, h.DevicesNeedingReplacement)
	r.GET("/analytics/"+OpAnomalies, h.Anomalies)
	r.GET("/analytics/"+OpMaintenanceTrend, h.MaintenanceTrend)
	r.GET("/analytics/"+OpAlertsSeverity, h.AlertsSeverity)
	r.GET("/analytics/"+OpReadingsDistribution, h.ReadingsDistribution)
}

func (h *Handler) TopPollutedZones(c *gin.Context) {
	out, err := h.Agg.TopPollutedZones(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) InactiveDevices(c *gin.Context) {
	out, err := h.Agg.InactiveDevices(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) UnservicedDevices(c *gin.Context) {
	out, err := h.Agg.UnservicedDevices(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) MaintenanceByZone(c *gin.Context) {
	out, err := h.Agg.MaintenanceByZone(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) DashboardSummary(c *gin.Context) {
	out, err := h.Agg.DashboardSummary(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) TopDevicesByReadings(c *gin.Context) {
	out, err := h.Agg.TopDevicesByReadings(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) AlertsByZone(c *gin.Context) {
	out, err := h.Agg.AlertsByZone(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) AvgCostPerZone(c *gin.Context) {
	out, err := h.Agg.AvgCostPerZone(c.Request.Context())
	h.respond(c, out, err)
}

func (h *Handler) DevicesNeedingReplacement(c *gin.Context) {
	out, err := h.Agg.DevicesNeedingReplacement(c.Request.Context())
	h.respond(c, out, err)
}

// Anomalies serves GET /analytics/anomalies?type=&days=.
func (h *Handler) Anomalies(c *gin.Context) {
	readingType := c.Query("type")
	if readingType == "" {
		readingType = reading.TypeAirQuality
	}
	days, err := params.PositiveInt(c, "days", DefaultAnomalyDays)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	body, err := h.Agg.Cached(c.Request.Context(), OpAnomalies, CacheKey(OpAnomalies, readingType, days), AnomaliesTTL,
		func(ctx context.Context) (any, error) { return h.Agg.Anomalies(ctx, readingType, days) })
	h.respondBody(c, body, err)
}

// MaintenanceTrend serves GET /analytics/maintenance-trend?months=.
func (h *Handler) MaintenanceTrend(c *gin.Context) {
	months, err := params.PositiveInt(c, "months", DefaultTrendMonths)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	body, err := h.Agg.Cached(c.Request.Context(), OpMaintenanceTrend, CacheKey(OpMaintenanceTrend, months), MaintenanceTrendTTL,
		func(ctx context.Context) (any, error) { return h.Agg.MaintenanceTrend(ctx, months) })
	h.respondBody(c, body, err)
}

func (h *Handler) AlertsSeverity(c *gin.Context) {
	body, err := h.Agg.Cached(c.Request.Context(), OpAlertsSeverity, CacheKey(OpAlertsSeverity), AlertsSeverityTTL,
		func(ctx context.Context) (any, error) { return h.Agg.AlertsSeverity(ctx) })
	h.respondBody(c, body, err)
}

func (h *Handler) ReadingsDistribution(c *gin.Context) {
	body, err := h.Agg.Cached(c.Request.Context(), OpReadingsDistribution, CacheKey(OpReadingsDistribution), ReadingsDistributionTTL,
		func(ctx context.Context) (any, error) { return h.Agg.ReadingsDistribution(ctx) })
	h.respondBody(c, body, err)
}

func (h *Handler) respond(c *gin.Context, v any, err error) {
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) respondBody(c *gin.Context, body []byte, err error) {
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
