// Package analytics computes the dashboard's derived views: rankings,
// group-by aggregates, anomaly detection and trends.
package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/cache"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/metrics"
)

// Operation names, used as route suffixes, cache key prefixes and metric labels.
const (
	OpTopPollutedZones          = "top-polluted-zones"
	OpInactiveDevices           = "inactive-devices"
	OpUnservicedDevices         = "unserviced-devices"
	OpMaintenanceByZone         = "maintenance-by-zone"
	OpDashboardSummary          = "dashboard-summary"
	OpTopDevicesByReadings      = "top-devices-by-readings"
	OpAlertsByZone              = "alerts-by-zone"
	OpAvgCostPerZone            = "avg-cost-per-zone"
	OpDevicesNeedingReplacement = "devices-needing-replacement"
	OpAnomalies                 = "anomalies"
	OpMaintenanceTrend          = "maintenance-trend"
	OpAlertsSeverity            = "alerts-severity"
	OpReadingsDistribution      = "readings-distribution"
)

const (
	AnomaliesTTL            = 120 * time.Second
	MaintenanceTrendTTL     = 300 * time.Second
	AlertsSeverityTTL       = 120 * time.Second
	ReadingsDistributionTTL = 300 * time.Second
)

// Aggregator runs read-only aggregate queries. Results of the frequently
// polled views go through the injected cache.
type Aggregator struct {
	db    *gorm.DB
	cache cache.Cache
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*Aggregator)

// WithClock replaces time.Now as the reference for trailing windows.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

func New(db *gorm.DB, c cache.Cache, log *zap.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{db: db, cache: c, log: log, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CacheKey joins an operation name and its parameters, e.g. "anomalies:AirQuality:7".
func CacheKey(op string, params ...any) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, op)
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ":")
}

// Cached returns the JSON body for key, computing and storing it on a miss.
// A hit returns exactly the bytes stored by the request that populated it.
// Cache failures are logged and fall through to the store.
func (a *Aggregator) Cached(ctx context.Context, op, key string, ttl time.Duration, compute func(context.Context) (any, error)) ([]byte, error) {
	body, ok, err := a.cache.Get(ctx, key)
	switch {
	case err != nil:
		a.log.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	case ok:
		metrics.CacheHits.WithLabelValues(op).Inc()
		return body, nil
	}
	metrics.CacheMisses.WithLabelValues(op).Inc()

	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	body, err = json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op, err)
	}
	if err := a.cache.Set(ctx, key, body, ttl); err != nil {
		a.log.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
	return body, nil
}

// rows runs a raw aggregate query into a non-nil slice.
func rows[T any](ctx context.Context, db *gorm.DB, query string, args ...any) ([]T, error) {
	out := make([]T, 0)
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&out).Error; err != nil {
		return nil, apierr.Store(err)
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func stddev(variance float64) float64 {
	if variance <= 0 {
		return 0
	}
	return math.Sqrt(variance)
}
