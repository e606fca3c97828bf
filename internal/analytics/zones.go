package analytics

import (
	"context"
	"fmt"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/reading"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const (
	pollutionWindowDays   = 30
	topPollutedZonesLimit = 5
	alertsByZoneLimit     = 10
	avgCostPerZoneLimit   = 20
)

type ZonePollution struct {
	ZoneID       int64   `json:"zone_id"`
	Name         string  `json:"name"`
	AvgPollution float64 `json:"avg_pollution"`
}

// TopPollutedZones ranks zones by mean AirQuality reading over the trailing
// 30 days. Zones without readings in the window are omitted.
func (a *Aggregator) TopPollutedZones(ctx context.Context) ([]ZonePollution, error) {
	const q = `
SELECT z.zone_id, z.name, AVG(r.value) AS avg_pollution
FROM readings r
JOIN devices d ON d.device_id = r.device_id
JOIN zones z ON z.zone_id = d.zone_id
WHERE r.reading_type = ? AND r.timestamp >= ?
GROUP BY z.zone_id, z.name
ORDER BY avg_pollution DESC, z.zone_id
LIMIT ?`
	since := startOfDay(a.now()).AddDate(0, 0, -pollutionWindowDays)
	return rows[ZonePollution](ctx, a.db, q, reading.TypeAirQuality, since, topPollutedZonesLimit)
}

type ZoneMonthCost struct {
	Zone      string  `json:"zone"`
	Month     int     `json:"month"`
	TotalCost float64 `json:"total_cost"`
}

// MaintenanceByZone sums maintenance cost per zone and calendar month. The
// month is the month of year, so the same month of different years is
// summed together.
func (a *Aggregator) MaintenanceByZone(ctx context.Context) ([]ZoneMonthCost, error) {
	month := store.MonthOfYear(a.db, "m.date")
	q := fmt.Sprintf(`
SELECT z.name AS zone, %[1]s AS month, SUM(m.cost) AS total_cost
FROM maintenance m
JOIN devices d ON d.device_id = m.device_id
JOIN zones z ON z.zone_id = d.zone_id
GROUP BY z.zone_id, z.name, %[1]s
ORDER BY total_cost DESC, zone, month`, month)

	out, err := rows[ZoneMonthCost](ctx, a.db, q)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalCost = round2(out[i].TotalCost)
	}
	return out, nil
}

type ZoneAlerts struct {
	Zone       string `json:"zone"`
	AlertCount int64  `json:"alert_count"`
}

func (a *Aggregator) AlertsByZone(ctx context.Context) ([]ZoneAlerts, error) {
	const q = `
SELECT z.name AS zone, COUNT(a.alert_id) AS alert_count
FROM alerts a
JOIN devices d ON d.device_id = a.device_id
JOIN zones z ON z.zone_id = d.zone_id
GROUP BY z.zone_id, z.name
ORDER BY alert_count DESC, zone
LIMIT ?`
	return rows[ZoneAlerts](ctx, a.db, q, alertsByZoneLimit)
}

type ZoneCost struct {
	Zone    string  `json:"zone"`
	AvgCost float64 `json:"avg_cost"`
}

func (a *Aggregator) AvgCostPerZone(ctx context.Context) ([]ZoneCost, error) {
	const q = `
SELECT z.name AS zone, AVG(m.cost) AS avg_cost
FROM maintenance m
JOIN devices d ON d.device_id = m.device_id
JOIN zones z ON z.zone_id = d.zone_id
GROUP BY z.zone_id, z.name
ORDER BY avg_cost DESC, zone
LIMIT ?`
	out, err := rows[ZoneCost](ctx, a.db, q, avgCostPerZoneLimit)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].AvgCost = round2(out[i].AvgCost)
	}
	return out, nil
}

type ZoneDistribution struct {
	Zone        string  `json:"zone"`
	ReadingType string  `json:"reading_type"`
	AvgValue    float64 `json:"avg_value"`
	StddevValue float64 `json:"stddev_value"`
	Variance    float64 `json:"-" gorm:"column:var_value"`
}

// ReadingsDistribution reports mean and population standard deviation of
// reading values per zone and reading type.
func (a *Aggregator) ReadingsDistribution(ctx context.Context) ([]ZoneDistribution, error) {
	const q = `
SELECT z.name AS zone, r.reading_type,
       AVG(r.value) AS avg_value,
       AVG((r.value - mu.avg_val) * (r.value - mu.avg_val)) AS var_value
FROM readings r
JOIN devices d ON d.device_id = r.device_id
JOIN zones z ON z.zone_id = d.zone_id
JOIN (
	SELECT d2.zone_id, r2.reading_type, AVG(r2.value) AS avg_val
	FROM readings r2
	JOIN devices d2 ON d2.device_id = r2.device_id
	GROUP BY d2.zone_id, r2.reading_type
) mu ON mu.zone_id = d.zone_id AND mu.reading_type = r.reading_type
GROUP BY z.zone_id, z.name, r.reading_type
ORDER BY zone, r.reading_type`
	out, err := rows[ZoneDistribution](ctx, a.db, q)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].AvgValue = round2(out[i].AvgValue)
		out[i].StddevValue = round2(stddev(out[i].Variance))
	}
	return out, nil
}
