package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/device"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/reading"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const (
	topDevicesLimit = 10

	replacementAgeYears  = 5
	replacementCostLimit = 1000.0
	replacementLimit     = 50
)

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// InactiveDevices counts devices in the Inactive status per device type.
func (a *Aggregator) InactiveDevices(ctx context.Context) ([]TypeCount, error) {
	const q = `
SELECT type, COUNT(*) AS count
FROM devices
WHERE status = ?
GROUP BY type
ORDER BY count DESC, type`
	return rows[TypeCount](ctx, a.db, q, device.StatusInactive)
}

type DeviceRef struct {
	DeviceID int64  `json:"device_id"`
	Type     string `json:"type"`
}

// UnservicedDevices lists devices that raised at least one alert and have no
// maintenance history. Each device appears once regardless of alert count.
func (a *Aggregator) UnservicedDevices(ctx context.Context) ([]DeviceRef, error) {
	const q = `
SELECT d.device_id, d.type
FROM devices d
WHERE EXISTS (SELECT 1 FROM alerts a WHERE a.device_id = d.device_id)
  AND NOT EXISTS (SELECT 1 FROM maintenance m WHERE m.device_id = d.device_id)
ORDER BY d.device_id`
	return rows[DeviceRef](ctx, a.db, q)
}

type DeviceReadings struct {
	DeviceID      int64   `json:"device_id"`
	Type          string  `json:"type"`
	ReadingsCount int64   `json:"readings_count"`
	AvgValue      float64 `json:"avg_value"`
}

func (a *Aggregator) TopDevicesByReadings(ctx context.Context) ([]DeviceReadings, error) {
	const q = `
SELECT d.device_id, d.type, COUNT(r.reading_id) AS readings_count, AVG(r.value) AS avg_value
FROM readings r
JOIN devices d ON d.device_id = r.device_id
WHERE r.reading_type = ?
GROUP BY d.device_id, d.type
ORDER BY readings_count DESC, avg_value DESC, d.device_id
LIMIT ?`
	return rows[DeviceReadings](ctx, a.db, q, reading.TypeAirQuality, topDevicesLimit)
}

type ReplacementCandidate struct {
	DeviceID           int64      `json:"device_id"`
	Type               string     `json:"type"`
	InstallDate        store.Time `json:"install_date"`
	AvgMaintenanceCost float64    `json:"avg_maintenance_cost"`
	AgeYears           int        `json:"age_years"`
}

// DevicesNeedingReplacement returns devices older than five full years or
// whose average maintenance cost exceeds 1000. A device without maintenance
// history has an average cost of zero.
func (a *Aggregator) DevicesNeedingReplacement(ctx context.Context) ([]ReplacementCandidate, error) {
	const q = `
SELECT d.device_id, d.type, d.install_date,
       COALESCE((SELECT AVG(m.cost) FROM maintenance m WHERE m.device_id = d.device_id), 0) AS avg_maintenance_cost
FROM devices d
WHERE d.install_date <= ?
   OR COALESCE((SELECT AVG(m.cost) FROM maintenance m WHERE m.device_id = d.device_id), 0) > ?
ORDER BY d.device_id`
	today := startOfDay(a.now())
	cutoff := today.AddDate(-(replacementAgeYears + 1), 0, 0)

	out, err := rows[ReplacementCandidate](ctx, a.db, q, cutoff, replacementCostLimit)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].AgeYears = fullYears(out[i].InstallDate.Time, today)
		out[i].AvgMaintenanceCost = round2(out[i].AvgMaintenanceCost)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AgeYears != out[j].AgeYears {
			return out[i].AgeYears > out[j].AgeYears
		}
		return out[i].AvgMaintenanceCost > out[j].AvgMaintenanceCost
	})
	if len(out) > replacementLimit {
		out = out[:replacementLimit]
	}
	return out, nil
}

// fullYears counts the anniversaries of from that have passed by to.
func fullYears(from, to time.Time) int {
	if from.IsZero() {
		return 0
	}
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
