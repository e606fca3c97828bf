package analytics

import (
	"context"
	"sort"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/alert"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const (
	DefaultAnomalyDays = 7
	anomalySigmas      = 3
	anomaliesLimit     = 200
)

type Anomaly struct {
	ReadingID   int64      `json:"reading_id"`
	DeviceID    int64      `json:"device_id"`
	ReadingType string     `json:"reading_type"`
	Value       float64    `json:"value"`
	Timestamp   store.Time `json:"timestamp"`
	AvgVal      float64    `json:"avg_val"`
	StddevVal   float64    `json:"stddev_val"`
	Variance    float64    `json:"-" gorm:"column:var_val"`
}

// Anomalies flags readings of readingType within the last days whose value
// exceeds the device's own window mean by more than three population
// standard deviations. A device with one reading in the window has zero
// spread and its reading sits on the mean, so it never flags.
func (a *Aggregator) Anomalies(ctx context.Context, readingType string, days int) ([]Anomaly, error) {
	// value > mean + k*sd is evaluated as value > mean AND (value-mean)^2 > k^2*var,
	// which needs no SQRT and works on both drivers.
	const q = `
SELECT r.reading_id, r.device_id, r.reading_type, r.value, r.timestamp,
       s.avg_val, s.var_val
FROM readings r
JOIN (
	SELECT w.device_id, w.avg_val,
	       AVG((x.value - w.avg_val) * (x.value - w.avg_val)) AS var_val
	FROM (
		SELECT i.device_id, AVG(i.value) AS avg_val
		FROM readings i
		WHERE i.reading_type = ? AND i.timestamp >= ?
		GROUP BY i.device_id
	) w
	JOIN readings x ON x.device_id = w.device_id
	WHERE x.reading_type = ? AND x.timestamp >= ?
	GROUP BY w.device_id, w.avg_val
) s ON s.device_id = r.device_id
WHERE r.reading_type = ? AND r.timestamp >= ?
  AND r.value > s.avg_val
  AND (r.value - s.avg_val) * (r.value - s.avg_val) > ? * s.var_val
ORDER BY r.timestamp DESC, r.reading_id DESC
LIMIT ?`
	since := a.now().UTC().AddDate(0, 0, -days)
	out, err := rows[Anomaly](ctx, a.db, q,
		readingType, since,
		readingType, since,
		readingType, since,
		anomalySigmas*anomalySigmas, anomaliesLimit)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StddevVal = stddev(out[i].Variance)
	}
	return out, nil
}

type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}

var severityRank = map[string]int{
	alert.SeverityCritical: 0,
	alert.SeverityHigh:     1,
	alert.SeverityMedium:   2,
	alert.SeverityLow:      3,
}

// SeverityRank orders severities Critical first. Unknown values rank last.
func SeverityRank(s string) int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// SortSeverities orders counts by severity rank, then by count descending.
func SortSeverities(counts []SeverityCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		ri, rj := SeverityRank(counts[i].Severity), SeverityRank(counts[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return counts[i].Count > counts[j].Count
	})
}

func (a *Aggregator) AlertsSeverity(ctx context.Context) ([]SeverityCount, error) {
	const q = `
SELECT severity, COUNT(*) AS count
FROM alerts
GROUP BY severity
ORDER BY severity`
	out, err := rows[SeverityCount](ctx, a.db, q)
	if err != nil {
		return nil, err
	}
	SortSeverities(out)
	return out, nil
}
