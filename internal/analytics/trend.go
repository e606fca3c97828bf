package analytics

import (
	"context"
	"fmt"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const DefaultTrendMonths = 6

type TrendPoint struct {
	Month     string   `json:"month"`
	TotalCost float64  `json:"total_cost"`
	PctChange *float64 `json:"pct_change"`
}

// MaintenanceTrend returns total maintenance cost for the most recent months
// that have maintenance, oldest first, with the change from the previous month.
func (a *Aggregator) MaintenanceTrend(ctx context.Context, months int) ([]TrendPoint, error) {
	ym := store.YearMonth(a.db, "m.date")
	q := fmt.Sprintf(`
SELECT %[1]s AS month, SUM(m.cost) AS total_cost
FROM maintenance m
GROUP BY %[1]s
ORDER BY month DESC
LIMIT ?`, ym)

	desc, err := rows[TrendPoint](ctx, a.db, q, months)
	if err != nil {
		return nil, err
	}

	out := make([]TrendPoint, len(desc))
	totals := make([]float64, len(desc))
	for i, p := range desc {
		j := len(desc) - 1 - i
		out[j] = TrendPoint{Month: p.Month, TotalCost: round2(p.TotalCost)}
		totals[j] = out[j].TotalCost
	}
	for i, pct := range PercentChanges(totals) {
		out[i].PctChange = pct
	}
	return out, nil
}

// PercentChanges returns the change of each value relative to the one before
// it, in percent rounded to two decimals. The first value has no predecessor
// and a zero predecessor gives no defined change; both are nil.
func PercentChanges(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		pct := round2((values[i] - prev) / prev * 100)
		out[i] = &pct
	}
	return out
}
