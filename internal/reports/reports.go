// Package reports computes the dashboard views. Every function here is a
// pure function over a snapshot of the domain collections; nothing in this
// package mutates or persists state.
package reports

import (
	"time"

	"posada/internal/models"
)

// TodayMetrics summarizes the current calendar day's activity.
type TodayMetrics struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DayTotal is one entry of the daily transaction series.
type DayTotal struct {
	Label string  `json:"label"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// sameDay reports whether a and b fall on the same calendar day in the
// local time zone.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Today computes the transaction count and revenue for the calendar day
// containing now.
func Today(transactions []models.Transaction, now time.Time) TodayMetrics {
	var m TodayMetrics
	for _, tx := range transactions {
		if sameDay(tx.Date, now) {
			m.Count++
			m.Revenue += tx.Amount
		}
	}
	return m
}

// DefaultRange returns the inclusive 8-day series window ending today:
// today minus 7 days through today.
func DefaultRange(now time.Time) (from, to time.Time) {
	return now.AddDate(0, 0, -7), now
}

// DailySeries sums transaction amounts per calendar day from from to to
// inclusive, ascending. Days without transactions get a zero entry, so the
// result always has one element per day of the range. An inverted range
// yields an empty series.
func DailySeries(transactions []models.Transaction, from, to time.Time) []DayTotal {
	var series []DayTotal
	fy, fm, fd := from.Local().Date()
	day := time.Date(fy, fm, fd, 0, 0, 0, 0, time.Local)
	ty, tm, td := to.Local().Date()
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.Local)

	for !day.After(end) {
		entry := DayTotal{Label: day.Format("2006-01-02")}
		for _, tx := range transactions {
			if sameDay(tx.Date, day) {
				entry.Total += tx.Amount
			}
		}
		series = append(series, entry)
		day = day.AddDate(0, 0, 1)
	}
	return series
}

// ProfitByCategory buckets transaction amounts by the category of the item
// each transaction references. All four known buckets are always present,
// even at zero. Orphaned transactions (item since deleted) and items with an
// unrecognized category are excluded from every bucket rather than collected
// under a catch-all.
func ProfitByCategory(items []models.Item, transactions []models.Transaction) map[models.Category]float64 {
	byID := make(map[int64]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	buckets := make(map[models.Category]float64, len(models.KnownCategories))
	for _, c := range models.KnownCategories {
		buckets[c] = 0
	}

	for _, tx := range transactions {
		item, ok := byID[tx.ItemID]
		if !ok {
			continue
		}
		if _, known := buckets[item.Category]; !known {
			continue
		}
		buckets[item.Category] += tx.Amount
	}
	return buckets
}
