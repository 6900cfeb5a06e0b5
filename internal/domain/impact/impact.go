// Package impact aggregates activity records into carbon-impact reporting views.
//
// Every function in this package is pure: inputs are never mutated and no I/O is
// performed, so callers may share a single slice of records across goroutines.
// A record whose activity or category cannot be resolved contributes zero impact
// and is left out of every grouping, but it still counts as a record.
package impact

import (
	"fmt"
	"sort"
	"time"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// Point is a labelled aggregate value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MonthlyPoint is the aggregate impact of one calendar month.
// Year and Month are the ordering key; Label is only for display.
type MonthlyPoint struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
}

// Of returns the impact of a single record in kg CO2e and whether the record
// could be resolved to a category.
func Of(record *entity.ActivityRecord) (float64, bool) {
	category := record.Category()
	if category == nil {
		return 0, false
	}
	return record.Quantity * category.EmissionFactor, true
}

// Total returns the summed impact of all resolvable records.
func Total(records []*entity.ActivityRecord) float64 {
	var total float64
	for _, r := range records {
		value, _ := Of(r)
		total += value
	}
	return total
}

// Average returns the impact per record. Unresolved records are part of the
// denominator.
func Average(records []*entity.ActivityRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return Total(records) / float64(len(records))
}

// DailyAverage returns the total impact spread over a window of days.
// This is a per-day figure and is unrelated to Average.
func DailyAverage(records []*entity.ActivityRecord, days int) float64 {
	if days <= 0 || len(records) == 0 {
		return 0
	}
	return Total(records) / float64(days)
}

// ByCategory sums impact per resolved category name. Map iteration order is
// not meaningful.
func ByCategory(records []*entity.ActivityRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		value, ok := Of(r)
		if !ok {
			continue
		}
		totals[r.Category().Name] += value
	}
	return totals
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyTrend sums impact per calendar month of OccurredOn and returns the
// buckets in ascending (year, month) order.
func MonthlyTrend(records []*entity.ActivityRecord) []MonthlyPoint {
	buckets := make(map[yearMonth]float64)
	for _, r := range records {
		value, ok := Of(r)
		if !ok {
			continue
		}
		key := yearMonth{year: r.OccurredOn.Year(), month: r.OccurredOn.Month()}
		buckets[key] += value
	}

	keys := make([]yearMonth, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	trend := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, MonthlyPoint{
			Year:  key.year,
			Month: key.month,
			Label: MonthLabel(key.year, key.month),
			Value: buckets[key],
		})
	}
	return trend
}

// MonthLabel formats a month bucket for display (e.g. "Jan 2024").
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String()[:3], year)
}

// TopContributors sums impact per activity name and returns the n largest,
// descending. Ties keep the order in which activities were first seen.
// A negative n is treated as zero.
func TopContributors(records []*entity.ActivityRecord, n int) []Point {
	if n <= 0 {
		return []Point{}
	}

	sums := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range records {
		value, ok := Of(r)
		if !ok {
			continue
		}
		name := r.Activity.Name
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += value
	}

	points := make([]Point, 0, len(order))
	for _, name := range order {
		points = append(points, Point{Label: name, Value: sums[name]})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})

	if len(points) > n {
		points = points[:n]
	}
	return points
}

// SortedByValue returns the category totals as points ordered by value
// descending, then by name, for callers that need a stable display order.
func SortedByValue(totals map[string]float64) []Point {
	points := make([]Point, 0, len(totals))
	for name, value := range totals {
		points = append(points, Point{Label: name, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	return points
}
