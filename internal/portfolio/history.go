package portfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHistoryDays is the evolution window used when none is given.
const DefaultHistoryDays = 30

// Snapshot is a recorded total portfolio value for one calendar date.
type Snapshot struct {
	Date       time.Time
	TotalValue decimal.Decimal
	UpdatedAt  time.Time
}

// Point is one (date, value) pair of a series.
type Point struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// MonthPoint is the value retained for one calendar month.
type MonthPoint struct {
	Month string          `json:"month"` // YYYY-MM
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
	Date  time.Time       `json:"date"` // date of the snapshot that supplied Value
}

// DayStart truncates t to midnight of its calendar date in loc, and returns
// that calendar date as midnight UTC. Snapshot keys always use this form.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowStart returns the first date included in an evolution window of the
// given number of days ending on today. The window holds today and the
// days-1 days before it.
func WindowStart(today time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	return today.AddDate(0, 0, -(days - 1))
}

// sortedByDate returns a copy of snapshots in ascending date order.
func sortedByDate(snapshots []Snapshot) []Snapshot {
	out := make([]Snapshot, len(snapshots))
	copy(out, snapshots)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Evolution returns the raw (date, value) pairs of the snapshots dated on or
// after since, ascending by date.
func Evolution(snapshots []Snapshot, since time.Time) []Point {
	points := make([]Point, 0, len(snapshots))
	for _, s := range sortedByDate(snapshots) {
		if s.Date.Before(since) {
			continue
		}
		points = append(points, Point{Date: s.Date, Value: s.TotalValue})
	}
	return points
}

// DailyChanges returns the first difference of an ascending series. Each
// change is tagged with the later of the two dates, so n points yield n-1
// changes.
func DailyChanges(points []Point) []Point {
	if len(points) < 2 {
		return []Point{}
	}
	changes := make([]Point, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		changes = append(changes, Point{
			Date:  points[i].Date,
			Value: Round(points[i].Value.Sub(points[i-1].Value)),
		})
	}
	return changes
}

// MonthlyWealth buckets snapshots by calendar month and keeps the value of
// the latest snapshot in each bucket, as an approximation of the month-end
// value. Ties on date are broken by the later UpdatedAt. Buckets are
// returned in ascending order.
func MonthlyWealth(snapshots []Snapshot) []MonthPoint {
	latest := make(map[string]Snapshot)
	for _, s := range snapshots {
		key := monthKey(s.Date)
		cur, ok := latest[key]
		if !ok || later(s, cur) {
			latest[key] = s
		}
	}

	keys := make([]string, 0, len(latest))
	for k := range latest {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		s := latest[k]
		out = append(out, MonthPoint{
			Month: k,
			Year:  s.Date.Year(),
			Value: s.TotalValue,
			Date:  s.Date,
		})
	}
	return out
}

func later(a, b Snapshot) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
