// Package report buckets paid payments into revenue windows.
package report

import (
	"sort"
	"strings"
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View is the granularity of a revenue report
type View string

const (
	Daily     View = "daily"
	Weekly    View = "weekly"
	Monthly   View = "monthly"
	Quarterly View = "quarterly"
	Yearly    View = "yearly"
)

var viewAliases = map[string]View{
	"d": Daily, "day": Daily, "daily": Daily,
	"w": Weekly, "week": Weekly, "weekly": Weekly,
	"m": Monthly, "month": Monthly, "monthly": Monthly,
	"q": Quarterly, "quarter": Quarterly, "quarterly": Quarterly,
	"y": Yearly, "year": Yearly, "yearly": Yearly, "annual": Yearly, "annually": Yearly,
}

// ParseView is case-insensitive and falls back to Monthly for anything it does not recognize.
func ParseView(s string) View {
	if v, ok := viewAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return Monthly
}

// BucketStart returns the first civil date of the bucket containing day.
// Weeks start on Monday (ISO 8601).
func BucketStart(view View, day time.Time) time.Time {
	y, m, d := day.Date()
	switch view {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		first := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, first, 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}
}

// Bucket is one row of a revenue report
type Bucket struct {
	BucketStart   string          `json:"bucket_start"`
	TotalSum      decimal.Decimal `json:"total_sum"`
	OrderCount    int64           `json:"order_count"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

type accumulator struct {
	start  time.Time
	sum    decimal.Decimal
	orders map[uuid.UUID]struct{}
}

// Aggregate groups paid payments by bucket start, observed in loc, and returns
// the non-empty buckets in ascending order. Payments that are not paid are ignored.
func Aggregate(view View, payments []models.Payment, loc *time.Location) []Bucket {
	if loc == nil {
		loc = time.UTC
	}

	acc := make(map[time.Time]*accumulator)
	for _, p := range payments {
		if p.Status != models.PaymentPaid {
			continue
		}
		at := p.CreatedAt
		if p.PaidAt != nil {
			at = *p.PaidAt
		}
		y, m, d := at.In(loc).Date()
		start := BucketStart(view, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))

		a, ok := acc[start]
		if !ok {
			a = &accumulator{start: start, sum: decimal.Zero, orders: make(map[uuid.UUID]struct{})}
			acc[start] = a
		}
		a.sum = a.sum.Add(p.Amount)
		a.orders[p.OrderID] = struct{}{}
	}

	starts := make([]time.Time, 0, len(acc))
	for start := range acc {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	buckets := make([]Bucket, 0, len(starts))
	for _, start := range starts {
		a := acc[start]
		count := int64(len(a.orders))
		avg := decimal.Zero
		if count > 0 {
			avg = a.sum.DivRound(decimal.NewFromInt(count), 2)
		}
		buckets = append(buckets, Bucket{
			BucketStart:   start.Format("2006-01-02"),
			TotalSum:      a.sum,
			OrderCount:    count,
			AvgOrderValue: avg,
		})
	}
	return buckets
}

// Latest keeps the n most recent buckets; n <= 0 keeps all.
func Latest(buckets []Bucket, n int) []Bucket {
	if n <= 0 || n >= len(buckets) {
		return buckets
	}
	return buckets[len(buckets)-n:]
}

// Total sums TotalSum over all buckets
func Total(buckets []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.TotalSum)
	}
	return total
}
