package catalog

import (
	"strings"
	"time"
)

// Filter narrows and orders the event listing. Zero values (or "all") leave
// a dimension unfiltered.
type Filter struct {
	Query      string
	Category   string
	City       string
	DateRange  string // today, tomorrow, this-week, this-month, next-month
	PriceRange string // 0-500, 500-1000, 1000-2000, 2000+ (whole currency units)
	SortBy     string // trending, date-asc, date-desc, price-asc, price-desc
	Now        time.Time
}

func (f Filter) active(v string) bool {
	return v != "" && v != "all"
}

// citySlug normalizes a city name for comparison with the URL-style filter
// value, e.g. "Port Louis" -> "port-louis".
func citySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func matchDateRange(rangeKey string, eventStart, now time.Time) bool {
	switch rangeKey {
	case "today":
		return sameDay(eventStart, now)
	case "tomorrow":
		return sameDay(eventStart, now.AddDate(0, 0, 1))
	case "this-week":
		return sameWeek(eventStart, now)
	case "this-month":
		return sameMonth(eventStart, now)
	case "next-month":
		return sameMonth(eventStart, now.AddDate(0, 1, 0))
	default:
		return true
	}
}

// matchPriceRange buckets an event by its cheapest tier, in whole currency
// units as the storefront exposes them.
func matchPriceRange(rangeKey string, minPriceCents int64) bool {
	minPrice := minPriceCents / 100

	switch rangeKey {
	case "0-500":
		return minPrice < 500
	case "500-1000":
		return minPrice >= 500 && minPrice < 1000
	case "1000-2000":
		return minPrice >= 1000 && minPrice < 2000
	case "2000+":
		return minPrice >= 2000
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameWeek uses Sunday-started weeks.
func sameWeek(a, b time.Time) bool {
	return sameDay(startOfWeek(a), startOfWeek(b))
}

func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
