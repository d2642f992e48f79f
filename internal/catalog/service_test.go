package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kelvish/storetix/internal/repository/memory"
)

func testCatalog(t *testing.T) *Service {
	t.Helper()

	repo := memory.NewCatalog(
		memory.SeedEvents(),
		memory.SeedTiers(),
		memory.SeedSeatSections(),
	)

	return New(repo, nil, Config{})
}

func eventIDs(t *testing.T, svc *Service, f Filter) []string {
	t.Helper()

	events, err := svc.ListEvents(context.Background(), f)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	return ids
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListEventsFilters(t *testing.T) {
	t.Parallel()

	svc := testCatalog(t)
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.FixedZone("MUT", 4*3600))

	tests := []struct {
		name string
		f    Filter
		want []string
	}{
		{
			name: "unfiltered keeps everything",
			f:    Filter{Now: now},
			want: []string{"1", "2", "3"},
		},
		{
			name: "query matches title",
			f:    Filter{Query: "arijit", Now: now},
			want: []string{"2"},
		},
		{
			name: "query matches venue name",
			f:    Filter{Query: "svicc", Now: now},
			want: []string{"1"},
		},
		{
			name: "query matches organizer",
			f:    Filter{Query: "island beats", Now: now},
			want: []string{"3"},
		},
		{
			name: "query without hits",
			f:    Filter{Query: "opera", Now: now},
			want: []string{},
		},
		{
			name: "category all is a no-op",
			f:    Filter{Category: "all", Now: now},
			want: []string{"1", "2", "3"},
		},
		{
			name: "city slug",
			f:    Filter{City: "belle-vue", Now: now},
			want: []string{"2"},
		},
		{
			name: "date today",
			f:    Filter{DateRange: "today", Now: now},
			want: []string{"1"},
		},
		{
			name: "date this-month",
			f:    Filter{DateRange: "this-month", Now: now},
			want: []string{"1"},
		},
		{
			name: "date next-month",
			f:    Filter{DateRange: "next-month", Now: now},
			want: []string{"2"},
		},
		{
			name: "price bucket excludes events without tiers",
			f:    Filter{PriceRange: "1000-2000", Now: now},
			want: []string{"1", "2"},
		},
		{
			name: "price bucket 2000+",
			f:    Filter{PriceRange: "2000+", Now: now},
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := eventIDs(t, svc, tt.f)
			if !sameIDs(got, tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListEventsSorts(t *testing.T) {
	t.Parallel()

	svc := testCatalog(t)
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		f    Filter
		want []string
	}{
		{
			name: "default trending then soonest",
			f:    Filter{Now: now},
			want: []string{"1", "2", "3"},
		},
		{
			name: "date ascending",
			f:    Filter{SortBy: "date-asc", Now: now},
			want: []string{"1", "2", "3"},
		},
		{
			name: "date descending",
			f:    Filter{SortBy: "date-desc", Now: now},
			want: []string{"3", "2", "1"},
		},
		{
			name: "price ascending within priced bucket",
			f:    Filter{SortBy: "price-asc", PriceRange: "1000-2000", Now: now},
			want: []string{"2", "1"},
		},
		{
			name: "price descending within priced bucket",
			f:    Filter{SortBy: "price-desc", PriceRange: "1000-2000", Now: now},
			want: []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := eventIDs(t, svc, tt.f)
			if !sameIDs(got, tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEvent(t *testing.T) {
	t.Parallel()

	svc := testCatalog(t)
	ctx := context.Background()

	ev, err := svc.GetEvent(ctx, "coldplay-island-special")
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if ev.ID != "3" {
		t.Fatalf("id = %q, want 3", ev.ID)
	}

	if _, err := svc.GetEvent(ctx, "unknown-slug"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrEventNotFound)
	}
}

func TestListTiersAndSeatSections(t *testing.T) {
	t.Parallel()

	svc := testCatalog(t)
	ctx := context.Background()

	tiers, err := svc.ListTiers(ctx, "2")
	if err != nil {
		t.Fatalf("list tiers: %v", err)
	}
	if len(tiers) != 3 {
		t.Fatalf("len(tiers) = %d, want 3", len(tiers))
	}

	sections, err := svc.SeatSections(ctx, "2")
	if err != nil {
		t.Fatalf("seat sections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(sections))
	}

	// An event without a seat map just yields nothing.
	sections, err = svc.SeatSections(ctx, "1")
	if err != nil {
		t.Fatalf("seat sections: %v", err)
	}
	if len(sections) != 0 {
		t.Fatalf("len(sections) = %d, want 0", len(sections))
	}
}

func TestMatchDateRangeWeeks(t *testing.T) {
	t.Parallel()

	// Weeks start on Sunday: Sun 2025-04-06 and Sat 2025-04-12 share a week,
	// Sun 2025-04-13 does not.
	now := time.Date(2025, 4, 9, 12, 0, 0, 0, time.UTC)

	if !matchDateRange("this-week", time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("sunday start should match")
	}
	if !matchDateRange("this-week", time.Date(2025, 4, 12, 23, 0, 0, 0, time.UTC), now) {
		t.Fatal("saturday end should match")
	}
	if matchDateRange("this-week", time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("next sunday should not match")
	}
}
