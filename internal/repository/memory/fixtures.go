package memory

import "github.com/kelvish/storetix/internal/domain"

// SeedEvents mirrors the storefront's mock event catalog.
func SeedEvents() []domain.Event {
	return []domain.Event{
		{
			ID:          "1",
			Slug:        "atif-aslam-concert-mauritius",
			Title:       "Atif Aslam Live in Concert",
			Description: "Experience the soulful voice of Atif Aslam live in Mauritius. An unforgettable night of music with his greatest hits.",
			Category:    "concert",
			Image:       "https://www.premiertickets.co/assets/uploads/2023/10/ATIF-ASLAM-2.jpg",
			Starts:      mustTime("2025-04-05T19:00:00+04:00"),
			Ends:        mustTime("2025-04-05T23:30:00+04:00"),
			Venue: domain.Venue{
				Name:    "SVICC",
				Address: "Pailles, Mauritius",
				City:    "Pailles",
				MapURL:  "https://maps.google.com/embed?pb=!1m18!1m12!1m3!1d3739.5!2d57.47!3d-20.23",
			},
			Organizer: domain.Organizer{
				Name:        "Star Events Mauritius",
				Description: "Bringing top international artists to Mauritius.",
				Contact:     "info@starevents.mu",
			},
			Featured: true,
			Trending: true,
		},
		{
			ID:          "2",
			Slug:        "arijit-singh-concert-mauritius",
			Title:       "Arijit Singh Live in Mauritius",
			Description: "Join us for a magical evening with Arijit Singh as he performs his chart-topping Bollywood hits live on stage.",
			Category:    "concert",
			Image:       "https://www.tottenhamhotspurstadium.com/media/mzrftp3l/arijit-singh-venue-900-x-800.jpg",
			Starts:      mustTime("2025-05-02T19:30:00+04:00"),
			Ends:        mustTime("2025-05-02T23:45:00+04:00"),
			Venue: domain.Venue{
				Name:    "Anjalay Stadium",
				Address: "Belle Vue, Mauritius",
				City:    "Belle Vue",
				MapURL:  "https://maps.google.com/embed?pb=!1m18!1m12!1m3!1d3740.8!2d57.64!3d-20.08",
			},
			Organizer: domain.Organizer{
				Name:        "Bollywood Nights MU",
				Description: "Hosting the best Bollywood concerts in Mauritius.",
				Contact:     "hello@bollywoodnights.mu",
			},
			Featured: true,
			Trending: true,
		},
		{
			ID:          "3",
			Slug:        "coldplay-island-special",
			Title:       "Coldplay Island Special",
			Description: "Coldplay comes to Mauritius for a once-in-a-lifetime island special concert. Lights, music, and magic under the stars.",
			Category:    "concert",
			Image:       "https://www.jsonline.com/gcdn/authoring/authoring-images/2025/06/14/PTX1/84198380007-06132025-coldplay-at-sun-bowl-42.jpg",
			Starts:      mustTime("2025-07-18T18:00:00+04:00"),
			Ends:        mustTime("2025-07-18T23:59:00+04:00"),
			Venue: domain.Venue{
				Name:    "Anse La Raie Open Grounds",
				Address: "Anse La Raie, Mauritius",
				City:    "Anse La Raie",
				MapURL:  "https://maps.google.com/embed?pb=!1m18!1m12!1m3!1d3742.5!2d57.63!3d-20.03",
			},
			Organizer: domain.Organizer{
				Name:        "Island Beats",
				Description: "Global music experiences in paradise destinations.",
				Contact:     "contact@islandbeats.mu",
			},
			Featured: true,
			Trending: true,
		},
	}
}

// SeedTiers mirrors the storefront's ticket tiers. Prices are cents.
func SeedTiers() []domain.TicketTier {
	return []domain.TicketTier{
		{
			ID:          "sega-vip",
			EventID:     "1",
			Name:        "VIP Experience",
			Description: "Premium viewing area, complimentary drinks, and meet & greet",
			PriceCents:  150000,
			Currency:    "MUR",
			Available:   48,
			Total:       50,
			Type:        domain.TierGeneral,
			Benefits:    []string{"Premium viewing area", "Complimentary drinks", "Meet & greet", "VIP lounge access"},
			SaleStarts:  mustTime("2025-01-15T00:00:00+04:00"),
			SaleEnds:    mustTime("2025-03-15T16:00:00+04:00"),
		},
		{
			ID:          "jazz-general",
			EventID:     "2",
			Name:        "Standard Seating",
			Description: "Reserved seating with great views of the stage",
			PriceCents:  120000,
			Currency:    "MUR",
			Available:   120,
			Total:       150,
			Type:        domain.TierSeated,
			Benefits:    []string{"Reserved seating", "Welcome drink"},
			SaleStarts:  mustTime("2025-01-20T00:00:00+04:00"),
			SaleEnds:    mustTime("2025-02-28T17:00:00+04:00"),
		},
		{
			ID:          "jazz-premium",
			EventID:     "2",
			Name:        "Premium Seating",
			Description: "Front section seating with dinner included",
			PriceCents:  200000,
			Currency:    "MUR",
			Available:   35,
			Total:       40,
			Type:        domain.TierSeated,
			Benefits:    []string{"Front section seating", "3-course dinner", "Premium bar access"},
			SaleStarts:  mustTime("2025-01-20T00:00:00+04:00"),
			SaleEnds:    mustTime("2025-02-28T17:00:00+04:00"),
		},
		{
			ID:          "jazz-vip",
			EventID:     "2",
			Name:        "VIP Table",
			Description: "Private table for 4 with premium service",
			PriceCents:  350000,
			Currency:    "MUR",
			Available:   8,
			Total:       10,
			Type:        domain.TierSeated,
			Benefits:    []string{"Private table for 4", "Dedicated service", "Premium menu", "Artist meet & greet"},
			SaleStarts:  mustTime("2025-01-20T00:00:00+04:00"),
			SaleEnds:    mustTime("2025-02-28T17:00:00+04:00"),
		},
	}
}

// SeedSeatSections mirrors the storefront's seat-map demo data, attached to
// the seated event.
func SeedSeatSections() map[string][]domain.SeatSection {
	return map[string][]domain.SeatSection{
		"2": {
			{
				ID:               "section-a",
				Name:             "Section A",
				PriceCents:       200000,
				Color:            "#7c3aed",
				Rows:             8,
				SeatsPerRow:      12,
				UnavailableSeats: []string{"A3-5", "A3-6", "A5-8", "A7-2", "A7-3"},
			},
			{
				ID:               "section-b",
				Name:             "Section B",
				PriceCents:       150000,
				Color:            "#2563eb",
				Rows:             10,
				SeatsPerRow:      14,
				UnavailableSeats: []string{"B2-7", "B4-12", "B6-3", "B8-9", "B8-10"},
			},
			{
				ID:               "section-c",
				Name:             "Section C",
				PriceCents:       120000,
				Color:            "#059669",
				Rows:             12,
				SeatsPerRow:      16,
				UnavailableSeats: []string{"C1-8", "C3-14", "C5-2", "C9-11", "C11-6"},
			},
		},
	}
}
