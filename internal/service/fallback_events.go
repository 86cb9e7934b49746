package service

import "github.com/thunder-org/thunder-site/internal/models"

var fallbackEvents = []models.EventRecord{
	{
		ID:           "grand-prix-lounge",
		Title:        "Grand Prix Command Lounge",
		Subtitle:     "Trackside strategy suites for high-velocity networking",
		Description:  "Private race control set-ups with biometric concierge, hospitality, and immersive data walls so your guests feel part of the pit wall.",
		Location:     "Dubai",
		Venue:        "Autodrome VIP Grid",
		StartDate:    "2025-02-14",
		EndDate:      "2025-02-16",
		Status:       "Now booking",
		PrimaryImage: "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?auto=format&fit=crop&w=1600&q=80",
		Tags:         []string{"F1", "Hospitality", "Data"},
	},
	{
		ID:           "skyline-court",
		Title:        "Skyline Court Classics",
		Subtitle:     "Pop-up glass court suspended over iconic skylines",
		Description:  "Host C-level matchplay above the city with kinetic seating, Michelin-led tasting menus, and AR match analytics.",
		Location:     "Singapore",
		Venue:        "Marina Vista Sky Deck",
		StartDate:    "2025-05-05",
		EndDate:      "2025-05-10",
		Status:       "Concept release",
		PrimaryImage: "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&w=1600&q=80",
		Tags:         []string{"Tennis", "Pop-up", "AR"},
	},
	{
		ID:           "arena-storm",
		Title:        "Arena Storm Week",
		Subtitle:     "Immersive e-sports storyworld built for product drops",
		Description:  "Seven-day residency with programmable LED canyon, modular broadcast pods, and Keycloak-secured creator labs.",
		Location:     "Berlin",
		Venue:        "Thunder Vault",
		StartDate:    "2025-07-01",
		EndDate:      "2025-07-07",
		Status:       "Limited",
		PrimaryImage: "https://images.unsplash.com/photo-1508609349937-5ec4ae374ebf?auto=format&fit=crop&w=1600&q=80",
		Tags:         []string{"Esports", "Launch", "Web3"},
	},
}

// FallbackEvents returns a fresh copy of the compiled-in event list.
func FallbackEvents() []models.EventRecord {
	out := make([]models.EventRecord, len(fallbackEvents))
	for i, ev := range fallbackEvents {
		ev.Tags = append([]string(nil), ev.Tags...)
		ev.GalleryImages = append([]string(nil), ev.GalleryImages...)
		out[i] = ev
	}
	return out
}
