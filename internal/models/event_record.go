package models

import (
	"strings"
	"time"
)

// EventRecord is one showcased Thunder experience as delivered by the backend.
// Records pass through as received; only ID is expected to be unique within a list.
type EventRecord struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug,omitempty"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Venue         string   `json:"venue"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Status        string   `json:"status"`
	PrimaryImage  string   `json:"primaryImage,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
	Tags          []string `json:"tags"`
}

// EventList is the payload shape served by GET /api/events.
// A nil Data means the field was absent or null.
type EventList struct {
	Data []EventRecord `json:"data"`
}

var eventDateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// DateRange renders "Feb 14 - Feb 16" for the card footer. Unparseable dates are shown verbatim.
func (e EventRecord) DateRange() string {
	start := shortDate(e.StartDate)
	end := shortDate(e.EndDate)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

func shortDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2")
		}
	}
	return raw
}
