package domain

import (
	"fmt"
	"strings"
)

// Event represents a single earthquake report from the upstream feed.
// Events are immutable once fetched; only the ID is ever persisted.
type Event struct {
	ID        string `json:"id"`        // upstream earthquake_id, stable unique identifier
	Title     string `json:"title"`     // upstream place description
	Magnitude string `json:"magnitude"` // upstream-defined, kept verbatim
	Date      string `json:"date"`      // upstream timestamp, opaque to this system
	Region    string `json:"region"`    // epicenter province, normalized to lower case, "" when absent
}

// Announcement formats the notification text sent to subscribers.
func (e Event) Announcement() string {
	region := "unknown"
	if e.Region != "" {
		region = capitalize(e.Region)
	}
	mag := e.Magnitude
	if mag == "" {
		mag = "unknown"
	}
	date := e.Date
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("⚠️ New Earthquake Alert ⚠️\nPlace: %s\nProvince: %s\nMagnitude: %s\nDate: %s",
		strings.ToLower(e.Title), region, mag, date)
}

// capitalize upper-cases the first rune only, leaving the rest as-is
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
