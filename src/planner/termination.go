package planner

import "strings"

// Structural markers the final itinerary format always contains.
const (
	itineraryHeadingMarker = "## 📅 detailed day-by-day itinerary"
	tripTitleMarker        = "# ✈️"
	tripDurationMarker     = "day trip:"
)

// ContainsCompleteItinerary reports whether assistant text already
// looks like a finished itinerary, either by its day-by-day section
// heading or by the title pattern combining the trip banner with a
// duration marker. The two checks are independent and OR-combined.
//
// This is best-effort string matching: a partial response that happens
// to emit matching headers terminates the loop early. Callers must not
// rely on it as a completeness guarantee.
func ContainsCompleteItinerary(content string) bool {
	text := strings.ToLower(content)
	if strings.Contains(text, itineraryHeadingMarker) {
		return true
	}
	return strings.Contains(text, tripTitleMarker) && strings.Contains(text, tripDurationMarker)
}
