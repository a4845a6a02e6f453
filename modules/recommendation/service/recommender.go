package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	eventEntity "campus-recommender/modules/event/entity"
	profileEntity "campus-recommender/modules/profile/entity"
)

// cosineEpsilon guards the division when either vector has zero norm
const cosineEpsilon = 1e-12

// Cosine computes cosine similarity between two vectors. Vectors from
// the same embedding model are always equal length, so a mismatch
// indicates corrupted data and is rejected rather than truncated.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	return dot / (math.Sqrt(na)*math.Sqrt(nb) + cosineEpsilon), nil
}

// ParseVector decodes the at-rest JSON form of an embedding; a missing
// or empty column yields nil, which excludes the event from scoring
func ParseVector(embeddingJSON *string) []float64 {
	if embeddingJSON == nil || *embeddingJSON == "" {
		return nil
	}

	var vec []float64
	if err := json.Unmarshal([]byte(*embeddingJSON), &vec); err != nil {
		return nil
	}
	if len(vec) == 0 {
		return nil
	}
	return vec
}

// eventDay returns the three-letter weekday abbreviation of the
// event's start
func eventDay(event *eventEntity.Event) string {
	return event.StartDatetime.Weekday().String()[:3]
}

// IsCompatible reports whether some slot fully contains the event's
// time range on the same weekday. Containment, not overlap: a slot
// that merely intersects the event does not qualify. Events crossing
// midnight are judged by the start date's weekday only.
func IsCompatible(event *eventEntity.Event, slots []profileEntity.AvailabilitySlot) bool {
	day := eventDay(event)
	start := profileEntity.NewClockTime(event.StartDatetime.Hour(), event.StartDatetime.Minute())
	end := profileEntity.NewClockTime(event.EndDatetime.Hour(), event.EndDatetime.Minute())

	for _, slot := range slots {
		if slot.DayOfWeek == day && slot.StartTime <= start && end <= slot.EndTime {
			return true
		}
	}
	return false
}

// BuildWhy derives the human-readable justification for a
// recommendation from the overlap between the student's interests and
// the event's AI keywords; matched interests keep the interest-list
// order
func BuildWhy(interests []string, keywordsCSV string) string {
	keywords := make(map[string]bool)
	for _, kw := range strings.Split(keywordsCSV, ",") {
		if trimmed := strings.ToLower(strings.TrimSpace(kw)); trimmed != "" {
			keywords[trimmed] = true
		}
	}

	var matched []string
	for _, interest := range interests {
		trimmed := strings.ToLower(strings.TrimSpace(interest))
		if trimmed != "" && keywords[trimmed] {
			matched = append(matched, trimmed)
		}
	}

	if len(matched) > 0 {
		return fmt.Sprintf("Recommended because it matches your interests: %s and fits your availability.",
			strings.Join(matched, ", "))
	}
	return "Recommended because it fits your availability and is semantically similar to your interests."
}
