package availability

import (
	"advice-service/internal/app/models"
	"fmt"
	"sort"
	"strconv"
)

// NormalizationResult holds the outcome of normalizing one profile's proposed
// weekly slots. Either Errors is empty and Slots is the canonical accepted
// set, or Errors lists every duplicate and overlap found and Slots must not
// be persisted.
type NormalizationResult struct {
	Slots  []models.AvailabilitySlot
	Errors []string
}

func (r NormalizationResult) Accepted() bool {
	return len(r.Errors) == 0
}

type slotKey struct {
	Day   models.DayOfWeek
	Start string
	End   string
}

// NormalizeSlots canonicalizes a raw proposal list: sorts by (day, start),
// drops exact duplicates and overlapping candidates, and reports every
// conflict. Pure function, deterministic for any permutation of the input.
// Field shape (valid day enum, HH:MM:SS times, start before end) is
// guaranteed by request validation upstream.
func NormalizeSlots(proposals []models.AvailabilitySlot) NormalizationResult {
	sorted := make([]models.AvailabilitySlot, len(proposals))
	copy(sorted, proposals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DayOfWeek != sorted[j].DayOfWeek {
			return sorted[i].DayOfWeek.Order() < sorted[j].DayOfWeek.Order()
		}
		return secondsOfDay(sorted[i].StartTime) < secondsOfDay(sorted[j].StartTime)
	})

	kept := make([]models.AvailabilitySlot, 0, len(sorted))
	seen := make(map[slotKey]struct{}, len(sorted))
	var validationErrors []string

	for _, candidate := range sorted {
		key := slotKey{candidate.DayOfWeek, candidate.StartTime, candidate.EndTime}
		if _, exists := seen[key]; exists {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"Duplicate slot: %s %s-%s",
				candidate.DayOfWeek, candidate.StartTime, candidate.EndTime,
			))
			continue
		}

		overlapped := false
		for _, held := range kept {
			if held.DayOfWeek != candidate.DayOfWeek {
				continue
			}
			// Half-open intervals: touching endpoints are not an overlap.
			if secondsOfDay(held.StartTime) < secondsOfDay(candidate.EndTime) &&
				secondsOfDay(candidate.StartTime) < secondsOfDay(held.EndTime) {
				validationErrors = append(validationErrors, fmt.Sprintf(
					"Time slot overlap on %s: %s-%s and %s-%s",
					candidate.DayOfWeek,
					held.StartTime, held.EndTime,
					candidate.StartTime, candidate.EndTime,
				))
				overlapped = true
				break
			}
		}
		if overlapped {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, candidate)
	}

	return NormalizationResult{
		Slots:  kept,
		Errors: validationErrors,
	}
}

func secondsOfDay(timeOfDay string) int {
	hours, _ := strconv.Atoi(timeOfDay[:2])
	minutes, _ := strconv.Atoi(timeOfDay[3:5])
	seconds, _ := strconv.Atoi(timeOfDay[6:])
	return hours*3600 + minutes*60 + seconds
}
