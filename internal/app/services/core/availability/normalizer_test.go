package availability

import (
	"advice-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func slot(day models.DayOfWeek, start, end string) models.AvailabilitySlot {
	return models.AvailabilitySlot{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestNormalizeSlots(t *testing.T) {
	t.Run("Empty Input Is Accepted", func(t *testing.T) {
		result := NormalizeSlots(nil)

		assert.True(t, result.Accepted())
		assert.Empty(t, result.Slots)
		assert.Empty(t, result.Errors)
	})

	t.Run("Single Slot Is Accepted", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
		})

		assert.True(t, result.Accepted())
		assert.Equal(t, []models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
		}, result.Slots)
	})

	t.Run("Back To Back Slots Are Allowed", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "10:00:00", "11:00:00"),
		})

		assert.True(t, result.Accepted())
		assert.Len(t, result.Slots, 2)
	})

	t.Run("Overlap Is Rejected With Exact Message", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:30:00", "10:30:00"),
		})

		assert.False(t, result.Accepted())
		assert.Equal(t, []string{
			"Time slot overlap on monday: 09:00:00-10:00:00 and 09:30:00-10:30:00",
		}, result.Errors)
	})

	t.Run("Containing Interval Is Rejected", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Tuesday, "08:00:00", "12:00:00"),
			slot(models.Tuesday, "09:00:00", "10:00:00"),
		})

		assert.False(t, result.Accepted())
		assert.Equal(t, []string{
			"Time slot overlap on tuesday: 08:00:00-12:00:00 and 09:00:00-10:00:00",
		}, result.Errors)
	})

	t.Run("Exact Duplicate Is Rejected", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Wednesday, "14:00:00", "15:00:00"),
			slot(models.Wednesday, "14:00:00", "15:00:00"),
		})

		assert.False(t, result.Accepted())
		assert.Equal(t, []string{
			"Duplicate slot: wednesday 14:00:00-15:00:00",
		}, result.Errors)
	})

	t.Run("Same Times On Different Days Never Conflict", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Tuesday, "09:00:00", "10:00:00"),
			slot(models.Wednesday, "09:00:00", "10:00:00"),
		})

		assert.True(t, result.Accepted())
		assert.Len(t, result.Slots, 3)
	})

	t.Run("Accepted Slots Are Ordered By Day Then Start", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Saturday, "08:00:00", "09:00:00"),
			slot(models.Sunday, "13:00:00", "14:00:00"),
			slot(models.Sunday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
		})

		assert.True(t, result.Accepted())
		assert.Equal(t, []models.AvailabilitySlot{
			slot(models.Sunday, "09:00:00", "10:00:00"),
			slot(models.Sunday, "13:00:00", "14:00:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Saturday, "08:00:00", "09:00:00"),
		}, result.Slots)
	})

	t.Run("Order Independence Of Input", func(t *testing.T) {
		forward := []models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:30:00", "10:30:00"),
			slot(models.Friday, "16:00:00", "18:00:00"),
		}
		reversed := []models.AvailabilitySlot{
			slot(models.Friday, "16:00:00", "18:00:00"),
			slot(models.Monday, "09:30:00", "10:30:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
		}

		resultForward := NormalizeSlots(forward)
		resultReversed := NormalizeSlots(reversed)

		assert.Equal(t, resultForward.Slots, resultReversed.Slots)
		assert.Equal(t, resultForward.Errors, resultReversed.Errors)
	})

	t.Run("Idempotence On Accepted Output", func(t *testing.T) {
		first := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Thursday, "10:00:00", "11:00:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "10:00:00", "12:00:00"),
		})
		assert.True(t, first.Accepted())

		second := NormalizeSlots(first.Slots)
		assert.True(t, second.Accepted())
		assert.Equal(t, first.Slots, second.Slots)
	})

	t.Run("All Conflicts Are Reported", func(t *testing.T) {
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:30:00", "10:30:00"),
		})

		assert.False(t, result.Accepted())
		assert.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors, "Duplicate slot: monday 09:00:00-10:00:00")
		assert.Contains(t, result.Errors, "Time slot overlap on monday: 09:00:00-10:00:00 and 09:30:00-10:30:00")
	})

	t.Run("Rejected Candidate Does Not Block Later Slots", func(t *testing.T) {
		// The overlapping candidate is skipped, so a slot that only conflicts
		// with the skipped one is still accepted.
		result := NormalizeSlots([]models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "09:30:00", "10:30:00"),
			slot(models.Monday, "10:00:00", "11:00:00"),
		})

		assert.False(t, result.Accepted())
		assert.Equal(t, []models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "10:00:00", "11:00:00"),
		}, result.Slots)
	})

	t.Run("Input Slice Is Not Mutated", func(t *testing.T) {
		input := []models.AvailabilitySlot{
			slot(models.Friday, "16:00:00", "18:00:00"),
			slot(models.Monday, "09:00:00", "10:00:00"),
		}

		NormalizeSlots(input)

		assert.Equal(t, models.Friday, input[0].DayOfWeek)
		assert.Equal(t, models.Monday, input[1].DayOfWeek)
	})
}
