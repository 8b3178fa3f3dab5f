package utils

import (
	"advice-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSetAvailability(t *testing.T) {
	validSlot := requests.AvailabilitySlot{
		DayOfWeek: "monday",
		StartTime: "09:00:00",
		EndTime:   "10:00:00",
	}

	t.Run("Valid Slots Pass", func(t *testing.T) {
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{validSlot},
		})
		assert.NoError(t, err)
	})

	t.Run("Empty Slot List Passes", func(t *testing.T) {
		err := ValidateStruct(&requests.SetAvailability{})
		assert.NoError(t, err)
	})

	t.Run("Unknown Day Fails", func(t *testing.T) {
		invalid := validSlot
		invalid.DayOfWeek = "moonday"
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{invalid},
		})
		assert.Error(t, err)
	})

	t.Run("Time Without Seconds Fails", func(t *testing.T) {
		invalid := validSlot
		invalid.StartTime = "09:00"
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{invalid},
		})
		assert.Error(t, err)
	})

	t.Run("Out Of Range Hour Fails", func(t *testing.T) {
		invalid := validSlot
		invalid.EndTime = "25:00:00"
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{invalid},
		})
		assert.Error(t, err)
	})

	t.Run("Inverted Time Range Fails", func(t *testing.T) {
		invalid := validSlot
		invalid.StartTime = "10:00:00"
		invalid.EndTime = "09:00:00"
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{invalid},
		})
		assert.Error(t, err, "a slot ending before it starts must be rejected")
	})

	t.Run("Zero Length Slot Fails", func(t *testing.T) {
		invalid := validSlot
		invalid.StartTime = "09:00:00"
		invalid.EndTime = "09:00:00"
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{invalid},
		})
		assert.Error(t, err, "a slot with equal start and end must be rejected")
	})

	t.Run("Missing Fields Fail", func(t *testing.T) {
		err := ValidateStruct(&requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{{DayOfWeek: "monday"}},
		})
		assert.Error(t, err)
	})
}

func TestValidatePassword(t *testing.T) {
	register := func(password string) *requests.Register {
		return &requests.Register{
			Email:          "user@example.com",
			Username:       "user",
			Password:       password,
			RetypePassword: password,
			Role:           "mentee",
		}
	}

	t.Run("Strong Password Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(register("Secret123")))
	})

	t.Run("Too Short Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(register("Ab1")))
	})

	t.Run("No Digit Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(register("Secretabc")))
	})

	t.Run("No Uppercase Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(register("secret123")))
	})
}
