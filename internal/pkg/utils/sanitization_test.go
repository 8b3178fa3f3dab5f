package utils

import (
	"advice-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	t.Run("Trims Whitespace And Lowercases Email And Role", func(t *testing.T) {
		input := &requests.Register{
			Email:          "  John.Doe@Example.COM  ",
			Username:       " johndoe ",
			Password:       " Secret123 ",
			RetypePassword: " Secret123 ",
			Role:           " College_Student ",
		}

		SanitizeRegisterRequest(input)

		assert.Equal(t, "john.doe@example.com", input.Email, "Email should be trimmed and lowercased")
		assert.Equal(t, "johndoe", input.Username, "Username should be trimmed")
		assert.Equal(t, "Secret123", input.Password, "Password should keep its case")
		assert.Equal(t, "college_student", input.Role, "Role should be trimmed and lowercased")
	})
}

func TestSanitizeSetAvailabilityRequest(t *testing.T) {
	t.Run("Normalizes Day Casing And Trims Times", func(t *testing.T) {
		input := &requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{
				{DayOfWeek: " Monday ", StartTime: " 09:00:00 ", EndTime: "10:00:00 "},
				{DayOfWeek: "FRIDAY", StartTime: "16:00:00", EndTime: " 18:00:00"},
			},
		}

		SanitizeSetAvailabilityRequest(input)

		assert.Equal(t, "monday", input.Availability[0].DayOfWeek)
		assert.Equal(t, "09:00:00", input.Availability[0].StartTime)
		assert.Equal(t, "10:00:00", input.Availability[0].EndTime)
		assert.Equal(t, "friday", input.Availability[1].DayOfWeek)
		assert.Equal(t, "18:00:00", input.Availability[1].EndTime)
	})

	t.Run("Empty Slot List Is A No Op", func(t *testing.T) {
		input := &requests.SetAvailability{}

		SanitizeSetAvailabilityRequest(input)

		assert.Empty(t, input.Availability)
	})
}

func TestSanitizeManageSkillsRequest(t *testing.T) {
	t.Run("Trims Every Skill ID", func(t *testing.T) {
		input := &requests.ManageSkills{
			SkillIDs: []string{" skill-1 ", "skill-2", "  skill-3"},
		}

		SanitizeManageSkillsRequest(input)

		assert.Equal(t, []string{"skill-1", "skill-2", "skill-3"}, input.SkillIDs)
	})
}
