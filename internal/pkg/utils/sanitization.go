package utils

import (
	"advice-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Bio = strings.TrimSpace(input.Bio)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Location = strings.TrimSpace(input.Location)
}

func SanitizeManageSkillsRequest(input *requests.ManageSkills) {
	input.SkillIDs = cleanWhiteSpaceFromEachStringOfAnArray(input.SkillIDs)
}

func SanitizeSetAvailabilityRequest(input *requests.SetAvailability) {
	for i := range input.Availability {
		input.Availability[i].DayOfWeek = strings.TrimSpace(strings.ToLower(input.Availability[i].DayOfWeek))
		input.Availability[i].StartTime = strings.TrimSpace(input.Availability[i].StartTime)
		input.Availability[i].EndTime = strings.TrimSpace(input.Availability[i].EndTime)
	}
}
