package utils

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/exceptions"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	onceValidate sync.Once
)

func GetValidator() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("password", validatePassword)
		validate.RegisterValidation("day_of_week", validateDayOfWeek)
		validate.RegisterValidation("time_of_day", validateTimeOfDay)
		validate.RegisterStructValidation(validateAvailabilitySlotRange, requests.AvailabilitySlot{})
	})
	return validate
}

func ValidateStruct(s interface{}) error {
	if err := GetValidator().Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	for _, pattern := range []string{
		constvars.RegexContainAtLeastOneUppercase,
		constvars.RegexContainAtLeastOneLowercase,
		constvars.RegexContainAtLeastOneDigit,
	} {
		if !regexp.MustCompile(pattern).MatchString(password) {
			return false
		}
	}
	return true
}

func validateDayOfWeek(fl validator.FieldLevel) bool {
	return models.DayOfWeek(fl.Field().String()).Valid()
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeOfDay).MatchString(fl.Field().String())
}

func validateAvailabilitySlotRange(sl validator.StructLevel) {
	slot := sl.Current().Interface().(requests.AvailabilitySlot)
	if slot.StartTime == "" || slot.EndTime == "" {
		return
	}
	// HH:MM:SS strings are fixed width, so lexical order is chronological.
	if slot.StartTime >= slot.EndTime {
		sl.ReportError(slot.EndTime, "end_time", "EndTime", "time_range", "")
	}
}
