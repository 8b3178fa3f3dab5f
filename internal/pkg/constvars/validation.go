package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"min":         "must be at least %s characters long",
	"max":         "must be at most %s characters long",
	"oneof":       "must be one of: %s",
	"uuid":        "must be a valid UUID",
	"url":         "must be a valid URL",
	"password":    "must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a digit",
	"day_of_week": "must be a valid day of week (sunday..saturday)",
	"time_of_day": "must be a valid time in HH:MM:SS format",
	"time_range":  "must be after the start time",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
