package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexContainAtLeastOneLowercase   = `[a-z]`
	RegexContainAtLeastOneDigit       = `[0-9]`
	RegexTimeOfDay                    = `^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`
)
