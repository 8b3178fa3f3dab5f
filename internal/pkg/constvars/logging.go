package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingUserIDKey       = "user_id"
	LoggingProfileIDKey    = "user_profile_id"
	LoggingSlotsCountKey   = "slots_count"
	LoggingErrorsCountKey  = "errors_count"
	LoggingSkillsCountKey  = "skills_count"
	LoggingReviewsCountKey = "reviews_count"
)
