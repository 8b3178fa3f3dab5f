package constvars

// Client-facing messages. Kept generic for anything the caller cannot fix.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientOnlyCollegeStudent            = "Only college-student mentors can perform this action"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientPasswordsDoNotMatch           = "Passwords do not match"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientUsernameAlreadyExists         = "Username already exists"
	ErrClientProfileNotFound               = "User profile not found"
	ErrClientAvailabilityRejected          = "Invalid availability slots detected"
	ErrClientAvailabilityNotFound          = "Availability not found"
	ErrClientSkillNotFound                 = "Skill not found"
	ErrClientReviewNotFound                = "No reviews found for this user"
	ErrClientInvalidImageFormat            = "Invalid image format, allowed formats are png and jpeg"
	ErrClientInvalidResumeFormat           = "Invalid resume format, only PDF is allowed"
	ErrClientFileTooLarge                  = "Uploaded file exceeds the maximum allowed size"
	ErrClientResetPasswordTokenExpired     = "Reset password link already expired, please request a new one"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer-facing messages, logged but only exposed outside production.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "failed to marshal JSON payload"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevImageValidationFailed     = "image validation failed"
	ErrDevResumeValidationFailed    = "resume validation failed"
	ErrDevMissingRequestID          = "request ID not found in context"
	ErrDevMissingSessionData        = "session data not found in context"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials supplied"
	ErrDevEmailAlreadyExists        = "email already registered"
	ErrDevUsernameAlreadyExists     = "username already registered"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevProfileNotExists          = "user profile does not exist"
	ErrDevAuthGenerateToken         = "failed to generate JWT token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalid          = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthTokenExpired          = "token already expired"
	ErrDevOAuthExchangeFailed       = "failed to exchange OAuth authorization code"
	ErrDevOAuthUserInfoFailed       = "failed to fetch OAuth user info"
	ErrDevRoleNotCollegeStudent     = "user role is not college_student"
	ErrDevRedisStoreSession         = "failed to store session in redis"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"

	ErrDevDBFailedToFindData       = "postgres failed to find data"
	ErrDevDBFailedToInsertData     = "postgres failed to insert data"
	ErrDevDBFailedToUpdateData     = "postgres failed to update data"
	ErrDevDBFailedToDeleteData     = "postgres failed to delete data"
	ErrDevDBFailedToIterateDataset = "postgres failed to iterate dataset"
	ErrDevDBFailedToBeginTx        = "postgres failed to begin transaction"
	ErrDevDBFailedToCommitTx       = "postgres failed to commit transaction"

	ErrDevMongoDBFindDocument    = "mongodb failed to find document"
	ErrDevMongoDBInsertDocument  = "mongodb failed to insert document"
	ErrDevMongoDBIterateCursor   = "mongodb failed to iterate cursor"
	ErrDevRedisGetData           = "redis failed to get data"
	ErrDevRedisSetData           = "redis failed to set data"
	ErrDevRedisDeleteData        = "redis failed to delete data"
	ErrDevMinioFailedToPutObject = "minio failed to put object into bucket %s"
	ErrDevRabbitMQPublish        = "rabbitmq failed to publish message to queue %s"
)
