package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	RoleCollegeStudent = "college_student"
	RoleMentee         = "mentee"
)

const (
	RedisKeySessionPrefix       = "session:"
	RedisKeyResetPasswordPrefix = "reset-password:"
	RedisKeySkillCatalog        = "skills:catalog"
)

const (
	MinioProfilePicturePrefix = "profile-picture"
	MinioResumePrefix         = "resume"
)

const MongoCollectionReviews = "reviews"

const MaxResumeUploadSizeInBytes = 10 << 20

var ImageAllowedProfilePictureFormats = []string{".png", ".jpg", ".jpeg"}
