package constvars

const (
	RegisterSuccessMessage             = "Successfully registered user"
	LoginSuccessMessage                = "Successfully logged in"
	LogoutSuccessMessage               = "Successfully logged out"
	ForgotPasswordSuccessMessage       = "Reset password instructions sent if the email is registered"
	ResetPasswordSuccessMessage        = "Successfully reset password"
	GetProfileSuccessMessage           = "Successfully retrieved profile"
	UpdateProfileSuccessMessage        = "Successfully updated profile"
	UploadProfilePictureSuccessMessage = "Successfully uploaded profile picture"
	UploadResumeSuccessMessage         = "Successfully uploaded resume"
	GetSkillsSuccessMessage            = "Successfully retrieved skills"
	ManageSkillsSuccessMessage         = "Successfully updated skills"
	GetReviewsSuccessMessage           = "Successfully retrieved reviews"
	CreateReviewSuccessMessage         = "Successfully submitted review"
	SetAvailabilitySuccessMessage      = "Availability set successfully"
	GetAvailabilitySuccessMessage      = "Successfully retrieved availability"

	ResponseUnknown = "unknown"
)
