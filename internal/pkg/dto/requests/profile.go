package requests

type UpdateProfile struct {
	FirstName        string            `json:"first_name" validate:"omitempty,max=50"`
	LastName         string            `json:"last_name" validate:"omitempty,max=50"`
	Bio              string            `json:"bio" validate:"omitempty,max=2000"`
	PhoneNumber      string            `json:"phone_number" validate:"omitempty,max=20"`
	Location         string            `json:"location" validate:"omitempty,max=100"`
	SocialMediaLinks map[string]string `json:"social_media_links" validate:"omitempty,dive,url"`
}

type UploadProfilePicture struct {
	ProfilePicture string `json:"profile_picture" validate:"required"`
}

type ManageSkills struct {
	SkillIDs []string `json:"skill_ids" validate:"required,dive,uuid"`
}
