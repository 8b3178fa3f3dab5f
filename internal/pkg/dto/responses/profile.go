package responses

type UserProfile struct {
	ID               string            `json:"id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Bio              string            `json:"bio,omitempty"`
	PhoneNumber      string            `json:"phone_number,omitempty"`
	Location         string            `json:"location,omitempty"`
	SocialMediaLinks map[string]string `json:"social_media_links,omitempty"`
	ProfilePicture   string            `json:"profile_picture,omitempty"`
	Resume           string            `json:"resume,omitempty"`
	Skills           []Skill           `json:"skills,omitempty"`
}

type PublicProfile struct {
	ID               string            `json:"id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Bio              string            `json:"bio,omitempty"`
	Location         string            `json:"location,omitempty"`
	SocialMediaLinks map[string]string `json:"social_media_links,omitempty"`
	ProfilePicture   string            `json:"profile_picture,omitempty"`
	Skills           []Skill           `json:"skills,omitempty"`
}

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UploadFile struct {
	ObjectName string `json:"object_name"`
}
