package models

import "advice-service/internal/pkg/dto/responses"

type UserProfile struct {
	ID               string
	UserID           string
	FirstName        string
	LastName         string
	Bio              string
	PhoneNumber      string
	Location         string
	SocialMediaLinks map[string]string
	ProfilePicture   string
	Resume           string
	TimeModel
}

func (p UserProfile) ConvertIntoResponse() responses.UserProfile {
	return responses.UserProfile{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Bio:              p.Bio,
		PhoneNumber:      p.PhoneNumber,
		Location:         p.Location,
		SocialMediaLinks: p.SocialMediaLinks,
		ProfilePicture:   p.ProfilePicture,
		Resume:           p.Resume,
	}
}

func (p UserProfile) ConvertIntoPublicResponse() responses.PublicProfile {
	return responses.PublicProfile{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Bio:              p.Bio,
		Location:         p.Location,
		SocialMediaLinks: p.SocialMediaLinks,
		ProfilePicture:   p.ProfilePicture,
	}
}

func (p *UserProfile) SetDataForUpdateProfile(firstName, lastName, bio, phoneNumber, location string, socialMediaLinks map[string]string) {
	if firstName != "" {
		p.FirstName = firstName
	}
	if lastName != "" {
		p.LastName = lastName
	}
	p.Bio = bio
	p.PhoneNumber = phoneNumber
	p.Location = location
	if socialMediaLinks != nil {
		p.SocialMediaLinks = socialMediaLinks
	}
	p.SetUpdatedAt()
}
