package models

import "advice-service/internal/pkg/dto/responses"

type Review struct {
	ID             string `bson:"_id,omitempty"`
	ReviewerID     string `bson:"reviewerId"`
	ReviewedUserID string `bson:"reviewedUserId"`
	Rating         int    `bson:"rating"`
	Comment        string `bson:"comment"`
	TimeModel      `bson:",inline"`
}

func (r Review) ConvertIntoResponse() responses.Review {
	return responses.Review{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
