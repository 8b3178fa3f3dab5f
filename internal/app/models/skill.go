package models

import "advice-service/internal/pkg/dto/responses"

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Skill) ConvertIntoResponse() responses.Skill {
	return responses.Skill{
		ID:   s.ID,
		Name: s.Name,
	}
}
