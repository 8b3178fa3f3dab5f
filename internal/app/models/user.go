package models

type User struct {
	ID       string
	Email    string
	Username string
	Password string
	Role     string
	GoogleID string
	TimeModel
}

func (u *User) IsCollegeStudent() bool {
	return u.Role == "college_student"
}
