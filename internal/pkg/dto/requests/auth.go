package requests

type Register struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=college_student mentee"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token          string `json:"token" validate:"required"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required"`
}

type GoogleCallback struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state"`
}
