package responses

type Register struct {
	UserID string `json:"user_id"`
}

type Login struct {
	Token string `json:"token"`
}
