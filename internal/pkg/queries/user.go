package queries

const (
	GetUserByID = `
		SELECT id, email, username, password, role, COALESCE(google_id, ''), created_at, updated_at
		FROM users
		WHERE id = $1
	`

	GetUserByEmail = `
		SELECT id, email, username, password, role, COALESCE(google_id, ''), created_at, updated_at
		FROM users
		WHERE email = $1
	`

	GetUserByUsername = `
		SELECT id, email, username, password, role, COALESCE(google_id, ''), created_at, updated_at
		FROM users
		WHERE username = $1
	`

	InsertUser = `
		INSERT INTO users (id, email, username, password, role, google_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW(), NOW())
	`

	UpdateUserPassword = `
		UPDATE users
		SET password = $1, updated_at = NOW()
		WHERE id = $2
	`

	UpdateUserGoogleID = `
		UPDATE users
		SET google_id = $1, updated_at = NOW()
		WHERE id = $2
	`
)
