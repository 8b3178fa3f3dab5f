package queries

const (
	GetProfileByID = `
		SELECT
			id,
			user_id,
			first_name,
			last_name,
			COALESCE(bio, ''),
			COALESCE(phone_number, ''),
			COALESCE(location, ''),
			COALESCE(social_media_links, '{}'),
			COALESCE(profile_picture, ''),
			COALESCE(resume, ''),
			created_at,
			updated_at
		FROM user_profiles
		WHERE id = $1
	`

	GetProfileByUserID = `
		SELECT
			id,
			user_id,
			first_name,
			last_name,
			COALESCE(bio, ''),
			COALESCE(phone_number, ''),
			COALESCE(location, ''),
			COALESCE(social_media_links, '{}'),
			COALESCE(profile_picture, ''),
			COALESCE(resume, ''),
			created_at,
			updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	InsertProfile = `
		INSERT INTO user_profiles (id, user_id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	UpdateProfile = `
		UPDATE user_profiles
		SET
			first_name = $1,
			last_name = $2,
			bio = NULLIF($3, ''),
			phone_number = NULLIF($4, ''),
			location = NULLIF($5, ''),
			social_media_links = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	UpdateProfilePicture = `
		UPDATE user_profiles
		SET profile_picture = $1, updated_at = NOW()
		WHERE id = $2
	`

	UpdateProfileResume = `
		UPDATE user_profiles
		SET resume = $1, updated_at = NOW()
		WHERE id = $2
	`
)
