package queries

const (
	GetAvailabilityByProfileID = `
		SELECT
			id,
			user_profile_id,
			day_of_week,
			start_time::text,
			end_time::text,
			created_at,
			updated_at
		FROM user_availability
		WHERE user_profile_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`

	DeleteAvailabilityByProfileID = `
		DELETE FROM user_availability
		WHERE user_profile_id = $1
	`

	InsertAvailability = `
		INSERT INTO user_availability (
			id,
			user_profile_id,
			day_of_week,
			start_time,
			end_time,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
)
