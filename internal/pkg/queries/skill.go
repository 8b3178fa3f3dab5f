package queries

const (
	GetAllSkills = `
		SELECT id, name
		FROM skills
		ORDER BY name ASC
	`

	GetSkillsByProfileID = `
		SELECT s.id, s.name
		FROM skills s
		JOIN user_skills us ON us.skill_id = s.id
		WHERE us.user_profile_id = $1
		ORDER BY s.name ASC
	`

	DeleteSkillsByProfileID = `
		DELETE FROM user_skills
		WHERE user_profile_id = $1
	`

	InsertUserSkill = `
		INSERT INTO user_skills (user_profile_id, skill_id)
		VALUES ($1, $2)
	`

	CountSkillsByIDs = `
		SELECT COUNT(*)
		FROM skills
		WHERE id = ANY($1)
	`
)
