package skills

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type skillPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	skillPostgresRepositoryInstance contracts.SkillRepository
	onceSkillPostgresRepository     sync.Once
)

func NewSkillPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SkillRepository {
	onceSkillPostgresRepository.Do(func() {
		instance := &skillPostgresRepository{
			DB:  db,
			Log: logger,
		}
		skillPostgresRepositoryInstance = instance
	})
	return skillPostgresRepositoryInstance
}

func (r *skillPostgresRepository) FindAll(ctx context.Context) ([]models.Skill, error) {
	return r.findMany(ctx, queries.GetAllSkills)
}

func (r *skillPostgresRepository) FindByProfileID(ctx context.Context, profileID string) ([]models.Skill, error) {
	return r.findMany(ctx, queries.GetSkillsByProfileID, profileID)
}

func (r *skillPostgresRepository) findMany(ctx context.Context, query string, arguments ...interface{}) ([]models.Skill, error) {
	rows, err := r.DB.QueryContext(ctx, query, arguments...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var model models.Skill
		if err := rows.Scan(&model.ID, &model.Name); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		skills = append(skills, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return skills, nil
}

func (r *skillPostgresRepository) CountByIDs(ctx context.Context, skillIDs []string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, queries.CountSkillsByIDs, pq.Array(skillIDs)).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (r *skillPostgresRepository) ReplaceProfileSkills(ctx context.Context, profileID string, skillIDs []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queries.DeleteSkillsByProfileID, profileID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	for _, skillID := range skillIDs {
		_, err = tx.ExecContext(ctx, queries.InsertUserSkill, profileID, skillID)
		if err != nil {
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}
