package availability

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type availabilityPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	availabilityPostgresRepositoryInstance contracts.AvailabilityRepository
	onceAvailabilityPostgresRepository     sync.Once
)

func NewAvailabilityPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AvailabilityRepository {
	onceAvailabilityPostgresRepository.Do(func() {
		instance := &availabilityPostgresRepository{
			DB:  db,
			Log: logger,
		}
		availabilityPostgresRepositoryInstance = instance
	})
	return availabilityPostgresRepositoryInstance
}

func (r *availabilityPostgresRepository) ReplaceForProfile(ctx context.Context, profileID string, slots []models.AvailabilitySlot) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err).WithStatus(responses.AvailabilityStatusError)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queries.DeleteAvailabilityByProfileID, profileID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err).WithStatus(responses.AvailabilityStatusError)
	}

	for _, slot := range slots {
		_, err = tx.ExecContext(ctx, queries.InsertAvailability,
			uuid.New().String(),
			profileID,
			string(slot.DayOfWeek),
			slot.StartTime,
			slot.EndTime,
		)
		if err != nil {
			return exceptions.ErrPostgresDBInsertData(err).WithStatus(responses.AvailabilityStatusError)
		}
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err).WithStatus(responses.AvailabilityStatusError)
	}
	return nil
}

func (r *availabilityPostgresRepository) FindByProfileID(ctx context.Context, profileID string) ([]models.UserAvailability, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAvailabilityByProfileID, profileID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err).WithStatus(responses.AvailabilityStatusError)
	}
	defer rows.Close()

	var availability []models.UserAvailability
	for rows.Next() {
		var model models.UserAvailability
		err := rows.Scan(
			&model.ID,
			&model.UserProfileID,
			&model.DayOfWeek,
			&model.StartTime,
			&model.EndTime,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err).WithStatus(responses.AvailabilityStatusError)
		}
		availability = append(availability, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err).WithStatus(responses.AvailabilityStatusError)
	}

	return availability, nil
}
