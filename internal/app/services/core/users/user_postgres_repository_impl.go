package users

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		instance := &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
		userPostgresRepositoryInstance = instance
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, queries.GetUserByID, userID)
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, queries.GetUserByEmail, email)
}

func (r *userPostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, queries.GetUserByUsername, username)
}

func (r *userPostgresRepository) findOne(ctx context.Context, query string, argument interface{}) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, argument).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.GoogleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertUser,
		user.ID,
		user.Email,
		user.Username,
		user.Password,
		user.Role,
		user.GoogleID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *userPostgresRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserPassword, hashedPassword, userID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) UpdateGoogleID(ctx context.Context, userID, googleID string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserGoogleID, googleID, userID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
