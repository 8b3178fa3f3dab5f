package contracts

import (
	"advice-service/internal/app/models"
	"context"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
	UpdateGoogleID(ctx context.Context, userID, googleID string) error
}
