package contracts

import (
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.Register, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	GoogleLoginUrl(ctx context.Context, state string) string
	GoogleCallback(ctx context.Context, request *requests.GoogleCallback) (*responses.Login, error)
}
