package auth

import (
	"advice-service/internal/app/config"
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authUsecase struct {
	UserRepository     contracts.UserRepository
	ProfileRepository  contracts.ProfileRepository
	SessionService     contracts.SessionService
	RedisRepository    contracts.RedisRepository
	MailerQueueService contracts.MailerQueueService
	OAuthConfig        *oauth2.Config
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userPostgresRepository contracts.UserRepository,
	profilePostgresRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	redisRepository contracts.RedisRepository,
	mailerQueueService contracts.MailerQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository:     userPostgresRepository,
			ProfileRepository:  profilePostgresRepository,
			SessionService:     sessionService,
			RedisRepository:    redisRepository,
			MailerQueueService: mailerQueueService,
			OAuthConfig: &oauth2.Config{
				ClientID:     internalConfig.OAuth.GoogleClientID,
				ClientSecret: internalConfig.OAuth.GoogleClientSecret,
				RedirectURL:  internalConfig.OAuth.GoogleRedirectUrl,
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint:     google.Endpoint,
			},
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch(fmt.Errorf("password and retype_password differ"))
	}

	existingByEmail, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered", request.Email))
	}

	existingByUsername, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingByUsername != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s already registered", request.Username))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     request.Role,
	}
	err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile := &models.UserProfile{
		ID:     uuid.New().String(),
		UserID: user.ID,
	}
	err = uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error inserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Register{UserID: user.ID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("invalid credentials for username %s", request.Username))
	}

	return uc.createLoginSession(ctx, user)
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the email is registered.
		uc.Log.Info("authUsecase.ForgotPassword unknown email, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	token, err := utils.GenerateResetPasswordToken()
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}

	expiry := time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpiredTimeInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyResetPasswordPrefix+token, user.ID, expiry)
	if err != nil {
		return err
	}

	resetUrl := fmt.Sprintf("%s?token=%s", uc.InternalConfig.App.ResetPasswordUrl, token)
	err = uc.MailerQueueService.SendResetPasswordEmail(ctx, user.Email, resetUrl)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error publishing reset email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.RetypePassword {
		return exceptions.ErrPasswordsDoNotMatch(fmt.Errorf("password and retype_password differ"))
	}

	tokenKey := constvars.RedisKeyResetPasswordPrefix + request.Token
	tokenData, err := uc.RedisRepository.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	if tokenData == "" {
		return exceptions.ErrTokenResetPasswordExpired(fmt.Errorf("reset token not found or expired"))
	}

	var userID string
	err = json.Unmarshal([]byte(tokenData), &userID)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, userID, hashedPassword)
	if err != nil {
		return err
	}

	err = uc.RedisRepository.Delete(ctx, tokenKey)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (uc *authUsecase) GoogleLoginUrl(ctx context.Context, state string) string {
	return uc.OAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (uc *authUsecase) GoogleCallback(ctx context.Context, request *requests.GoogleCallback) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.GoogleCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := uc.OAuthConfig.Exchange(ctx, request.Code)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}

	userInfo, err := uc.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = uc.registerGoogleUser(ctx, userInfo)
		if err != nil {
			return nil, err
		}
	} else if user.GoogleID == "" {
		err = uc.UserRepository.UpdateGoogleID(ctx, user.ID, userInfo.ID)
		if err != nil {
			return nil, err
		}
	}

	return uc.createLoginSession(ctx, user)
}

func (uc *authUsecase) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := uc.OAuthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoEndpoint)
	if err != nil {
		return nil, exceptions.ErrOAuthUserInfo(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrOAuthUserInfo(err)
	}

	userInfo := new(googleUserInfo)
	err = json.Unmarshal(body, userInfo)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if userInfo.Email == "" {
		return nil, exceptions.ErrOAuthUserInfo(fmt.Errorf("userinfo response missing email"))
	}
	return userInfo, nil
}

func (uc *authUsecase) registerGoogleUser(ctx context.Context, userInfo *googleUserInfo) (*models.User, error) {
	// Google accounts get an unguessable local password; they authenticate
	// through OAuth only unless they reset it.
	randomPassword, err := utils.GenerateResetPasswordToken()
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	hashedPassword, err := utils.HashPassword(randomPassword)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    userInfo.Email,
		Username: userInfo.Email,
		Password: hashedPassword,
		Role:     constvars.RoleMentee,
		GoogleID: userInfo.ID,
	}
	err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:     uuid.New().String(),
		UserID: user.ID,
	}
	err = uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *authUsecase) createLoginSession(ctx context.Context, user *models.User) (*responses.Login, error) {
	profile, err := uc.ProfileRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user %s has no profile", user.ID))
	}

	sessionID := uuid.New().String()
	sessionExpiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		ProfileID: profile.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	jwtExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(uc.InternalConfig.JWT.Secret, sessionID, jwtExpiry)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{Token: token}, nil
}
