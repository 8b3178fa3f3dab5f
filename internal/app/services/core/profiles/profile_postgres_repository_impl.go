package profiles

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profilePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	profilePostgresRepositoryInstance contracts.ProfileRepository
	onceProfilePostgresRepository     sync.Once
)

func NewProfilePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ProfileRepository {
	onceProfilePostgresRepository.Do(func() {
		instance := &profilePostgresRepository{
			DB:  db,
			Log: logger,
		}
		profilePostgresRepositoryInstance = instance
	})
	return profilePostgresRepositoryInstance
}

func (r *profilePostgresRepository) FindByID(ctx context.Context, profileID string) (*models.UserProfile, error) {
	return r.findOne(ctx, queries.GetProfileByID, profileID)
}

func (r *profilePostgresRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	return r.findOne(ctx, queries.GetProfileByUserID, userID)
}

func (r *profilePostgresRepository) findOne(ctx context.Context, query string, argument interface{}) (*models.UserProfile, error) {
	var profile models.UserProfile
	var socialMediaLinks []byte
	err := r.DB.QueryRowContext(ctx, query, argument).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Bio,
		&profile.PhoneNumber,
		&profile.Location,
		&socialMediaLinks,
		&profile.ProfilePicture,
		&profile.Resume,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if err := json.Unmarshal(socialMediaLinks, &profile.SocialMediaLinks); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &profile, nil
}

func (r *profilePostgresRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertProfile,
		profile.ID,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *profilePostgresRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	socialMediaLinks, err := json.Marshal(profile.SocialMediaLinks)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = r.DB.ExecContext(ctx, queries.UpdateProfile,
		profile.FirstName,
		profile.LastName,
		profile.Bio,
		profile.PhoneNumber,
		profile.Location,
		socialMediaLinks,
		profile.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *profilePostgresRepository) UpdateProfilePicture(ctx context.Context, profileID, objectName string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateProfilePicture, objectName, profileID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *profilePostgresRepository) UpdateResume(ctx context.Context, profileID, objectName string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateProfileResume, objectName, profileID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
