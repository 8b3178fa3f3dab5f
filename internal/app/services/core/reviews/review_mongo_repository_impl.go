package reviews

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/exceptions"
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(db *mongo.Database) contracts.ReviewRepository {
	return &reviewMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionReviews),
	}
}

func (repo *reviewMongoRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = uuid.New().String()
	_, err := repo.Collection.InsertOne(ctx, review)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return review, nil
}

func (repo *reviewMongoRepository) FindByReviewedUserID(ctx context.Context, reviewedUserID string) ([]models.Review, error) {
	var reviews []models.Review
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"reviewedUserId": reviewedUserID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, nil
}
