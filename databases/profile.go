package databases

//go generate: mockery --name ProfileRepository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardock/cardock-api/models"
)

// ProfileRecord is the record store envelope for the per-user profile overlay
type ProfileRecord struct {
	Key   string         `bson:"_id"`
	Value models.Profile `bson:"value"`
}

// ProfileRepository merges the two sources of truth for a user profile: the
// identity record in the auth users collection and the overlay stored under
// user_profile_<userId>. Overlay fields win.
type ProfileRepository interface {
	Fetch(ctx context.Context, userID string) (models.MergedProfile, error)
	UpdateOverlay(ctx context.Context, overlay models.Profile) error
}

type profileRepository struct {
	db    DatabaseHelper
	users UserDatabase
}

// NewProfileRepository initializes a profile repository over the given db connection
func NewProfileRepository(db DatabaseHelper) ProfileRepository {
	return &profileRepository{
		db:    db,
		users: NewUserDatabase(db),
	}
}

func (p *profileRepository) Fetch(ctx context.Context, userID string) (models.MergedProfile, error) {
	user, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return models.MergedProfile{}, err
	}

	record := &ProfileRecord{}
	err = p.db.Collection(recordName).FindOne(ctx, bson.M{"_id": ProfileKey(userID)}).Decode(record)
	if err == mongo.ErrNoDocuments {
		// no overlay yet, the identity record alone is the profile
		return models.Merge(user, nil), nil
	}
	if err != nil {
		return models.MergedProfile{}, err
	}
	return models.Merge(user, &record.Value), nil
}

func (p *profileRepository) UpdateOverlay(ctx context.Context, overlay models.Profile) error {
	_, err := p.db.Collection(recordName).UpdateOne(ctx,
		bson.M{"_id": ProfileKey(overlay.UserID)},
		bson.M{"$set": bson.M{"value": overlay}},
		options.Update().SetUpsert(true),
	)
	return err
}
