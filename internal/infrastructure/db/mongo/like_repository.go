package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const likeCollection = "like_counters"

// LikeRepository keeps one counter document per animal.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likeCollection)}
}

type likeDoc struct {
	AnimalID string `bson:"animal_id"`
	Count    int64  `bson:"count"`
}

// Increment bumps the counter with a single $inc upsert, so concurrent
// likes never lose updates, and returns the post-increment total.
func (r *LikeRepository) Increment(ctx context.Context, animalID string) (int64, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"animal_id": animalID},
		bson.M{"$inc": bson.M{"count": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc likeDoc
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}
	return doc.Count, nil
}

// Count reads the current total; a missing document means zero likes.
func (r *LikeRepository) Count(ctx context.Context, animalID string) (int64, error) {
	var doc likeDoc
	if err := r.coll.FindOne(ctx, bson.M{"animal_id": animalID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("read likes: %w", err)
	}
	return doc.Count, nil
}
