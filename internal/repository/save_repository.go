package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"yaopets-backend/model"
)

type SaveRepository struct {
	Col      *mongo.Collection
	ColPosts *mongo.Collection
}

func NewSaveRepository(db *mongo.Database) *SaveRepository {
	return &SaveRepository{
		Col:      db.Collection("saves"),
		ColPosts: db.Collection("posts"),
	}
}

func (r *SaveRepository) Save(ctx context.Context, userID, postID bson.ObjectID) (already bool, err error) {
	if n, err := r.ColPosts.CountDocuments(ctx, bson.M{"_id": postID}); err != nil {
		return false, err
	} else if n == 0 {
		return false, ErrNotFound
	}

	_, err = r.Col.InsertOne(ctx, model.SavedPost{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	})
	if err == nil {
		return false, nil
	}
	if IsDuplicate(err) {
		return true, nil
	}
	return false, err
}

func (r *SaveRepository) Unsave(ctx context.Context, userID, postID bson.ObjectID) (existed bool, err error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"user_id": userID, "post_id": postID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// SavedSet reports which of the given posts the viewer bookmarked.
func (r *SaveRepository) SavedSet(ctx context.Context, viewer bson.ObjectID, postIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	out := map[bson.ObjectID]bool{}
	if viewer.IsZero() || len(postIDs) == 0 {
		return out, nil
	}

	cur, err := r.Col.Find(ctx, bson.M{"user_id": viewer, "post_id": bson.M{"$in": postIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var saves []model.SavedPost
	if err := cur.All(ctx, &saves); err != nil {
		return nil, err
	}
	for _, s := range saves {
		out[s.PostID] = true
	}
	return out, nil
}
