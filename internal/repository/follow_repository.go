package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"yaopets-backend/model"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type FollowRepository struct {
	Col      *mongo.Collection
	ColUsers *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{
		Col:      db.Collection("follows"),
		ColUsers: db.Collection("users"),
	}
}

// Follow inserts the edge. A duplicate insert is reported as already=true so
// the handler can answer idempotently.
func (r *FollowRepository) Follow(ctx context.Context, follower, followee bson.ObjectID) (already bool, err error) {
	if follower == followee {
		return false, ErrSelfFollow
	}
	_, err = r.Col.InsertOne(ctx, model.Follow{
		ID:         bson.NewObjectID(),
		FollowerID: follower,
		FolloweeID: followee,
		CreatedAt:  time.Now().UTC(),
	})
	if err == nil {
		return false, nil
	}
	if IsDuplicate(err) {
		return true, nil
	}
	return false, err
}

func (r *FollowRepository) Unfollow(ctx context.Context, follower, followee bson.ObjectID) (existed bool, err error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"follower_id": follower, "followee_id": followee})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *FollowRepository) IsFollowing(ctx context.Context, follower, followee bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"follower_id": follower, "followee_id": followee})
	return n > 0, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"followee_id": userID})
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"follower_id": userID})
}

// ListFollowers returns one page of users following userID, plus the total
// edge count. The total is the full count, not the page length.
func (r *FollowRepository) ListFollowers(ctx context.Context, userID bson.ObjectID, limit int64) ([]model.UserSummary, int64, error) {
	return r.listEdgeUsers(ctx, bson.M{"followee_id": userID}, "follower_id", limit)
}

// ListFollowing returns one page of users userID follows, plus the total.
func (r *FollowRepository) ListFollowing(ctx context.Context, userID bson.ObjectID, limit int64) ([]model.UserSummary, int64, error) {
	return r.listEdgeUsers(ctx, bson.M{"follower_id": userID}, "followee_id", limit)
}

func (r *FollowRepository) listEdgeUsers(ctx context.Context, filter bson.M, side string, limit int64) ([]model.UserSummary, int64, error) {
	total, err := r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := r.Col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var edges []model.Follow
	if err := cur.All(ctx, &edges); err != nil {
		return nil, 0, err
	}

	ids := make([]bson.ObjectID, 0, len(edges))
	for _, e := range edges {
		if side == "follower_id" {
			ids = append(ids, e.FollowerID)
		} else {
			ids = append(ids, e.FolloweeID)
		}
	}
	if len(ids) == 0 {
		return []model.UserSummary{}, total, nil
	}

	ucur, err := r.ColUsers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, 0, err
	}
	defer ucur.Close(ctx)

	var users []model.UserSummary
	if err := ucur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
