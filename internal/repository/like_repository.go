package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"yaopets-backend/model"
)

type LikeRepository struct {
	Col         *mongo.Collection
	ColPosts    *mongo.Collection
	ColComments *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{
		Col:         db.Collection("likes"),
		ColPosts:    db.Collection("posts"),
		ColComments: db.Collection("comments"),
	}
}

// LikePost inserts the like edge and bumps the denormalized counter. The
// unique index makes repeats a no-op; the counter is only bumped on a fresh
// edge, so double requests cannot inflate it.
func (r *LikeRepository) LikePost(ctx context.Context, userID, postID bson.ObjectID) (already bool, count int64, err error) {
	doc := model.Like{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		PostID:    &postID,
		CreatedAt: time.Now().UTC(),
	}
	already, count, err = r.like(ctx, r.ColPosts, postID, doc)
	return
}

func (r *LikeRepository) LikeComment(ctx context.Context, userID, commentID bson.ObjectID) (already bool, count int64, err error) {
	doc := model.Like{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		CommentID: &commentID,
		CreatedAt: time.Now().UTC(),
	}
	already, count, err = r.like(ctx, r.ColComments, commentID, doc)
	return
}

func (r *LikeRepository) like(ctx context.Context, target *mongo.Collection, targetID bson.ObjectID, doc model.Like) (bool, int64, error) {
	// target must exist before we write an edge against it
	if n, err := target.CountDocuments(ctx, bson.M{"_id": targetID}); err != nil {
		return false, 0, err
	} else if n == 0 {
		return false, 0, ErrNotFound
	}

	_, err := r.Col.InsertOne(ctx, doc)
	if err != nil {
		if IsDuplicate(err) {
			count, cerr := r.readCount(ctx, target, targetID)
			return true, count, cerr
		}
		return false, 0, err
	}

	if _, err := target.UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{"$inc": bson.M{"like_count": 1}}); err != nil {
		return false, 0, err
	}
	count, err := r.readCount(ctx, target, targetID)
	return false, count, err
}

// UnlikePost removes the edge. The counter decrement is guarded so
// like_count never goes below zero even if the edge and counter drifted.
func (r *LikeRepository) UnlikePost(ctx context.Context, userID, postID bson.ObjectID) (existed bool, count int64, err error) {
	return r.unlike(ctx, r.ColPosts, postID, bson.M{"user_id": userID, "post_id": postID})
}

func (r *LikeRepository) UnlikeComment(ctx context.Context, userID, commentID bson.ObjectID) (existed bool, count int64, err error) {
	return r.unlike(ctx, r.ColComments, commentID, bson.M{"user_id": userID, "comment_id": commentID})
}

func (r *LikeRepository) unlike(ctx context.Context, target *mongo.Collection, targetID bson.ObjectID, edgeFilter bson.M) (bool, int64, error) {
	res, err := r.Col.DeleteOne(ctx, edgeFilter)
	if err != nil {
		return false, 0, err
	}
	if res.DeletedCount > 0 {
		if _, err := target.UpdateOne(ctx,
			bson.M{"_id": targetID, "like_count": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"like_count": -1}},
		); err != nil {
			return false, 0, err
		}
	}
	count, err := r.readCount(ctx, target, targetID)
	return res.DeletedCount > 0, count, err
}

func (r *LikeRepository) readCount(ctx context.Context, target *mongo.Collection, targetID bson.ObjectID) (int64, error) {
	var doc struct {
		LikeCount int64 `bson:"like_count"`
	}
	err := target.FindOne(ctx, bson.M{"_id": targetID}).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.LikeCount, nil
}

// LikedPostSet reports which of the given posts the viewer liked. This is
// the single source of truth for the isLiked flag.
func (r *LikeRepository) LikedPostSet(ctx context.Context, viewer bson.ObjectID, postIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	return r.likedSet(ctx, "post_id", viewer, postIDs)
}

func (r *LikeRepository) LikedCommentSet(ctx context.Context, viewer bson.ObjectID, commentIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	return r.likedSet(ctx, "comment_id", viewer, commentIDs)
}

func (r *LikeRepository) likedSet(ctx context.Context, field string, viewer bson.ObjectID, ids []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	out := map[bson.ObjectID]bool{}
	if viewer.IsZero() || len(ids) == 0 {
		return out, nil
	}

	cur, err := r.Col.Find(ctx, bson.M{"user_id": viewer, field: bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var likes []model.Like
	if err := cur.All(ctx, &likes); err != nil {
		return nil, err
	}
	for _, l := range likes {
		switch field {
		case "post_id":
			if l.PostID != nil {
				out[*l.PostID] = true
			}
		case "comment_id":
			if l.CommentID != nil {
				out[*l.CommentID] = true
			}
		}
	}
	return out, nil
}
