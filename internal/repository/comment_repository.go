package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"yaopets-backend/internal/cursor"
	"yaopets-backend/model"
)

type CommentRepository struct {
	Client   *mongo.Client
	Col      *mongo.Collection
	ColPosts *mongo.Collection
}

func NewCommentRepository(client *mongo.Client, db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		Client:   client,
		Col:      db.Collection("comments"),
		ColPosts: db.Collection("posts"),
	}
}

// Create inserts the comment and bumps the post's comment_count in one
// transaction, so the count never drifts from the collection.
func (r *CommentRepository) Create(ctx context.Context, postID, userID bson.ObjectID, content string) (*model.Comment, error) {
	now := time.Now().UTC()
	doc := &model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sess, err := r.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		if _, err := r.Col.InsertOne(sc, doc); err != nil {
			return nil, err
		}
		res, err := r.ColPosts.UpdateOne(sc,
			bson.M{"_id": postID},
			bson.M{"$inc": bson.M{"comment_count": 1}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var c model.Comment
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListNewestFirst pages a post's comments by (created_at, _id) descending.
func (r *CommentRepository) ListNewestFirst(ctx context.Context, postID bson.ObjectID, cursorStr string, limit int64) (items []model.Comment, next *string, total int64, err error) {
	filter := bson.M{"post_id": postID}

	total, err = r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, 0, err
	}

	if cursorStr != "" {
		t, oid, derr := cursor.Decode(cursorStr)
		if derr != nil {
			return nil, nil, 0, derr
		}
		filter = bson.M{"post_id": postID, "$or": bson.A{
			bson.M{"created_at": bson.M{"$lt": t}},
			bson.M{"created_at": t, "_id": bson.M{"$lt": oid}},
		}}
	}

	cur, err := r.Col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit+1))
	if err != nil {
		return nil, nil, 0, err
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &items); err != nil {
		return nil, nil, 0, err
	}

	if int64(len(items)) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		tok := cursor.Encode(last.CreatedAt, last.ID)
		next = &tok
	}
	if items == nil {
		items = []model.Comment{}
	}
	return items, next, total, nil
}
