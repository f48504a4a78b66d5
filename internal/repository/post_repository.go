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

var ErrNotOwner = errors.New("not the owner")

type PostRepository struct {
	Client      *mongo.Client
	Col         *mongo.Collection
	ColComments *mongo.Collection
	ColLikes    *mongo.Collection
	ColSaves    *mongo.Collection
}

func NewPostRepository(client *mongo.Client, db *mongo.Database) *PostRepository {
	return &PostRepository{
		Client:      client,
		Col:         db.Collection("posts"),
		ColComments: db.Collection("comments"),
		ColLikes:    db.Collection("likes"),
		ColSaves:    db.Collection("saves"),
	}
}

func (r *PostRepository) Create(ctx context.Context, p *model.Post) error {
	now := time.Now().UTC()
	p.ID = bson.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a post owned by userID and cascades its comments, likes and
// saves. Deleting someone else's post fails with ErrNotOwner.
func (r *PostRepository) Delete(ctx context.Context, id, userID bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		// distinguish missing from foreign
		n, cerr := r.Col.CountDocuments(ctx, bson.M{"_id": id})
		if cerr != nil {
			return cerr
		}
		if n > 0 {
			return ErrNotOwner
		}
		return ErrNotFound
	}

	if _, err := r.ColComments.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
		return err
	}
	if _, err := r.ColLikes.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
		return err
	}
	_, err = r.ColSaves.DeleteMany(ctx, bson.M{"post_id": id})
	return err
}

// ListNewestFirst pages posts matching filter by (created_at, _id) descending.
func (r *PostRepository) ListNewestFirst(ctx context.Context, filter bson.M, cursorStr string, limit int64) (items []model.Post, next *string, total int64, err error) {
	total, err = r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, 0, err
	}

	if cursorStr != "" {
		t, oid, derr := cursor.Decode(cursorStr)
		if derr != nil {
			return nil, nil, 0, derr
		}
		filter = bson.M{"$and": bson.A{filter, bson.M{"$or": bson.A{
			bson.M{"created_at": bson.M{"$lt": t}},
			bson.M{"created_at": t, "_id": bson.M{"$lt": oid}},
		}}}}
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
		items = []model.Post{}
	}
	return items, next, total, nil
}

// ListSaved pages the posts a user bookmarked, newest save first.
func (r *PostRepository) ListSaved(ctx context.Context, userID bson.ObjectID, limit int64) ([]model.Post, int64, error) {
	total, err := r.ColSaves.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, 0, err
	}

	scur, err := r.ColSaves.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, 0, err
	}
	defer scur.Close(ctx)

	var saves []model.SavedPost
	if err := scur.All(ctx, &saves); err != nil {
		return nil, 0, err
	}

	ids := make([]bson.ObjectID, 0, len(saves))
	for _, s := range saves {
		ids = append(ids, s.PostID)
	}
	if len(ids) == 0 {
		return []model.Post{}, total, nil
	}

	pcur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, 0, err
	}
	defer pcur.Close(ctx)

	byID := map[bson.ObjectID]model.Post{}
	var page []model.Post
	if err := pcur.All(ctx, &page); err != nil {
		return nil, 0, err
	}
	for _, p := range page {
		byID[p.ID] = p
	}

	// preserve save order, skip posts deleted since being saved
	out := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, total, nil
}
