package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"yaopets-backend/model"
)

type NotificationRepository struct {
	Col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{Col: db.Collection("notifications")}
}

func (r *NotificationRepository) Insert(ctx context.Context, n model.Notification) error {
	n.ID = bson.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	_, err := r.Col.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID bson.ObjectID, limit int64) ([]model.Notification, int64, error) {
	filter := bson.M{"user_id": userID}

	unread, err := r.Col.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
	if err != nil {
		return nil, 0, err
	}

	cur, err := r.Col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []model.Notification
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items, unread, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.Col.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}
