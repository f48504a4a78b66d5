package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"yaopets-backend/model"
)

type DonationRepository struct {
	Col *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{Col: db.Collection("donations")}
}

func (r *DonationRepository) Create(ctx context.Context, d *model.DonationItem) error {
	d.ID = bson.NewObjectID()
	d.CreatedAt = time.Now().UTC()
	if d.PhotoURLs == nil {
		d.PhotoURLs = []string{}
	}
	_, err := r.Col.InsertOne(ctx, d)
	return err
}

func (r *DonationRepository) List(ctx context.Context, category model.DonationCategory, city string, limit int64) ([]model.DonationItem, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}

	total, err := r.Col.CountDocuments(ctx, filter)
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

	var items []model.DonationItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []model.DonationItem{}
	}
	return items, total, nil
}
