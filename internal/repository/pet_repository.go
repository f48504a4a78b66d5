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

type PetRepository struct {
	Col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{Col: db.Collection("pets")}
}

func (r *PetRepository) Create(ctx context.Context, p *model.Pet) error {
	now := time.Now().UTC()
	p.ID = bson.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.PhotoURLs == nil {
		p.PhotoURLs = []string{}
	}
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *PetRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Pet, error) {
	var p model.Pet
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List filters by status and/or city, newest first. Resolved listings are
// excluded unless asked for explicitly.
func (r *PetRepository) List(ctx context.Context, status model.PetStatus, city string, limit int64) ([]model.Pet, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	} else {
		filter["status"] = bson.M{"$ne": model.PetResolved}
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

	var pets []model.Pet
	if err := cur.All(ctx, &pets); err != nil {
		return nil, 0, err
	}
	if pets == nil {
		pets = []model.Pet{}
	}
	return pets, total, nil
}

// UpdateStatus moves a listing owned by userID to a new status.
func (r *PetRepository) UpdateStatus(ctx context.Context, id, userID bson.ObjectID, status model.PetStatus) (*model.Pet, error) {
	var p model.Pet
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		n, cerr := r.Col.CountDocuments(ctx, bson.M{"_id": id})
		if cerr != nil {
			return nil, cerr
		}
		if n > 0 {
			return nil, ErrNotOwner
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
