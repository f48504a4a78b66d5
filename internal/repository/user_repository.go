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

var ErrNotFound = errors.New("not found")

// IsDuplicate reports whether err is a unique-index violation (code 11000).
func IsDuplicate(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = bson.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies only the fields present in set.
func (r *UserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error) {
	set["updated_at"] = time.Now().UTC()

	var u model.User
	err := r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) SetProfileImage(ctx context.Context, id bson.ObjectID, url string) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"profile_image": url,
		"updated_at":    time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindSummaries resolves a batch of user ids into their feed projections,
// keyed by id. Missing users are simply absent from the map.
func (r *UserRepository) FindSummaries(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.UserSummary, error) {
	out := make(map[bson.ObjectID]model.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.UserSummary
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// UpsertGoogle links or creates an account from a verified Google identity.
// An existing account with the same email is claimed rather than duplicated.
func (r *UserRepository) UpsertGoogle(ctx context.Context, googleID, email, name, picture string) (*model.User, error) {
	now := time.Now().UTC()

	var u model.User
	err := r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{"google_id": googleID, "updated_at": now},
			"$setOnInsert": bson.M{
				"username":      email,
				"name":          name,
				"email":         email,
				"user_type":     model.UserTypeTutor,
				"profile_image": picture,
				"created_at":    now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
