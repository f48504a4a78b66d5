package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique edge indexes the write paths rely on.
// Duplicate likes, saves and follows are rejected by the database, not by
// application checks.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "post_id", Value: 1},
			{Key: "comment_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_post_comment"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection("saves").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "post_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_post"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection("follows").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "follower_id", Value: 1},
			{Key: "followee_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_follower_followee"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}); err != nil {
		return err
	}

	// feed sort order
	if _, err := db.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		},
		Options: options.Index().SetName("feed_order"),
	}); err != nil {
		return err
	}

	_, err := db.Collection("comments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "post_id", Value: 1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		},
		Options: options.Index().SetName("post_comments_order"),
	})
	return err
}
