package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like is an edge from a user to either a post or a comment. Exactly one of
// PostID/CommentID is set; the unique index over (user_id, post_id,
// comment_id) makes double-liking a no-op.
type Like struct {
	ID        bson.ObjectID  `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID  `json:"userId"    bson:"user_id"`
	PostID    *bson.ObjectID `json:"postId,omitempty"    bson:"post_id,omitempty"`
	CommentID *bson.ObjectID `json:"commentId,omitempty" bson:"comment_id,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
}

// SavedPost bookmarks a post for a user.
type SavedPost struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
