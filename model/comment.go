package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Content   string        `json:"content"   bson:"content"`
	LikeCount int           `json:"likesCount" bson:"like_count"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type FeedComment struct {
	Comment `bson:",inline"`
	Author  *UserSummary `json:"author,omitempty" bson:"author,omitempty"`
	IsLiked bool         `json:"isLiked" bson:"is_liked"`
}
