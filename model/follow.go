package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Follow is a directed edge follower -> followee. The unique index over
// (follower_id, followee_id) forbids duplicate edges; self-follows are
// rejected before insert.
type Follow struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	FollowerID bson.ObjectID `json:"followerId" bson:"follower_id"`
	FolloweeID bson.ObjectID `json:"followeeId" bson:"followee_id"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}
