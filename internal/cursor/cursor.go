// Package cursor encodes the (created_at, _id) pagination position used by
// every newest-first listing as an opaque base64 token.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type payload struct {
	T  int64  `json:"t"` // unix millis
	ID string `json:"id"`
}

func Encode(t time.Time, id bson.ObjectID) string {
	b, _ := json.Marshal(payload{T: t.UnixMilli(), ID: id.Hex()})
	return base64.RawURLEncoding.EncodeToString(b)
}

func Decode(s string) (time.Time, bson.ObjectID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, bson.NilObjectID, fmt.Errorf("invalid cursor: %w", err)
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, bson.NilObjectID, fmt.Errorf("invalid cursor: %w", err)
	}
	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return time.Time{}, bson.NilObjectID, fmt.Errorf("invalid cursor: %w", err)
	}
	return time.UnixMilli(p.T).UTC(), oid, nil
}
