package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID returns the authenticated viewer's id, or a zero ObjectID for
// anonymous requests. Handlers that need a viewer sit behind RequireAuth, so
// a zero id there is unreachable.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, bool) {
	v := c.Locals("user_id")
	if v == nil {
		return bson.NilObjectID, false
	}
	s, ok := v.(string)
	if !ok {
		return bson.NilObjectID, false
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}
