package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseProductID converts an externally supplied id string into a storage
// key. Anything that is not a 24-character hex ObjectID is rejected here,
// before any storage call sees it.
func ParseProductID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, ValidationError{Field: "id", Msg: "Invalid product ID.", Err: err}
	}
	return id, nil
}
