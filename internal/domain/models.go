package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the managed catalog entity. The id is assigned by storage on
// insert and immutable afterwards.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
}

// ProductInput carries the mutable fields of a create or update call.
type ProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Credential is a seeded login record; there is no self-registration flow.
type Credential struct {
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
}

// MutationResult reports the outcome of a write for expected business
// failures (validation, not found) instead of an error. Infrastructure
// failures stay on the error path.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
