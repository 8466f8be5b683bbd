package repositories

import (
	"context"
	"errors"

	"productcatalog/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository reads seeded credentials from the users collection.
type UserRepository struct {
	Coll *mongo.Collection
}

func (r UserRepository) FindByUsername(ctx context.Context, username string) (domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var cred domain.Credential
	err := r.Coll.FindOne(ctx, bson.M{"username": username}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Credential{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return domain.Credential{}, domain.InternalError{Msg: "user lookup failed", Err: err}
	}
	return cred, nil
}
