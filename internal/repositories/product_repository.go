package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"productcatalog/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storageTimeout bounds every backend call so a hung server surfaces as an
// InternalError instead of stalling the request forever. Derived from the
// caller's context, so a caller cancel still propagates.
const storageTimeout = 5 * time.Second

// ProductRepository is the Mongo adapter for the products collection. It is
// the only place that knows how a Predicate maps onto a Mongo filter.
type ProductRepository struct {
	Coll *mongo.Collection
}

// Find runs a single predicate query with ordering and window applied
// server-side. Equal sort keys are tie-broken by _id ascending so repeated
// queries paginate reproducibly.
func (r ProductRepository) Find(ctx context.Context, pred domain.Predicate, page domain.ValidatedPage) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(sortSpec(page)).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	cur, err := r.Coll.Find(ctx, predicateFilter(pred), opts)
	if err != nil {
		return nil, domain.InternalError{Msg: "product query failed", Err: err}
	}

	var out []domain.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "product decode failed", Err: err}
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

// FindByID loads a single product by its storage key.
func (r ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var p domain.Product
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, domain.NotFoundError{Resource: "product", Err: err}
	}
	if err != nil {
		return domain.Product{}, domain.InternalError{Msg: "product lookup failed", Err: err}
	}
	return p, nil
}

// Insert writes a new product and returns the storage-assigned key.
func (r ProductRepository) Insert(ctx context.Context, in domain.ProductInput) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	res, err := r.Coll.InsertOne(ctx, bson.M{"name": in.Name, "price": in.Price})
	if err != nil {
		return primitive.NilObjectID, domain.InternalError{Msg: "product insert failed", Err: err}
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, domain.InternalError{Msg: "unexpected inserted id type"}
	}
	return id, nil
}

// Update replaces the mutable fields of one product by key. The bool reports
// whether any record matched.
func (r ProductRepository) Update(ctx context.Context, id primitive.ObjectID, in domain.ProductInput) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	res, err := r.Coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"name": in.Name, "price": in.Price}})
	if err != nil {
		return false, domain.InternalError{Msg: "product update failed", Err: err}
	}
	return res.MatchedCount > 0, nil
}

// Delete removes one product by key. The bool reports whether a record was
// deleted.
func (r ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, domain.InternalError{Msg: "product delete failed", Err: err}
	}
	return res.DeletedCount > 0, nil
}

// predicateFilter translates the backend-agnostic predicate into a Mongo
// filter document. Clauses are conjunctive; an empty predicate matches all.
func predicateFilter(pred domain.Predicate) bson.M {
	filter := bson.M{}
	for _, clause := range pred.Clauses {
		switch c := clause.(type) {
		case domain.NameContains:
			filter["name"] = bson.M{
				"$regex":   regexp.QuoteMeta(c.Substring),
				"$options": "i",
			}
		case domain.PriceRange:
			bounds := bson.M{}
			if c.Min != nil {
				bounds["$gte"] = *c.Min
			}
			if c.Max != nil {
				bounds["$lte"] = *c.Max
			}
			filter["price"] = bounds
		}
	}
	return filter
}

func sortSpec(page domain.ValidatedPage) bson.D {
	return bson.D{
		{Key: page.SortField, Value: page.Order},
		{Key: "_id", Value: 1},
	}
}
