package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"productcatalog/internal/domain"
	"productcatalog/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	minNameLen = 2
	maxNameLen = 80
)

// ProductStore is the storage contract the service depends on. The Mongo
// adapter in repositories satisfies it; tests inject an in-memory fake.
type ProductStore interface {
	Find(ctx context.Context, pred domain.Predicate, page domain.ValidatedPage) ([]domain.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
	Insert(ctx context.Context, in domain.ProductInput) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, in domain.ProductInput) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ProductService compiles and validates read parameters before any storage
// access and turns expected write failures into MutationResult values.
type ProductService struct {
	Store     ProductStore
	RequestID string
}

// List compiles the filter and validates the page first; an invalid request
// never reaches the store.
func (s ProductService) List(ctx context.Context, filter domain.FilterSpec, page domain.PageSpec) ([]domain.Product, error) {
	pred, err := filter.Compile()
	if err != nil {
		return nil, err
	}
	validated, err := page.Validate()
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "product", "list",
		fmt.Sprintf("clauses=%d sort=%s limit=%d skip=%d", len(pred.Clauses), validated.SortField, validated.Limit, validated.Skip))
	return s.Store.Find(ctx, pred, validated)
}

// GetByID decodes the raw id before any storage access.
func (s ProductService) GetByID(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return domain.Product{}, err
	}
	return s.Store.FindByID(ctx, id)
}

// Create validates the input before any storage call. Constraint violations
// come back as Success=false naming the violated constraint; only
// infrastructure failures use the error return.
func (s ProductService) Create(ctx context.Context, in domain.ProductInput) (domain.MutationResult, error) {
	if msg := validateProductInput(in); msg != "" {
		return domain.MutationResult{Success: false, Message: msg}, nil
	}
	id, err := s.Store.Insert(ctx, in)
	if err != nil {
		return domain.MutationResult{}, err
	}
	utils.LogEvent(s.RequestID, "product", "create", "id="+id.Hex())
	return domain.MutationResult{Success: true, Message: "Product added", ID: id.Hex()}, nil
}

// Update decodes the id first, then validates the input, then attempts the
// write. A well-formed id that matches nothing is a business outcome, not an
// error.
func (s ProductService) Update(ctx context.Context, rawID string, in domain.ProductInput) (domain.MutationResult, error) {
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return domain.MutationResult{Success: false, Message: "Invalid product ID."}, nil
	}
	if msg := validateProductInput(in); msg != "" {
		return domain.MutationResult{Success: false, Message: msg}, nil
	}
	matched, err := s.Store.Update(ctx, id, in)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if !matched {
		return domain.MutationResult{Success: false, Message: "Product not found."}, nil
	}
	utils.LogEvent(s.RequestID, "product", "update", "id="+id.Hex())
	return domain.MutationResult{Success: true, Message: "Product updated", ID: id.Hex()}, nil
}

// Delete decodes the id first; a malformed id never reaches the store.
func (s ProductService) Delete(ctx context.Context, rawID string) (domain.MutationResult, error) {
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return domain.MutationResult{Success: false, Message: "Invalid product ID."}, nil
	}
	deleted, err := s.Store.Delete(ctx, id)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if !deleted {
		return domain.MutationResult{Success: false, Message: "Product not found."}, nil
	}
	utils.LogEvent(s.RequestID, "product", "delete", "id="+id.Hex())
	return domain.MutationResult{Success: true, Message: "Product deleted", ID: id.Hex()}, nil
}

func validateProductInput(in domain.ProductInput) string {
	if n := utf8.RuneCountInString(in.Name); n < minNameLen || n > maxNameLen {
		return fmt.Sprintf("Name must be between %d and %d characters.", minNameLen, maxNameLen)
	}
	if in.Price < 0 {
		return "Price must not be negative."
	}
	return ""
}
