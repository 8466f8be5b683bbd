package services

import (
	"context"
	"strings"
	"testing"

	"productcatalog/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory ProductStore that records every call so tests
// can assert what reached (or never reached) storage.
type fakeStore struct {
	products map[primitive.ObjectID]domain.Product
	order    []primitive.ObjectID

	findCalls   int
	insertCalls int
	updateCalls int
	deleteCalls int

	lastPred domain.Predicate
	lastPage domain.ValidatedPage

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[primitive.ObjectID]domain.Product{}}
}

func (f *fakeStore) Find(_ context.Context, pred domain.Predicate, page domain.ValidatedPage) ([]domain.Product, error) {
	f.findCalls++
	f.lastPred = pred
	f.lastPage = page
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []domain.Product{}
	for _, id := range f.order {
		out = append(out, f.products[id])
	}
	return out, nil
}

func (f *fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (domain.Product, error) {
	if f.failWith != nil {
		return domain.Product{}, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.NotFoundError{Resource: "product"}
	}
	return p, nil
}

func (f *fakeStore) Insert(_ context.Context, in domain.ProductInput) (primitive.ObjectID, error) {
	f.insertCalls++
	if f.failWith != nil {
		return primitive.NilObjectID, f.failWith
	}
	id := primitive.NewObjectID()
	f.products[id] = domain.Product{ID: id, Name: in.Name, Price: in.Price}
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeStore) Update(_ context.Context, id primitive.ObjectID, in domain.ProductInput) (bool, error) {
	f.updateCalls++
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	f.products[id] = domain.Product{ID: id, Name: in.Name, Price: in.Price}
	return true, nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.deleteCalls++
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func TestList_PassesValidatedPageToStore(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	page := domain.DefaultPage()
	page.SortField = "price"
	page.Direction = domain.Descending
	page.Limit = 5
	page.Skip = 10

	if _, err := svc.List(context.Background(), domain.FilterSpec{}, page); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.lastPage.Order != -1 || store.lastPage.SortField != "price" {
		t.Fatalf("ordering not forwarded: %+v", store.lastPage)
	}
	if store.lastPage.Limit != 5 || store.lastPage.Skip != 10 {
		t.Fatalf("window not forwarded: %+v", store.lastPage)
	}
}

func TestList_InvalidPageNeverReachesStore(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	page := domain.DefaultPage()
	page.SortField = "color"

	_, err := svc.List(context.Background(), domain.FilterSpec{}, page)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.findCalls != 0 {
		t.Fatalf("store queried despite invalid page")
	}
}

func TestList_InvertedBoundsNeverReachStore(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	lo, hi := 50.0, 5.0
	_, err := svc.List(context.Background(), domain.FilterSpec{MinPrice: &lo, MaxPrice: &hi}, domain.DefaultPage())
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.findCalls != 0 {
		t.Fatalf("store queried despite invalid filter")
	}
}

func TestCreate_RejectsShortNameBeforeStore(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	result, err := svc.Create(context.Background(), domain.ProductInput{Name: "X", Price: 10})
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if result.Success {
		t.Fatalf("one-character name must be rejected")
	}
	if !strings.Contains(result.Message, "Name") {
		t.Fatalf("message should name the constraint: %s", result.Message)
	}
	if store.insertCalls != 0 {
		t.Fatalf("store touched despite invalid input")
	}
}

func TestCreate_RejectsNegativePrice(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	result, err := svc.Create(context.Background(), domain.ProductInput{Name: "Chair", Price: -1})
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if result.Success {
		t.Fatalf("negative price must be rejected")
	}
	if !strings.Contains(result.Message, "Price") {
		t.Fatalf("message should name the constraint: %s", result.Message)
	}
	if store.insertCalls != 0 {
		t.Fatalf("store touched despite invalid input")
	}
}

func TestCreate_LongNameBoundary(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}

	ok80 := strings.Repeat("a", 80)
	result, err := svc.Create(context.Background(), domain.ProductInput{Name: ok80, Price: 1})
	if err != nil || !result.Success {
		t.Fatalf("80-rune name must pass: %+v %v", result, err)
	}

	bad81 := strings.Repeat("a", 81)
	result, err = svc.Create(context.Background(), domain.ProductInput{Name: bad81, Price: 1})
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if result.Success {
		t.Fatalf("81-rune name must be rejected")
	}
}

func TestMutations_RoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.ProductInput{Name: "Chair", Price: 49.99})
	if err != nil || !created.Success {
		t.Fatalf("create failed: %+v %v", created, err)
	}
	if created.Message != "Product added" || created.ID == "" {
		t.Fatalf("unexpected create result: %+v", created)
	}

	updated, err := svc.Update(ctx, created.ID, domain.ProductInput{Name: "Office Chair", Price: 89.99})
	if err != nil || !updated.Success {
		t.Fatalf("update failed: %+v %v", updated, err)
	}
	if updated.Message != "Product updated" {
		t.Fatalf("unexpected update message: %s", updated.Message)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}
	if got.Name != "Office Chair" || got.Price != 89.99 {
		t.Fatalf("update not applied: %+v", got)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil || !deleted.Success {
		t.Fatalf("delete failed: %+v %v", deleted, err)
	}
	if deleted.Message != "Product deleted" {
		t.Fatalf("unexpected delete message: %s", deleted.Message)
	}

	again, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if again.Success || again.Message != "Product not found." {
		t.Fatalf("repeat delete must report not found: %+v", again)
	}

	afterDelete, err := svc.Update(ctx, created.ID, domain.ProductInput{Name: "Ghost", Price: 1})
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if afterDelete.Success || afterDelete.Message != "Product not found." {
		t.Fatalf("update after delete must report not found: %+v", afterDelete)
	}
}

func TestMutations_InvalidIDNeverReachesStore(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}
	ctx := context.Background()

	updated, err := svc.Update(ctx, "not-an-id", domain.ProductInput{Name: "Chair", Price: 1})
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if updated.Success || updated.Message != "Invalid product ID." {
		t.Fatalf("unexpected result: %+v", updated)
	}

	deleted, err := svc.Delete(ctx, "not-an-id")
	if err != nil {
		t.Fatalf("expected business outcome, got error %v", err)
	}
	if deleted.Success || deleted.Message != "Invalid product ID." {
		t.Fatalf("unexpected result: %+v", deleted)
	}

	if store.updateCalls != 0 || store.deleteCalls != 0 {
		t.Fatalf("store touched despite malformed id")
	}
}

func TestMutations_StorageFailureSurfacesAsError(t *testing.T) {
	store := newFakeStore()
	store.failWith = domain.InternalError{Msg: "backend down"}
	svc := ProductService{Store: store}

	_, err := svc.Create(context.Background(), domain.ProductInput{Name: "Chair", Price: 1})
	if !domain.IsInternal(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := ProductService{Store: newFakeStore()}
	_, err := svc.GetByID(context.Background(), "nope")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
