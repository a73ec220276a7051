package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/ports"
)

func TestListProductsCacheHit(t *testing.T) {
	cached := []domain.Product{{ID: "p1", Name: "Keyboard"}}
	repoCalled := false

	repo := &stubProductRepository{
		findAllFn: func(_ context.Context) ([]domain.Product, error) {
			repoCalled = true
			return nil, nil
		},
	}
	cache := &stubCatalogCache{
		getFn: func(_ context.Context) ([]domain.Product, bool) { return cached, true },
	}
	svc := NewProductService(repo, cache, zerolog.Nop())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("products = %+v, want the cached list", products)
	}
	if repoCalled {
		t.Error("a cache hit must not touch the repository")
	}
}

func TestListProductsCacheMissPopulatesCache(t *testing.T) {
	stored := []domain.Product{{ID: "p1"}, {ID: "p2"}}
	repo := &stubProductRepository{
		findAllFn: func(_ context.Context) ([]domain.Product, error) { return stored, nil },
	}
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("got %d products, want 2", len(products))
	}
	if cache.setCalls != 1 {
		t.Errorf("cache.Set called %d times, want 1", cache.setCalls)
	}
	if len(cache.lastSet) != 2 {
		t.Errorf("cache populated with %d products, want 2", len(cache.lastSet))
	}
}

func TestListProductsWorksWithoutCache(t *testing.T) {
	repo := &stubProductRepository{
		findAllFn: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1"}}, nil
		},
	}
	svc := NewProductService(repo, nil, zerolog.Nop())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("got %d products, want 1", len(products))
	}
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	repo := &stubProductRepository{
		createFn: func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			p.ID = "p1"
			return p, nil
		},
	}
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	input := ports.ProductInput{Name: "Keyboard", Price: 49.99, Quantity: 3, Available: true}
	created, err := svc.CreateProduct(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if created.ID != "p1" {
		t.Errorf("id = %q, want p1", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be stamped on creation")
	}
	if cache.invalidation != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.invalidation)
	}
}

func TestUpdateProductKeepsImageWhenNoneProvided(t *testing.T) {
	existing := &domain.Product{
		ID:    "p1",
		Name:  "Old name",
		Image: &domain.ProductImage{Name: "old.png", ContentType: "image/png", Data: []byte{1}},
	}
	repo := &stubProductRepository{
		findByIDFn: func(_ context.Context, _ string) (*domain.Product, error) { return existing, nil },
	}
	cache := &stubCatalogCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	updated, err := svc.UpdateProduct(context.Background(), "p1", ports.ProductInput{Name: "New name"}, nil)
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Name != "New name" {
		t.Errorf("name = %q, want %q", updated.Name, "New name")
	}
	if updated.Image == nil || updated.Image.Name != "old.png" {
		t.Error("updating without an image must keep the stored one")
	}
	if cache.invalidation != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.invalidation)
	}
}

func TestUpdateProductReplacesImage(t *testing.T) {
	existing := &domain.Product{
		ID:    "p1",
		Image: &domain.ProductImage{Name: "old.png"},
	}
	repo := &stubProductRepository{
		findByIDFn: func(_ context.Context, _ string) (*domain.Product, error) { return existing, nil },
	}
	svc := NewProductService(repo, &stubCatalogCache{}, zerolog.Nop())

	image := &ports.ImageInput{Name: "new.jpg", ContentType: "image/jpeg", Data: []byte{2, 3}}
	updated, err := svc.UpdateProduct(context.Background(), "p1", ports.ProductInput{Name: "Same"}, image)
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Image == nil || updated.Image.Name != "new.jpg" {
		t.Errorf("image = %+v, want the replacement", updated.Image)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductService(&stubProductRepository{}, &stubCatalogCache{}, zerolog.Nop())

	_, err := svc.UpdateProduct(context.Background(), "missing", ports.ProductInput{}, nil)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestDeleteProductInvalidatesCache(t *testing.T) {
	cache := &stubCatalogCache{}
	svc := NewProductService(&stubProductRepository{}, cache, zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if cache.invalidation != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.invalidation)
	}
}

func TestGetProductImage(t *testing.T) {
	withImage := &domain.Product{
		ID:    "p1",
		Image: &domain.ProductImage{Name: "shot.png", ContentType: "image/png", Data: []byte{9}},
	}
	bare := &domain.Product{ID: "p2", ReleaseDate: time.Now()}

	repo := &stubProductRepository{
		findByIDFn: func(_ context.Context, id string) (*domain.Product, error) {
			switch id {
			case "p1":
				return withImage, nil
			case "p2":
				return bare, nil
			}
			return nil, domain.ErrProductNotFound
		},
	}
	svc := NewProductService(repo, nil, zerolog.Nop())

	image, err := svc.GetProductImage(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProductImage returned error: %v", err)
	}
	if image.ContentType != "image/png" {
		t.Errorf("content type = %q, want image/png", image.ContentType)
	}

	if _, err := svc.GetProductImage(context.Background(), "p2"); !errors.Is(err, domain.ErrProductImageNotFound) {
		t.Errorf("product without image: err = %v, want ErrProductImageNotFound", err)
	}
	if _, err := svc.GetProductImage(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("missing product: err = %v, want ErrProductNotFound", err)
	}
}
