package ports

import (
	"context"
	"time"

	"github.com/divami/cadence/internal/core/domain"
)

// ImageInput is an uploaded catalog image.
type ImageInput struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductInput carries all data needed to create or replace a product.
type ProductInput struct {
	Name        string
	Description string
	Brand       string
	Price       float64
	Category    string
	ReleaseDate time.Time
	Available   bool
	Quantity    int
}

// ProductService exposes catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductImage(ctx context.Context, id string) (*domain.ProductImage, error)
	CreateProduct(ctx context.Context, input ProductInput, image *ImageInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput, image *ImageInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
