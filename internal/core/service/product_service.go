package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/ports"
)

// CatalogCache abstracts the product-list cache (Redis). A nil cache or a
// cache error never fails a request; the repository is the source of truth.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements catalog operations with cache-aside reads.
type ProductService struct {
	repo   ports.ProductRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate catalog cache")
		}
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) GetProductImage(ctx context.Context, id string) (*domain.ProductImage, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.HasImage() {
		return nil, domain.ErrProductImageNotFound
	}
	return product.Image, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.ProductInput, image *ports.ImageInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Brand:       input.Brand,
		Price:       input.Price,
		Category:    input.Category,
		ReleaseDate: input.ReleaseDate,
		Available:   input.Available,
		Quantity:    input.Quantity,
		Image:       toDomainImage(image),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, input ports.ProductInput, image *ports.ImageInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Brand = input.Brand
	existing.Price = input.Price
	existing.Category = input.Category
	existing.ReleaseDate = input.ReleaseDate
	existing.Available = input.Available
	existing.Quantity = input.Quantity
	existing.UpdatedAt = time.Now().UTC()
	if image != nil {
		existing.Image = toDomainImage(image)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}

func toDomainImage(image *ports.ImageInput) *domain.ProductImage {
	if image == nil {
		return nil
	}
	return &domain.ProductImage{
		Name:        image.Name,
		ContentType: image.ContentType,
		Data:        image.Data,
	}
}
