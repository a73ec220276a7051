package service

import (
	"context"

	"github.com/divami/cadence/internal/core/domain"
)

// stubUserRepository lets each test plug in exactly the behaviour it needs.
// Unset functions fall back to "not found" so tests only describe what matters.
type stubUserRepository struct {
	createFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	findAllFn        func(ctx context.Context) ([]domain.User, error)
	updateFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	softDeleteFn     func(ctx context.Context, id string) error
}

func (s *stubUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return user, nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.findByUsernameFn != nil {
		return s.findByUsernameFn(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return user, nil
}

func (s *stubUserRepository) SoftDelete(ctx context.Context, id string) error {
	if s.softDeleteFn != nil {
		return s.softDeleteFn(ctx, id)
	}
	return nil
}

// stubProductRepository mirrors stubUserRepository for the catalog.
type stubProductRepository struct {
	createFn   func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Product, error)
	findAllFn  func(ctx context.Context) ([]domain.Product, error)
	updateFn   func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	return product, nil
}

func (s *stubProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, product)
	}
	return product, nil
}

func (s *stubProductRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// stubCatalogCache records cache traffic so tests can assert on it.
type stubCatalogCache struct {
	getFn        func(ctx context.Context) ([]domain.Product, bool)
	setCalls     int
	lastSet      []domain.Product
	invalidation int
}

func (s *stubCatalogCache) Get(ctx context.Context) ([]domain.Product, bool) {
	if s.getFn != nil {
		return s.getFn(ctx)
	}
	return nil, false
}

func (s *stubCatalogCache) Set(ctx context.Context, products []domain.Product) error {
	s.setCalls++
	s.lastSet = products
	return nil
}

func (s *stubCatalogCache) Invalidate(ctx context.Context) error {
	s.invalidation++
	return nil
}
