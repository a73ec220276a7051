package handler

import (
	"time"

	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/ports"
)

func toProductInput(req productRequest) ports.ProductInput {
	input := ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		Quantity:    req.Quantity,
	}
	if req.ReleaseDate != "" {
		// Format is enforced by the datetime validation tag.
		input.ReleaseDate, _ = time.Parse("2006-01-02", req.ReleaseDate)
	}
	return input
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Price:       p.Price,
		Category:    p.Category,
		ReleaseDate: p.ReleaseDate.UTC(),
		Available:   p.Available,
		Quantity:    p.Quantity,
		HasImage:    p.Image != nil,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toProductListResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out
}
