package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductImageNotFound = errors.New("product image not found")

// ProductImage holds an uploaded catalog image stored alongside the product.
type ProductImage struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Product is a catalog entry.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Brand       string        `json:"brand"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	ReleaseDate time.Time     `json:"release_date"`
	Available   bool          `json:"available"`
	Quantity    int           `json:"quantity"`
	Image       *ProductImage `json:"image,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// HasImage reports whether an image blob is stored for the product.
func (p *Product) HasImage() bool {
	return p.Image != nil && len(p.Image.Data) > 0
}
