package handler

import "time"

type productRequest struct {
	Name        string  `json:"name"         validate:"required"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"        validate:"required"`
	Price       float64 `json:"price"        validate:"required,gt=0"`
	Category    string  `json:"category"     validate:"required"`
	ReleaseDate string  `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Available   bool    `json:"available"`
	Quantity    int     `json:"quantity"     validate:"gte=0"`
}

// productResponse is the catalog view. Image bytes are never inlined; the
// has_image flag tells the client whether the image endpoint has anything.
type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ReleaseDate time.Time `json:"release_date"`
	Available   bool      `json:"available"`
	Quantity    int       `json:"quantity"`
	HasImage    bool      `json:"has_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
