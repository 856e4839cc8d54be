package products

import (
	"time"

	"github.com/avargas/shoplist-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductSummary is the restricted projection embedded into wishlist
// rows and list responses.
type ProductSummary struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    *string         `json:"image"`
}

// ProductDTO is the full catalog payload returned to clients.
type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       *string         `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateProductRequest captures the admin payload for a new listing.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       string  `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Image       *string `json:"image"`
}

// UpdateProductRequest carries partial updates for a listing.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}

// NewProductDTO maps the persisted model to its public payload.
func NewProductDTO(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// NewProductSummary maps the model to the restricted projection.
func NewProductSummary(product *models.Product) *ProductSummary {
	if product == nil {
		return nil
	}
	return &ProductSummary{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Category: product.Category,
		Image:    product.Image,
	}
}
