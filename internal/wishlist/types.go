package wishlist

import (
	"time"

	"github.com/avargas/shoplist-backend/internal/products"
	"github.com/avargas/shoplist-backend/pkg/db/models"
)

// AddItemRequest is the payload for saving a product. The field names
// are part of the public API consumed by the storefront client.
type AddItemRequest struct {
	ProductID uint    `json:"productId" validate:"required"`
	Notes     *string `json:"notes"`
}

// UpdateNotesRequest carries the replacement notes text. A null value
// clears the notes.
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// ItemDTO is a wishlist row, optionally joined with its product
// projection on read paths.
type ItemDTO struct {
	ID        uint                     `json:"id"`
	UserID    uint                     `json:"user_id"`
	ProductID uint                     `json:"product_id"`
	Notes     *string                  `json:"notes"`
	Product   *products.ProductSummary `json:"product,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func newItemDTO(item *models.WishlistItem, product *products.ProductSummary) *ItemDTO {
	if item == nil {
		return nil
	}
	return &ItemDTO{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Notes:     item.Notes,
		Product:   product,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
