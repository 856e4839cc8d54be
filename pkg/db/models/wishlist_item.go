package models

import "time"

// WishlistItem links a user to a saved product. The composite unique
// index makes the one-row-per-(user, product) invariant hold even under
// concurrent inserts.
type WishlistItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index:wishlist_items_user_id_idx;uniqueIndex:wishlist_items_user_product_key" json:"user_id"`
	ProductID uint      `gorm:"column:product_id;not null;index:wishlist_items_product_id_idx;uniqueIndex:wishlist_items_user_product_key" json:"product_id"`
	Notes     *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
