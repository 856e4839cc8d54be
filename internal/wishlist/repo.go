package wishlist

import (
	"context"

	"github.com/avargas/shoplist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the row in a single statement. Duplicate (user, product)
// pairs fail on the unique constraint and surface as a translated
// duplicate-key error, so concurrent saves of the same product cannot
// both succeed.
func (r *Repository) Create(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ListByUser returns the user's items ordered newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDForUser loads the item only when it belongs to the user.
func (r *Repository) FindByIDForUser(ctx context.Context, id, userID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID loads the item regardless of owner.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateNotes replaces the notes column, including clearing it to NULL.
func (r *Repository) UpdateNotes(ctx context.Context, id uint, notes *string) (*models.WishlistItem, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("id = ?", id).
		Update("notes", notes)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the item by primary key.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.WishlistItem{}, "id = ?", id).Error
}

// ProductsByID bulk loads the catalog rows referenced by the given ids.
func (r *Repository) ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}
