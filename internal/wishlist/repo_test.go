package wishlist

import (
	"context"
	"fmt"
	"testing"

	dbpkg "github.com/avargas/shoplist-backend/pkg/db"
	"github.com/avargas/shoplist-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'customer',
  created_at DATETIME,
  updated_at DATETIME
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  category TEXT NOT NULL,
  image TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME,
  CONSTRAINT wishlist_items_user_product_key UNIQUE (user_id, product_id)
);`
	for _, stmt := range []string{users, products, items} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(19.99),
		Category: "gear",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryCreateRejectsDuplicatePair(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "Trail Pack")

	first, err := repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: product.ID})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: product.ID})
	require.Error(t, err)
	assert.True(t, dbpkg.IsUniqueViolation(err))

	// Same product for another user is fine.
	_, err = repo.Create(ctx, &models.WishlistItem{UserID: 2, ProductID: product.ID})
	require.NoError(t, err)
}

func TestRepositoryListByUserScopesAndEnriches(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	packA := seedProduct(t, db, "Pack A")
	packB := seedProduct(t, db, "Pack B")

	_, err := repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: packA.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: packB.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.WishlistItem{UserID: 2, ProductID: packA.ID})
	require.NoError(t, err)

	items, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, uint(1), item.UserID)
	}
	// Newest first, ties broken by id.
	assert.Equal(t, packB.ID, items[0].ProductID)

	catalog, err := repo.ProductsByID(ctx, []uint{packA.ID, packB.ID, 9999})
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Pack A", catalog[packA.ID].Name)
}

func TestRepositoryFindByIDForUserHidesForeignRows(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "Pack")

	created, err := repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: product.ID})
	require.NoError(t, err)

	found, err := repo.FindByIDForUser(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByIDForUser(ctx, created.ID, 2)
	require.Error(t, err)
	assert.True(t, dbpkg.IsNotFound(err))
}

func TestRepositoryUpdateNotes(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "Pack")

	created, err := repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: product.ID})
	require.NoError(t, err)

	notes := "gift for March"
	updated, err := repo.UpdateNotes(ctx, created.ID, &notes)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	cleared, err := repo.UpdateNotes(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.Notes)

	_, err = repo.UpdateNotes(ctx, 9999, &notes)
	require.Error(t, err)
	assert.True(t, dbpkg.IsNotFound(err))
}

func TestRepositoryDelete(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "Pack")

	created, err := repo.Create(ctx, &models.WishlistItem{UserID: 1, ProductID: product.ID})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, dbpkg.IsNotFound(err))
}
