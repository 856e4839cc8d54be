package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/avargas/shoplist-backend/pkg/db/models"
	pkgerrors "github.com/avargas/shoplist-backend/pkg/errors"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn          func(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error)
	listByUserFn      func(ctx context.Context, userID uint) ([]models.WishlistItem, error)
	findByIDForUserFn func(ctx context.Context, id, userID uint) (*models.WishlistItem, error)
	findByIDFn        func(ctx context.Context, id uint) (*models.WishlistItem, error)
	updateNotesFn     func(ctx context.Context, id uint, notes *string) (*models.WishlistItem, error)
	deleteFn          func(ctx context.Context, id uint) error
	productsByIDFn    func(ctx context.Context, ids []uint) (map[uint]models.Product, error)
}

func (f *fakeRepository) Create(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
	if f.createFn != nil {
		return f.createFn(ctx, item)
	}
	item.ID = 1
	return item, nil
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*models.WishlistItem, error) {
	if f.findByIDForUserFn != nil {
		return f.findByIDForUserFn(ctx, id, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*models.WishlistItem, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) UpdateNotes(ctx context.Context, id uint, notes *string) (*models.WishlistItem, error) {
	if f.updateNotesFn != nil {
		return f.updateNotesFn(ctx, id, notes)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepository) ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	if f.productsByIDFn != nil {
		return f.productsByIDFn(ctx, ids)
	}
	return map[uint]models.Product{}, nil
}

type fakeCatalog struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Product, error)
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func expectCode(t *testing.T, err error, code pkgerrors.Code, message string) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s (%v)", code, typed.Code(), err)
	}
	if message != "" && typed.Message() != message {
		t.Fatalf("expected message %q, got %q", message, typed.Message())
	}
}

func TestService_AddItem(t *testing.T) {
	repo := &fakeRepository{}
	catalog := &fakeCatalog{
		findByIDFn: func(ctx context.Context, id uint) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Trail Pack", Category: "gear"}, nil
		},
	}
	svc, err := NewService(repo, catalog)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	notes := "birthday idea"
	var created *models.WishlistItem
	repo.createFn = func(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
		item.ID = 42
		created = item
		return item, nil
	}

	dto, err := svc.AddItem(context.Background(), 7, AddItemRequest{ProductID: 3, Notes: &notes})
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if created == nil || created.UserID != 7 || created.ProductID != 3 {
		t.Fatalf("unexpected persisted item: %+v", created)
	}
	if dto.ID != 42 || dto.Notes == nil || *dto.Notes != notes {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.Product == nil || dto.Product.Name != "Trail Pack" {
		t.Fatalf("expected product projection, got %+v", dto.Product)
	}
}

func TestService_AddItemUnknownProduct(t *testing.T) {
	svc, err := NewService(&fakeRepository{}, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	_, err = svc.AddItem(context.Background(), 7, AddItemRequest{ProductID: 99})
	expectCode(t, err, pkgerrors.CodeNotFound, "Product not found")
}

func TestService_AddItemDuplicate(t *testing.T) {
	repo := &fakeRepository{
		createFn: func(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error) {
			return nil, gorm.ErrDuplicatedKey
		},
	}
	catalog := &fakeCatalog{
		findByIDFn: func(ctx context.Context, id uint) (*models.Product, error) {
			return &models.Product{ID: id}, nil
		},
	}
	svc, err := NewService(repo, catalog)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	_, err = svc.AddItem(context.Background(), 7, AddItemRequest{ProductID: 3})
	expectCode(t, err, pkgerrors.CodeConflict, "Product already in wishlist")
}

func TestService_ListItemsAttachesProducts(t *testing.T) {
	repo := &fakeRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
			return []models.WishlistItem{
				{ID: 1, UserID: userID, ProductID: 10},
				{ID: 2, UserID: userID, ProductID: 11},
			}, nil
		},
		productsByIDFn: func(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
			if len(ids) != 2 {
				t.Fatalf("expected 2 product ids, got %v", ids)
			}
			// Product 11 was deleted from the catalog.
			return map[uint]models.Product{10: {ID: 10, Name: "Pack A"}}, nil
		},
	}
	svc, err := NewService(repo, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	items, err := svc.ListItems(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListItems error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "Pack A" {
		t.Fatalf("expected product on first item, got %+v", items[0].Product)
	}
	if items[1].Product != nil {
		t.Fatalf("expected nil product for orphaned item, got %+v", items[1].Product)
	}
}

func TestService_GetItemForeignRowIsNotFound(t *testing.T) {
	svc, err := NewService(&fakeRepository{}, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	_, err = svc.GetItem(context.Background(), 7, 5)
	expectCode(t, err, pkgerrors.CodeNotFound, "Wishlist item not found")
}

func TestService_UpdateNotes(t *testing.T) {
	owned := &models.WishlistItem{ID: 5, UserID: 7, ProductID: 3}
	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, id uint) (*models.WishlistItem, error) {
			return owned, nil
		},
		updateNotesFn: func(ctx context.Context, id uint, notes *string) (*models.WishlistItem, error) {
			owned.Notes = notes
			return owned, nil
		},
	}
	svc, err := NewService(repo, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	notes := "sale next month"
	dto, err := svc.UpdateNotes(context.Background(), 7, 5, UpdateNotesRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("UpdateNotes error: %v", err)
	}
	if dto.Notes == nil || *dto.Notes != notes {
		t.Fatalf("unexpected notes: %+v", dto.Notes)
	}

	_, err = svc.UpdateNotes(context.Background(), 8, 5, UpdateNotesRequest{})
	expectCode(t, err, pkgerrors.CodeForbidden, "Not authorized to update this wishlist item")
}

func TestService_UpdateNotesMissingItem(t *testing.T) {
	svc, err := NewService(&fakeRepository{}, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	_, err = svc.UpdateNotes(context.Background(), 7, 404, UpdateNotesRequest{})
	expectCode(t, err, pkgerrors.CodeNotFound, "Wishlist item not found")
}

func TestService_RemoveItem(t *testing.T) {
	deleted := uint(0)
	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, id uint) (*models.WishlistItem, error) {
			return &models.WishlistItem{ID: id, UserID: 7}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	svc, err := NewService(repo, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	if err := svc.RemoveItem(context.Background(), 7, 5); err != nil {
		t.Fatalf("RemoveItem error: %v", err)
	}
	if deleted != 5 {
		t.Fatalf("expected delete of item 5, got %d", deleted)
	}

	err = svc.RemoveItem(context.Background(), 8, 5)
	expectCode(t, err, pkgerrors.CodeForbidden, "Not authorized to delete this wishlist item")
}

func TestService_RemoveItemMissing(t *testing.T) {
	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, id uint) (*models.WishlistItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
		deleteFn: func(ctx context.Context, id uint) error {
			return errors.New("delete should not run")
		},
	}
	svc, err := NewService(repo, &fakeCatalog{})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	err = svc.RemoveItem(context.Background(), 7, 404)
	expectCode(t, err, pkgerrors.CodeNotFound, "Wishlist item not found")
}
