package wishlist

import (
	"context"

	"github.com/avargas/shoplist-backend/internal/products"
	dbpkg "github.com/avargas/shoplist-backend/pkg/db"
	"github.com/avargas/shoplist-backend/pkg/db/models"
	pkgerrors "github.com/avargas/shoplist-backend/pkg/errors"
)

// Service exposes the per-user wishlist operations. Every method takes
// the acting user's id; ownership rules live here, not in handlers.
type Service interface {
	AddItem(ctx context.Context, userID uint, req AddItemRequest) (*ItemDTO, error)
	ListItems(ctx context.Context, userID uint) ([]ItemDTO, error)
	GetItem(ctx context.Context, userID, itemID uint) (*ItemDTO, error)
	UpdateNotes(ctx context.Context, userID, itemID uint, req UpdateNotesRequest) (*ItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

type repository interface {
	Create(ctx context.Context, item *models.WishlistItem) (*models.WishlistItem, error)
	ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (*models.WishlistItem, error)
	FindByID(ctx context.Context, id uint) (*models.WishlistItem, error)
	UpdateNotes(ctx context.Context, id uint, notes *string) (*models.WishlistItem, error)
	Delete(ctx context.Context, id uint) error
	ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

type service struct {
	repo    repository
	catalog productFinder
}

// NewService builds a wishlist service around the repository and the
// catalog lookup used to validate referenced products.
func NewService(repo repository, catalog productFinder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product finder is required")
	}
	return &service{repo: repo, catalog: catalog}, nil
}

func (s *service) AddItem(ctx context.Context, userID uint, req AddItemRequest) (*ItemDTO, error) {
	product, err := s.catalog.FindByID(ctx, req.ProductID)
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Notes:     req.Notes,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Product already in wishlist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create wishlist item")
	}
	return newItemDTO(created, products.NewProductSummary(product)), nil
}

func (s *service) ListItems(ctx context.Context, userID uint) ([]ItemDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist")
	}

	ids := make([]uint, 0, len(rows))
	seen := make(map[uint]struct{}, len(rows))
	for i := range rows {
		if _, ok := seen[rows[i].ProductID]; ok {
			continue
		}
		seen[rows[i].ProductID] = struct{}{}
		ids = append(ids, rows[i].ProductID)
	}
	catalog, err := s.repo.ProductsByID(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist products")
	}

	dtos := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		var summary *products.ProductSummary
		if p, ok := catalog[rows[i].ProductID]; ok {
			summary = products.NewProductSummary(&p)
		}
		dtos = append(dtos, *newItemDTO(&rows[i], summary))
	}
	return dtos, nil
}

// GetItem only ever sees rows owned by the caller. Someone else's item
// answers not-found rather than forbidden so ids cannot be probed.
func (s *service) GetItem(ctx context.Context, userID, itemID uint) (*ItemDTO, error) {
	item, err := s.repo.FindByIDForUser(ctx, itemID, userID)
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Wishlist item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist item")
	}
	return s.withProduct(ctx, item), nil
}

func (s *service) UpdateNotes(ctx context.Context, userID, itemID uint, req UpdateNotesRequest) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Wishlist item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist item")
	}
	if item.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Not authorized to update this wishlist item")
	}

	updated, err := s.repo.UpdateNotes(ctx, itemID, req.Notes)
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Wishlist item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update wishlist notes")
	}
	return s.withProduct(ctx, updated), nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Wishlist item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist item")
	}
	if item.UserID != userID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "Not authorized to delete this wishlist item")
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete wishlist item")
	}
	return nil
}

// withProduct attaches the product projection when the catalog row
// still exists. A missing product leaves the field nil rather than
// failing the read.
func (s *service) withProduct(ctx context.Context, item *models.WishlistItem) *ItemDTO {
	product, err := s.catalog.FindByID(ctx, item.ProductID)
	if err != nil {
		return newItemDTO(item, nil)
	}
	return newItemDTO(item, products.NewProductSummary(product))
}

var _ repository = (*Repository)(nil)
