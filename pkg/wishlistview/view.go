// Package wishlistview is the stateful model behind a wishlist screen.
// It owns loading, enrichment, and the edit/delete interactions; the
// rendering layer only reads Items() and wires user input back in.
package wishlistview

import (
	"context"
	"fmt"

	"github.com/avargas/shoplist-backend/pkg/client"
	"github.com/avargas/shoplist-backend/pkg/logger"
)

const (
	fetchErrorMessage  = "An error occurred while fetching wishlist"
	removeErrorMessage = "Failed to remove from wishlist"
	notesErrorMessage  = "Failed to update notes"

	removeConfirmPrompt = "Are you sure you want to remove this item from your wishlist?"

	removedNotice      = "Removed from wishlist"
	notesUpdatedNotice = "Notes updated"

	adminRole = "admin"
)

// API is the slice of the client the view depends on.
type API interface {
	FetchWishlist(ctx context.Context) *client.Response
	ListProducts(ctx context.Context) *client.Response
	DeleteWishlistItem(ctx context.Context, id uint) *client.Response
	UpdateWishlistItem(ctx context.Context, id uint, notes *string) *client.Response
}

// Options wires the view's collaborators. Confirm blocks for a yes/no
// answer; Notify shows a transient message.
type Options struct {
	Role    string
	Confirm func(prompt string) bool
	Notify  func(message string)
	Logger  *logger.Logger
}

// View holds the screen state for one user's wishlist.
type View struct {
	api     API
	role    string
	confirm func(string) bool
	notify  func(string)
	logger  *logger.Logger

	loading    bool
	err        string
	items      []client.WishlistItem
	deletingID uint
	editingID  uint
	draftNotes string
}

// New builds a view around the given client surface.
func New(apiClient API, opts Options) (*View, error) {
	if apiClient == nil {
		return nil, fmt.Errorf("api client is required")
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	notify := opts.Notify
	if notify == nil {
		notify = func(string) {}
	}
	return &View{
		api:     apiClient,
		role:    opts.Role,
		confirm: confirm,
		notify:  notify,
		logger:  opts.Logger,
	}, nil
}

// Load fetches the wishlist and attaches product details to any rows
// the server did not enrich. Items whose product has vanished from the
// catalog keep a nil Product rather than breaking the screen.
func (v *View) Load(ctx context.Context) {
	v.loading = true
	v.err = ""

	defer func() { v.loading = false }()

	resp := v.api.FetchWishlist(ctx)
	if resp == nil {
		v.err = fetchErrorMessage
		v.warn(ctx, "wishlist fetch failed")
		return
	}
	if !resp.Success {
		if resp.Message != "" {
			v.err = resp.Message
		} else {
			v.err = fetchErrorMessage
		}
		return
	}

	var items []client.WishlistItem
	if err := resp.DecodeData(&items); err != nil {
		v.err = fetchErrorMessage
		v.warn(ctx, "wishlist payload was not a list: "+err.Error())
		return
	}

	v.items = v.enrich(ctx, items)
}

// enrich backfills products with one catalog fetch. A failed catalog
// fetch degrades to nil products instead of an error state.
func (v *View) enrich(ctx context.Context, items []client.WishlistItem) []client.WishlistItem {
	missing := false
	for i := range items {
		if items[i].Product == nil {
			missing = true
			break
		}
	}
	if !missing {
		return items
	}

	byID := v.fetchCatalog(ctx)
	for i := range items {
		if items[i].Product != nil {
			continue
		}
		if p, ok := byID[items[i].ProductID]; ok {
			product := p
			items[i].Product = &product
		}
	}
	return items
}

func (v *View) fetchCatalog(ctx context.Context) map[uint]client.Product {
	byID := map[uint]client.Product{}

	resp := v.api.ListProducts(ctx)
	if resp == nil || !resp.Success {
		return byID
	}
	var products []client.Product
	if err := resp.DecodeData(&products); err != nil {
		return byID
	}
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

func (v *View) warn(ctx context.Context, msg string) {
	if v.logger == nil {
		return
	}
	v.logger.Warn(ctx, "wishlistview: "+msg)
}

// Remove deletes an item after a blocking confirmation. The row leaves
// the local list only when the server acknowledged the delete.
func (v *View) Remove(ctx context.Context, itemID uint) {
	if !v.confirm(removeConfirmPrompt) {
		return
	}

	v.deletingID = itemID
	defer func() { v.deletingID = 0 }()

	resp := v.api.DeleteWishlistItem(ctx, itemID)
	if resp == nil || !resp.Success {
		if resp != nil && resp.Message != "" {
			v.notify(resp.Message)
		} else {
			v.notify(removeErrorMessage)
		}
		return
	}

	kept := v.items[:0]
	for _, item := range v.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	v.items = kept
	v.notify(removedNotice)
}

// OpenNotes starts editing the notes of an item.
func (v *View) OpenNotes(itemID uint) {
	for _, item := range v.items {
		if item.ID != itemID {
			continue
		}
		v.editingID = itemID
		if item.Notes != nil {
			v.draftNotes = *item.Notes
		} else {
			v.draftNotes = ""
		}
		return
	}
}

// SetDraftNotes replaces the in-progress notes text.
func (v *View) SetDraftNotes(text string) {
	v.draftNotes = text
}

// SaveNotes pushes the draft to the server and, on success, patches the
// local item without refetching. The local copy may briefly differ from
// the store; Load reconciles.
func (v *View) SaveNotes(ctx context.Context) {
	if v.editingID == 0 {
		return
	}

	draft := v.draftNotes
	resp := v.api.UpdateWishlistItem(ctx, v.editingID, &draft)
	if resp == nil || !resp.Success {
		if resp != nil && resp.Message != "" {
			v.notify(resp.Message)
		} else {
			v.notify(notesErrorMessage)
		}
		return
	}

	for i := range v.items {
		if v.items[i].ID == v.editingID {
			notes := draft
			v.items[i].Notes = &notes
			break
		}
	}
	v.notify(notesUpdatedNotice)
	v.editingID = 0
	v.draftNotes = ""
}

// CancelNotes abandons the edit.
func (v *View) CancelNotes() {
	v.editingID = 0
	v.draftNotes = ""
}

// CanEditProduct reports whether the product-edit control is shown.
func (v *View) CanEditProduct() bool {
	return v.role == adminRole
}

// EditProductPath is the navigation target of the admin edit control.
func (v *View) EditProductPath(productID uint) string {
	return fmt.Sprintf("/products/edit/%d", productID)
}

// Loading reports whether a Load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the load error message, empty when the last load worked.
func (v *View) Err() string {
	return v.err
}

// Items returns the enriched rows in render order.
func (v *View) Items() []client.WishlistItem {
	return v.items
}

// DeletingID returns the id of the row pending deletion, 0 when none.
func (v *View) DeletingID() uint {
	return v.deletingID
}

// EditingID returns the id of the row whose notes are being edited.
func (v *View) EditingID() uint {
	return v.editingID
}

// DraftNotes returns the in-progress notes text.
func (v *View) DraftNotes() string {
	return v.draftNotes
}

// Empty reports whether the loaded wishlist has no rows.
func (v *View) Empty() bool {
	return len(v.items) == 0
}
