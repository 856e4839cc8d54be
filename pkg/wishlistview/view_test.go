package wishlistview

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/avargas/shoplist-backend/pkg/client"
)

type stubAPI struct {
	fetchFn  func(ctx context.Context) *client.Response
	listFn   func(ctx context.Context) *client.Response
	deleteFn func(ctx context.Context, id uint) *client.Response
	updateFn func(ctx context.Context, id uint, notes *string) *client.Response

	listCalls int
}

func (s *stubAPI) FetchWishlist(ctx context.Context) *client.Response {
	if s.fetchFn != nil {
		return s.fetchFn(ctx)
	}
	return success("Wishlist retrieved successfully", []any{})
}

func (s *stubAPI) ListProducts(ctx context.Context) *client.Response {
	s.listCalls++
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return success("Products retrieved successfully", []any{})
}

func (s *stubAPI) DeleteWishlistItem(ctx context.Context, id uint) *client.Response {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return success("Wishlist item deleted successfully", map[string]any{})
}

func (s *stubAPI) UpdateWishlistItem(ctx context.Context, id uint, notes *string) *client.Response {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, notes)
	}
	return success("Wishlist item updated successfully", map[string]any{})
}

func success(message string, data any) *client.Response {
	raw, _ := json.Marshal(data)
	return &client.Response{Success: true, Message: message, Data: raw}
}

func failure(message string) *client.Response {
	return &client.Response{Success: false, Message: message, Data: json.RawMessage(`{}`)}
}

func newView(t *testing.T, api API, opts Options) *View {
	t.Helper()
	v, err := New(api, opts)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	return v
}

func TestLoadUsesEmbeddedProducts(t *testing.T) {
	api := &stubAPI{
		fetchFn: func(ctx context.Context) *client.Response {
			return success("ok", []map[string]any{
				{"id": 1, "product_id": 10, "product": map[string]any{"id": 10, "name": "Pack A"}},
				{"id": 2, "product_id": 11, "product": map[string]any{"id": 11, "name": "Pack B"}},
			})
		},
	}
	v := newView(t, api, Options{})

	v.Load(context.Background())

	if v.Err() != "" {
		t.Fatalf("unexpected error %q", v.Err())
	}
	if v.Loading() {
		t.Fatal("loading flag should be cleared")
	}
	items := v.Items()
	if len(items) != 2 || items[0].Product == nil || items[0].Product.Name != "Pack A" {
		t.Fatalf("unexpected items %+v", items)
	}
	if api.listCalls != 0 {
		t.Fatalf("catalog should not be fetched when products are embedded, got %d calls", api.listCalls)
	}
}

func TestLoadEnrichesFromCatalogOnce(t *testing.T) {
	api := &stubAPI{
		fetchFn: func(ctx context.Context) *client.Response {
			return success("ok", []map[string]any{
				{"id": 1, "product_id": 10},
				{"id": 2, "product_id": 11},
				{"id": 3, "product_id": 99},
			})
		},
		listFn: func(ctx context.Context) *client.Response {
			return success("ok", []map[string]any{
				{"id": 10, "name": "Pack A"},
				{"id": 11, "name": "Pack B"},
			})
		},
	}
	v := newView(t, api, Options{})

	v.Load(context.Background())

	items := v.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "Pack A" {
		t.Fatalf("expected enriched first item, got %+v", items[0].Product)
	}
	if items[2].Product != nil {
		t.Fatalf("expected nil product for unknown id, got %+v", items[2].Product)
	}
	if api.listCalls != 1 {
		t.Fatalf("expected a single catalog fetch, got %d", api.listCalls)
	}
}

func TestLoadFailureSetsError(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		api := &stubAPI{fetchFn: func(ctx context.Context) *client.Response { return nil }}
		v := newView(t, api, Options{})
		v.Load(context.Background())
		if v.Err() != "An error occurred while fetching wishlist" {
			t.Fatalf("unexpected error %q", v.Err())
		}
	})

	t.Run("server rejection", func(t *testing.T) {
		api := &stubAPI{fetchFn: func(ctx context.Context) *client.Response { return failure("Invalid credentials") }}
		v := newView(t, api, Options{})
		v.Load(context.Background())
		if v.Err() != "Invalid credentials" {
			t.Fatalf("unexpected error %q", v.Err())
		}
	})
}

func TestRemove(t *testing.T) {
	load := func(ctx context.Context) *client.Response {
		return success("ok", []map[string]any{
			{"id": 1, "product_id": 10, "product": map[string]any{"id": 10}},
			{"id": 2, "product_id": 11, "product": map[string]any{"id": 11}},
		})
	}

	t.Run("declined confirmation leaves the item", func(t *testing.T) {
		deleted := false
		api := &stubAPI{
			fetchFn: load,
			deleteFn: func(ctx context.Context, id uint) *client.Response {
				deleted = true
				return success("ok", map[string]any{})
			},
		}
		v := newView(t, api, Options{Confirm: func(string) bool { return false }})
		v.Load(context.Background())

		v.Remove(context.Background(), 1)

		if deleted {
			t.Fatal("delete must not run when confirmation is declined")
		}
		if len(v.Items()) != 2 {
			t.Fatalf("expected 2 items, got %d", len(v.Items()))
		}
	})

	t.Run("success splices locally", func(t *testing.T) {
		var notices []string
		api := &stubAPI{fetchFn: load}
		v := newView(t, api, Options{Notify: func(msg string) { notices = append(notices, msg) }})
		v.Load(context.Background())

		v.Remove(context.Background(), 1)

		items := v.Items()
		if len(items) != 1 || items[0].ID != 2 {
			t.Fatalf("expected only item 2 to remain, got %+v", items)
		}
		if v.DeletingID() != 0 {
			t.Fatalf("deleting id should reset, got %d", v.DeletingID())
		}
		if len(notices) != 1 || notices[0] != "Removed from wishlist" {
			t.Fatalf("unexpected notices %v", notices)
		}
	})

	t.Run("failure keeps the item and notifies", func(t *testing.T) {
		var notices []string
		api := &stubAPI{
			fetchFn: load,
			deleteFn: func(ctx context.Context, id uint) *client.Response {
				return failure("Wishlist item not found")
			},
		}
		v := newView(t, api, Options{Notify: func(msg string) { notices = append(notices, msg) }})
		v.Load(context.Background())

		v.Remove(context.Background(), 1)

		if len(v.Items()) != 2 {
			t.Fatalf("failed delete must keep the row, got %d items", len(v.Items()))
		}
		if len(notices) != 1 || notices[0] != "Wishlist item not found" {
			t.Fatalf("unexpected notices %v", notices)
		}
	})
}

func TestNotesEditing(t *testing.T) {
	notes := "old notes"
	load := func(ctx context.Context) *client.Response {
		return success("ok", []map[string]any{
			{"id": 1, "product_id": 10, "notes": notes, "product": map[string]any{"id": 10}},
		})
	}

	t.Run("open seeds the draft", func(t *testing.T) {
		v := newView(t, &stubAPI{fetchFn: load}, Options{})
		v.Load(context.Background())

		v.OpenNotes(1)
		if v.EditingID() != 1 || v.DraftNotes() != "old notes" {
			t.Fatalf("unexpected edit state: id=%d draft=%q", v.EditingID(), v.DraftNotes())
		}
	})

	t.Run("save patches locally without refetch", func(t *testing.T) {
		var sent *string
		fetches := 0
		api := &stubAPI{
			fetchFn: func(ctx context.Context) *client.Response {
				fetches++
				return load(ctx)
			},
			updateFn: func(ctx context.Context, id uint, n *string) *client.Response {
				sent = n
				return success("ok", map[string]any{})
			},
		}
		v := newView(t, api, Options{})
		v.Load(context.Background())

		v.OpenNotes(1)
		v.SetDraftNotes("new notes")
		v.SaveNotes(context.Background())

		if sent == nil || *sent != "new notes" {
			t.Fatalf("unexpected payload %v", sent)
		}
		item := v.Items()[0]
		if item.Notes == nil || *item.Notes != "new notes" {
			t.Fatalf("expected local patch, got %v", item.Notes)
		}
		if v.EditingID() != 0 || v.DraftNotes() != "" {
			t.Fatal("edit state should reset after save")
		}
		if fetches != 1 {
			t.Fatalf("save must not refetch, got %d fetches", fetches)
		}
	})

	t.Run("failed save keeps the modal open", func(t *testing.T) {
		var notices []string
		api := &stubAPI{
			fetchFn: load,
			updateFn: func(ctx context.Context, id uint, n *string) *client.Response {
				return nil
			},
		}
		v := newView(t, api, Options{Notify: func(msg string) { notices = append(notices, msg) }})
		v.Load(context.Background())

		v.OpenNotes(1)
		v.SetDraftNotes("new notes")
		v.SaveNotes(context.Background())

		if v.EditingID() != 1 {
			t.Fatal("failed save should keep editing state")
		}
		item := v.Items()[0]
		if item.Notes == nil || *item.Notes != "old notes" {
			t.Fatalf("failed save must not patch locally, got %v", item.Notes)
		}
		if len(notices) != 1 || notices[0] != "Failed to update notes" {
			t.Fatalf("unexpected notices %v", notices)
		}
	})

	t.Run("cancel clears the draft", func(t *testing.T) {
		v := newView(t, &stubAPI{fetchFn: load}, Options{})
		v.Load(context.Background())
		v.OpenNotes(1)
		v.CancelNotes()
		if v.EditingID() != 0 || v.DraftNotes() != "" {
			t.Fatal("cancel should reset edit state")
		}
	})
}

func TestAdminGating(t *testing.T) {
	customer := newView(t, &stubAPI{}, Options{Role: "customer"})
	if customer.CanEditProduct() {
		t.Fatal("customer must not see the edit control")
	}

	admin := newView(t, &stubAPI{}, Options{Role: "admin"})
	if !admin.CanEditProduct() {
		t.Fatal("admin should see the edit control")
	}
	if got := admin.EditProductPath(10); got != "/products/edit/10" {
		t.Fatalf("unexpected path %q", got)
	}
}
