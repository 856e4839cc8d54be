package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry as the API serves it.
type Product struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    *string         `json:"image"`
}

// WishlistItem is a wishlist row, with the product attached when the
// server still knows it.
type WishlistItem struct {
	ID        uint     `json:"id"`
	UserID    uint     `json:"user_id"`
	ProductID uint     `json:"product_id"`
	Notes     *string  `json:"notes"`
	Product   *Product `json:"product,omitempty"`
}

// CreateWishlistItemInput is the payload for saving a product.
type CreateWishlistItemInput struct {
	ProductID uint    `json:"productId"`
	Notes     *string `json:"notes,omitempty"`
}

type updateWishlistItemInput struct {
	Notes *string `json:"notes"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the payload returned by login and register.
type Session struct {
	AccessToken string `json:"access_token"`
	User        *struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Login authenticates and, on success, stores the token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) *Response {
	resp := c.do(ctx, http.MethodPost, "/api/v1/auth/login", loginInput{Email: email, Password: password})
	if resp != nil && resp.Success {
		var session Session
		if err := resp.DecodeData(&session); err == nil && session.AccessToken != "" {
			c.SetToken(session.AccessToken)
		}
	}
	return resp
}

// CreateWishlistItem saves a product to the wishlist.
func (c *Client) CreateWishlistItem(ctx context.Context, input CreateWishlistItemInput) *Response {
	return c.do(ctx, http.MethodPost, "/api/v1/wishlist", input)
}

// FetchWishlist returns the caller's full wishlist.
func (c *Client) FetchWishlist(ctx context.Context) *Response {
	return c.do(ctx, http.MethodGet, "/api/v1/wishlist", nil)
}

// GetWishlistItem returns one wishlist row by id.
func (c *Client) GetWishlistItem(ctx context.Context, id uint) *Response {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/wishlist/%d", id), nil)
}

// UpdateWishlistItem replaces the notes on a wishlist row.
func (c *Client) UpdateWishlistItem(ctx context.Context, id uint, notes *string) *Response {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/wishlist/%d", id), updateWishlistItemInput{Notes: notes})
}

// DeleteWishlistItem removes a wishlist row.
func (c *Client) DeleteWishlistItem(ctx context.Context, id uint) *Response {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/wishlist/%d", id), nil)
}

// ListProducts returns the whole catalog.
func (c *Client) ListProducts(ctx context.Context) *Response {
	return c.do(ctx, http.MethodGet, "/api/v1/products", nil)
}
