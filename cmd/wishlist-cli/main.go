// Command wishlist-cli is a terminal consumer of the wishlist API. It
// drives the same client and view model a graphical frontend would.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/avargas/shoplist-backend/pkg/client"
	"github.com/avargas/shoplist-backend/pkg/env"
	"github.com/avargas/shoplist-backend/pkg/logger"
	"github.com/avargas/shoplist-backend/pkg/wishlistview"
)

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("url", env.Get("SHOPLIST_API_URL", "http://localhost:8080"), "API base url")
	email := flag.String("email", os.Getenv("SHOPLIST_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("SHOPLIST_PASSWORD"), "account password")
	add := flag.Uint("add", 0, "product id to add before listing")
	notes := flag.String("notes", "", "notes for -add")
	remove := flag.Uint("remove", 0, "wishlist item id to remove")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "wishlist-cli", Level: logger.ParseLevel(*logLevel)})
	ctx := context.Background()

	api, err := client.New(client.Options{BaseURL: *baseURL, Logger: logg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "client setup failed: %v\n", err)
		os.Exit(1)
	}

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "missing -email/-password (or SHOPLIST_EMAIL/SHOPLIST_PASSWORD)")
		os.Exit(1)
	}

	login := api.Login(ctx, *email, *password)
	if login == nil || !login.Success {
		fmt.Fprintln(os.Stderr, "login failed:", responseMessage(login))
		os.Exit(1)
	}

	var session client.Session
	role := ""
	if err := login.DecodeData(&session); err == nil && session.User != nil {
		role = session.User.Role
	}

	if *add != 0 {
		input := client.CreateWishlistItemInput{ProductID: *add}
		if *notes != "" {
			input.Notes = notes
		}
		resp := api.CreateWishlistItem(ctx, input)
		fmt.Println(responseMessage(resp))
	}

	view, err := wishlistview.New(api, wishlistview.Options{
		Role:    role,
		Confirm: promptYesNo,
		Notify:  func(msg string) { fmt.Println(msg) },
		Logger:  logg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "view setup failed: %v\n", err)
		os.Exit(1)
	}

	view.Load(ctx)
	if view.Err() != "" {
		fmt.Fprintln(os.Stderr, view.Err())
		os.Exit(1)
	}

	if *remove != 0 {
		view.Remove(ctx, *remove)
	}

	render(view)
}

func render(view *wishlistview.View) {
	if view.Empty() {
		fmt.Println("Your wishlist is empty")
		return
	}

	fmt.Println("My Wishlist")
	for _, item := range view.Items() {
		name := "Unknown Product"
		price := "0.00"
		if item.Product != nil {
			name = item.Product.Name
			price = item.Product.Price.StringFixed(2)
		}
		line := fmt.Sprintf("  #%d  %s  $%s", item.ID, name, price)
		if item.Notes != nil && *item.Notes != "" {
			line += "  (" + *item.Notes + ")"
		}
		if view.CanEditProduct() && item.Product != nil {
			line += "  edit: " + view.EditProductPath(item.Product.ID)
		}
		fmt.Println(line)
	}
}

func promptYesNo(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func responseMessage(resp *client.Response) string {
	if resp == nil {
		return "request failed"
	}
	return resp.Message
}
