// Storefront CLI: browse the catalog, keep a local cart, request quotes and
// manage the admin session from the terminal. Cart and token live in a local
// state directory and survive between runs, exactly like the web client's
// localStorage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/api"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/cart"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/gate"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/localstore"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/pricing"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/session"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("API_URL", "http://localhost:5000/api"), "API base URL")
	stateDir := flag.String("state", defaultStateDir(), "local state directory (cart, token)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := api.NewClient(*apiURL)
	store := localstore.NewFile(*stateDir)
	basket := cart.New(store)
	sess := session.New(client, store)
	sess.Bootstrap(ctx)

	var err error
	switch args[0] {
	case "products":
		err = runProducts(ctx, client)
	case "cart":
		err = runCart(ctx, client, basket, args[1:])
	case "quote":
		err = runQuote(ctx, client, basket, args[1:])
	case "login":
		err = runLogin(ctx, sess, args[1:])
	case "logout":
		sess.Logout()
		fmt.Println("Déconnecté.")
	case "status":
		runStatus(ctx, sess)
	case "admin":
		runAdmin(ctx, sess, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runProducts(ctx context.Context, client *api.Client) error {
	items, err := client.ListAvailableProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range items {
		fresh := ""
		if p.IsFresh {
			fresh = " [frais]"
		}
		fmt.Printf("#%d  %s%s — %s HT (TVA %.1f%%) — %s\n",
			p.ID, p.Name, fresh, pricing.FormatEUR(p.PriceHT), p.TVA, p.CategoryName)
	}
	return nil
}

func runCart(ctx context.Context, client *api.Client, basket *cart.Store, args []string) error {
	if len(args) == 0 {
		printCart(basket)
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart add <product-id> [qty]")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[1])
		}
		qty := 1
		if len(args) > 2 {
			qty, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity: %s", args[2])
			}
		}

		// Snapshot name and price from the live catalog at add time.
		items, err := client.ListAvailableProducts(ctx)
		if err != nil {
			return err
		}
		for _, p := range items {
			if p.ID == id {
				return basket.Add(cart.Line{
					ProductID:   p.ID,
					Name:        p.Name,
					UnitPriceHT: p.PriceHT,
					TVA:         p.TVA,
					ImageURL:    p.ImageURL,
				}, qty)
			}
		}
		return fmt.Errorf("product %d not found or unavailable", id)

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart remove <product-id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[1])
		}
		return basket.Remove(id)

	case "qty":
		if len(args) < 3 {
			return fmt.Errorf("usage: cart qty <product-id> <quantity>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[1])
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[2])
		}
		return basket.UpdateQuantity(id, qty)

	case "clear":
		return basket.Clear()

	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
}

func printCart(basket *cart.Store) {
	items := basket.Items()
	if len(items) == 0 {
		fmt.Println("Panier vide.")
		return
	}
	for _, l := range items {
		fmt.Printf("#%d  %s  x%d  %s HT\n",
			l.ProductID, l.Name, l.Quantity,
			pricing.FormatEUR(pricing.LineTotalHT(pricing.Line{UnitPriceHT: l.UnitPriceHT, Quantity: l.Quantity})))
	}
	fmt.Printf("\n%d article(s) — Total HT %s — Total TTC %s\n",
		basket.TotalItems(), pricing.FormatEUR(basket.TotalHT()), pricing.FormatEUR(basket.TotalTTC()))
}

// runQuote posts the cart as a quote request through the contact endpoint and
// empties it once the request went through.
func runQuote(ctx context.Context, client *api.Client, basket *cart.Store, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ExitOnError)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	phone := fs.String("phone", "", "phone (optional)")
	note := fs.String("note", "", "free-form note (optional)")
	_ = fs.Parse(args)

	if *name == "" || *email == "" {
		return fmt.Errorf("quote requires -name and -email")
	}
	if basket.TotalItems() == 0 {
		return fmt.Errorf("cart is empty")
	}

	var b strings.Builder
	b.WriteString("Récapitulatif du panier :\n\n")
	for _, l := range basket.Items() {
		b.WriteString(fmt.Sprintf("- %s x%d (%s HT / unité)\n",
			l.Name, l.Quantity, pricing.FormatEUR(l.UnitPriceHT)))
	}
	b.WriteString(fmt.Sprintf("\nTotal HT : %s\nTotal TTC : %s\n",
		pricing.FormatEUR(basket.TotalHT()), pricing.FormatEUR(basket.TotalTTC())))
	if *phone != "" {
		b.WriteString("\nTéléphone : " + *phone + "\n")
	}
	if *note != "" {
		b.WriteString("\n" + *note + "\n")
	}

	err := client.SendContact(ctx, api.ContactMessage{
		Name:    *name,
		Email:   *email,
		Subject: "Demande de devis - Panier de " + *name,
		Message: b.String(),
	})
	if err != nil {
		return err
	}

	fmt.Println("Demande de devis envoyée. Nous vous contacterons rapidement.")
	return basket.Clear()
}

func runLogin(ctx context.Context, sess *session.Manager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}
	if err := sess.Login(ctx, *email, *password); err != nil {
		return fmt.Errorf("connexion refusée: %w", err)
	}
	fmt.Printf("Connecté en tant que %s\n", sess.Admin().Email)
	return nil
}

func runStatus(ctx context.Context, sess *session.Manager) {
	if sess.CheckAuthStatus(ctx) {
		fmt.Printf("Session admin valide (%s)\n", sess.Admin().Email)
		return
	}
	fmt.Println("Non authentifié.")
}

// runAdmin shows the route gate doing its job for a protected page.
func runAdmin(ctx context.Context, sess *session.Manager, args []string) {
	path := "/admin/dashboard"
	if len(args) > 0 {
		path = args[0]
	}

	switch d := gate.Check(ctx, sess, path); d.Kind {
	case gate.ShowLoading:
		fmt.Println("Vérification de la session...")
	case gate.Redirect:
		fmt.Println("Redirection vers", d.Target)
	case gate.Allow:
		fmt.Printf("Accès autorisé à %s (admin %s)\n", path, sess.Admin().Email)
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jana-storefront"
	}
	return filepath.Join(home, ".jana-storefront")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront [flags] <command>

commands:
  products                      list available products
  cart                          show the cart
  cart add <id> [qty]           add a product
  cart qty <id> <quantity>      change a quantity (0 removes)
  cart remove <id>              remove a product
  cart clear                    empty the cart
  quote -name N -email E        send the cart as a quote request
  login -email E -password P    admin login
  logout                        drop the admin session
  status                        check the admin session
  admin [path]                  simulate opening a protected admin page`)
}
