// Package main provides a tool to seed the catalog with sample books.
//
// Records go through the service layer, so they are validated and escaped
// exactly like API-created ones.
//
// Usage:
//
//	DB_PATH=./data/db go run ./cmd/seed
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shelfmarkapp/shelfmark-server/internal/service"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
	"github.com/shelfmarkapp/shelfmark-server/internal/validation"
)

var samples = []service.CreateBookInput{
	{Title: "1984", Author: "George Orwell", Description: "A dystopian novel of surveillance and control.", Quantity: qty(5)},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Description: "The Jazz Age through the eyes of Nick Carraway.", Quantity: qty(4)},
	{Title: "Brave New World", Author: "Aldous Huxley", Description: "A future of engineered contentment.", Quantity: qty(7)},
	{Title: "Fahrenheit 451", Author: "Ray Bradbury", Description: "Firemen burn books in a world without them.", Quantity: qty(3)},
	{Title: "Slaughterhouse-Five", Author: "Kurt Vonnegut", Description: "Billy Pilgrim comes unstuck in time.", Quantity: qty(2)},
	{Title: "Catch-22", Author: "Joseph Heller", Description: "There was only one catch, and that was Catch-22.", Quantity: qty(6)},
}

func qty(n int) *int { return &n }

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/db"
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	books := service.NewBookService(s, validation.New(), nil)

	ctx := context.Background()
	for _, in := range samples {
		book, err := books.Create(ctx, in)
		if err != nil {
			log.Fatalf("Failed to create %q: %v", in.Title, err)
		}
		fmt.Printf("  created %s  %q by %s\n", book.ID, book.Title, book.Author)
	}

	fmt.Printf("Seeded %d books\n", len(samples))
}
