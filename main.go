package main

import (
	"auction-engine/internal/ledger"
	"auction-engine/internal/server"
	"fmt"
	"os"
)

func main() {

	auctionLedger := ledger.New()

	seedAuction(auctionLedger)

	router := server.SetupRouter(auctionLedger)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAuction registers sample users and items and opens the items for
// bidding, so the API is usable out of the box.
func seedAuction(l *ledger.Ledger) {
	users := []struct {
		name  string
		funds uint32
	}{
		{"Alice", 16000},
		{"Bob", 4902},
		{"Carol", 792},
		{"Dean", 0},
		{"Edgar", 1024},
	}
	for _, u := range users {
		if _, err := l.AddUser(u.name, u.funds); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed user %s: %v\n", u.name, err)
		}
	}

	items := []struct {
		name          string
		startingValue uint32
	}{
		{"Rug", 70},
		{"Sunflowers", 1853},
		{"Ficus", 120},
		{"Pineapple", 60},
	}
	for _, it := range items {
		item, err := l.AddItem(it.name, it.startingValue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed item %s: %v\n", it.name, err)
			continue
		}
		if err := l.OpenItem(item.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open item %s: %v\n", it.name, err)
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
