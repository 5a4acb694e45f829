package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
	"github.com/murkotick/product-lookup-service/internal/app/product/repo"
	"github.com/murkotick/product-lookup-service/internal/app/product/usecases/seed_products"
	"github.com/murkotick/product-lookup-service/internal/config"
	"github.com/murkotick/product-lookup-service/internal/pkg/committer"
)

// The administrative seeding path. The lookup service itself is read-only;
// this tool is the only writer of the products table outside of migrations.
//
// Rows come from the JSON file named by SEED_FILE, or from defaultRows when
// unset. All rows are applied in a single atomic commit.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rows := defaultRows()
	if path := os.Getenv("SEED_FILE"); path != "" {
		rows, err = readSeedFile(path)
		if err != nil {
			log.Fatalf("read seed file: %v", err)
		}
	}
	if len(rows) == 0 {
		log.Fatal("no rows to seed")
	}

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	seeder := seed_products.NewHandler(repo.NewProductRepo(), committer.NewAdapter(client))
	n, err := seeder.Execute(ctx, rows)
	if err != nil {
		log.Fatalf("apply seed plan: %v", err)
	}

	fmt.Printf("Seeded %d products into %s\n", n, cfg.SpannerDatabase)
}

type seedRow struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func readSeedFile(path string) ([]*domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []seedRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}

	// Row validation happens in the seeding handler.
	out := make([]*domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, &domain.Product{ID: r.ID, Name: r.Name, Description: r.Description, Price: r.Price})
	}
	return out, nil
}

func defaultRows() []*domain.Product {
	str := func(s string) *string { return &s }
	f64 := func(f float64) *float64 { return &f }

	return []*domain.Product{
		{ID: 100, Name: str("Widget A"), Description: str("Premium widget for testing"), Price: f64(19.99)},
		{ID: 101, Name: str("Widget B"), Description: str("Budget widget"), Price: f64(4.5)},
		{ID: 102, Name: str("Gadget"), Description: nil, Price: f64(129.0)},
		{ID: 103, Name: str("Mystery Item"), Description: str("Price to be announced"), Price: nil},
	}
}
