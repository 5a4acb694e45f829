// Command productctl is a small terminal front end over the lookup API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/murkotick/product-lookup-service/internal/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "productctl",
		Usage: "look up products served by the product lookup service",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "fetch a product by id and print it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "base URL of the lookup service",
						Value: "http://localhost:8080",
					},
					&cli.StringFlag{
						Name:     "id",
						Usage:    "product id (positive integer)",
						Required: true,
					},
				},
				Action: getAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	fetcher := client.New(cmd.String("addr"))
	search := client.NewSearch(fetcher)

	switch search.Submit(ctx, cmd.String("id")) {
	case client.StateSuccess:
		printView(search)
		return nil
	case client.StateError:
		return fmt.Errorf("%s", search.Message())
	default:
		// Guarded input: the search never fired.
		fmt.Println("nothing to look up: id must be a positive integer")
		return nil
	}
}

func printView(s *client.Search) {
	v := s.Result()
	fmt.Printf("ID:          %d\n", v.ID)
	fmt.Printf("Name:        %s\n", strOr(v.Name, "-"))
	fmt.Printf("Description: %s\n", strOr(v.Description, "-"))
	if v.Price != nil {
		fmt.Printf("Price:       %.2f\n", *v.Price)
	} else {
		fmt.Printf("Price:       -\n")
	}
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
