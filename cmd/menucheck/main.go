// menucheck resolves the ordering service and fetches the menu once, for
// verifying a deployment's backend wiring from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"storefront/internal/backend"
	"storefront/internal/config"
	"storefront/internal/ordering"
)

func main() {
	var (
		configPath string
		timeout    time.Duration
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Fetch timeout")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	base := backend.Resolve(cfg.Backend.URL, cfg.Backend.Override, cfg.Server.Origin)
	client := ordering.New(base, zap.NewNop(), timeout, cfg.SubmitTimeout())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	catalog, err := client.FetchCatalog(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "menu fetch failed: %v\n", err)
		os.Exit(1)
	}

	items := 0
	for _, cat := range catalog {
		items += len(cat.Items)
		fmt.Printf("%s: %d items\n", cat.Category, len(cat.Items))
	}
	fmt.Printf("ok: %d categories, %d items from %s\n", len(catalog), items, base)
}
