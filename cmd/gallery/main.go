package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/spf13/pflag"
	"github.com/zagvozdeen/irys-gallery/client"
	"github.com/zagvozdeen/irys-gallery/config"
	"github.com/zagvozdeen/irys-gallery/internal/gallery"
	"log/slog"
	"os"
	"time"
)

const usage = `Usage: gallery [flags] <command> [args]

Commands:
  health              check that the API is up
  connect <wallet>    find or register the user owning a wallet
  artworks            list artworks (--page, --limit, --search)

Flags:
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:]); err != nil {
		logger.Error("Command failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gallery", pflag.ContinueOnError)
	baseURL := flags.String("base-url", config.APIBaseURL, "gallery API base URL")
	timeout := flags.Duration("timeout", 15*time.Second, "request timeout")
	page := flags.Int("page", gallery.DefaultPage, "artworks page")
	limit := flags.Int("limit", gallery.DefaultLimit, "artworks per page")
	search := flags.String("search", "", "filter artworks by title or description")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return fmt.Errorf("missing command")
	}

	c := client.New(*baseURL, client.WithTimeout(*timeout))
	ctx := context.Background()

	var out any
	var err error
	switch cmd := flags.Arg(0); cmd {
	case "health":
		out, err = c.Health(ctx)
	case "connect":
		if flags.NArg() < 2 {
			return fmt.Errorf("connect: wallet address is required")
		}
		user, created, cerr := c.ConnectWallet(ctx, flags.Arg(1))
		out, err = map[string]any{"user": user, "created": created}, cerr
	case "artworks":
		artworks, lerr := c.ListArtworks(ctx, gallery.ArtworkQuery{Page: *page, Limit: *limit, Search: *search})
		out, err = map[string]any{"artworks": artworks}, lerr
	default:
		flags.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
