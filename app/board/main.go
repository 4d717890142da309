package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/satriahrh/wordd"
	"github.com/satriahrh/wordd/config"
	"github.com/satriahrh/wordd/service"
)

func main() {
	lang := flag.String("lang", "en", "language to deal from")
	width := flag.Int("width", 5, "tiles per row")
	configFile := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Languages = []string{*lang}

	board, err := dealBoard(context.Background(), cfg, *lang, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printBoard(os.Stdout, board, *width)
}

// dealBoard deals a width x width board from a fresh bag.
func dealBoard(ctx context.Context, cfg config.Config, lang string, width int) ([]string, error) {
	registry, err := wordd.Load(ctx, cfg, zap.NewNop())
	if err != nil {
		return nil, err
	}
	return service.NewService(registry, service.Options{}, zap.NewNop()).DealRack(ctx, lang, width*width)
}

func printBoard(w io.Writer, board []string, width int) {
	for i, tile := range board {
		fmt.Fprintf(w, "%2v %v", i, tile)
		if (i+1)%width == 0 || i == len(board)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " --- ")
		}
	}
}
