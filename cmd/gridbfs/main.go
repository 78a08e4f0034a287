// Command gridbfs animates a breadth-first search over a grid board.
//
// Usage:
//
//	gridbfs [-layout board.yaml] [-mode tui|text|serve] [-delay 30ms]
//	        [-every 1] [-order down,up,right,left] [-addr :8080]
//
// In tui mode the board is drawn in the terminal; Esc, q or Ctrl-C stop the
// search and, once it has finished, exit. text mode prints ASCII frames to
// stdout. serve mode starts the HTTP API on -addr (default $PORT or :8080).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/render"
	"github.com/katalvlaran/gridbfs/route"
	"github.com/katalvlaran/gridbfs/server"
)

type config struct {
	layout string
	mode   string
	delay  time.Duration
	every  int
	order  string
	addr   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridbfs", flag.ContinueOnError)
	fs.StringVar(&cfg.layout, "layout", "", "YAML layout file (default: built-in classic board)")
	fs.StringVar(&cfg.mode, "mode", "tui", "tui, text or serve")
	fs.DurationVar(&cfg.delay, "delay", 30*time.Millisecond, "pause after each frame")
	fs.IntVar(&cfg.every, "every", 1, "text mode: print every n-th step frame")
	fs.StringVar(&cfg.order, "order", "", "neighbor order, e.g. down,up,right,left")
	fs.StringVar(&cfg.addr, "addr", "", "serve mode: listen address (default $PORT or :8080)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.addr = ":" + port
		} else {
			cfg.addr = ":8080"
		}
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.mode == "serve" {
		return serve(ctx, cfg.addr)
	}

	l, err := loadLayout(cfg.layout)
	if err != nil {
		return err
	}
	g, err := l.Build()
	if err != nil {
		return err
	}
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if cfg.order != "" {
		order, err := parseOrder(cfg.order)
		if err != nil {
			return err
		}
		opts = append(opts, bfs.WithNeighborOrder(order))
	}

	switch cfg.mode {
	case "text":
		sink := render.NewText(stdout, render.WithEvery(cfg.every), render.WithDelay(cfg.delay))
		res, err := bfs.Search(g, l.Start, l.End, append(opts, bfs.WithRenderer(sink))...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, summary(res))
		return sink.Err()
	case "tui":
		return animate(ctx, g, l, cfg.delay, opts)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}

// animate draws the search in the terminal and waits for the viewer to quit.
func animate(ctx context.Context, g *grid.Grid, l grid.Layout, delay time.Duration, opts []bfs.Option) error {
	scr, err := render.OpenScreen(delay)
	if err != nil {
		return err
	}
	defer scr.Close()
	scr.Watch()

	res, err := bfs.Search(g, l.Start, l.End, append(opts, bfs.WithRenderer(scr), bfs.WithRunning(scr.Running))...)
	if err != nil {
		return err
	}
	scr.Status(summary(res) + "  (esc/q to quit)")
	for scr.Running() && ctx.Err() == nil {
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}

func serve(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{Addr: addr, Handler: server.NewRouter(server.DefaultConfig())}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Printf("[INFO] server stopped")
	return nil
}

func loadLayout(path string) (grid.Layout, error) {
	if path == "" {
		return grid.Classic(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return grid.Layout{}, err
	}
	defer f.Close()
	return grid.LoadLayout(f)
}

func parseOrder(s string) ([]route.Direction, error) {
	var order []route.Direction
	for _, name := range strings.Split(s, ",") {
		d, err := route.ParseDirection(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		order = append(order, d)
	}
	return order, nil
}

func summary(res *bfs.Result) string {
	switch res.Outcome {
	case bfs.Found:
		return fmt.Sprintf("path found: %d steps, %d cells explored", res.Len(), len(res.Visited))
	case bfs.NoPath:
		return fmt.Sprintf("no path: %d cells explored", len(res.Visited))
	default:
		return fmt.Sprintf("cancelled after %d cells", len(res.Visited))
	}
}
