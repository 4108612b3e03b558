// Command docmark renders raw documentation comments to Markdown the way an
// editor tooltip would show them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docmark/internal/config"
	"git.home.luguber.info/inful/docmark/internal/logfields"
	"git.home.luguber.info/inful/docmark/internal/markdown"
	"git.home.luguber.info/inful/docmark/internal/metrics"
	"git.home.luguber.info/inful/docmark/internal/render"
	"git.home.luguber.info/inful/docmark/internal/store"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:""`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render struct {
		File   string `arg:"" optional:"" help:"Comment file to render (stdin when omitted)"`
		Symbol string `short:"s" help:"Render the stored comment for a symbol instead of a file"`
	} `cmd:"" help:"Render a raw documentation comment to Markdown"`

	Put struct {
		Symbol string `arg:"" help:"Symbol key to store the comment under"`
		File   string `arg:"" optional:"" help:"Comment file to store (stdin when omitted)"`
	} `cmd:"" help:"Store a raw comment in the comment store"`

	Watch struct {
		File   string `arg:"" help:"Comment file to watch and re-render on change"`
		Output string `short:"o" help:"Write rendered Markdown to this file instead of stdout"`
	} `cmd:"" help:"Watch a comment file and re-render whenever it changes"`

	Links struct {
		File string `arg:"" optional:"" help:"Comment file to render and audit (stdin when omitted)"`
	} `cmd:"" help:"Render a comment and report the links in the result"`
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docmark: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	renderer := render.New(render.WithRecorder(newRecorder(cfg)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch kctx.Command() {
	case "render", "render <file>":
		err = runRender(ctx, cfg, renderer)
	case "put <symbol>", "put <symbol> <file>":
		err = runPut(ctx, cfg)
	case "watch <file>":
		err = runWatch(ctx, renderer)
	case "links", "links <file>":
		err = runLinks(ctx, cfg, renderer)
	default:
		err = fmt.Errorf("unknown command: %s", kctx.Command())
	}
	if err != nil {
		slog.Error("command failed", logfields.Error(err))
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newRecorder(cfg *config.Config) metrics.Recorder {
	if !cfg.Metrics.Enabled {
		return metrics.NoopRecorder{}
	}
	return metrics.NewPrometheusRecorder(prom.NewRegistry())
}

// readInput resolves the comment text for render-style commands: a stored
// symbol, a file, or stdin, in that order of preference.
func readInput(ctx context.Context, cfg *config.Config, file, symbol string) (string, error) {
	if symbol != "" {
		s, err := store.Open(cfg.Store.Path)
		if err != nil {
			return "", err
		}
		defer func() { _ = s.Close() }()
		return s.Get(ctx, symbol)
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read comment file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runRender(ctx context.Context, cfg *config.Config, renderer *render.Renderer) error {
	raw, err := readInput(ctx, cfg, CLI.Render.File, CLI.Render.Symbol)
	if err != nil {
		return err
	}
	fmt.Println(renderer.Text(strings.TrimRight(raw, "\n")))
	return nil
}

func runPut(ctx context.Context, cfg *config.Config) error {
	raw, err := readInput(ctx, cfg, CLI.Put.File, "")
	if err != nil {
		return err
	}
	s, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.Put(ctx, CLI.Put.Symbol, raw); err != nil {
		return err
	}
	slog.Info("stored comment", logfields.Symbol(CLI.Put.Symbol), logfields.Path(cfg.Store.Path))
	return nil
}

func runLinks(ctx context.Context, cfg *config.Config, renderer *render.Renderer) error {
	raw, err := readInput(ctx, cfg, CLI.Links.File, "")
	if err != nil {
		return err
	}
	rendered := renderer.Text(strings.TrimRight(raw, "\n"))
	links := markdown.ExtractLinks([]byte(rendered))
	if len(links) == 0 {
		fmt.Println("no links")
		return nil
	}
	for _, l := range links {
		fmt.Printf("%s\t%s\n", l.Kind, l.Destination)
	}
	return nil
}
