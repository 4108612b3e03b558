package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/docmark/internal/logfields"
	"git.home.luguber.info/inful/docmark/internal/observability"
	"git.home.luguber.info/inful/docmark/internal/render"
)

// watchDebounce coalesces the event bursts editors produce on save.
const watchDebounce = 500 * time.Millisecond

func runWatch(ctx context.Context, renderer *render.Renderer) error {
	absPath, err := filepath.Abs(CLI.Watch.File)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	ctx = observability.WithRunID(ctx, uuid.NewString())
	ctx = observability.WithDocument(ctx, absPath)
	observability.InfoContext(ctx, "watching comment file")

	if err := renderOnce(ctx, renderer, absPath); err != nil {
		observability.WarnContext(ctx, "initial render failed", logfields.Error(err))
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			observability.InfoContext(ctx, "watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath || !(event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := renderOnce(ctx, renderer, absPath); err != nil {
				observability.WarnContext(ctx, "render failed", logfields.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			observability.WarnContext(ctx, "watcher error", logfields.Error(err))
		}
	}
}

func renderOnce(ctx context.Context, renderer *render.Renderer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read comment file: %w", err)
	}
	rendered := renderer.Text(strings.TrimRight(string(data), "\n"))

	if CLI.Watch.Output != "" {
		if err := os.WriteFile(CLI.Watch.Output, []byte(rendered+"\n"), 0o644); err != nil {
			return fmt.Errorf("write rendered output: %w", err)
		}
		observability.DebugContext(ctx, "rendered comment", logfields.Path(CLI.Watch.Output))
		return nil
	}
	fmt.Println(rendered)
	return nil
}
