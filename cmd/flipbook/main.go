// Package main is the entry point of the headless flip-book driver. It builds
// a book from the configured pictures, navigates it and logs the page turns.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/flipbook/internal/config"
	"github.com/Faultbox/flipbook/internal/engine/book"
	"github.com/Faultbox/flipbook/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Flipbook ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveEnabled() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	b, err := newBook(cfg)
	if err != nil {
		logger.Error("failed to create book", zap.Error(err))
		os.Exit(1)
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.WatchEnabled() {
		err = runRealtime(ctx, b, cfg, config.ResolvedPath())
	} else {
		runFixed(b, cfg.Simulation)
	}
	if err != nil {
		logger.Error("frame loop failed", zap.Error(err))
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := dumpPoses(path, b); err != nil {
			logger.Error("failed to dump poses", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("poses written", zap.String("path", path))
	}

	logger.Info("done",
		zap.Int("display", b.CurrentDisplayPage()),
		zap.Bool("closed", b.IsBookClosed()),
	)
}

// newBook builds the book described by cfg with every page mesh attached.
func newBook(cfg *config.Config) (*book.Book, error) {
	contents := book.BuildContents(cfg.Book.Pictures, cfg.Book.Cover, cfg.Book.BackCover)
	b, err := book.New(book.ConfigFrom(cfg), contents)
	if err != nil {
		return nil, err
	}
	if err := b.AttachAll(); err != nil {
		return nil, fmt.Errorf("attaching page meshes: %w", err)
	}
	return b, nil
}
