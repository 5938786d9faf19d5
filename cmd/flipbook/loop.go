package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/flipbook/internal/config"
	"github.com/Faultbox/flipbook/internal/engine/book"
	"github.com/Faultbox/flipbook/internal/engine/page"
	"github.com/Faultbox/flipbook/internal/logger"
)

// runFixed simulates sim.Duration at a fixed frame rate as fast as possible.
func runFixed(b *book.Book, sim config.SimulationConfig) {
	fps := max(sim.FPS, 1)
	dt := 1 / float64(fps)
	total := int(sim.Duration.Seconds() * float64(fps))

	b.SetTargetPage(sim.StartPage)
	logger.Info("simulating",
		zap.Int("target", b.TargetPage()),
		zap.Int("frames", total),
		zap.Int("fps", fps),
	)

	for i := 0; i < total; i++ {
		step(b, dt, i)
	}
}

// runRealtime drives the book from a wall-clock ticker and applies config
// file changes between frames until ctx is cancelled.
func runRealtime(ctx context.Context, b *book.Book, cfg *config.Config, path string) error {
	if path == "" {
		return errors.New("--watch needs a config file")
	}

	reloads := make(chan *config.Config, 1)
	go func() {
		err := config.Watch(ctx, path, func(c *config.Config) {
			// Keep only the newest config when the frame loop lags.
			select {
			case <-reloads:
			default:
			}
			reloads <- c
		})
		if err != nil {
			logger.Error("config watcher stopped", zap.Error(err))
		}
	}()

	fps := max(cfg.Simulation.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	b.SetTargetPage(cfg.Simulation.StartPage)
	logger.Info("running in real time", zap.String("config", path), zap.Int("fps", fps))

	last := time.Now()
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case c := <-reloads:
			if err := b.SetTuning(book.ConfigFrom(c).Tuning); err != nil {
				logger.Warn("rejected tuning", zap.Error(err))
				continue
			}
			b.SetTargetPage(c.Simulation.StartPage)
			logger.Info("config reloaded", zap.Int("target", b.TargetPage()))
		case now := <-ticker.C:
			step(b, now.Sub(last).Seconds(), frame)
			last = now
		}
	}
}

// step runs one frame and logs navigation progress.
func step(b *book.Book, dt float64, frame int) {
	before := b.CurrentDisplayPage()
	b.OnFrame(dt)
	if after := b.CurrentDisplayPage(); after != before {
		logger.Info("page turned",
			zap.Int("frame", frame),
			zap.Int("display", after),
			zap.Int("target", b.TargetPage()),
			zap.Bool("book_closed", b.IsBookClosed()),
		)
	}
}

// poseDump is the YAML layout written by --dump.
type poseDump struct {
	Display    int         `yaml:"display"`
	Target     int         `yaml:"target"`
	BookClosed bool        `yaml:"book_closed"`
	Pages      []page.Pose `yaml:"pages"`
}

func dumpPoses(path string, b *book.Book) error {
	data, err := yaml.Marshal(poseDump{
		Display:    b.CurrentDisplayPage(),
		Target:     b.TargetPage(),
		BookClosed: b.IsBookClosed(),
		Pages:      b.Poses(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
