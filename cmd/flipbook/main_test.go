package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/flipbook/internal/config"
)

func TestRunFixedReachesStartPage(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.StartPage = 4
	cfg.Simulation.Duration = 3 * time.Second

	b, err := newBook(cfg)
	require.NoError(t, err)
	assert.Equal(t, 9, b.PageCount())

	runFixed(b, cfg.Simulation)
	assert.Equal(t, 4, b.CurrentDisplayPage())
	assert.False(t, b.IsBookClosed())
}

func TestDumpPoses(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.StartPage = 2
	cfg.Simulation.Duration = time.Second

	b, err := newBook(cfg)
	require.NoError(t, err)
	runFixed(b, cfg.Simulation)

	path := filepath.Join(t.TempDir(), "poses.yaml")
	require.NoError(t, dumpPoses(path, b))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got poseDump
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Display)
	assert.Len(t, got.Pages, 9)
	assert.Len(t, got.Pages[0].Joints, cfg.Curve.Segments+1)
	assert.Equal(t, "open", got.Pages[0].Phase)
}

func TestRunRealtimeNeedsConfigFile(t *testing.T) {
	b, err := newBook(config.Default())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	assert.Error(t, runRealtime(ctx, b, config.Default(), ""))
}
