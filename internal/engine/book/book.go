// Package book assembles pages, the navigation controller and the curvature
// solver into one flip-book driven by a per-frame callback.
package book

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flipbook/internal/config"
	"github.com/Faultbox/flipbook/internal/engine/navigation"
	"github.com/Faultbox/flipbook/internal/engine/page"
	"github.com/Faultbox/flipbook/internal/logger"
)

// Config gathers the engine settings of a book.
type Config struct {
	Geometry   page.Geometry
	Tuning     page.Tuning
	Navigation navigation.Config
}

// DefaultConfig returns the stock page size, tuning and stepping.
func DefaultConfig() Config {
	return Config{
		Geometry:   page.DefaultGeometry(),
		Tuning:     page.DefaultTuning(),
		Navigation: navigation.DefaultConfig(),
	}
}

// ConfigFrom maps loaded settings onto engine settings.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Geometry: page.Geometry{
			Width:          cfg.Book.PageWidth,
			Height:         cfg.Book.PageHeight,
			Depth:          cfg.Book.PageDepth,
			HeightSegments: cfg.Book.HeightSegments,
		},
		Tuning: page.Tuning{
			InsideCurveStrength:  cfg.Curve.InsideStrength,
			OutsideCurveStrength: cfg.Curve.OutsideStrength,
			TurningCurveStrength: cfg.Curve.TurningStrength,
			EasingFactor:         cfg.Curve.Easing,
			EasingFactorFold:     cfg.Curve.EasingFold,
			SegmentCount:         cfg.Curve.Segments,
			TurnDuration:         cfg.Curve.TurnDuration,
			CurveSplit:           cfg.Curve.CurveSplit,
			FoldStart:            cfg.Curve.FoldStart,
			StackOffsetDeg:       cfg.Curve.StackOffsetDeg,
			FoldAngleDeg:         cfg.Curve.FoldAngleDeg,
			Damping:              page.DampingMode(cfg.Curve.Damping),
		},
		Navigation: navigation.Config{
			FastStep:    cfg.Navigation.FastStep,
			SlowStep:    cfg.Navigation.SlowStep,
			FarDistance: cfg.Navigation.FarDistance,
		},
	}
}

// Book is a stack of pages turned by navigation requests.
// All methods must be called from the goroutine running the frame loop.
type Book struct {
	cfg    Config
	pages  []*page.Page
	nav    *navigation.Controller
	solver *page.Solver
	closed bool
}

// New creates a book with one page per content entry. Pages have no mesh
// until AttachMesh or AttachAll is called.
func New(cfg Config, contents []Content) (*Book, error) {
	if len(contents) == 0 {
		return nil, errors.New("book needs at least one page")
	}
	if !(cfg.Geometry.Width > 0) || !(cfg.Geometry.Height > 0) || cfg.Geometry.HeightSegments < 1 {
		return nil, fmt.Errorf("invalid page geometry %+v", cfg.Geometry)
	}
	solver, err := page.NewSolver(cfg.Tuning)
	if err != nil {
		return nil, err
	}

	b := &Book{
		cfg:    cfg,
		pages:  make([]*page.Page, len(contents)),
		nav:    navigation.New(len(contents), cfg.Navigation),
		solver: solver,
	}
	for i, c := range contents {
		b.pages[i] = page.New(i, c.Front, c.Back, false)
	}

	logger.Info("book created",
		zap.Int("pages", len(b.pages)),
		zap.Int("segments", cfg.Tuning.SegmentCount),
		zap.String("damping", string(cfg.Tuning.Damping)),
	)
	return b, nil
}

// AttachMesh builds the skeleton and mesh of page i, marking it ready to animate.
func (b *Book) AttachMesh(i int) error {
	p := b.Page(i)
	if p == nil {
		return fmt.Errorf("page %d out of range [0, %d)", i, len(b.pages))
	}
	if err := p.Attach(b.cfg.Geometry, b.cfg.Tuning.SegmentCount); err != nil {
		return err
	}
	logger.Debug("page mesh attached",
		zap.Int("page", i),
		zap.Int("vertices", len(p.Mesh().Vertices)),
	)
	return nil
}

// DetachMesh releases the skeleton and mesh of page i. The page keeps its
// pose and stops animating until it is attached again.
func (b *Book) DetachMesh(i int) {
	if p := b.Page(i); p != nil {
		p.Detach()
	}
}

// AttachAll attaches every page's mesh.
func (b *Book) AttachAll() error {
	for i := range b.pages {
		if err := b.AttachMesh(i); err != nil {
			return err
		}
	}
	return nil
}

// SetTargetPage requests page n. Out of range values are clamped.
func (b *Book) SetTargetPage(n int) {
	if b.closed {
		return
	}
	b.nav.SetTarget(n)
}

// ClickPage turns the clicked page: an opened page turns back, a closed page
// turns over.
func (b *Book) ClickPage(i int) {
	p := b.Page(i)
	if p == nil {
		return
	}
	p.Appearance().Highlighted = false
	if b.nav.Opened(i) {
		b.SetTargetPage(i)
	} else {
		b.SetTargetPage(i + 1)
	}
}

// Highlight marks page i as hovered or not.
func (b *Book) Highlight(i int, on bool) {
	if p := b.Page(i); p != nil {
		p.Appearance().Highlighted = on
	}
}

// OnFrame advances navigation and every page pose by dt seconds.
func (b *Book) OnFrame(dt float64) {
	if b.closed || dt < 0 {
		return
	}
	b.nav.Update(dt)

	display := b.nav.Display()
	bookClosed := b.nav.BookClosed()
	for _, p := range b.pages {
		b.solver.Update(p, page.State{
			Opened:     b.nav.Opened(p.Index),
			BookClosed: bookClosed,
			Depth:      float32(display-p.Index) * b.cfg.Geometry.Depth,
		}, float32(dt))
	}
}

// SetTuning swaps the solver constants. A new segment count rebuilds the
// skeleton of every attached page.
func (b *Book) SetTuning(t page.Tuning) error {
	if err := b.solver.SetTuning(t); err != nil {
		return err
	}
	rebuild := t.SegmentCount != b.cfg.Tuning.SegmentCount
	b.cfg.Tuning = t
	if !rebuild {
		return nil
	}
	for _, p := range b.pages {
		if !p.Ready() {
			continue
		}
		if err := p.Attach(b.cfg.Geometry, t.SegmentCount); err != nil {
			return err
		}
	}
	logger.Info("page skeletons rebuilt", zap.Int("segments", t.SegmentCount))
	return nil
}

// Close stops navigation. Later frames and navigation requests are ignored.
func (b *Book) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.nav.Stop()
	logger.Debug("book closed", zap.Int("display", b.nav.Display()))
}

// CurrentDisplayPage returns the page position the book shows.
func (b *Book) CurrentDisplayPage() int { return b.nav.Display() }

// TargetPage returns the requested page.
func (b *Book) TargetPage() int { return b.nav.Target() }

// IsBookClosed reports whether the book rests on either cover.
func (b *Book) IsBookClosed() bool { return b.nav.BookClosed() }

// IsPageOpened reports whether page i has been turned over.
func (b *Book) IsPageOpened(i int) bool { return b.nav.Opened(i) }

// PageCount returns the number of pages.
func (b *Book) PageCount() int { return len(b.pages) }

// Page returns page i, or nil when out of range.
func (b *Book) Page(i int) *page.Page {
	if i < 0 || i >= len(b.pages) {
		return nil
	}
	return b.pages[i]
}

// Poses snapshots every page for the renderer.
func (b *Book) Poses() []page.Pose {
	out := make([]page.Pose, len(b.pages))
	for i, p := range b.pages {
		out[i] = p.Pose(b.cfg.Tuning.TurnDuration)
	}
	return out
}
