package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flipbook/internal/config"
	"github.com/Faultbox/flipbook/internal/engine/page"
)

const frame = 1.0 / 60

func newBook(t *testing.T, pages int) *Book {
	t.Helper()
	contents := make([]Content, pages)
	b, err := New(DefaultConfig(), contents)
	require.NoError(t, err)
	require.NoError(t, b.AttachAll())
	return b
}

// frames runs n frames and records the display page after each.
func frames(b *Book, n int) []int {
	out := make([]int, n)
	for i := range out {
		b.OnFrame(frame)
		out[i] = b.CurrentDisplayPage()
	}
	return out
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Geometry.Width = 0
	_, err = New(cfg, make([]Content, 2))
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Tuning.SegmentCount = 0
	_, err = New(cfg, make([]Content, 2))
	assert.Error(t, err)
}

func TestConfigFromDefaultsMatchesEngineDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ConfigFrom(config.Default()))
}

func TestNavigateForward(t *testing.T) {
	b := newBook(t, 8)
	b.SetTargetPage(3)

	seen := []int{0}
	for _, d := range frames(b, 120) {
		if d != seen[len(seen)-1] {
			seen = append(seen, d)
		}
		assert.LessOrEqual(t, d, 3)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
	assert.Equal(t, 3, b.CurrentDisplayPage())
	assert.False(t, b.IsBookClosed())
	assert.True(t, b.IsPageOpened(2))
	assert.False(t, b.IsPageOpened(3))
}

func TestRapidDoubleNavigation(t *testing.T) {
	b := newBook(t, 8)
	b.SetTargetPage(5)
	for b.CurrentDisplayPage() < 3 {
		b.OnFrame(frame)
	}

	b.SetTargetPage(2)
	prev := b.CurrentDisplayPage()
	for _, d := range frames(b, 240) {
		assert.LessOrEqual(t, d, prev, "must not move away from the new target")
		assert.GreaterOrEqual(t, d, 2)
		prev = d
	}
	assert.Equal(t, 2, b.CurrentDisplayPage())
}

func TestTargetIsClamped(t *testing.T) {
	b := newBook(t, 4)
	b.SetTargetPage(40)
	assert.Equal(t, 4, b.TargetPage())
	frames(b, 120)
	assert.Equal(t, 4, b.CurrentDisplayPage())
	assert.True(t, b.IsBookClosed(), "past the last page the book is shut again")

	b.SetTargetPage(-3)
	frames(b, 120)
	assert.Equal(t, 0, b.CurrentDisplayPage())
}

func TestClosedBookPagesLieFlat(t *testing.T) {
	b := newBook(t, 4)
	b.SetTargetPage(2)
	frames(b, 120)

	b.SetTargetPage(4)
	frames(b, 900)
	require.True(t, b.IsBookClosed())

	for _, pose := range b.Poses() {
		assert.Equal(t, "open", pose.Phase)
		for i, r := range pose.Joints[1:] {
			assert.InDelta(t, 0, r.Bend, 1e-4, "page %d joint %d", pose.Index, i+1)
		}
	}
}

func TestPagesWaitForMesh(t *testing.T) {
	b, err := New(DefaultConfig(), make([]Content, 3))
	require.NoError(t, err)

	b.SetTargetPage(1)
	frames(b, 60)
	assert.Equal(t, 1, b.CurrentDisplayPage(), "navigation does not wait for meshes")
	assert.Equal(t, page.Rotation{}, b.Page(0).GroupRotation())
	assert.Nil(t, b.Poses()[0].Joints)

	require.NoError(t, b.AttachMesh(0))
	frames(b, 60)
	assert.Less(t, b.Page(0).GroupRotation().Bend, float32(0), "opened page swings once ready")

	assert.Error(t, b.AttachMesh(3))

	b.DetachMesh(0)
	b.DetachMesh(7)
	swing := b.Page(0).GroupRotation()
	b.SetTargetPage(0)
	frames(b, 60)
	assert.Equal(t, swing, b.Page(0).GroupRotation(), "detached page holds its pose")
	assert.Nil(t, b.Poses()[0].Joints)

	require.NoError(t, b.AttachMesh(0))
	frames(b, 60)
	assert.NotEqual(t, swing, b.Page(0).GroupRotation(), "reattached page animates again")
}

func TestDepthFollowsDisplayPage(t *testing.T) {
	b := newBook(t, 4)
	b.SetTargetPage(2)
	frames(b, 120)

	depth := DefaultConfig().Geometry.Depth
	poses := b.Poses()
	assert.InDelta(t, 2*depth, poses[0].Depth, 1e-7)
	assert.InDelta(t, 0, poses[2].Depth, 1e-7)
	assert.InDelta(t, -depth, poses[3].Depth, 1e-7)
}

func TestClickPage(t *testing.T) {
	b := newBook(t, 6)

	b.ClickPage(0)
	assert.Equal(t, 1, b.TargetPage(), "closed page turns over")
	frames(b, 60)

	b.ClickPage(0)
	assert.Equal(t, 0, b.TargetPage(), "opened page turns back")

	b.ClickPage(99)
	assert.Equal(t, 0, b.TargetPage())
}

func TestHighlight(t *testing.T) {
	b := newBook(t, 3)
	b.Highlight(1, true)
	frames(b, 60)

	poses := b.Poses()
	assert.InDelta(t, page.HighlightEmissive, poses[1].Emissive, 1e-3)
	assert.Zero(t, poses[0].Emissive)

	b.ClickPage(1)
	assert.False(t, b.Page(1).Appearance().Highlighted, "click clears hover")
}

func TestSetTuningRebuildsSkeletons(t *testing.T) {
	b := newBook(t, 2)
	require.NoError(t, b.AttachMesh(0))

	tuning := page.DefaultTuning()
	tuning.SegmentCount = 12
	require.NoError(t, b.SetTuning(tuning))
	assert.Len(t, b.Page(0).Skeleton().Joints, 13)
	assert.Len(t, b.Page(1).Skeleton().Joints, 13)

	tuning.TurnDuration = 0
	assert.Error(t, b.SetTuning(tuning))
	assert.Len(t, b.Page(0).Skeleton().Joints, 13)
}

func TestCloseStopsEverything(t *testing.T) {
	b := newBook(t, 4)
	b.SetTargetPage(3)
	b.OnFrame(frame)
	b.Close()

	before := b.Page(0).GroupRotation()
	b.SetTargetPage(0)
	frames(b, 60)
	assert.Equal(t, 1, b.CurrentDisplayPage())
	assert.Equal(t, before, b.Page(0).GroupRotation())
	b.Close()
}

func TestBuildContents(t *testing.T) {
	tests := []struct {
		name     string
		pictures []string
		want     []Content
	}{
		{
			name: "no pictures",
			want: []Content{{Front: "cover", Back: "back"}},
		},
		{
			name:     "one picture",
			pictures: []string{"a"},
			want:     []Content{{"cover", "a"}, {"", "back"}},
		},
		{
			name:     "pairs up",
			pictures: []string{"a", "b", "c", "d"},
			want:     []Content{{"cover", "a"}, {"b", "c"}, {"d", "back"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildContents(tt.pictures, "cover", "back"))
		})
	}

	assert.Len(t, BuildContents(config.Default().Book.Pictures, "c", "b"), 9)
}
