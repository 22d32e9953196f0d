package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// DefaultProgressInterval is the animation period of an indeterminate bar.
const DefaultProgressInterval = 100 * time.Millisecond

// ProgressBar shows how far a task has got. An indeterminate bar animates
// a bouncing block from a periodic task on the event loop instead.
type ProgressBar struct {
	Base
	min, max int
	value    int
	width    int

	interval      time.Duration
	indeterminate bool
	phase         int
	stop          func()
}

// NewProgressBar creates a bar over [min, max] at min.
func NewProgressBar(host Host, min, max int) *ProgressBar {
	if max < min {
		core.PanicUsage("NewProgressBar", "max %d below min %d", max, min)
	}
	b := &ProgressBar{min: min, max: max, value: min, width: 20, interval: DefaultProgressInterval}
	b.init(host, b)
	return b
}

// Value returns the current value.
func (b *ProgressBar) Value() int { return b.value }

// SetValue sets the value, clamped to [min, max].
func (b *ProgressBar) SetValue(v int) {
	b.value = max(b.min, min(v, b.max))
}

// Percent returns the completed fraction in [0, 1].
func (b *ProgressBar) Percent() float64 {
	if b.max == b.min {
		return 1
	}
	return float64(b.value-b.min) / float64(b.max-b.min)
}

// SetInterval sets the animation period used by the next SetIndeterminate.
func (b *ProgressBar) SetInterval(d time.Duration) {
	if d > 0 {
		b.interval = d
	}
}

// IsIndeterminate reports whether the bar is animating.
func (b *ProgressBar) IsIndeterminate() bool { return b.indeterminate }

// SetIndeterminate starts or stops the animation. The animation also stops
// when ctx ends.
func (b *ProgressBar) SetIndeterminate(ctx context.Context, on bool) {
	if on == b.indeterminate {
		return
	}
	b.indeterminate = on
	if on {
		b.stop = b.host.Loop().Periodic(ctx, b.interval, b.tick)
		return
	}
	if b.stop != nil {
		b.stop()
		b.stop = nil
	}
	b.phase = 0
}

// Phase returns the number of animation steps taken.
func (b *ProgressBar) Phase() int { return b.phase }

func (b *ProgressBar) tick() {
	if b.indeterminate {
		b.phase++
	}
}

// PreferredSize implements layout.Sizer.
func (b *ProgressBar) PreferredSize() core.Size {
	return core.Size{Width: b.width, Height: 1}
}

// Paint implements component.Paintable.
func (b *ProgressBar) Paint(s component.Surface, clip core.Rect) {
	r := b.Bounds()
	if r.Width <= 0 {
		return
	}
	if b.indeterminate {
		s.DrawText(r.X, r.Y, bounce(r.Width, b.phase), styleNormal)
		return
	}
	label := fmt.Sprintf(" %3d%%", int(b.Percent()*100))
	cells := max(0, r.Width-len(label))
	filled := int(b.Percent() * float64(cells))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	s.DrawText(r.X, r.Y, bar+label, styleNormal)
}

// bounce renders a three-cell block moving back and forth across width
// cells.
func bounce(width, phase int) string {
	const block = 3
	span := max(1, width-block)
	pos := phase % (2 * span)
	if pos > span {
		pos = 2*span - pos
	}
	cells := []rune(strings.Repeat("░", width))
	for i := pos; i < pos+block && i < width; i++ {
		cells[i] = '█'
	}
	return string(cells)
}
