package layout

import (
	"github.com/dshills/termkit/internal/component"
	"github.com/dshills/termkit/internal/core"
)

// Insets are the empty cells left inside a container's edges.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Box stacks visible children along one axis. Children keep their
// preferred extent along the axis and stretch across it. With FillLast
// the last visible child takes the remaining space.
type Box struct {
	Axis     core.Orientation
	Gap      int
	Insets   Insets
	FillLast bool
}

// NewBox creates a box layout. An invalid orientation panics.
func NewBox(axis core.Orientation) *Box {
	axis.Validate()
	return &Box{Axis: axis}
}

func visibleChildren(tree *component.Tree, h core.Handle) []core.Handle {
	var out []core.Handle
	for _, c := range tree.Children(h) {
		if tree.Visible(c) {
			out = append(out, c)
		}
	}
	return out
}

// MinimumSize implements Manager.
func (b *Box) MinimumSize(tree *component.Tree, h core.Handle) core.Size {
	b.Axis.Validate()
	var along, across int
	children := visibleChildren(tree, h)
	for i, c := range children {
		p := PreferredSize(tree, c)
		if i > 0 {
			along += b.Gap
		}
		if b.Axis == core.Vertical {
			along += p.Height
			across = max(across, p.Width)
		} else {
			along += p.Width
			across = max(across, p.Height)
		}
	}

	horiz := b.Insets.Left + b.Insets.Right
	vert := b.Insets.Top + b.Insets.Bottom
	if b.Axis == core.Vertical {
		return core.Size{Width: across + horiz, Height: along + vert}
	}
	return core.Size{Width: along + horiz, Height: across + vert}
}

// Layout implements Manager.
func (b *Box) Layout(tree *component.Tree, h core.Handle) {
	b.Axis.Validate()
	r := tree.Bounds(h)
	inner := core.NewRect(
		r.X+b.Insets.Left,
		r.Y+b.Insets.Top,
		max(0, r.Width-b.Insets.Left-b.Insets.Right),
		max(0, r.Height-b.Insets.Top-b.Insets.Bottom),
	)

	children := visibleChildren(tree, h)
	pos := 0
	for i, c := range children {
		p := PreferredSize(tree, c)
		last := i == len(children)-1
		if b.Axis == core.Vertical {
			height := min(p.Height, max(0, inner.Height-pos))
			if last && b.FillLast {
				height = max(0, inner.Height-pos)
			}
			tree.SetBounds(c, core.NewRect(inner.X, inner.Y+pos, inner.Width, height))
			pos += height + b.Gap
		} else {
			width := min(p.Width, max(0, inner.Width-pos))
			if last && b.FillLast {
				width = max(0, inner.Width-pos)
			}
			tree.SetBounds(c, core.NewRect(inner.X+pos, inner.Y, width, inner.Height))
			pos += width + b.Gap
		}
	}
}
