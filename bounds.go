// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import "math"

// BoundingBox accumulates the extent of the absolute points visited while
// flattening a path. Control points count; arc extrema do not.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBox returns a box that contains nothing.
func EmptyBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Add grows b to include (x, y).
func (b *BoundingBox) Add(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

// Empty reports whether no point was added.
func (b BoundingBox) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b BoundingBox) W() float64 { return b.MaxX - b.MinX }

func (b BoundingBox) H() float64 { return b.MaxY - b.MinY }
