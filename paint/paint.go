// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides a minimal CPU painter for rendering 2D plot
// graphics to an image.RGBA, using the golang.org/x/image/vector
// rasterizer for antialiased shapes and basicfont for text.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/plotview/math32"
	"golang.org/x/image/vector"
)

// Painter renders antialiased 2D shapes and text onto an RGBA image.
// It is not safe for concurrent use: each goroutine that renders
// needs its own Painter.
type Painter struct {

	// Image is the target image, rendered over with each call.
	Image *image.RGBA

	ras vector.Rasterizer
}

// NewPainter returns a new [Painter] rendering to a new image
// of the given size.
func NewPainter(width, height int) *Painter {
	return NewPainterFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewPainterFromRGBA returns a new [Painter] rendering directly
// onto the given image.
func NewPainterFromRGBA(img *image.RGBA) *Painter {
	return &Painter{Image: img}
}

// Size returns the pixel size of the target image.
func (pc *Painter) Size() image.Point {
	return pc.Image.Rect.Size()
}

// Clear fills the entire image with the given color,
// replacing any existing content.
func (pc *Painter) Clear(clr color.Color) {
	draw.Draw(pc.Image, pc.Image.Rect, image.NewUniform(clr), image.Point{}, draw.Src)
}

// FillBox fills the given box with the given color.
// Axis-aligned fills are done directly without antialiasing
// so that adjacent boxes tile without seams.
func (pc *Painter) FillBox(box math32.Box2, clr color.Color) {
	r := box.ToRect().Intersect(pc.Image.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(pc.Image, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeBox strokes the boundary of the given box with a line
// of the given width.
func (pc *Painter) StrokeBox(box math32.Box2, width float32, clr color.Color) {
	tl := box.Min
	tr := math32.Vec2(box.Max.X, box.Min.Y)
	br := box.Max
	bl := math32.Vec2(box.Min.X, box.Max.Y)
	pc.Line(tl, tr, width, clr)
	pc.Line(tr, br, width, clr)
	pc.Line(br, bl, width, clr)
	pc.Line(bl, tl, width, clr)
}

// Line strokes a line segment from start to end with the given width.
// Zero-length segments are not rendered.
func (pc *Painter) Line(start, end math32.Vector2, width float32, clr color.Color) {
	dir := end.Sub(start)
	length := dir.Length()
	if length == 0 {
		return
	}
	// offset each endpoint by half the width along the segment normal,
	// producing the stroke outline as a filled quad.
	norm := math32.Vec2(-dir.Y, dir.X).DivScalar(length).MulScalar(width / 2)
	pc.FillPolygon([]math32.Vector2{
		start.Add(norm),
		end.Add(norm),
		end.Sub(norm),
		start.Sub(norm),
	}, clr)
}

// Polyline strokes connected line segments through the given points.
func (pc *Painter) Polyline(points []math32.Vector2, width float32, clr color.Color) {
	for i := 1; i < len(points); i++ {
		pc.Line(points[i-1], points[i], width, clr)
	}
}

// FillCircle fills a circle of the given radius centered at center.
func (pc *Painter) FillCircle(center math32.Vector2, radius float32, clr color.Color) {
	if radius <= 0 {
		return
	}
	const segments = 32
	pts := make([]math32.Vector2, segments)
	for i := range pts {
		ang := 2 * math32.Pi * float32(i) / segments
		pts[i] = center.Add(math32.Vec2(radius*math32.Cos(ang), radius*math32.Sin(ang)))
	}
	pc.FillPolygon(pts, clr)
}

// FillPolygon fills the polygon with the given vertices,
// using the non-zero winding rule.
func (pc *Painter) FillPolygon(points []math32.Vector2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	sz := pc.Size()
	pc.ras.Reset(sz.X, sz.Y)
	pc.ras.DrawOp = draw.Over
	pc.ras.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		pc.ras.LineTo(p.X, p.Y)
	}
	pc.ras.ClosePath()
	pc.ras.Draw(pc.Image, pc.Image.Rect, image.NewUniform(clr), image.Point{})
}
