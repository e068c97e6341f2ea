/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Point is a 2D coordinate pair. Points compare with exact float equality,
// which the rectangle classifier relies on for corner matching.
type Point struct {
	X, Y float64
}

// Envelope is an axis-aligned bounding box. The zero-area degenerate cases
// (a point or a segment) are valid envelopes; the empty envelope is
// represented by inverted infinite bounds so that merging absorbs the other
// operand and every containment test fails.
type Envelope struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyEnvelope returns the envelope containing no points.
func EmptyEnvelope() Envelope {
	return Envelope{
		XMin: math.Inf(1),
		YMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether e contains no points.
func (e Envelope) IsEmpty() bool {
	return e.XMax < e.XMin || e.YMax < e.YMin
}

// Merge returns the smallest envelope containing both e and o.
func (e Envelope) Merge(o Envelope) Envelope {
	return Envelope{
		XMin: math.Min(e.XMin, o.XMin),
		YMin: math.Min(e.YMin, o.YMin),
		XMax: math.Max(e.XMax, o.XMax),
		YMax: math.Max(e.YMax, o.YMax),
	}
}

// Intersects reports whether e and o share at least one point. Boundaries
// count, so touching envelopes intersect.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return e.XMin <= o.XMax && o.XMin <= e.XMax && e.YMin <= o.YMax && o.YMin <= e.YMax
}

// ContainsPoint reports whether (x, y) lies in e, boundary included.
func (e Envelope) ContainsPoint(x, y float64) bool {
	return e.XMin <= x && x <= e.XMax && e.YMin <= y && y <= e.YMax
}

// Corners returns the four corner points of e.
func (e Envelope) Corners() [4]Point {
	return [4]Point{
		{e.XMin, e.YMin},
		{e.XMin, e.YMax},
		{e.XMax, e.YMin},
		{e.XMax, e.YMax},
	}
}

// FromBounds converts a go-geom bounding box to an Envelope.
func FromBounds(b *geom.Bounds) Envelope {
	if b.IsEmpty() {
		return EmptyEnvelope()
	}
	return Envelope{
		XMin: b.Min(0),
		YMin: b.Min(1),
		XMax: b.Max(0),
		YMax: b.Max(1),
	}
}
