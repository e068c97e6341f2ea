/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "github.com/twpayne/go-geom"

// IsPointOrRectangle reports whether g is a point, or a single-ring polygon
// whose four vertices all lie on the corners of e. Points match any envelope:
// the engine uses this as a fast path for spatial predicates and a point
// never needs the exact rectangle comparison.
//
// Corner matching is set membership with exact float equality. Vertices may
// repeat a corner, so a degenerate "rectangle" that does not cover all four
// corners still passes; callers double-check exactly where that matters.
func IsPointOrRectangle(g geom.T, e Envelope) bool {
	if _, ok := g.(*geom.Point); ok {
		return true
	}
	poly, ok := g.(*geom.Polygon)
	if !ok {
		return false
	}
	if poly.NumLinearRings() != 1 {
		return false
	}
	ring := poly.LinearRing(0)
	coords := ring.Coords()
	// Rings usually close by repeating the first vertex; that repeat is not
	// a corner of its own.
	if n := len(coords); n > 1 && coords[0].Equal(geom.XY, coords[n-1]) {
		coords = coords[:n-1]
	}
	if len(coords) != 4 {
		return false
	}
	corners := make(map[Point]struct{}, 4)
	for _, c := range e.Corners() {
		corners[c] = struct{}{}
	}
	for _, c := range coords {
		if _, ok := corners[Point{c.X(), c.Y()}]; !ok {
			return false
		}
	}
	return true
}
