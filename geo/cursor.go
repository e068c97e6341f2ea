/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "github.com/twpayne/go-geom"

// A Cursor is a single-pass, forward-only sequence over the atomic components
// of a geometry. Multi geometries and geometry collections decompose
// recursively; each leaf point, line string or polygon is yielded exactly
// once. A Cursor is not restartable and must not be shared across goroutines.
type Cursor struct {
	pending []geom.T
}

// NewCursor returns a cursor over the atomic components of g.
func NewCursor(g geom.T) *Cursor {
	return &Cursor{pending: []geom.T{g}}
}

// Next returns the next atomic component, or false when the sequence is
// exhausted.
func (c *Cursor) Next() (geom.T, bool) {
	for len(c.pending) > 0 {
		n := len(c.pending) - 1
		g := c.pending[n]
		c.pending = c.pending[:n]

		switch v := g.(type) {
		case *geom.GeometryCollection:
			// Reverse order so components pop in document order.
			for i := v.NumGeoms() - 1; i >= 0; i-- {
				c.pending = append(c.pending, v.Geom(i))
			}
		case *geom.MultiPoint:
			for i := v.NumPoints() - 1; i >= 0; i-- {
				c.pending = append(c.pending, v.Point(i))
			}
		case *geom.MultiLineString:
			for i := v.NumLineStrings() - 1; i >= 0; i-- {
				c.pending = append(c.pending, v.LineString(i))
			}
		case *geom.MultiPolygon:
			for i := v.NumPolygons() - 1; i >= 0; i-- {
				c.pending = append(c.pending, v.Polygon(i))
			}
		default:
			return g, true
		}
	}
	return nil, false
}

// isEmpty reports whether g has no coordinates.
func isEmpty(g geom.T) bool {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		for _, sub := range gc.Geoms() {
			if !isEmpty(sub) {
				return false
			}
		}
		return true
	}
	return len(g.FlatCoords()) == 0
}

// numVertices returns the number of stored coordinates of an atomic geometry.
func numVertices(g geom.T) int {
	return len(g.FlatCoords()) / g.Stride()
}
