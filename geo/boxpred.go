/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Planar predicates between an atomic geometry and an envelope. These back
// the Disjoint and Contains traversals; both treat boundaries as part of the
// geometry.

// geometryDisjoint reports whether g and e share no point.
func geometryDisjoint(g geom.T, e Envelope) bool {
	if e.IsEmpty() || isEmpty(g) {
		return true
	}
	if !e.Intersects(FromBounds(g.Bounds())) {
		return true
	}
	switch v := g.(type) {
	case *geom.Point:
		return !e.ContainsPoint(v.X(), v.Y())
	case *geom.LineString:
		return !pathIntersectsBox(v.FlatCoords(), v.Stride(), false, e)
	case *geom.Polygon:
		for i := 0; i < v.NumLinearRings(); i++ {
			r := v.LinearRing(i)
			if pathIntersectsBox(r.FlatCoords(), r.Stride(), true, e) {
				return false
			}
		}
		// No boundary contact: the box is entirely inside or entirely
		// outside every ring, so one corner decides.
		c := e.Corners()[0]
		return !polygonCovers(v, c.X, c.Y)
	}
	return true
}

// geometryCovers reports whether g contains all of e.
func geometryCovers(g geom.T, e Envelope) bool {
	if e.IsEmpty() || isEmpty(g) {
		return false
	}
	switch v := g.(type) {
	case *geom.Point:
		// A point only contains a box degenerate to that exact point.
		return e.XMin == v.X() && e.XMax == v.X() && e.YMin == v.Y() && e.YMax == v.Y()
	case *geom.LineString:
		if e.XMin != e.XMax || e.YMin != e.YMax {
			return false
		}
		return pointOnPath(v.FlatCoords(), v.Stride(), e.XMin, e.YMin)
	case *geom.Polygon:
		for _, c := range e.Corners() {
			if !polygonCovers(v, c.X, c.Y) {
				return false
			}
		}
		// A ring passing through the box interior would put part of the
		// box outside the polygon or inside a hole.
		for i := 0; i < v.NumLinearRings(); i++ {
			r := v.LinearRing(i)
			flat, stride := r.FlatCoords(), r.Stride()
			n := len(flat) / stride
			for j := 0; j < n; j++ {
				k := (j + 1) % n
				x0, y0 := flat[j*stride], flat[j*stride+1]
				x1, y1 := flat[k*stride], flat[k*stride+1]
				if x0 == x1 && y0 == y1 {
					continue
				}
				if segmentCrossesInterior(x0, y0, x1, y1, e) {
					return false
				}
			}
		}
		return true
	}
	return false
}

// pathIntersectsBox reports whether the polyline given by flat coordinates
// touches the closed box e. With closed set the path is treated as a ring:
// the final coordinate connects back to the first, whether or not the ring
// stores a closing duplicate.
func pathIntersectsBox(flat []float64, stride int, closed bool, e Envelope) bool {
	n := len(flat) / stride
	for i := 0; i < n; i++ {
		if e.ContainsPoint(flat[i*stride], flat[i*stride+1]) {
			return true
		}
	}
	edges := boxEdges(e)
	strategy := &lineintersector.RobustLineIntersector{}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		j := (i + 1) % n
		a := geom.Coord{flat[i*stride], flat[i*stride+1]}
		b := geom.Coord{flat[j*stride], flat[j*stride+1]}
		if a[0] == b[0] && a[1] == b[1] {
			continue
		}
		for _, edge := range edges {
			res := lineintersector.LineIntersectsLine(strategy, a, b, edge[0], edge[1])
			if res.HasIntersection() {
				return true
			}
		}
	}
	return false
}

func boxEdges(e Envelope) [4][2]geom.Coord {
	ll := geom.Coord{e.XMin, e.YMin}
	lr := geom.Coord{e.XMax, e.YMin}
	ur := geom.Coord{e.XMax, e.YMax}
	ul := geom.Coord{e.XMin, e.YMax}
	return [4][2]geom.Coord{{ll, lr}, {lr, ur}, {ur, ul}, {ul, ll}}
}

// segmentCrossesInterior reports whether the segment (x0,y0)-(x1,y1) has a
// point strictly inside e. Liang-Barsky clipping; a segment lying on the box
// boundary does not count.
func segmentCrossesInterior(x0, y0, x1, y1 float64, e Envelope) bool {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if !clip(-dx, x0-e.XMin) || !clip(dx, e.XMax-x0) ||
		!clip(-dy, y0-e.YMin) || !clip(dy, e.YMax-y0) {
		return false
	}
	// The clipped midpoint is strictly interior iff a positive-length piece
	// of the segment is.
	tm := (t0 + t1) / 2
	mx, my := x0+tm*dx, y0+tm*dy
	return e.XMin < mx && mx < e.XMax && e.YMin < my && my < e.YMax
}

type ringLocation int

const (
	ringOutside ringLocation = iota
	ringBoundary
	ringInside
)

// polygonCovers reports whether (x, y) is inside p or on its boundary.
func polygonCovers(p *geom.Polygon, x, y float64) bool {
	if p.NumLinearRings() == 0 {
		return false
	}
	outer := p.LinearRing(0)
	switch locateInRing(x, y, outer.FlatCoords(), outer.Stride()) {
	case ringOutside:
		return false
	case ringBoundary:
		return true
	}
	for i := 1; i < p.NumLinearRings(); i++ {
		hole := p.LinearRing(i)
		if locateInRing(x, y, hole.FlatCoords(), hole.Stride()) == ringInside {
			return false
		}
	}
	return true
}

// locateInRing classifies a point against a ring using the winding number
// (non-zero rule), treating the ring as closed whether or not the last
// coordinate repeats the first.
func locateInRing(x, y float64, flat []float64, stride int) ringLocation {
	winding := 0
	n := len(flat) / stride
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x0, y0 := flat[i*stride], flat[i*stride+1]
		x1, y1 := flat[j*stride], flat[j*stride+1]
		if x0 == x1 && y0 == y1 {
			continue
		}
		if (y > y0 && y > y1) || (y < y0 && y < y1) {
			continue
		}
		side := (x-x0)*(y1-y0) - (x1-x0)*(y-y0)
		if side == 0 &&
			min(x0, x1) <= x && x <= max(x0, x1) &&
			min(y0, y1) <= y && y <= max(y0, y1) {
			return ringBoundary
		}
		// Half-open ranges so shared vertices are not double counted.
		if side < 0 && y0 <= y && y < y1 {
			winding++
		} else if side > 0 && y1 <= y && y < y0 {
			winding--
		}
	}
	if winding != 0 {
		return ringInside
	}
	return ringOutside
}

// pointOnPath reports whether (x, y) lies on one of the polyline's segments.
func pointOnPath(flat []float64, stride int, x, y float64) bool {
	n := len(flat) / stride
	for i := 0; i+1 < n; i++ {
		x0, y0 := flat[i*stride], flat[i*stride+1]
		x1, y1 := flat[(i+1)*stride], flat[(i+1)*stride+1]
		cross := (x-x0)*(y1-y0) - (x1-x0)*(y-y0)
		if cross != 0 {
			continue
		}
		if min(x0, x1) <= x && x <= max(x0, x1) && min(y0, y1) <= y && y <= max(y0, y1) {
			return true
		}
	}
	return false
}
