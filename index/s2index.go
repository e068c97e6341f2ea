/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package index generates S2 cell tokens for feeding geometries into the
// engine's geospatial index.
package index

import (
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geotoolkit/geo"
)

const (
	// MinCellLevel is the smallest cell level (largest cell size) used by
	// indexing.
	MinCellLevel = 5 // Approx 250km x 380km
	// MaxCellLevel is the largest cell level (smallest cell size) used by
	// indexing.
	MaxCellLevel = 16 // Approx 120m x 180m
	// MaxCells is the maximum number of cells to use when indexing regions.
	MaxCells = 18
)

// Parents and cover carry different prefixes so queries can look up only the
// kind they need.
const (
	parentPrefix = "p/"
	coverPrefix  = "c/"
)

// Tokens returns the index tokens for a geometry: parent tokens for all cells
// up to MinCellLevel that contain it, and cover tokens for the smallest cells
// that cover it.
func Tokens(g geom.T) ([]string, error) {
	parents, cover, err := indexCells(g)
	if err != nil {
		return nil, err
	}
	toks := make([]string, 0, len(parents)+len(cover))
	toks = append(toks, toTokens(parents, parentPrefix)...)
	toks = append(toks, toTokens(cover, coverPrefix)...)
	return toks, nil
}

// CoverTokens returns the cover tokens for an envelope, for query-side
// lookups against an index built with Tokens. An empty envelope has no
// tokens.
func CoverTokens(e geo.Envelope) []string {
	if e.IsEmpty() {
		return nil
	}
	cu := coverRegion(loopFromEnvelope(e))
	return toTokens(cu, coverPrefix)
}

// NearTokens returns the cover tokens for the cap of the given radius in
// meters around a point.
func NearTokens(p *geom.Point, maxDistance float64) ([]string, error) {
	if maxDistance <= 0 {
		return nil, errors.Wrap(geo.ErrInvalidInput, "max distance must be positive")
	}
	if len(p.FlatCoords()) == 0 {
		return nil, errors.Wrap(geo.ErrInvalidInput, "cannot index an empty geometry")
	}
	c := s2.CapFromCenterAngle(pointFromPoint(p), earthAngle(maxDistance))
	return toTokens(coverRegion(c), coverPrefix), nil
}

func indexCells(g geom.T) (parents, cover s2.CellUnion, err error) {
	if g.Stride() != 2 {
		return nil, nil, errors.Wrapf(geo.ErrTypeMismatch,
			"covering only available for 2D coordinates")
	}
	if len(g.FlatCoords()) == 0 {
		return nil, nil, errors.Wrap(geo.ErrInvalidInput, "cannot index an empty geometry")
	}
	switch v := g.(type) {
	case *geom.Point:
		p, c := indexCellsForPoint(v, MinCellLevel, MaxCellLevel)
		return p, c, nil
	case *geom.Polygon:
		l, err := loopFromPolygon(v)
		if err != nil {
			return nil, nil, err
		}
		cover := coverRegion(l)
		return getParentCells(cover, MinCellLevel), cover, nil
	default:
		return nil, nil, errors.Wrapf(geo.ErrTypeMismatch,
			"cannot index geometry of type %T", v)
	}
}

func pointFromCoord(r geom.Coord) s2.Point {
	// The geojson spec says that coordinates are specified as [long, lat].
	ll := s2.LatLngFromDegrees(r.Y(), r.X())
	return s2.PointFromLatLng(ll)
}

func pointFromPoint(p *geom.Point) s2.Point {
	return pointFromCoord(p.Coords())
}

// loopFromPolygon converts a polygon's outer ring to an s2.Loop. Holes are
// skipped; covering the outer ring covers the holes too.
func loopFromPolygon(p *geom.Polygon) (*s2.Loop, error) {
	r := p.LinearRing(0)
	n := r.NumCoords()
	if n < 4 {
		return nil, errors.Wrapf(geo.ErrInvalidInput, "cannot convert ring with less than 4 points")
	}
	// S2 wants loops in CCW orientation, but there is no such restriction on
	// the input. Assume polygons span less than a hemisphere and flip when
	// the planar orientation check disagrees.
	reverse := isClockwise(r)
	l := loopFromRing(r, reverse)

	// The clockwise check was approximate, so verify via the cap bound.
	if l.CapBound().Radius().Degrees() > 90 {
		l = loopFromRing(r, !reverse)
	}
	return l, nil
}

// isClockwise checks ring orientation with the shoelace formula. This is the
// planar algorithm used as a fast approximation; it breaks for rings spanning
// the poles or the antimeridian.
func isClockwise(r *geom.LinearRing) bool {
	var a float64
	n := r.NumCoords()
	for i := 0; i < n; i++ {
		p1 := r.Coord(i)
		p2 := r.Coord((i + 1) % n)
		a += (p2.X() - p1.X()) * (p1.Y() + p2.Y())
	}
	return a > 0
}

func loopFromRing(r *geom.LinearRing, reverse bool) *s2.Loop {
	// Rings repeat the last coordinate to close the loop. S2 loops are
	// implicitly closed and don't allow repeats, so skip the last point.
	n := r.NumCoords()
	pts := make([]s2.Point, n-1)
	for i := 0; i < n-1; i++ {
		var c geom.Coord
		if reverse {
			c = r.Coord(n - 1 - i)
		} else {
			c = r.Coord(i)
		}
		pts[i] = pointFromCoord(c)
	}
	return s2.LoopFromPoints(pts)
}

func loopFromEnvelope(e geo.Envelope) *s2.Loop {
	// Corner order is CCW for an axis-aligned box in lng/lat space.
	pts := []s2.Point{
		pointFromCoord(geom.Coord{e.XMin, e.YMin}),
		pointFromCoord(geom.Coord{e.XMax, e.YMin}),
		pointFromCoord(geom.Coord{e.XMax, e.YMax}),
		pointFromCoord(geom.Coord{e.XMin, e.YMax}),
	}
	return s2.LoopFromPoints(pts)
}

// indexCellsForPoint creates cells for a point from minLevel to maxLevel,
// both inclusive.
func indexCellsForPoint(p *geom.Point, minLevel, maxLevel int) (s2.CellUnion, s2.CellUnion) {
	ll := s2.LatLngFromDegrees(p.Y(), p.X())
	c := s2.CellIDFromLatLng(ll)
	cells := make([]s2.CellID, maxLevel-minLevel+1)
	for l := minLevel; l <= maxLevel; l++ {
		cells[l-minLevel] = c.Parent(l)
	}
	return cells, []s2.CellID{c.Parent(maxLevel)}
}

func getParentCells(cu s2.CellUnion, minLevel int) s2.CellUnion {
	parents := make(map[s2.CellID]bool)
	for _, c := range cu {
		for l := c.Level(); l >= minLevel; l-- {
			parents[c.Parent(l)] = true
		}
	}
	cells := make([]s2.CellID, 0, len(parents))
	for k := range parents {
		cells = append(cells, k)
	}
	return cells
}

func coverRegion(r s2.Region) s2.CellUnion {
	rc := &s2.RegionCoverer{
		MinLevel: MinCellLevel,
		MaxLevel: MaxCellLevel,
		LevelMod: 0,
		MaxCells: MaxCells,
	}
	return rc.Covering(r)
}

func toTokens(cu s2.CellUnion, prefix string) []string {
	toks := make([]string, len(cu))
	for i, c := range cu {
		toks[i] = prefix + c.ToToken()
	}
	return toks
}
