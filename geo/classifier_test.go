/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func ring(t *testing.T, coords ...geom.Coord) *geom.Polygon {
	t.Helper()
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{coords})
}

func TestIsPointOrRectanglePoint(t *testing.T) {
	env := Envelope{0, 0, 2, 3}
	// Any point matches any envelope; the fast path never needs the exact
	// rectangle comparison for points.
	require.True(t, IsPointOrRectangle(point(t, 1, 1), env))
	require.True(t, IsPointOrRectangle(point(t, 100, -100), env))
	require.True(t, IsPointOrRectangle(geom.NewPointEmpty(geom.XY), env))
}

func TestIsPointOrRectangleMatches(t *testing.T) {
	env := Envelope{0, 0, 2, 3}

	require.True(t, IsPointOrRectangle(
		ring(t, geom.Coord{0, 0}, geom.Coord{2, 0}, geom.Coord{2, 3}, geom.Coord{0, 3}, geom.Coord{0, 0}), env))

	// Corner matching is order independent.
	require.True(t, IsPointOrRectangle(
		ring(t, geom.Coord{2, 3}, geom.Coord{0, 3}, geom.Coord{0, 0}, geom.Coord{2, 0}, geom.Coord{2, 3}), env))

	// Vertices may repeat a corner; distinct coverage is not enforced.
	require.True(t, IsPointOrRectangle(
		ring(t, geom.Coord{0, 0}, geom.Coord{0, 0}, geom.Coord{2, 3}, geom.Coord{0, 3}), env))
}

func TestIsPointOrRectangleRejects(t *testing.T) {
	env := Envelope{0, 0, 2, 3}

	// Not a polygon.
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {2, 0}, {2, 3}, {0, 3}})
	require.False(t, IsPointOrRectangle(ls, env))

	// A corner perturbed by an epsilon: equality is exact, not approximate.
	require.False(t, IsPointOrRectangle(
		ring(t, geom.Coord{0, 0}, geom.Coord{2, 0}, geom.Coord{2, 3 + 1e-9}, geom.Coord{0, 3}, geom.Coord{0, 0}), env))

	// Five vertices.
	require.False(t, IsPointOrRectangle(
		ring(t, geom.Coord{0, 0}, geom.Coord{2, 0}, geom.Coord{2, 3}, geom.Coord{1, 4}, geom.Coord{0, 3}), env))

	// A vertex off the corner set.
	require.False(t, IsPointOrRectangle(
		ring(t, geom.Coord{0, 0}, geom.Coord{2, 0}, geom.Coord{1, 1}, geom.Coord{0, 3}, geom.Coord{0, 0}), env))

	// More than one ring.
	holed := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{0, 0}, {2, 0}, {2, 3}, {0, 3}, {0, 0}},
		{{0.5, 0.5}, {1, 0.5}, {1, 1}, {0.5, 1}, {0.5, 0.5}},
	})
	require.False(t, IsPointOrRectangle(holed, env))
}
