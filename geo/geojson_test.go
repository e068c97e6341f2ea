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

func TestFromGeoJSONEmptyOverrides(t *testing.T) {
	g, err := FromGeoJSON([]byte(`{"type":"Point","coordinates":[]}`))
	require.NoError(t, err)
	require.IsType(t, &geom.Point{}, g)
	require.Empty(t, g.FlatCoords())

	g, err = FromGeoJSON([]byte(`{"type":"Polygon","coordinates":[]}`))
	require.NoError(t, err)
	require.IsType(t, &geom.Polygon{}, g)
	require.Empty(t, g.FlatCoords())
}

func TestFromGeoJSONDelegates(t *testing.T) {
	g, err := FromGeoJSON([]byte(`{"type":"Point","coordinates":[3,4]}`))
	require.NoError(t, err)
	p, ok := g.(*geom.Point)
	require.True(t, ok)
	require.Equal(t, 3.0, p.X())
	require.Equal(t, 4.0, p.Y())

	// Empty types outside the override table go through the codec.
	g, err = FromGeoJSON([]byte(`{"type":"MultiPoint","coordinates":[]}`))
	require.NoError(t, err)
	require.IsType(t, &geom.MultiPoint{}, g)
}

func TestFromGeoJSONInvalid(t *testing.T) {
	for _, doc := range []string{
		`{"type":"Point","coordinates":`,
		`{"type":"Point","coordinates":[1]}`,
		`{"type":"Curve","coordinates":[]}`,
		`thisisntjson`,
		`{}`,
	} {
		_, err := FromGeoJSON([]byte(doc))
		require.Error(t, err, doc)
		require.ErrorIs(t, err, ErrInvalidInput, doc)
		require.Contains(t, err.Error(), "invalid GeoJSON", doc)
	}
}

func TestToGeoJSONEmptyOverrides(t *testing.T) {
	out, err := ToGeoJSON(geom.NewPointEmpty(geom.XY))
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Point","coordinates":[]}`, string(out))

	out, err = ToGeoJSON(geom.NewLineString(geom.XY))
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"LineString","coordinates":[]}`, string(out))
}

func TestGeoJSONRoundTripEmpty(t *testing.T) {
	// The codec alone fails this round trip for these types; the override
	// tables restore it.
	for _, g := range []geom.T{
		geom.NewPointEmpty(geom.XY),
		geom.NewPolygon(geom.XY),
		geom.NewLineString(geom.XY),
	} {
		out, err := ToGeoJSON(g)
		require.NoError(t, err)
		back, err := FromGeoJSON(out)
		require.NoError(t, err)
		require.Equal(t, GeoJSONType(g), GeoJSONType(back))
		require.Empty(t, back.FlatCoords())
	}
}

func TestGeoJSONRoundTrip(t *testing.T) {
	g, err := FromGeoJSON([]byte(`{"type":"Point","coordinates":[1.5,2.5]}`))
	require.NoError(t, err)
	out, err := ToGeoJSON(g)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Point","coordinates":[1.5,2.5]}`, string(out))
}
