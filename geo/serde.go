/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// MarshalLegacy serializes g in the legacy binary format: little-endian WKB
// with NaN coordinates replaced by the legacy sentinel, matching what the
// historical encoders wrote.
func MarshalLegacy(g geom.T) ([]byte, error) {
	translated, err := mapCoords(g, ToLegacyNaN)
	if err != nil {
		return nil, err
	}
	data, err := wkb.Marshal(translated, binary.LittleEndian)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal geometry")
	}
	return data, nil
}

// UnmarshalLegacy deserializes a legacy binary geometry, restoring NaN for
// sentinel coordinates.
func UnmarshalLegacy(data []byte) (geom.T, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "invalid legacy geometry: %v", err)
	}
	return mapCoords(g, FromLegacyNaN)
}

// mapCoords rebuilds g with f applied to every stored coordinate value.
func mapCoords(g geom.T, f func(float64) float64) (geom.T, error) {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		out := geom.NewGeometryCollection()
		for _, sub := range gc.Geoms() {
			mapped, err := mapCoords(sub, f)
			if err != nil {
				return nil, err
			}
			if err := out.Push(mapped); err != nil {
				return nil, errors.Wrap(err, "cannot rebuild geometry collection")
			}
		}
		return out, nil
	}

	flat := make([]float64, len(g.FlatCoords()))
	for i, v := range g.FlatCoords() {
		flat[i] = f(v)
	}
	layout := g.Layout()
	switch v := g.(type) {
	case *geom.Point:
		if len(flat) == 0 {
			return geom.NewPointEmpty(layout), nil
		}
		return geom.NewPointFlat(layout, flat), nil
	case *geom.LineString:
		return geom.NewLineStringFlat(layout, flat), nil
	case *geom.Polygon:
		return geom.NewPolygonFlat(layout, flat, v.Ends()), nil
	case *geom.MultiPoint:
		return geom.NewMultiPointFlat(layout, flat), nil
	case *geom.MultiLineString:
		return geom.NewMultiLineStringFlat(layout, flat, v.Ends()), nil
	case *geom.MultiPolygon:
		return geom.NewMultiPolygonFlat(layout, flat, v.Endss()), nil
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot translate geometry of type %T", g)
}
