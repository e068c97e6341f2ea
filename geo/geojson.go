/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// The geojson codec mishandles degenerate geometries, in different ways per
// direction. Decoding {"type":"Point","coordinates":[]} fails on
// dimensionality instead of producing the empty point, while its encodings of
// empty points and line strings are not valid GeoJSON. The two override
// tables below patch exactly the type/direction combinations the codec gets
// wrong; the tables are intentionally not symmetric.

var emptyGeometryOverride = map[string]func() geom.T{
	"Polygon": func() geom.T { return geom.NewPolygon(geom.XY) },
	"Point":   func() geom.T { return geom.NewPointEmpty(geom.XY) },
}

var emptyGeoJSONOverride = map[string]string{
	"LineString": `{"type":"LineString","coordinates":[]}`,
	"Point":      `{"type":"Point","coordinates":[]}`,
}

// FromGeoJSON parses a GeoJSON geometry document. Parse failures wrap
// ErrInvalidInput and carry the codec's message.
func FromGeoJSON(data []byte) (geom.T, error) {
	if g := emptyOverride(data); g != nil {
		return g, nil
	}
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "invalid GeoJSON: %v", err)
	}
	return g, nil
}

// emptyOverride returns the empty geometry for documents the codec would
// mis-decode, or nil to delegate. Failures of this lightweight pre-parse are
// deliberately ignored so that malformed input gets the codec's own error.
func emptyOverride(data []byte) geom.T {
	var doc struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	build, ok := emptyGeometryOverride[doc.Type]
	if !ok {
		return nil
	}
	var coords []json.RawMessage
	if err := json.Unmarshal(doc.Coordinates, &coords); err != nil {
		return nil
	}
	if len(coords) != 0 {
		return nil
	}
	return build()
}

// ToGeoJSON encodes a geometry as a GeoJSON document.
func ToGeoJSON(g geom.T) ([]byte, error) {
	if isEmpty(g) {
		if doc, ok := emptyGeoJSONOverride[GeoJSONType(g)]; ok {
			return []byte(doc), nil
		}
	}
	data, err := geojson.Marshal(g)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode geometry")
	}
	return data, nil
}

// GeoJSONType returns the GeoJSON type name for g, or "" for unknown types.
func GeoJSONType(g geom.T) string {
	switch g.(type) {
	case *geom.Point:
		return "Point"
	case *geom.LineString:
		return "LineString"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	}
	return ""
}
