/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo provides the geometry analysis and serialization layer used by
// the engine's geospatial type support: uniform traversal over possibly
// multi-part geometries, envelope computation, shape classification, the
// legacy NaN coordinate encoding and the GeoJSON compatibility adapter.
package geo

import "github.com/twpayne/go-geom"

// PointCount returns the total vertex count of g. Each non-empty point
// contributes 1 and every other non-empty atomic component contributes its
// stored vertex count. Empty components are skipped entirely.
func PointCount(g geom.T) int {
	cursor := NewCursor(g)
	points := 0
	for {
		part, ok := cursor.Next()
		if !ok {
			return points
		}
		if isEmpty(part) {
			continue
		}
		if _, isPoint := part.(*geom.Point); isPoint {
			points++
			continue
		}
		points += numVertices(part)
	}
}

// EnvelopeOf returns the smallest envelope covering every component of g, or
// the empty envelope if g has no non-empty components.
func EnvelopeOf(g geom.T) Envelope {
	cursor := NewCursor(g)
	env := EmptyEnvelope()
	for {
		part, ok := cursor.Next()
		if !ok {
			return env
		}
		env = env.Merge(FromBounds(part.Bounds()))
	}
}

// Disjoint reports whether every atomic component of g is disjoint from the
// envelope. A geometry with no components is vacuously disjoint.
func Disjoint(e Envelope, g geom.T) bool {
	cursor := NewCursor(g)
	for {
		part, ok := cursor.Next()
		if !ok {
			return true
		}
		if !geometryDisjoint(part, e) {
			return false
		}
	}
}

// Contains reports whether at least one atomic component of g contains the
// envelope, boundary included.
func Contains(g geom.T, e Envelope) bool {
	cursor := NewCursor(g)
	for {
		part, ok := cursor.Next()
		if !ok {
			return false
		}
		if geometryCovers(part, e) {
			return true
		}
	}
}
