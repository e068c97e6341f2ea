/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package index

import "github.com/golang/geo/s1"

// EarthRadiusMeters is the radius of the earth in meters (in a spherical
// earth model).
const EarthRadiusMeters = 1000 * 6371

// earthAngle converts a distance on earth in meters to an angle.
func earthAngle(dist float64) s1.Angle {
	return s1.Angle(dist / EarthRadiusMeters)
}
