/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "math"

// The legacy binary geometry format has no representation for NaN. Encoders
// for that format substitute the most negative finite double, and decoders
// treat anything below -1.0e38 as NaN to absorb rounding drift from older
// encoders. The threshold is deliberately looser than the exact sentinel.

// ToLegacyNaN maps NaN to the sentinel value the legacy format uses in its
// place. Finite values pass through unchanged.
func ToLegacyNaN(x float64) float64 {
	if math.IsNaN(x) {
		return -math.MaxFloat64
	}
	return x
}

// FromLegacyNaN maps legacy NaN sentinels back to NaN. Any value below
// -1.0e38 is treated as a sentinel, not just -math.MaxFloat64.
func FromLegacyNaN(x float64) float64 {
	if x < -1.0e38 {
		return math.NaN()
	}
	return x
}

// IsLegacyNaN reports whether x means NaN, whether it is already decoded or
// still carries the legacy sentinel encoding.
func IsLegacyNaN(x float64) bool {
	return math.IsNaN(x) || math.IsNaN(FromLegacyNaN(x))
}
