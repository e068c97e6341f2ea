/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegacyNaNRoundTrip(t *testing.T) {
	values := []float64{
		0,
		1.5,
		-1.5,
		12345.6789,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		-1.0e37,
		-1.0e38,
	}
	for _, v := range values {
		require.Equal(t, v, FromLegacyNaN(ToLegacyNaN(v)))
	}
}

func TestToLegacyNaN(t *testing.T) {
	require.Equal(t, -math.MaxFloat64, ToLegacyNaN(math.NaN()))
	require.Equal(t, 2.5, ToLegacyNaN(2.5))
	require.Equal(t, -1.0e39, ToLegacyNaN(-1.0e39))
}

func TestFromLegacyNaN(t *testing.T) {
	require.True(t, math.IsNaN(FromLegacyNaN(-math.MaxFloat64)))
	require.True(t, math.IsNaN(FromLegacyNaN(-1.0e39)))
	// Above the threshold passes through: decode is deliberately looser
	// than the exact sentinel, but only below -1.0e38.
	require.Equal(t, -1.0e37, FromLegacyNaN(-1.0e37))
	require.Equal(t, -1.0e38, FromLegacyNaN(-1.0e38))
}

func TestIsLegacyNaN(t *testing.T) {
	require.True(t, IsLegacyNaN(math.NaN()))
	require.True(t, IsLegacyNaN(-math.MaxFloat64))
	require.True(t, IsLegacyNaN(-1.0e39))
	require.False(t, IsLegacyNaN(-1.0e37))
	require.False(t, IsLegacyNaN(0))
	require.False(t, IsLegacyNaN(math.Inf(1)))
}
