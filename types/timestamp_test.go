/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateTimeEpoch(t *testing.T) {
	got, ok := TimestampMicros(0).DateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDateTimeBeforeEpoch(t *testing.T) {
	// One microsecond before the epoch: floor semantics, not truncation
	// toward zero.
	got, ok := TimestampMicros(-1).DateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(1969, 12, 31, 23, 59, 59, 999999000, time.UTC), got)
}

func TestDateTimeRoundTrip(t *testing.T) {
	for _, want := range []time.Time{
		time.Date(2001, 2, 3, 4, 5, 6, 123456000, time.UTC),
		time.Date(1969, 7, 20, 20, 17, 40, 0, time.UTC),
		time.Date(1900, 1, 1, 0, 0, 0, 1000, time.UTC),
	} {
		got, ok := TimestampMicros(want.UnixMicro()).DateTime()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestDateTimeLong(t *testing.T) {
	// Picoseconds truncate to nanosecond resolution; they never round up.
	got, ok := LongTimestamp(1, 999).DateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 1000, time.UTC), got)

	got, ok = LongTimestamp(0, 999).DateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = LongTimestamp(-1, 500).DateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(1969, 12, 31, 23, 59, 59, 999999000, time.UTC), got)
}

func TestDateTimeNull(t *testing.T) {
	_, ok := Timestamp{Null: true}.DateTime()
	require.False(t, ok)
}
