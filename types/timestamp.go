/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package types holds the scalar column value types shared by the readers.
package types

import "time"

const (
	microsPerSecond = 1000000
	picosPerMicro   = 1000000
	picosPerNano    = 1000
)

// Timestamp is a fixed-point epoch timestamp: whole microseconds since the
// epoch plus, for the high-precision variant, a 0-999 picosecond remainder
// within the microsecond.
type Timestamp struct {
	Micros       int64
	PicosOfMicro int32
	Null         bool
}

// TimestampMicros returns the short (microsecond precision) timestamp.
func TimestampMicros(micros int64) Timestamp {
	return Timestamp{Micros: micros}
}

// LongTimestamp returns the high-precision timestamp.
func LongTimestamp(micros int64, picosOfMicro int32) Timestamp {
	return Timestamp{Micros: micros, PicosOfMicro: picosOfMicro}
}

// DateTime converts t to a UTC calendar date-time. It returns false for null
// values. Floor division keeps pre-epoch values correct, and the picosecond
// remainder is truncated, not rounded, to nanoseconds since the data has
// nanosecond precision at most.
func (t Timestamp) DateTime() (time.Time, bool) {
	if t.Null {
		return time.Time{}, false
	}
	epochSeconds := floorDiv(t.Micros, microsPerSecond)
	picosOfSecond := floorMod(t.Micros, microsPerSecond)*picosPerMicro + int64(t.PicosOfMicro)
	nanosOfSecond := picosOfSecond / picosPerNano
	return time.Unix(epochSeconds, nanosOfSecond).UTC(), true
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}
