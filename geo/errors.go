/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "github.com/pkg/errors"

var (
	// ErrInvalidInput marks caller-input errors: malformed GeoJSON or bytes
	// that do not describe a valid geometry. Check with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTypeMismatch marks precondition violations, such as asking for
	// index tokens of a geometry type that has none.
	ErrTypeMismatch = errors.New("type mismatch")
)
