// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import "errors"

// Sentinel errors for pathist operations.
var (
	// ErrInvalidPath indicates malformed path string input.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidSegment indicates an unsupported segment value in slice input.
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrInvalidArgument indicates an unsupported input type.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidNotation indicates an unknown notation value.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrInvalidIndicesMode indicates an unknown indices comparison mode.
	ErrInvalidIndicesMode = errors.New("invalid indices mode")
)
