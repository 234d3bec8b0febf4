// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/gamemaps

package gamemaps

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrTruncatedInput   = errors.New("read past end of input")
	ErrInvalidOffset    = errors.New("invalid offset")
	ErrCorruptToken     = errors.New("corrupt carmack back-reference")
	ErrUnexpectedEscape = errors.New("rlew escape without count and value")
	ErrMapNotFound      = errors.New("map slot not present")
	ErrNegativeOutLen   = errors.New("output length must be non-negative")
	ErrNilReader        = errors.New("reader is nil")
	ErrNilDirectory     = errors.New("directory is nil")
)

// PlaneError reports which map and plane failed to load.
type PlaneError struct {
	Slot  int   // Directory slot of the map.
	Plane int   // Plane index, 0 or 1.
	Err   error // Underlying failure, one of the package errors.
}

func (e *PlaneError) Error() string {
	return fmt.Sprintf("map %d plane %d: %v", e.Slot, e.Plane, e.Err)
}

func (e *PlaneError) Unwrap() error {
	return e.Err
}
