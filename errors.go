package gapidx

import "errors"

// ErrEmptyPattern is returned when s1 or s2 is the empty string.
var ErrEmptyPattern = errors.New("gapidx: pattern must not be empty")

// ErrInvalidGapRange is returned when gMin > gMax.
var ErrInvalidGapRange = errors.New("gapidx: gMin must be <= gMax")

// ErrConstruction is returned by New when no index can be built; New
// reports it for empty text.
var ErrConstruction = errors.New("gapidx: index construction failed")
