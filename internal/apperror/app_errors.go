package apperror

import "errors"

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrInvalidMatchID    = errors.New("match id must be a positive integer")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	ErrUpstreamAPI       = errors.New("catan api request failed")
	ErrSnapshotNotCached = errors.New("snapshots are not cached")
)
