// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyPages is returned by the stream paginator when a backend
	// keeps returning continuation cursors past the configured page
	// guard. A well-behaved backend terminates every stream; this error
	// marks the backend as misbehaving rather than looping forever.
	ErrTooManyPages = errors.New("stream returned too many pages")

	// ErrFeedNotFound is returned by CreateFeed when validation finds no
	// subscribable feed at the given URL.
	ErrFeedNotFound = errors.New("no feed found at url")

	// ErrNetworkSuspended is returned by remote-touching operations
	// while the host has suspended networking.
	ErrNetworkSuspended = errors.New("network is suspended")
)

// RefreshError reports the failure of one refresh pass. Step names the
// last failing task of the pass; the coordinator does not enumerate
// every sub-task failure.
type RefreshError struct {
	Step string
	Err  error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh failed at %s: %v", e.Step, e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }
