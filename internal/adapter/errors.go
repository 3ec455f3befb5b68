// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadRequest maps HTTP 400 — the request was malformed. Terminal.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401 — expired or invalid credentials.
	// Triggers the refresh-session-and-retry-once policy, never an
	// unlimited retry.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden maps HTTP 403. Terminal.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404 — e.g. no feed was discovered at the
	// given URL. Terminal, user-facing.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySubscribed is returned by subscribe calls when the
	// account already has the feed. Terminal, user-facing.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrCorruptRemoteState means the remote zone/account was deleted
	// or reset underneath us (HTTP 410). The coordinator reacts with a
	// full local teardown so the next refresh starts clean.
	ErrCorruptRemoteState = errors.New("remote state is gone or reset")

	// ErrTransport covers network-level and 5xx failures. Retryable on
	// the next refresh cycle.
	ErrTransport = errors.New("transport failure")
)

// PartialBatchError reports a multi-ID request in which only some items
// failed. Successful items are committed remotely; callers reset exactly
// FailedIDs to pending so they retry next cycle.
type PartialBatchError struct {
	// FailedIDs are the article IDs the backend rejected.
	FailedIDs []string
}

// Error implements the error interface.
func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("partial batch failure: %d items not applied [%s]",
		len(e.FailedIDs), strings.Join(e.FailedIDs, ", "))
}
