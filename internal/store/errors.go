// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFolderNotFound is returned when a query targets a folder that
	// does not exist locally.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrFeedNotFound is returned when a query targets a feed that does
	// not exist locally.
	ErrFeedNotFound = errors.New("feed was not found")

	// ErrDatabaseSuspended is returned by write operations while the
	// database is suspended for host lifecycle reasons (mobile
	// background). No new writes are accepted until Resume.
	ErrDatabaseSuspended = errors.New("database is suspended")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
