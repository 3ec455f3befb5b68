// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/models"
)

// defaultMaxStreamPages bounds one stream drain. Backends terminate
// streams by omitting the continuation cursor; the guard exists only to
// turn a backend that never omits it into a reportable error.
const defaultMaxStreamPages = 500

// drainStreamIDs follows a stream's continuation cursor until the
// backend omits it, unioning every page's IDs into one set. The cursor
// of each response is passed back verbatim; an empty cursor is the sole
// termination signal. Cancellation is checked before each page request.
//
// maxPages ≤ 0 selects defaultMaxStreamPages. Exceeding the guard
// returns ErrTooManyPages with the partial set discarded by the caller.
func drainStreamIDs(ctx context.Context, backend adapter.BackendAdapter, q models.StreamQuery, maxPages int) (map[string]struct{}, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxStreamPages
	}

	ids := make(map[string]struct{})
	q.Continuation = ""
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if page >= maxPages {
			return nil, fmt.Errorf("%w: stream %s exceeded %d pages", ErrTooManyPages, q.Resource, maxPages)
		}

		resp, err := backend.GetStreamIDs(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("get stream %s page: %w", q.Resource, err)
		}
		for _, id := range resp.IDs {
			ids[id] = struct{}{}
		}

		if resp.Continuation == "" {
			return ids, nil
		}
		q.Continuation = resp.Continuation
	}
}
