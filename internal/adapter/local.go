// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

// localAdapter is the no-op backend for accounts that are not
// synchronized with any remote service. Every read returns empty data
// and every mutation succeeds immediately, so the orchestration layer
// can treat local accounts exactly like remote ones.
type localAdapter struct{}

// NewLocalAdapter constructs the no-op BackendAdapter.
func NewLocalAdapter() BackendAdapter {
	return localAdapter{}
}

func (localAdapter) GetCollections(context.Context) ([]models.Collection, error) {
	return nil, nil
}

func (localAdapter) GetFeedsAndTags(context.Context) (models.FeedsAndTags, error) {
	return models.FeedsAndTags{}, nil
}

func (localAdapter) GetStreamIDs(context.Context, models.StreamQuery) (models.StreamIDs, error) {
	return models.StreamIDs{}, nil
}

func (localAdapter) GetEntries(context.Context, []string) ([]models.Entry, error) {
	return nil, nil
}

func (localAdapter) MarkEntries(context.Context, []string, models.MarkAction) error {
	return nil
}

func (localAdapter) CreateCollection(_ context.Context, label string) (models.Collection, error) {
	return models.Collection{ID: label, Label: label}, nil
}

func (localAdapter) RenameCollection(_ context.Context, _, label string) (models.Collection, error) {
	return models.Collection{ID: label, Label: label}, nil
}

func (localAdapter) DeleteCollection(context.Context, string) error { return nil }

func (localAdapter) AddFeedToCollection(context.Context, string, string, string) ([]models.CollectionFeed, error) {
	return nil, nil
}

func (localAdapter) RemoveFeedFromCollection(context.Context, string, string) error { return nil }

func (localAdapter) SearchFeed(context.Context, string) ([]models.FeedCandidate, error) {
	return nil, nil
}

func (localAdapter) RefreshSession(context.Context) error { return nil }

func (localAdapter) Logout(context.Context) error { return nil }

func (localAdapter) EntryBatchLimit() int { return 1000 }
