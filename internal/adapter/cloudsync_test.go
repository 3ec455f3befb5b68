// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCloudTestAdapter создаёт cloudSyncAdapter, направленный на тестовый сервер
func newCloudTestAdapter(t *testing.T, serverURL string) *cloudSyncAdapter {
	t.Helper()
	a := NewCloudSyncAdapter(CloudSyncConfig{BaseURL: serverURL, RefreshToken: "refresh-token"})
	return a.(*cloudSyncAdapter)
}

// cloudSessionHandler answers the session refresh endpoint with a static
// unsigned-looking token and delegates everything else to next.
func cloudSessionHandler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/session/refresh" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "opaque-session-token"})
			return
		}
		next(w, r)
	}
}

// ── GetCollections ──────────────────────────────────────────────────────────

func TestCloudSync_GetCollections_Success(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections", r.URL.Path)
		assert.Equal(t, "Bearer opaque-session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Collection{
			{ID: "collections/1", Label: "Tech", Feeds: []models.CollectionFeed{{ID: "feed/1", Title: "One"}}},
		})
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	got, err := a.GetCollections(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tech", got[0].Label)
	assert.Len(t, got[0].Feeds, 1)
}

func TestCloudSync_GetCollections_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("session expired"))
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	_, err := a.GetCollections(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCloudSync_GetCollections_RemoteZoneGone(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte("zone was reset"))
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	_, err := a.GetCollections(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptRemoteState)
}

// ── MarkEntries ─────────────────────────────────────────────────────────────

func TestCloudSync_MarkEntries_PartialFailure(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/entries/mark", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]string{"failed_ids": {"b"}})
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	err := a.MarkEntries(context.Background(), []string{"a", "b"}, models.MarkActionRead)

	var partial *PartialBatchError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{"b"}, partial.FailedIDs)
}

func TestCloudSync_MarkEntries_EmptyBatchIsNoop(t *testing.T) {
	a := newCloudTestAdapter(t, "http://127.0.0.1:0") // must not be contacted
	require.NoError(t, a.MarkEntries(context.Background(), nil, models.MarkActionRead))
}

// ── GetStreamIDs ────────────────────────────────────────────────────────────

func TestCloudSync_GetStreamIDs_PassesContinuation(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/streams/unread/ids", r.URL.Path)
		assert.Equal(t, "cursor-1", r.URL.Query().Get("continuation"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StreamIDs{IDs: []string{"x", "y"}, Continuation: "cursor-2"})
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	page, err := a.GetStreamIDs(context.Background(), models.StreamQuery{
		Resource:     models.StreamUnread,
		Continuation: "cursor-1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, page.IDs)
	assert.Equal(t, "cursor-2", page.Continuation)
}

// ── Feed membership ─────────────────────────────────────────────────────────

func TestCloudSync_AddFeedToCollection_TargetsCollection(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/col-1/feeds", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.CollectionFeed{{ID: "feed-1", Title: "One"}})
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	feeds, err := a.AddFeedToCollection(context.Background(), "https://example.com/rss", "feed-1", "col-1")

	require.NoError(t, err)
	require.Len(t, feeds, 1)
}

func TestCloudSync_AddFeedToCollection_RootUsesSubscriptions(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/subscriptions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.CollectionFeed{{ID: "feed-1", Title: "One"}})
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	feeds, err := a.AddFeedToCollection(context.Background(), "https://example.com/rss", "feed-1", "")

	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "feed-1", feeds[0].ID)
}

func TestCloudSync_RemoveFeedFromCollection_RootUsesSubscriptions(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/subscriptions/feed-1", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	require.NoError(t, a.RemoveFeedFromCollection(context.Background(), "feed-1", ""))
}

// ── Session lifecycle ───────────────────────────────────────────────────────

func TestCloudSync_LogoutClearsToken(t *testing.T) {
	srv := httptest.NewServer(cloudSessionHandler(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newCloudTestAdapter(t, srv.URL)
	require.NoError(t, a.RefreshSession(context.Background()))
	require.NotEmpty(t, a.token)

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.token)
}

func TestFeedsAndTagsFromCollections_MergesDuplicateFeeds(t *testing.T) {
	collections := []models.Collection{
		{ID: "collections/1", Label: "One", Feeds: []models.CollectionFeed{{ID: "feed/1"}}},
		{ID: "collections/2", Label: "Two", Feeds: []models.CollectionFeed{{ID: "feed/1"}, {ID: "feed/2"}}},
	}

	fat := feedsAndTagsFromCollections(collections)

	require.Len(t, fat.Subscriptions, 2)
	assert.ElementsMatch(t, []string{"collections/1", "collections/2"}, fat.Subscriptions[0].CollectionIDs)
	assert.Equal(t, []string{"collections/1", "collections/2"}, fat.TagIDs)
}
