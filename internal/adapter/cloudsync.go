// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// cloudEntryBatchLimit caps the number of IDs per entries/mark request
// against the sync cloud.
const cloudEntryBatchLimit = 1000

// CloudSyncConfig configures the proprietary sync-cloud adapter.
type CloudSyncConfig struct {
	BaseURL      string
	RefreshToken string
	Timeout      time.Duration
}

// cloudSyncAdapter talks to the proprietary sync cloud. Sessions are JWT
// bearer tokens obtained from the refresh token; the adapter inspects
// the token's exp claim to renew proactively instead of waiting for a
// 401 round-trip.
type cloudSyncAdapter struct {
	client       *resty.Client
	refreshToken string

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewCloudSyncAdapter constructs a BackendAdapter for the sync cloud.
func NewCloudSyncAdapter(cfg CloudSyncConfig) BackendAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sync.example.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &cloudSyncAdapter{client: cli, refreshToken: cfg.RefreshToken}
}

type cloudSessionResponse struct {
	Token string `json:"token"`
}

type cloudChangesResponse struct {
	Changed []models.ChangeRecord `json:"changed"`
	Deleted []models.ChangeRecord `json:"deleted"`
	Cursor  string                `json:"cursor"`
}

type cloudMarkResponse struct {
	FailedIDs []string `json:"failed_ids"`
}

func (c *cloudSyncAdapter) setToken(token string) {
	expiresAt := time.Time{}
	if claims := parseJWTClaims(token); claims != nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	c.mu.Lock()
	c.token = token
	c.expiresAt = expiresAt
	c.mu.Unlock()
}

// sessionValid reports whether the cached token exists and is not about
// to expire. A 30 second skew keeps us from racing the server clock.
func (c *cloudSyncAdapter) sessionValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return false
	}
	if c.expiresAt.IsZero() {
		return true
	}
	return time.Now().Add(30 * time.Second).Before(c.expiresAt)
}

// parseJWTClaims decodes the claims of token without verifying its
// signature; only the server verifies tokens, the client just reads exp.
func parseJWTClaims(token string) jwt.Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	return parsed.Claims
}

// request returns a resty request with the session token attached,
// refreshing the session first when needed.
func (c *cloudSyncAdapter) request(ctx context.Context) (*resty.Request, error) {
	if !c.sessionValid() {
		if err := c.RefreshSession(ctx); err != nil {
			return nil, err
		}
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	return c.client.R().SetContext(ctx).SetAuthToken(token), nil
}

func (c *cloudSyncAdapter) RefreshSession(ctx context.Context) error {
	var session cloudSessionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"refresh_token": c.refreshToken}).
		SetResult(&session).
		Post("/api/session/refresh")
	if err != nil {
		return fmt.Errorf("%w: refresh session: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}

	c.setToken(session.Token)
	return nil
}

func (c *cloudSyncAdapter) Logout(ctx context.Context) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/session/logout")
	if err != nil {
		return fmt.Errorf("%w: logout: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	c.mu.Lock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
	return nil
}

func (c *cloudSyncAdapter) GetCollections(ctx context.Context) ([]models.Collection, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var collections []models.Collection
	resp, err := req.SetResult(&collections).Get("/api/collections")
	if err != nil {
		return nil, fmt.Errorf("%w: get collections: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}
	return collections, nil
}

func (c *cloudSyncAdapter) GetFeedsAndTags(ctx context.Context) (models.FeedsAndTags, error) {
	collections, err := c.GetCollections(ctx)
	if err != nil {
		return models.FeedsAndTags{}, err
	}
	return feedsAndTagsFromCollections(collections), nil
}

func (c *cloudSyncAdapter) GetChanges(ctx context.Context, cursor string) ([]models.ChangeRecord, []models.ChangeRecord, string, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, nil, "", err
	}

	var changes cloudChangesResponse
	resp, err := req.
		SetQueryParam("cursor", cursor).
		SetResult(&changes).
		Get("/api/changes")
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: get changes: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, "", fmt.Errorf("get changes: %w", err)
	}
	return changes.Changed, changes.Deleted, changes.Cursor, nil
}

func (c *cloudSyncAdapter) GetStreamIDs(ctx context.Context, q models.StreamQuery) (models.StreamIDs, error) {
	req, err := c.request(ctx)
	if err != nil {
		return models.StreamIDs{}, err
	}

	req.SetPathParam("resource", string(q.Resource))
	if q.Continuation != "" {
		req.SetQueryParam("continuation", q.Continuation)
	}
	if q.NewerThan != nil {
		req.SetQueryParam("newer_than", strconv.FormatInt(q.NewerThan.UnixMilli(), 10))
	}
	if q.UnreadOnly {
		req.SetQueryParam("unread_only", "true")
	}

	var page models.StreamIDs
	resp, err := req.SetResult(&page).Get("/api/streams/{resource}/ids")
	if err != nil {
		return models.StreamIDs{}, fmt.Errorf("%w: get stream ids: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StreamIDs{}, fmt.Errorf("get stream ids: %w", err)
	}
	return page, nil
}

func (c *cloudSyncAdapter) GetEntries(ctx context.Context, ids []string) ([]models.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	resp, err := req.
		SetBody(map[string][]string{"ids": ids}).
		SetResult(&entries).
		Post("/api/entries/get")
	if err != nil {
		return nil, fmt.Errorf("%w: get entries: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	return entries, nil
}

func (c *cloudSyncAdapter) MarkEntries(ctx context.Context, ids []string, action models.MarkAction) error {
	if len(ids) == 0 {
		return nil
	}
	req, err := c.request(ctx)
	if err != nil {
		return err
	}

	var result cloudMarkResponse
	resp, err := req.
		SetBody(map[string]any{"ids": ids, "action": string(action)}).
		SetResult(&result).
		Post("/api/entries/mark")
	if err != nil {
		return fmt.Errorf("%w: mark entries: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("mark entries: %w", err)
	}
	if len(result.FailedIDs) > 0 {
		return &PartialBatchError{FailedIDs: result.FailedIDs}
	}
	return nil
}

func (c *cloudSyncAdapter) CreateCollection(ctx context.Context, label string) (models.Collection, error) {
	req, err := c.request(ctx)
	if err != nil {
		return models.Collection{}, err
	}

	var collection models.Collection
	resp, err := req.
		SetBody(map[string]string{"label": label}).
		SetResult(&collection).
		Post("/api/collections")
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: create collection: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return collection, nil
}

func (c *cloudSyncAdapter) RenameCollection(ctx context.Context, id, label string) (models.Collection, error) {
	req, err := c.request(ctx)
	if err != nil {
		return models.Collection{}, err
	}

	var collection models.Collection
	resp, err := req.
		SetPathParam("id", id).
		SetBody(map[string]string{"label": label}).
		SetResult(&collection).
		Patch("/api/collections/{id}")
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: rename collection: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Collection{}, fmt.Errorf("rename collection: %w", err)
	}
	return collection, nil
}

func (c *cloudSyncAdapter) DeleteCollection(ctx context.Context, id string) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete("/api/collections/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete collection: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

func (c *cloudSyncAdapter) AddFeedToCollection(ctx context.Context, feedURL, feedExternalID, collectionID string) ([]models.CollectionFeed, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	req.SetBody(map[string]string{"url": feedURL, "feed_external_id": feedExternalID})

	// An empty collection ID means the account root, which the cloud
	// serves through the bare subscriptions endpoint.
	var feeds []models.CollectionFeed
	var resp *resty.Response
	if collectionID == "" {
		resp, err = req.SetResult(&feeds).Post("/api/subscriptions")
	} else {
		resp, err = req.
			SetPathParam("id", collectionID).
			SetResult(&feeds).
			Post("/api/collections/{id}/feeds")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: add feed to collection: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("add feed to collection: %w", err)
	}
	return feeds, nil
}

func (c *cloudSyncAdapter) RemoveFeedFromCollection(ctx context.Context, feedExternalID, collectionID string) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}

	var resp *resty.Response
	if collectionID == "" {
		resp, err = req.
			SetPathParam("feed", feedExternalID).
			Delete("/api/subscriptions/{feed}")
	} else {
		resp, err = req.
			SetPathParam("id", collectionID).
			SetPathParam("feed", feedExternalID).
			Delete("/api/collections/{id}/feeds/{feed}")
	}
	if err != nil {
		return fmt.Errorf("%w: remove feed from collection: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("remove feed from collection: %w", err)
	}
	return nil
}

func (c *cloudSyncAdapter) SearchFeed(ctx context.Context, url string) ([]models.FeedCandidate, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []models.FeedCandidate
	resp, err := req.
		SetQueryParam("query", url).
		SetResult(&candidates).
		Get("/api/search/feeds")
	if err != nil {
		return nil, fmt.Errorf("%w: search feed: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("search feed: %w", err)
	}
	return candidates, nil
}

func (c *cloudSyncAdapter) EntryBatchLimit() int { return cloudEntryBatchLimit }

// feedsAndTagsFromCollections flattens a collection listing into the
// subscription-list shape, merging feeds that appear in several
// collections into one subscription with multiple collection IDs.
func feedsAndTagsFromCollections(collections []models.Collection) models.FeedsAndTags {
	byID := make(map[string]*models.Subscription)
	order := make([]string, 0)
	tags := make([]string, 0, len(collections))

	for _, collection := range collections {
		tags = append(tags, collection.ID)
		for _, feed := range collection.Feeds {
			sub, ok := byID[feed.ID]
			if !ok {
				sub = &models.Subscription{
					ExternalID:  feed.ID,
					Title:       feed.Title,
					URL:         feed.URL,
					HomePageURL: feed.Website,
				}
				byID[feed.ID] = sub
				order = append(order, feed.ID)
			}
			sub.CollectionIDs = append(sub.CollectionIDs, collection.ID)
		}
	}

	out := models.FeedsAndTags{TagIDs: tags}
	for _, id := range order {
		out.Subscriptions = append(out.Subscriptions, *byID[id])
	}
	return out
}
