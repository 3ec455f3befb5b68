// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/go-resty/resty/v2"
)

// restEntryBatchLimit caps the number of IDs per entries/mark request
// against the REST aggregator.
const restEntryBatchLimit = 1000

// RESTConfig configures the Feedbin-style REST aggregator adapter.
type RESTConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// restAdapter talks to a Feedbin-style REST aggregator. The service uses
// HTTP basic auth (no session to refresh) and numeric page pagination;
// the adapter encodes the page number as the opaque continuation token
// so the orchestration layer sees the uniform cursor contract.
type restAdapter struct {
	client *resty.Client
}

// NewRESTAdapter constructs a BackendAdapter for the REST aggregator.
func NewRESTAdapter(cfg RESTConfig) BackendAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetTimeout(cfg.Timeout)

	return &restAdapter{client: cli}
}

type restTagging struct {
	ID             int64  `json:"id"`
	FeedExternalID string `json:"feed_id"`
	Name           string `json:"name"`
}

type restStreamPage struct {
	IDs      []string `json:"ids"`
	NextPage int      `json:"next_page"`
}

func (r *restAdapter) GetCollections(ctx context.Context) ([]models.Collection, error) {
	fat, err := r.GetFeedsAndTags(ctx)
	if err != nil {
		return nil, err
	}

	byTag := make(map[string]*models.Collection)
	order := make([]string, 0, len(fat.TagIDs))
	for _, tag := range fat.TagIDs {
		byTag[tag] = &models.Collection{ID: tag, Label: tag}
		order = append(order, tag)
	}
	for _, sub := range fat.Subscriptions {
		for _, tag := range sub.CollectionIDs {
			collection, ok := byTag[tag]
			if !ok {
				collection = &models.Collection{ID: tag, Label: tag}
				byTag[tag] = collection
				order = append(order, tag)
			}
			collection.Feeds = append(collection.Feeds, models.CollectionFeed{
				ID:      sub.ExternalID,
				Title:   sub.Title,
				URL:     sub.URL,
				Website: sub.HomePageURL,
			})
		}
	}

	out := make([]models.Collection, 0, len(order))
	for _, tag := range order {
		out = append(out, *byTag[tag])
	}
	return out, nil
}

func (r *restAdapter) GetFeedsAndTags(ctx context.Context) (models.FeedsAndTags, error) {
	var subscriptions []struct {
		ID      int64  `json:"id"`
		FeedID  int64  `json:"feed_id"`
		Title   string `json:"title"`
		FeedURL string `json:"feed_url"`
		SiteURL string `json:"site_url"`
	}
	resp, err := r.client.R().SetContext(ctx).SetResult(&subscriptions).Get("/v2/subscriptions.json")
	if err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("%w: get subscriptions: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("get subscriptions: %w", err)
	}

	var taggings []restTagging
	resp, err = r.client.R().SetContext(ctx).SetResult(&taggings).Get("/v2/taggings.json")
	if err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("%w: get taggings: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("get taggings: %w", err)
	}

	tagsByFeed := make(map[string][]string)
	tagSet := make(map[string]struct{})
	tagOrder := make([]string, 0)
	for _, tagging := range taggings {
		tagsByFeed[tagging.FeedExternalID] = append(tagsByFeed[tagging.FeedExternalID], tagging.Name)
		if _, seen := tagSet[tagging.Name]; !seen {
			tagSet[tagging.Name] = struct{}{}
			tagOrder = append(tagOrder, tagging.Name)
		}
	}

	out := models.FeedsAndTags{TagIDs: tagOrder}
	for _, sub := range subscriptions {
		feedID := strconv.FormatInt(sub.FeedID, 10)
		out.Subscriptions = append(out.Subscriptions, models.Subscription{
			ExternalID:    feedID,
			Title:         sub.Title,
			URL:           sub.FeedURL,
			HomePageURL:   sub.SiteURL,
			CollectionIDs: tagsByFeed[feedID],
		})
	}
	return out, nil
}

func (r *restAdapter) GetStreamIDs(ctx context.Context, q models.StreamQuery) (models.StreamIDs, error) {
	var path string
	switch q.Resource {
	case models.StreamUnread:
		path = "/v2/unread_entries.json"
	case models.StreamStarred:
		path = "/v2/starred_entries.json"
	default:
		path = "/v2/entries/ids.json"
	}

	req := r.client.R().SetContext(ctx)
	if q.Continuation != "" {
		req.SetQueryParam("page", q.Continuation)
	}
	if q.NewerThan != nil {
		req.SetQueryParam("since", q.NewerThan.UTC().Format(time.RFC3339))
	}
	if q.UnreadOnly && q.Resource != models.StreamUnread {
		req.SetQueryParam("read", "false")
	}

	var page restStreamPage
	resp, err := req.SetResult(&page).Get(path)
	if err != nil {
		return models.StreamIDs{}, fmt.Errorf("%w: get stream ids: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StreamIDs{}, fmt.Errorf("get stream ids: %w", err)
	}

	out := models.StreamIDs{IDs: page.IDs}
	if page.NextPage > 0 {
		out.Continuation = strconv.Itoa(page.NextPage)
	}
	return out, nil
}

func (r *restAdapter) GetEntries(ctx context.Context, ids []string) ([]models.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var entries []models.Entry
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		SetResult(&entries).
		Get("/v2/entries.json")
	if err != nil {
		return nil, fmt.Errorf("%w: get entries: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	return entries, nil
}

func (r *restAdapter) MarkEntries(ctx context.Context, ids []string, action models.MarkAction) error {
	if len(ids) == 0 {
		return nil
	}

	var path, field string
	switch action {
	case models.MarkActionRead:
		path, field = "/v2/unread_entries/delete.json", "unread_entries"
	case models.MarkActionUnread:
		path, field = "/v2/unread_entries.json", "unread_entries"
	case models.MarkActionStarred:
		path, field = "/v2/starred_entries.json", "starred_entries"
	case models.MarkActionUnstarred:
		path, field = "/v2/starred_entries/delete.json", "starred_entries"
	default:
		return fmt.Errorf("%w: unknown mark action %q", ErrBadRequest, action)
	}

	// The aggregator echoes back the IDs it actually applied; anything
	// missing from the echo is treated as a partial failure.
	var applied []string
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string][]string{field: ids}).
		SetResult(&applied).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: mark entries: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("mark entries: %w", err)
	}

	if len(applied) < len(ids) {
		appliedSet := make(map[string]struct{}, len(applied))
		for _, id := range applied {
			appliedSet[id] = struct{}{}
		}
		var failed []string
		for _, id := range ids {
			if _, ok := appliedSet[id]; !ok {
				failed = append(failed, id)
			}
		}
		if len(failed) > 0 {
			return &PartialBatchError{FailedIDs: failed}
		}
	}
	return nil
}

func (r *restAdapter) CreateCollection(ctx context.Context, label string) (models.Collection, error) {
	// Tags exist implicitly on this service: a tag is created by the
	// first tagging that names it. Report the collection as created.
	return models.Collection{ID: label, Label: label}, nil
}

func (r *restAdapter) RenameCollection(ctx context.Context, id, label string) (models.Collection, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"old_name": id, "new_name": label}).
		Post("/v2/tags.json")
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: rename tag: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Collection{}, fmt.Errorf("rename tag: %w", err)
	}
	return models.Collection{ID: label, Label: label}, nil
}

func (r *restAdapter) DeleteCollection(ctx context.Context, id string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": id}).
		Post("/v2/tags/delete.json")
	if err != nil {
		return fmt.Errorf("%w: delete tag: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func (r *restAdapter) AddFeedToCollection(ctx context.Context, feedURL, feedExternalID, collectionID string) ([]models.CollectionFeed, error) {
	if feedExternalID == "" {
		var created struct {
			FeedID  int64  `json:"feed_id"`
			Title   string `json:"title"`
			FeedURL string `json:"feed_url"`
		}
		resp, err := r.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"feed_url": feedURL}).
			SetResult(&created).
			Post("/v2/subscriptions.json")
		if err != nil {
			return nil, fmt.Errorf("%w: subscribe: %w", ErrTransport, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("subscribe: %w", err)
		}
		feedExternalID = strconv.FormatInt(created.FeedID, 10)
	}

	if collectionID != "" {
		resp, err := r.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"feed_id": feedExternalID, "name": collectionID}).
			Post("/v2/taggings.json")
		if err != nil {
			return nil, fmt.Errorf("%w: create tagging: %w", ErrTransport, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("create tagging: %w", err)
		}
	}

	collections, err := r.GetCollections(ctx)
	if err != nil {
		return nil, err
	}
	for _, collection := range collections {
		if collection.ID == collectionID {
			return collection.Feeds, nil
		}
	}
	return nil, nil
}

func (r *restAdapter) RemoveFeedFromCollection(ctx context.Context, feedExternalID, collectionID string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"feed_id": feedExternalID, "name": collectionID}).
		Post("/v2/taggings/delete.json")
	if err != nil {
		return fmt.Errorf("%w: delete tagging: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete tagging: %w", err)
	}
	return nil
}

func (r *restAdapter) SearchFeed(ctx context.Context, url string) ([]models.FeedCandidate, error) {
	var candidates []models.FeedCandidate
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("q", url).
		SetResult(&candidates).
		Get("/v2/feeds/search.json")
	if err != nil {
		return nil, fmt.Errorf("%w: search feed: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("search feed: %w", err)
	}
	return candidates, nil
}

// RefreshSession is a no-op: the aggregator authenticates every request
// with basic auth, there is no session to renew.
func (r *restAdapter) RefreshSession(context.Context) error { return nil }

// Logout is a no-op for the same reason.
func (r *restAdapter) Logout(context.Context) error { return nil }

func (r *restAdapter) EntryBatchLimit() int { return restEntryBatchLimit }
