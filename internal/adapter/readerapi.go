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
)

// readerEntryBatchLimit caps the number of IDs per item-contents or
// edit-tag request against Reader-API services.
const readerEntryBatchLimit = 1000

// Reader API stream/state identifiers.
const (
	readerStreamReadingList = "user/-/state/com.google/reading-list"
	readerStateRead         = "user/-/state/com.google/read"
	readerStateStarred      = "user/-/state/com.google/starred"
	readerLabelPrefix       = "user/-/label/"
)

// ReaderAPIConfig configures the Google-Reader-API-compatible adapter.
type ReaderAPIConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// readerAPIAdapter talks to a Google-Reader-API-compatible service
// (FreshRSS, Miniflux's GReader endpoint, The Old Reader, …).
// Authentication is ClientLogin: a long-lived auth token attached as a
// GoogleLogin header, renewed through RefreshSession when rejected.
type readerAPIAdapter struct {
	client   *resty.Client
	username string
	password string

	mu        sync.RWMutex
	authToken string
}

// NewReaderAPIAdapter constructs a BackendAdapter for a Reader-API
// service.
func NewReaderAPIAdapter(cfg ReaderAPIConfig) BackendAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &readerAPIAdapter{client: cli, username: cfg.Username, password: cfg.Password}
}

type readerTagList struct {
	Tags []struct {
		ID string `json:"id"`
	} `json:"tags"`
}

type readerSubscriptionList struct {
	Subscriptions []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		URL        string `json:"url"`
		HTMLURL    string `json:"htmlUrl"`
		Categories []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"categories"`
	} `json:"subscriptions"`
}

type readerStreamIDs struct {
	ItemRefs []struct {
		ID string `json:"id"`
	} `json:"itemRefs"`
	Continuation string `json:"continuation"`
}

type readerStreamContents struct {
	Items []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Author    string `json:"author"`
		Published int64  `json:"published"`
		Updated   int64  `json:"updated"`
		Summary   struct {
			Content string `json:"content"`
		} `json:"summary"`
		Canonical []struct {
			Href string `json:"href"`
		} `json:"canonical"`
		Origin struct {
			StreamID string `json:"streamId"`
		} `json:"origin"`
		Categories []string `json:"categories"`
	} `json:"items"`
}

func (r *readerAPIAdapter) token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.authToken
}

// authed returns a request with the GoogleLogin auth header attached,
// performing the initial ClientLogin when no token is cached yet.
func (r *readerAPIAdapter) authed(ctx context.Context) (*resty.Request, error) {
	if r.token() == "" {
		if err := r.RefreshSession(ctx); err != nil {
			return nil, err
		}
	}
	return r.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "GoogleLogin auth="+r.token()), nil
}

func (r *readerAPIAdapter) RefreshSession(ctx context.Context) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"Email": r.username, "Passwd": r.password}).
		Post("/accounts/ClientLogin")
	if err != nil {
		return fmt.Errorf("%w: client login: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("client login: %w", err)
	}

	// The body is line-oriented key=value pairs; only Auth matters.
	var token string
	for _, line := range strings.Split(string(resp.Body()), "\n") {
		if after, ok := strings.CutPrefix(strings.TrimSpace(line), "Auth="); ok {
			token = after
			break
		}
	}
	if token == "" {
		return fmt.Errorf("%w: client login response carried no Auth token", ErrUnauthorized)
	}

	r.mu.Lock()
	r.authToken = token
	r.mu.Unlock()
	return nil
}

// Logout drops the cached auth token. The Reader API has no remote
// revocation call; forgetting the token is all a client can do.
func (r *readerAPIAdapter) Logout(context.Context) error {
	r.mu.Lock()
	r.authToken = ""
	r.mu.Unlock()
	return nil
}

func (r *readerAPIAdapter) GetCollections(ctx context.Context) ([]models.Collection, error) {
	fat, err := r.GetFeedsAndTags(ctx)
	if err != nil {
		return nil, err
	}

	byTag := make(map[string]*models.Collection)
	order := make([]string, 0, len(fat.TagIDs))
	for _, tag := range fat.TagIDs {
		byTag[tag] = &models.Collection{ID: tag, Label: readerLabelName(tag)}
		order = append(order, tag)
	}
	for _, sub := range fat.Subscriptions {
		for _, tag := range sub.CollectionIDs {
			collection, ok := byTag[tag]
			if !ok {
				collection = &models.Collection{ID: tag, Label: readerLabelName(tag)}
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

func (r *readerAPIAdapter) GetFeedsAndTags(ctx context.Context) (models.FeedsAndTags, error) {
	req, err := r.authed(ctx)
	if err != nil {
		return models.FeedsAndTags{}, err
	}
	var tags readerTagList
	resp, err := req.
		SetQueryParam("output", "json").
		SetResult(&tags).
		Get("/reader/api/0/tag/list")
	if err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("%w: tag list: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("tag list: %w", err)
	}

	req, err = r.authed(ctx)
	if err != nil {
		return models.FeedsAndTags{}, err
	}
	var subscriptions readerSubscriptionList
	resp, err = req.
		SetQueryParam("output", "json").
		SetResult(&subscriptions).
		Get("/reader/api/0/subscription/list")
	if err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("%w: subscription list: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedsAndTags{}, fmt.Errorf("subscription list: %w", err)
	}

	var out models.FeedsAndTags
	for _, tag := range tags.Tags {
		// State streams (read, starred, …) are not user folders.
		if strings.Contains(tag.ID, "/label/") {
			out.TagIDs = append(out.TagIDs, tag.ID)
		}
	}
	for _, sub := range subscriptions.Subscriptions {
		s := models.Subscription{
			ExternalID:  sub.ID,
			Title:       sub.Title,
			URL:         sub.URL,
			HomePageURL: sub.HTMLURL,
		}
		if s.URL == "" {
			s.URL = strings.TrimPrefix(sub.ID, "feed/")
		}
		for _, category := range sub.Categories {
			s.CollectionIDs = append(s.CollectionIDs, category.ID)
		}
		out.Subscriptions = append(out.Subscriptions, s)
	}
	return out, nil
}

func (r *readerAPIAdapter) GetStreamIDs(ctx context.Context, q models.StreamQuery) (models.StreamIDs, error) {
	req, err := r.authed(ctx)
	if err != nil {
		return models.StreamIDs{}, err
	}

	req.SetQueryParam("output", "json")
	req.SetQueryParam("n", strconv.Itoa(readerEntryBatchLimit))
	switch q.Resource {
	case models.StreamStarred:
		req.SetQueryParam("s", readerStateStarred)
	default:
		req.SetQueryParam("s", readerStreamReadingList)
	}
	if q.Resource == models.StreamUnread || q.UnreadOnly {
		req.SetQueryParam("xt", readerStateRead)
	}
	if q.Continuation != "" {
		req.SetQueryParam("c", q.Continuation)
	}
	if q.NewerThan != nil {
		req.SetQueryParam("ot", strconv.FormatInt(q.NewerThan.Unix(), 10))
	}

	var page readerStreamIDs
	resp, err := req.SetResult(&page).Get("/reader/api/0/stream/items/ids")
	if err != nil {
		return models.StreamIDs{}, fmt.Errorf("%w: stream item ids: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StreamIDs{}, fmt.Errorf("stream item ids: %w", err)
	}

	out := models.StreamIDs{Continuation: page.Continuation}
	for _, ref := range page.ItemRefs {
		out.IDs = append(out.IDs, ref.ID)
	}
	return out, nil
}

func (r *readerAPIAdapter) GetEntries(ctx context.Context, ids []string) ([]models.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	req, err := r.authed(ctx)
	if err != nil {
		return nil, err
	}

	form := make([]string, 0, len(ids))
	for _, id := range ids {
		form = append(form, "i="+id)
	}

	var contents readerStreamContents
	resp, err := req.
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(strings.Join(form, "&")).
		SetResult(&contents).
		Post("/reader/api/0/stream/items/contents?output=json")
	if err != nil {
		return nil, fmt.Errorf("%w: stream item contents: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("stream item contents: %w", err)
	}

	entries := make([]models.Entry, 0, len(contents.Items))
	for _, item := range contents.Items {
		entry := models.Entry{
			ID:             item.ID,
			FeedExternalID: item.Origin.StreamID,
			Title:          item.Title,
			Author:         item.Author,
			ContentHTML:    item.Summary.Content,
			Unread:         true,
		}
		if len(item.Canonical) > 0 {
			entry.ExternalURL = item.Canonical[0].Href
		}
		if item.Published > 0 {
			published := time.Unix(item.Published, 0)
			entry.Published = &published
		}
		if item.Updated > 0 {
			updated := time.Unix(item.Updated, 0)
			entry.Updated = &updated
		}
		for _, category := range item.Categories {
			if strings.HasSuffix(category, "/state/com.google/read") {
				entry.Unread = false
			}
			if strings.HasSuffix(category, "/state/com.google/starred") {
				entry.Starred = true
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *readerAPIAdapter) MarkEntries(ctx context.Context, ids []string, action models.MarkAction) error {
	if len(ids) == 0 {
		return nil
	}
	req, err := r.authed(ctx)
	if err != nil {
		return err
	}

	form := map[string]string{}
	switch action {
	case models.MarkActionRead:
		form["a"] = readerStateRead
	case models.MarkActionUnread:
		form["r"] = readerStateRead
	case models.MarkActionStarred:
		form["a"] = readerStateStarred
	case models.MarkActionUnstarred:
		form["r"] = readerStateStarred
	default:
		return fmt.Errorf("%w: unknown mark action %q", ErrBadRequest, action)
	}

	body := make([]string, 0, len(ids)+1)
	for key, value := range form {
		body = append(body, key+"="+value)
	}
	for _, id := range ids {
		body = append(body, "i="+id)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(strings.Join(body, "&")).
		Post("/reader/api/0/edit-tag")
	if err != nil {
		return fmt.Errorf("%w: edit tag: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("edit tag: %w", err)
	}
	return nil
}

func (r *readerAPIAdapter) CreateCollection(ctx context.Context, label string) (models.Collection, error) {
	// Reader API labels exist implicitly: they are created by the first
	// subscription edit that names them.
	id := readerLabelPrefix + label
	return models.Collection{ID: id, Label: label}, nil
}

func (r *readerAPIAdapter) RenameCollection(ctx context.Context, id, label string) (models.Collection, error) {
	req, err := r.authed(ctx)
	if err != nil {
		return models.Collection{}, err
	}

	resp, err := req.
		SetFormData(map[string]string{"s": id, "dest": readerLabelPrefix + label}).
		Post("/reader/api/0/rename-tag")
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: rename tag: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Collection{}, fmt.Errorf("rename tag: %w", err)
	}
	return models.Collection{ID: readerLabelPrefix + label, Label: label}, nil
}

func (r *readerAPIAdapter) DeleteCollection(ctx context.Context, id string) error {
	req, err := r.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetFormData(map[string]string{"s": id}).
		Post("/reader/api/0/disable-tag")
	if err != nil {
		return fmt.Errorf("%w: disable tag: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("disable tag: %w", err)
	}
	return nil
}

func (r *readerAPIAdapter) AddFeedToCollection(ctx context.Context, feedURL, feedExternalID, collectionID string) ([]models.CollectionFeed, error) {
	req, err := r.authed(ctx)
	if err != nil {
		return nil, err
	}

	stream := feedExternalID
	if stream == "" {
		stream = "feed/" + feedURL
	}
	form := map[string]string{"ac": "subscribe", "s": stream}
	if collectionID != "" {
		form["a"] = collectionID
	}

	resp, err := req.SetFormData(form).Post("/reader/api/0/subscription/edit")
	if err != nil {
		return nil, fmt.Errorf("%w: subscription edit: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("subscription edit: %w", err)
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

func (r *readerAPIAdapter) RemoveFeedFromCollection(ctx context.Context, feedExternalID, collectionID string) error {
	req, err := r.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetFormData(map[string]string{"ac": "edit", "s": feedExternalID, "r": collectionID}).
		Post("/reader/api/0/subscription/edit")
	if err != nil {
		return fmt.Errorf("%w: subscription edit: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("subscription edit: %w", err)
	}
	return nil
}

func (r *readerAPIAdapter) SearchFeed(ctx context.Context, url string) ([]models.FeedCandidate, error) {
	req, err := r.authed(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		Query     string `json:"query"`
		NumResult int    `json:"numResults"`
		StreamID  string `json:"streamId"`
	}
	resp, err := req.
		SetQueryParam("quickadd", url).
		SetResult(&result).
		Post("/reader/api/0/subscription/quickadd")
	if err != nil {
		return nil, fmt.Errorf("%w: quickadd: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("quickadd: %w", err)
	}
	if result.NumResult == 0 {
		return nil, nil
	}
	return []models.FeedCandidate{{URL: strings.TrimPrefix(result.StreamID, "feed/")}}, nil
}

func (r *readerAPIAdapter) EntryBatchLimit() int { return readerEntryBatchLimit }

// readerLabelName strips the label prefix from a Reader tag ID.
func readerLabelName(id string) string {
	if idx := strings.LastIndex(id, "/label/"); idx >= 0 {
		return id[idx+len("/label/"):]
	}
	return id
}
