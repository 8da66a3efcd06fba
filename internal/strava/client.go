// Package strava issues the outbound Strava API calls on behalf of an
// authenticated user.
package strava

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"stravaproxy/internal/auth"
	"stravaproxy/internal/observability"
)

// DefaultBaseURL is the production Strava API root.
const DefaultBaseURL = "https://www.strava.com/api/v3"

// perPage is the fixed page size for activity listings. Only the first page
// is ever requested.
const perPage = 10

// Client is a Strava API client. Every operation resolves the user's token
// fresh, so the client itself carries no per-user state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.Resolver
	log        *zap.SugaredLogger
}

// NewClient creates a new Strava API client. A nil httpClient falls back to
// a default client, which relies on the transport's own timeout behavior.
func NewClient(baseURL string, tokens auth.Resolver, httpClient *http.Client, log *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     tokens,
		log:        log,
	}
}

// GetAthlete fetches the profile of the authenticated athlete.
func (c *Client) GetAthlete(ctx context.Context, user string) (*DetailedAthlete, error) {
	token, err := c.tokens.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, "/athlete", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var athlete DetailedAthlete
	if err := decode(body, &athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// ListActivities fetches the first page of the athlete's activities between
// after and before. The window is validated before any token lookup or
// network call.
func (c *Client) ListActivities(ctx context.Context, user string, after, before time.Time) ([]DetailedActivity, error) {
	window, err := NewTimeWindow(after, before)
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("after", strconv.FormatInt(window.AfterEpoch(), 10))
	params.Set("before", strconv.FormatInt(window.BeforeEpoch(), 10))
	params.Set("per_page", strconv.Itoa(perPage))

	body, err := c.do(ctx, http.MethodGet, "/athlete/activities", params, token, nil)
	if err != nil {
		return nil, err
	}

	var activities []DetailedActivity
	if err := decode(body, &activities); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	c.log.Infof("The following activities were received from Strava: %v", ids)

	return activities, nil
}

// RenameActivity replaces the name of an activity. Strava's update endpoint
// has no partial update, so the full activity is fetched first and its
// preserved fields are resupplied unchanged alongside the new name. The PUT
// is never issued when the fetch fails.
func (c *Client) RenameActivity(ctx context.Context, user string, activityID int64, newName string) (*DetailedActivity, error) {
	token, err := c.tokens.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/activities/%d", activityID)

	body, err := c.do(ctx, http.MethodGet, path, nil, token, nil)
	if err != nil {
		return nil, err
	}

	var current DetailedActivity
	if err := decode(body, &current); err != nil {
		return nil, err
	}

	// The id echoed by Strava is authoritative, not the caller's.
	c.log.Infof("Replacing name %q with %q for activity %d", stringValue(current.Name), newName, current.ID)

	update := UpdatableActivity{
		Name:         &newName,
		Commute:      current.Commute,
		Description:  current.Description,
		Type:         current.Type,
		GearID:       current.GearID,
		HideFromHome: current.HideFromHome,
		Trainer:      current.Trainer,
		SportType:    current.SportType,
	}

	body, err = c.do(ctx, http.MethodPut, path, nil, token, update)
	if err != nil {
		return nil, err
	}

	var updated DetailedActivity
	if err := decode(body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do issues one request with the bearer token attached and returns the
// response body of a 2xx answer. Failures map to *APIError; no retries.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, token string, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Infof("%s request to %s", method, reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.RecordUpstreamRequest(method, 0, time.Since(start))
		c.log.Warnf("no response from Strava to %s request %s: %v", method, reqURL, err)
		return nil, &APIError{Method: method, URL: reqURL, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.RecordUpstreamRequest(method, 0, time.Since(start))
		return nil, &APIError{Method: method, URL: reqURL, Body: err.Error()}
	}

	observability.RecordUpstreamRequest(method, resp.StatusCode, time.Since(start))
	c.log.Infof("%d %s response from Strava to %s request %s",
		resp.StatusCode, http.StatusText(resp.StatusCode), method, reqURL)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status: resp.StatusCode,
			Method: method,
			URL:    reqURL,
			Body:   string(body),
		}
	}

	return body, nil
}

// decode unmarshals a response body, turning any mismatch into a
// *DecodeError that carries the decoder's message and the offending input.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Msg: fmt.Sprintf("%v: %q", err, excerpt(body))}
	}
	return nil
}

// excerpt limits how much of an upstream body ends up in error messages.
func excerpt(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
