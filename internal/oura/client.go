package oura

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const BaseURL = "https://api.ouraring.com/v2"

// Client is an Oura API client
type Client struct {
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new Oura API client
func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// GetDailyActivity fetches daily activity summaries for [startDate, endDate].
// Dates are YYYY-MM-DD.
func (c *Client) GetDailyActivity(ctx context.Context, startDate, endDate string) ([]DailyActivity, error) {
	return getCollection[DailyActivity](ctx, c, "/usercollection/daily_activity", dateParams(startDate, endDate))
}

// GetSleep fetches sleep period documents for [startDate, endDate]
func (c *Client) GetSleep(ctx context.Context, startDate, endDate string) ([]Sleep, error) {
	return getCollection[Sleep](ctx, c, "/usercollection/sleep", dateParams(startDate, endDate))
}

// GetDailySpO2 fetches daily blood oxygen summaries for [startDate, endDate]
func (c *Client) GetDailySpO2(ctx context.Context, startDate, endDate string) ([]DailySpO2, error) {
	return getCollection[DailySpO2](ctx, c, "/usercollection/daily_spo2", dateParams(startDate, endDate))
}

// GetSessions fetches moment sessions (meditation, breathing) for [startDate, endDate]
func (c *Client) GetSessions(ctx context.Context, startDate, endDate string) ([]Session, error) {
	return getCollection[Session](ctx, c, "/usercollection/session", dateParams(startDate, endDate))
}

// GetWorkouts fetches logged workouts for [startDate, endDate]
func (c *Client) GetWorkouts(ctx context.Context, startDate, endDate string) ([]Workout, error) {
	return getCollection[Workout](ctx, c, "/usercollection/workout", dateParams(startDate, endDate))
}

// GetHeartRate fetches timestamped heart rate samples between two instants
func (c *Client) GetHeartRate(ctx context.Context, start, end time.Time) ([]HeartRateSample, error) {
	params := url.Values{}
	params.Set("start_datetime", start.Format(time.RFC3339))
	params.Set("end_datetime", end.Format(time.RFC3339))
	return getCollection[HeartRateSample](ctx, c, "/usercollection/heartrate", params)
}

// RateLimitStatus returns the remaining requests in the current window
func (c *Client) RateLimitStatus() int {
	return c.rateLimiter.Status()
}

func dateParams(startDate, endDate string) url.Values {
	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	return params
}

// getCollection fetches every page of a collection endpoint, following
// next_token until exhausted
func getCollection[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var all []T

	for {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.get(ctx, path, params)
		if err != nil {
			return nil, err
		}

		var p page[T]
		err = json.NewDecoder(resp.Body).Decode(&p)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s response: %w", path, err)
		}

		all = append(all, p.Data...)

		if p.NextToken == nil || *p.NextToken == "" {
			break
		}
		params.Set("next_token", *p.NextToken)
	}

	return all, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Update rate limiter from response headers
	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
