package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avelar/tibiasearch/internal/domain"
)

const (
	// BatchLimit is the maximum number of item ids one market_values
	// request may carry.
	BatchLimit = 100

	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; TibiaSearchBot/1.0)"
	maxAttempts    = 3
)

// Backoff ranges in seconds. retryJitter is added on top of a Retry-After
// header; backoffSchedule is used when 429 comes without one, indexed by
// attempt; serverErrorBackoff covers 5xx and connection errors.
var (
	retryJitter        = [2]float64{0.1, 0.3}
	backoffSchedule    = [][2]float64{{2, 5}, {5, 12}, {10, 25}}
	serverErrorBackoff = [2]float64{1, 3}
)

// UnsoldPrice marks an item that is listed but has no sell offer. The
// catalog updater normalizes it to gold 0.
const UnsoldPrice = -1

// Client talks to the market pricing API. All requests go through the
// shared throttle; batch fetches retry transient failures with backoff and
// abandon the batch after exhausting attempts.
type Client struct {
	valuesURL    string
	worldDataURL string
	httpClient   *http.Client
	throttle     *Throttle
	logger       *slog.Logger
	progress     func(string)

	sleep   func(context.Context, time.Duration) error
	uniform func(lo, hi float64) float64
}

// NewClient creates a market API client. progress may be nil; when set it
// receives human-readable request and retry lines.
func NewClient(valuesURL, worldDataURL string, throttle *Throttle, logger *slog.Logger, progress func(string)) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		valuesURL:    valuesURL,
		worldDataURL: worldDataURL,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		throttle:     throttle,
		logger:       logger,
		progress:     progress,
		sleep:        sleepCtx,
		uniform: func(lo, hi float64) float64 {
			return lo + rand.Float64()*(hi-lo)
		},
	}
}

func (c *Client) trace(msg string) {
	if c.progress != nil {
		c.progress(msg)
	}
	c.logger.Debug(msg)
}

// LastUpdate fetches world data for the server and returns its last_update
// timestamp, or "" when the response carries none for that server.
func (c *Client) LastUpdate(ctx context.Context, server string) (string, error) {
	query := url.Values{}
	query.Set("servers", server)
	reqURL := c.worldDataURL + "?" + query.Encode()
	c.trace("GET " + reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMarketUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read world data: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("world data request failed: status %d", resp.StatusCode)
	}

	var payload struct {
		Servers map[string]struct {
			LastUpdate string `json:"last_update"`
		} `json:"servers"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse world data: %w", err)
	}
	return payload.Servers[server].LastUpdate, nil
}

// FetchBatch retrieves prices for up to BatchLimit item ids. The returned
// map carries UnsoldPrice for listed-but-unsold items; ids absent from the
// response are simply missing from the map. A non-nil error means the batch
// was abandoned, after exhausting retries or hitting a non-retryable status;
// callers drop the batch and continue the run.
func (c *Client) FetchBatch(ctx context.Context, server string, ids []int) (map[int]int, error) {
	if len(ids) == 0 {
		return map[int]int{}, nil
	}
	if len(ids) > BatchLimit {
		return nil, fmt.Errorf("batch of %d exceeds limit %d", len(ids), BatchLimit)
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = strconv.Itoa(id)
	}
	query := url.Values{}
	query.Set("server", server)
	query.Set("item_ids", strings.Join(idStrs, ","))
	query.Set("limit", strconv.Itoa(BatchLimit))
	reqURL := c.valuesURL + "?" + query.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.throttle.Wait(ctx); err != nil {
			return nil, err
		}
		c.trace(fmt.Sprintf("GET %s (attempt %d/%d)", reqURL, attempt, maxAttempts))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		c.throttle.Mark()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", domain.ErrMarketUnreachable, err)
			if ctx.Err() != nil {
				return nil, lastErr
			}
			if attempt == maxAttempts {
				c.trace(fmt.Sprintf("Request failed on attempt %d for %s batch %d-%d: %v", attempt, server, ids[0], ids[len(ids)-1], err))
				return nil, lastErr
			}
			if err := c.backoff(ctx, serverErrorBackoff, fmt.Sprintf("Request error: %v", err)); err != nil {
				return nil, err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited: status 429")
			if attempt == maxAttempts {
				c.trace(fmt.Sprintf("HTTP 429 on final attempt for %s batch %d-%d, giving up", server, ids[0], ids[len(ids)-1]))
				return nil, lastErr
			}
			wait := c.retryAfterDelay(resp, attempt)
			c.trace(fmt.Sprintf("HTTP 429 received; waiting %.2fs before retrying", wait.Seconds()))
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue

		case resp.StatusCode >= 500 && resp.StatusCode < 600:
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			if attempt == maxAttempts {
				c.trace(fmt.Sprintf("Server error %d on final attempt for %s batch %d-%d, giving up", resp.StatusCode, server, ids[0], ids[len(ids)-1]))
				return nil, lastErr
			}
			if err := c.backoff(ctx, serverErrorBackoff, fmt.Sprintf("Server error %d", resp.StatusCode)); err != nil {
				return nil, err
			}
			continue

		case resp.StatusCode != http.StatusOK:
			// Other 4xx are not transient; abandon immediately.
			c.trace(fmt.Sprintf("HTTP error %d for %s batch %d-%d; not retrying", resp.StatusCode, server, ids[0], ids[len(ids)-1]))
			return nil, fmt.Errorf("market values request failed: status %d", resp.StatusCode)
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response: %w", readErr)
		} else if values, err := parseMarketValues(body); err != nil {
			lastErr = err
		} else {
			return values, nil
		}

		// Truncated or malformed body; treat like a transient failure.
		if attempt == maxAttempts {
			c.trace(fmt.Sprintf("Request failed on attempt %d for %s batch %d-%d: %v", attempt, server, ids[0], ids[len(ids)-1], lastErr))
			return nil, lastErr
		}
		if err := c.backoff(ctx, serverErrorBackoff, fmt.Sprintf("Request error: %v", lastErr)); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

// backoff sleeps a random duration from the given range, never less than
// the throttle's remaining delay.
func (c *Client) backoff(ctx context.Context, rng [2]float64, reason string) error {
	wait := secondsToDuration(c.uniform(rng[0], rng[1]))
	if required := c.throttle.RequiredDelay(); required > wait {
		wait = required
	}
	c.trace(fmt.Sprintf("%s; retrying in %.2fs", reason, wait.Seconds()))
	return c.sleep(ctx, wait)
}

// retryAfterDelay computes how long to wait after a 429. A Retry-After
// header is honored with a little jitter on top; otherwise the backoff
// schedule for this attempt applies. The result never undercuts the
// throttle's remaining delay.
func (c *Client) retryAfterDelay(resp *http.Response, attempt int) time.Duration {
	var base float64
	if header := resp.Header.Get("Retry-After"); header != "" {
		if secs, err := strconv.ParseFloat(header, 64); err == nil {
			base = secs
		}
		base += c.uniform(retryJitter[0], retryJitter[1])
	} else {
		idx := attempt - 1
		if idx >= len(backoffSchedule) {
			idx = len(backoffSchedule) - 1
		}
		base = c.uniform(backoffSchedule[idx][0], backoffSchedule[idx][1])
	}
	wait := secondsToDuration(base)
	if required := c.throttle.RequiredDelay(); required > wait {
		wait = required
	}
	return wait
}

// parseMarketValues decodes a market_values payload, which is either
// {"items": [...]} or a bare list. Entries without a usable id are skipped;
// an absent or negative sell_offer becomes UnsoldPrice.
func parseMarketValues(body []byte) (map[int]int, error) {
	var wrapped struct {
		Items []json.RawMessage `json:"items"`
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		entries = wrapped.Items
	} else if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse market values: %w", err)
	}

	values := make(map[int]int, len(entries))
	for _, raw := range entries {
		var entry struct {
			ID        *int `json:"id"`
			SellOffer *int `json:"sell_offer"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil || entry.ID == nil {
			continue
		}
		if entry.SellOffer == nil || *entry.SellOffer < 0 {
			values[*entry.ID] = UnsoldPrice
			continue
		}
		values[*entry.ID] = *entry.SellOffer
	}
	return values, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
