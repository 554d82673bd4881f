package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

// ErrTimeout marks a relay attempt that exceeded its request budget.
// It is the only failure cause callers of FetchJSON can distinguish;
// every other per-relay failure is absorbed by the fallback chain.
var ErrTimeout = errors.New("request timeout - please check your connection")

// Client fetches provider data through an ordered chain of relays,
// falling back to synthesized mock data when every relay fails.
//
// Relays are tried strictly in order; relay N+1 only starts after relay
// N resolved or timed out, so at most one relay "wins" per call. Calls
// share no mutable state, so a Client is safe for concurrent use.
type Client struct {
	Relays  []Relay
	HTTP    *http.Client
	BaseURL string        // provider API base, e.g. https://www.freetogame.com/api
	Timeout time.Duration // per-attempt budget
	Seed    int64         // synthesis seed; 0 = derive from the clock per call
	Log     *logrus.Logger
}

func NewClient(baseURL string, log *logrus.Logger) *Client {
	return &Client{
		Relays:  DefaultRelays(),
		HTTP:    &http.Client{},
		BaseURL: baseURL,
		Timeout: 15 * time.Second,
		Log:     log,
	}
}

// ProviderURL builds an upstream URL for an endpoint plus query
// parameters. The relay wrapping happens per attempt, not here.
func (c *Client) ProviderURL(endpoint string, params url.Values) string {
	u := c.BaseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) synth() *models.Synthesizer {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return models.NewSynthesizer(seed)
}

// attempt performs one GET through one relay and returns the unwrapped
// payload. A non-2xx status, an unreadable body or a failing unwrap
// rule are all per-relay failures for the caller to absorb.
func (c *Client) attempt(ctx context.Context, r Relay, target string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Wrap(target), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return r.Unwrap(body)
}

// FetchJSON fetches target through the relay chain and returns the
// first structurally valid JSON payload. If every relay fails it
// returns an error; the error is ErrTimeout-wrapped only when the last
// distinguishable cause was a timeout.
func (c *Client) FetchJSON(ctx context.Context, target string) (json.RawMessage, error) {
	var timedOut bool
	for _, r := range c.Relays {
		payload, err := c.attempt(ctx, r, target)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				timedOut = true
			}
			c.Log.WithFields(logrus.Fields{
				"relay":  r.Name,
				"target": target,
			}).WithError(err).Warn("relay attempt failed")
			continue
		}
		if !json.Valid(payload) {
			c.Log.WithField("relay", r.Name).Warn("relay returned invalid JSON")
			continue
		}
		c.Log.WithField("relay", r.Name).Debug("relay succeeded")
		return payload, nil
	}
	if timedOut {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("all %d relays failed for %s", len(c.Relays), target)
}

// FetchCatalog fetches the full game list, normalizes it and truncates
// to size. It never fails: when every relay is exhausted without a
// non-empty payload it returns the synthesized mock catalog instead, so
// callers cannot observe partial failure, only final success.
func (c *Client) FetchCatalog(ctx context.Context, size int) []models.Game {
	target := c.ProviderURL("/games", nil)

	for _, r := range c.Relays {
		payload, err := c.attempt(ctx, r, target)
		if err != nil {
			c.Log.WithFields(logrus.Fields{
				"relay":  r.Name,
				"target": target,
			}).WithError(err).Warn("relay attempt failed")
			continue
		}

		var raw []models.ProviderGame
		if err := json.Unmarshal(payload, &raw); err != nil {
			c.Log.WithField("relay", r.Name).WithError(err).Warn("relay payload is not a game list")
			continue
		}
		if len(raw) == 0 {
			c.Log.WithField("relay", r.Name).Warn("relay returned an empty list")
			continue
		}

		if size > 0 && len(raw) > size {
			raw = raw[:size]
		}
		syn := c.synth()
		games := make([]models.Game, 0, len(raw))
		for _, rg := range raw {
			games = append(games, models.FromProvider(rg, syn))
		}
		c.Log.WithFields(logrus.Fields{"relay": r.Name, "count": len(games)}).Info("catalog fetched")
		return games
	}

	c.Log.Warn("all relays failed, serving mock catalog")
	return MockCatalog(size)
}

// FetchGame fetches a single record by id through the relay chain.
// Unlike FetchCatalog the failure is reported; the caller owns the
// mock substitution for detail lookups.
func (c *Client) FetchGame(ctx context.Context, id int) (models.Game, error) {
	target := c.ProviderURL("/game", url.Values{"id": {fmt.Sprintf("%d", id)}})

	for _, r := range c.Relays {
		payload, err := c.attempt(ctx, r, target)
		if err != nil {
			c.Log.WithFields(logrus.Fields{
				"relay": r.Name,
				"id":    id,
			}).WithError(err).Warn("relay attempt failed")
			continue
		}

		var raw models.ProviderGame
		if err := json.Unmarshal(payload, &raw); err != nil || raw.ID == 0 {
			c.Log.WithField("relay", r.Name).Warn("relay payload is not a game record")
			continue
		}

		return models.FromProvider(raw, c.synth()), nil
	}

	return models.Game{}, fmt.Errorf("all %d relays failed for game %d", len(c.Relays), id)
}
