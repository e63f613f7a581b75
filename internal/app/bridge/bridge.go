/*
Package bridge delivers chat messages to the remote AI endpoint and returns
exactly one reply per message, bounded in time.

The bridge never returns an error to its caller: a timeout, a network failure,
a non-2xx status, or a missing reply field all resolve to a displayable fallback
string, so the chat transcript always advances by exactly one assistant entry
per user submission. A circuit breaker guards the remote endpoint; an open
breaker short-circuits to the connect-failure fallback.
*/
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/metrics"
)

const (
	// DefaultReplyTimeout is the upper bound on waiting for the remote AI.
	DefaultReplyTimeout = 120 * time.Second

	// FallbackNoReply is returned when the endpoint answered without a reply field.
	FallbackNoReply = "⚠️ No response from AI."

	// FallbackTimeout is returned when no response arrived within the bound.
	FallbackTimeout = "⚠️ The AI is taking too long to respond. Please try a shorter message or try again later."

	// FallbackUnreachable is returned on network errors and non-2xx statuses.
	FallbackUnreachable = "⚠️ Could not connect to AI server."
)

// errServerStatus marks a non-2xx response from the remote endpoint.
var errServerStatus = errors.New("ai endpoint returned a non-success status")

// question is the JSON request body expected by the remote endpoint.
type question struct {
	Question string `json:"question"`
}

// answer is the JSON response payload of the remote endpoint.
type answer struct {
	Response string `json:"response"`
}

// Client sends user messages to the remote AI endpoint.
type Client struct {
	// endpoint is the fixed URL accepting POSTed questions.
	endpoint string

	// timeout bounds each remote call; the in-flight request is canceled
	// once it elapses.
	timeout time.Duration

	// http performs the requests. Transport-level timeouts are left to the
	// per-call context.
	http *http.Client

	// breaker opens after consecutive endpoint failures so a struggling
	// remote is not hammered by retyped messages.
	breaker *gobreaker.CircuitBreaker

	// structured logger with bridge context.
	logger zerolog.Logger
}

// NewClient constructs a bridge Client for the given endpoint. A non-positive
// timeout falls back to DefaultReplyTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultReplyTimeout
	}

	bridgeLogger := logx.Logger().With().
		Str("component", "ChatBridge").
		Str("endpoint", endpoint).
		Logger()

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "AI-Chat",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			bridgeLogger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Chat circuit breaker state changed")
		},
	})

	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		http:     &http.Client{},
		breaker:  breaker,
		logger:   bridgeLogger,
	}
}

// Ask delivers one trimmed, non-empty user message and returns the reply text.
// Callers must enforce the non-empty precondition and serialize calls; the
// bridge imposes no queueing of its own.
//
// Ask never fails: every error path resolves to one of the fallback strings.
func (c *Client) Ask(ctx context.Context, message string) string {
	start := time.Now()

	result, err := c.breaker.Execute(func() (any, error) {
		return c.post(ctx, message)
	})

	metrics.ChatLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		return c.fallbackFor(err)
	}

	reply, ok := result.(string)
	if !ok || reply == "" {
		metrics.ChatRequests.WithLabelValues("no_reply").Inc()
		return FallbackNoReply
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	return reply
}

// post performs the single HTTP exchange with the remote endpoint.
func (c *Client) post(ctx context.Context, message string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(question{Question: message})
	if err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", errServerStatus, res.Status)
	}

	var payload answer
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return payload.Response, nil
}

// fallbackFor maps a failed exchange to the user-facing fallback string.
func (c *Client) fallbackFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.logger.Warn().Err(err).Dur("timeout", c.timeout).Msg("AI request timed out")
		metrics.ChatRequests.WithLabelValues("timeout").Inc()
		return FallbackTimeout

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Warn().Err(err).Msg("AI request rejected by open circuit breaker")
		metrics.ChatRequests.WithLabelValues("rejected").Inc()
		return FallbackUnreachable

	default:
		c.logger.Error().Err(err).Msg("AI request failed")
		metrics.ChatRequests.WithLabelValues("unreachable").Inc()
		return FallbackUnreachable
	}
}
