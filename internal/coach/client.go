package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// CoachingInput summarizes the user's recent activity for the coaching
// model.
type CoachingInput struct {
	TasksCompletedToday int     `json:"tasksCompletedToday"`
	FocusMinutesToday   float64 `json:"focusMinutesToday"`
	Streak              int     `json:"streak"`
	CurrentMood         string  `json:"currentMood,omitempty"`
}

// CoachingAdvice is a generated motivational message.
type CoachingAdvice struct {
	Message string `json:"message"`
}

// SessionSample is one recent focus session sent to the recommender.
type SessionSample struct {
	DurationSeconds int    `json:"durationSeconds"`
	CompletedAt     string `json:"completedAt"`
}

// PomodoroRecommendation is a suggested timer configuration.
type PomodoroRecommendation struct {
	WorkMinutes  int     `json:"workDuration"`
	BreakMinutes int     `json:"breakDuration"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// Client provides access to the coaching model service.
type Client interface {
	// Coach returns a motivational message tailored to recent activity.
	Coach(ctx context.Context, in CoachingInput) (*CoachingAdvice, error)

	// RecommendPomodoro suggests work and break durations from recent
	// session history.
	RecommendPomodoro(ctx context.Context, sessions []SessionSample) (*PomodoroRecommendation, error)

	// MoodSuggestions returns activity suggestions for the given mood.
	MoodSuggestions(ctx context.Context, mood string) ([]string, error)

	// Available checks whether the coaching service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the coaching service HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to the coaching service.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Coach(ctx context.Context, in CoachingInput) (*CoachingAdvice, error) {
	var out CoachingAdvice
	if err := c.call(ctx, "/coach", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) RecommendPomodoro(ctx context.Context, sessions []SessionSample) (*PomodoroRecommendation, error) {
	body := map[string]any{"sessions": sessions}
	var out PomodoroRecommendation
	if err := c.call(ctx, "/recommend-pomodoro", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) MoodSuggestions(ctx context.Context, mood string) ([]string, error) {
	body := map[string]string{"mood": mood}
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.call(ctx, "/mood-suggestions", body, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// call posts a JSON body to the given path, retrying on transient
// failures, and decodes the response into out.
func (c *httpClient) call(ctx context.Context, path string, body, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, path, body, out)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Endpoint:  path,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	if ctx.Err() != nil {
		lastErr = ErrTimeout
	} else if isConnectionError(lastErr) {
		lastErr = ErrUnavailable
	} else {
		lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	c.observer.OnCallComplete(CallEvent{
		Endpoint:  path,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})
	return lastErr
}

func (c *httpClient) doRequest(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("coaching service returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
