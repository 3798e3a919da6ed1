package campus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/circuitbreaker"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
	"github.com/krrish-maji/Campus-Connect/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the Campus API client.
type ClientConfig struct {
	// BaseURL is the API base, including the path prefix,
	// e.g. "http://127.0.0.1:5000/api".
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// Logger for structured logging.
	Logger *logger.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the Campus API HTTP client. Fetches go through the retrier and
// the circuit breaker; login does neither, so a rejected password is
// reported immediately instead of being retried three times.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *logger.Logger
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
	mapper     *Mapper
}

// NewClient creates a new Campus API client.
func NewClient(config ClientConfig) *Client {
	log := config.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.With(logger.Component("campus_client"))

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log,
		retrier: retry.CampusAPIRetrier(),
		breaker: circuitbreaker.CampusAPIBreaker(func(name string, from, to circuitbreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		}),
		mapper: NewMapper(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// Login authenticates with email and password. Rejections keep the server's
// message; transport failures come back as shared.ErrExternalService so the
// caller can tell "wrong password" from "server down".
func (c *Client) Login(ctx context.Context, creds session.Credentials) (*session.AuthGrant, error) {
	body, err := json.Marshal(LoginRequestDTO{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return nil, fmt.Errorf("login: marshal request: %w", err)
	}

	var dto LoginResponseDTO
	if err := c.doOnce(ctx, http.MethodPost, "/login", bytes.NewReader(body), &dto); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = "Invalid credentials"
			}
			return nil, shared.NewDomainError("gateway", "Login", shared.ErrUnauthorized, msg)
		}
		return nil, shared.WrapError("gateway", "Login", shared.ErrExternalService,
			"connection error", err)
	}

	grant, err := c.mapper.MapAuthGrant(dto)
	if err != nil {
		return nil, err
	}

	c.logger.Info("login succeeded", logger.UserID(grant.User.ID), logger.Role(grant.User.Role.String()))
	return grant, nil
}

// StudentDashboard fetches the full dashboard snapshot for a student.
func (c *Client) StudentDashboard(ctx context.Context, studentID int) (*risk.DashboardPayload, error) {
	var dto DashboardResponseDTO
	path := fmt.Sprintf("/student/dashboard/%d", studentID)
	if err := c.doFetch(ctx, path, &dto); err != nil {
		return nil, fmt.Errorf("student dashboard %d: %w", studentID, err)
	}
	return c.mapper.MapDashboard(dto)
}

// MentorRoster fetches the student cards assigned to a mentor.
func (c *Client) MentorRoster(ctx context.Context, mentorID int) ([]risk.StudentSummaryCard, error) {
	var dto RosterResponseDTO
	path := fmt.Sprintf("/mentor/students/%d", mentorID)
	if err := c.doFetch(ctx, path, &dto); err != nil {
		return nil, fmt.Errorf("mentor roster %d: %w", mentorID, err)
	}
	return c.mapper.MapRoster(dto)
}

// StudentDetails fetches the secondary detail read behind a roster card.
func (c *Client) StudentDetails(ctx context.Context, studentID int) (*risk.StudentDetails, error) {
	var dto DetailsResponseDTO
	path := fmt.Sprintf("/mentor/student/%d/details", studentID)
	if err := c.doFetch(ctx, path, &dto); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, shared.ErrDetailNotFound
		}
		return nil, fmt.Errorf("student details %d: %w", studentID, err)
	}
	return c.mapper.MapDetails(dto)
}

// Health probes GET /health with a single attempt.
func (c *Client) Health(ctx context.Context) (bool, error) {
	var dto HealthResponseDTO
	if err := c.doOnce(ctx, http.MethodGet, "/health", nil, &dto); err != nil {
		return false, err
	}
	return dto.Healthy(), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HTTP HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// doFetch performs a GET through the circuit breaker and the retrier.
func (c *Client) doFetch(ctx context.Context, path string, result any) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Do(ctx, func(ctx context.Context) error {
			err := c.doOnce(ctx, http.MethodGet, path, nil, result)
			if err == nil {
				return nil
			}
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
				// 4xx will not heal on retry.
				return retry.Permanent(err)
			}
			return retry.Retryable(err)
		})
	})
}

// doOnce performs a single HTTP request. Non-2xx responses come back as
// *APIError carrying the server's message.
func (c *Client) doOnce(ctx context.Context, method, path string, body io.Reader, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("campus api request failed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Err(err),
		)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("campus api request",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Latency(time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		var errDTO ErrorResponseDTO
		_ = json.Unmarshal(respBody, &errDTO)
		return &APIError{StatusCode: resp.StatusCode, Message: errDTO.Message}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
