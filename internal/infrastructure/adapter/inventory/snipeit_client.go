package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	inventoryport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/inventory"
)

const (
	statusSuccess = "success"

	defaultPageSize   = 100
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// SnipeITConfig configures the Snipe-IT REST client
type SnipeITConfig struct {
	BaseURL    string
	APIKey     string
	MaxRetries int           // attempts made while the server answers 429
	RetryDelay time.Duration // first 429 backoff, doubled per attempt
	PageSize   int
}

// SnipeITClient implements inventory.Client against the Snipe-IT REST API
type SnipeITClient struct {
	config       SnipeITConfig
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSnipeITClient creates a new Snipe-IT client. httpClient carries the request timeout.
func NewSnipeITClient(
	config SnipeITConfig,
	httpClient *http.Client,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SnipeITClient {
	if config.MaxRetries <= 0 {
		config.MaxRetries = defaultMaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = defaultRetryDelay
	}
	if config.PageSize <= 0 {
		config.PageSize = defaultPageSize
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &SnipeITClient{
		config:       config,
		httpClient:   httpClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// statusEnvelope is the logical result Snipe-IT wraps around mutating calls
type statusEnvelope struct {
	Status   string          `json:"status"`
	Messages json.RawMessage `json:"messages"`
}

type checkoutRequest struct {
	AssignedUser    uint64 `json:"assigned_user"`
	CheckoutToType  string `json:"checkout_to_type"`
	ExpectedCheckin string `json:"expected_checkin"`
}

type hardwarePage struct {
	Total int           `json:"total"`
	Rows  []hardwareRow `json:"rows"`
	statusEnvelope
}

type hardwareRow struct {
	ID       uint64    `json:"id"`
	AssetTag string    `json:"asset_tag"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Model    namedItem `json:"model"`
	Category namedItem `json:"category"`
}

type namedItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Checkout assigns the asset to a user until expectedCheckin
func (c *SnipeITClient) Checkout(ctx context.Context, assetID, userExternalID uint64, expectedCheckin time.Time) error {
	body := checkoutRequest{
		AssignedUser:    userExternalID,
		CheckoutToType:  "user",
		ExpectedCheckin: expectedCheckin.Format(time.DateOnly),
	}

	var envelope statusEnvelope
	if err := c.do(ctx, "checkout", http.MethodPost, fmt.Sprintf("/hardware/%d/checkout", assetID), body, &envelope); err != nil {
		return err
	}
	return checkEnvelope("checkout", envelope)
}

// Checkin returns the asset to stock
func (c *SnipeITClient) Checkin(ctx context.Context, assetID uint64) error {
	var envelope statusEnvelope
	if err := c.do(ctx, "checkin", http.MethodPost, fmt.Sprintf("/hardware/%d/checkin", assetID), struct{}{}, &envelope); err != nil {
		return err
	}
	return checkEnvelope("checkin", envelope)
}

// ListHardware walks every page of /hardware
func (c *SnipeITClient) ListHardware(ctx context.Context) ([]inventoryport.Hardware, error) {
	var hardware []inventoryport.Hardware

	for offset := 0; ; {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(c.config.PageSize))
		query.Set("offset", strconv.Itoa(offset))

		var page hardwarePage
		if err := c.do(ctx, "list hardware", http.MethodGet, "/hardware?"+query.Encode(), nil, &page); err != nil {
			return nil, err
		}
		if page.Status != "" && page.Status != statusSuccess {
			return nil, checkEnvelope("list hardware", page.statusEnvelope)
		}

		for _, row := range page.Rows {
			hardware = append(hardware, inventoryport.Hardware{
				ID:       row.ID,
				Tag:      row.AssetTag,
				Name:     row.Name,
				Model:    row.Model.Name,
				Category: row.Category.Name,
				ImageURL: row.Image,
			})
		}

		offset += len(page.Rows)
		if len(page.Rows) == 0 || offset >= page.Total {
			break
		}
	}

	c.logger.Debug("Listed inventory hardware", map[string]any{
		"count": len(hardware),
	})
	return hardware, nil
}

// do sends a request, retrying with exponential backoff while rate limited
func (c *SnipeITClient) do(ctx context.Context, operation, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errs.NewExternalServiceError(operation, nil, err)
		}
	}

	delay := c.config.RetryDelay
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return errs.NewExternalServiceError(operation, nil, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errs.NewExternalServiceError(operation, nil, err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return errs.NewExternalServiceError(operation, nil, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt >= c.config.MaxRetries {
				return errs.NewExternalServiceError(operation, []string{"rate limit exceeded"}, nil)
			}
			c.logger.Warn("Inventory system rate limited request, backing off", map[string]any{
				"operation": operation,
				"attempt":   attempt,
				"delay_ms":  delay.Milliseconds(),
			})
			if err := c.timeProvider.Sleep(ctx, delay); err != nil {
				return errs.NewExternalServiceError(operation, nil, err)
			}
			delay *= 2
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return errs.NewExternalServiceError(operation, []string{fmt.Sprintf("HTTP status %d", resp.StatusCode)}, nil)
		}

		if err := json.Unmarshal(data, out); err != nil {
			return errs.NewExternalServiceError(operation, []string{"response is not valid JSON"}, err)
		}
		return nil
	}
}

// checkEnvelope turns a logical error inside a 2xx response into an ExternalServiceError
func checkEnvelope(operation string, envelope statusEnvelope) error {
	if envelope.Status == statusSuccess {
		return nil
	}
	messages := parseMessages(envelope.Messages)
	if len(messages) == 0 {
		messages = []string{"unknown inventory error"}
	}
	return errs.NewExternalServiceError(operation, messages, nil)
}

// parseMessages flattens the messages field, which is a string, a list or a
// map of field name to list depending on the endpoint
func parseMessages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		var messages []string
		for field, values := range fields {
			for _, v := range values {
				messages = append(messages, field+": "+v)
			}
		}
		sort.Strings(messages)
		return messages
	}

	return []string{string(raw)}
}
