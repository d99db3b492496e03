// Package propertysvc is the HTTP client for the property management
// service. It resolves property directory records and cleaning schedules,
// both read-only collaborators of the delivery core.
package propertysvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
)

const (
	requestTimeout = 5 * time.Second

	propertyCachePrefix = "property_info:"
)

// Client talks to the property management service over HTTP. Directory
// lookups are read-through cached: a hit in the local cache skips the
// network call, and a successful fetch refreshes the cache so courier
// views keep rendering during short service outages.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      ports.LocalCache
	logger     *slog.Logger
}

// NewClient creates a property service client. The cache is required; pass
// an in-memory store when no durable cache is configured.
func NewClient(baseURL string, cache ports.LocalCache, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if cache == nil {
		return nil, errs.NewValueIsRequiredError("cache")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      cache,
		logger:     logger.With("component", "property_service_client"),
	}, nil
}

type propertyResponse struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	AccessInfo string `json:"access_info"`
}

type cleaningSlotResponse struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
}

// Get implements ports.PropertyDirectory.
func (c *Client) Get(ctx context.Context, propertyID kernel.UUID) (ports.PropertyInfo, error) {
	if cached, ok := c.fromCache(ctx, propertyID); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/properties/%s", c.baseURL, propertyID.String())
	var body propertyResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return ports.PropertyInfo{}, err
	}

	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.PropertyInfo{}, fmt.Errorf("property service returned invalid id %q: %w", body.ID, err)
	}

	info := ports.PropertyInfo{
		ID:         id,
		Address:    body.Address,
		AccessInfo: body.AccessInfo,
	}
	c.toCache(ctx, propertyID, body)
	return info, nil
}

// NextScheduled implements ports.CleaningSchedule. A 404 from the service
// means no cleaning is scheduled for the property on that date and maps to
// a nil slot, not an error.
func (c *Client) NextScheduled(ctx context.Context, propertyID kernel.UUID, date time.Time) (*ports.CleaningSlot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/properties/%s/cleanings/next?date=%s",
		c.baseURL, propertyID.String(), url.QueryEscape(date.Format("2006-01-02")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("property service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("property service returned status %d", resp.StatusCode)
	}

	var body cleaningSlotResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("property service returned invalid body: %w", err)
	}

	slotID, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return nil, fmt.Errorf("property service returned invalid slot id %q: %w", body.ID, err)
	}
	slotPropertyID, err := kernel.UUIDFromString(body.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("property service returned invalid property id %q: %w", body.PropertyID, err)
	}

	return &ports.CleaningSlot{
		ID:            slotID,
		PropertyID:    slotPropertyID,
		ScheduledTime: body.ScheduledTime,
		Status:        body.Status,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("property service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundError("property", endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("property service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("property service returned invalid body: %w", err)
	}
	return nil
}

func (c *Client) fromCache(ctx context.Context, propertyID kernel.UUID) (ports.PropertyInfo, bool) {
	raw, err := c.cache.Get(ctx, propertyCachePrefix+propertyID.String(), nil)
	if err != nil || raw == nil {
		return ports.PropertyInfo{}, false
	}

	var body propertyResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return ports.PropertyInfo{}, false
	}
	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.PropertyInfo{}, false
	}

	return ports.PropertyInfo{
		ID:         id,
		Address:    body.Address,
		AccessInfo: body.AccessInfo,
	}, true
}

func (c *Client) toCache(ctx context.Context, propertyID kernel.UUID, body propertyResponse) {
	raw, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, propertyCachePrefix+propertyID.String(), raw); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache property info",
			"property_id", propertyID.String(), "error", err)
	}
}
