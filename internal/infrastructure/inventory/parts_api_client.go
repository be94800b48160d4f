package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"
)

var ErrMissingPartsAPIBaseURL = errors.New("missing PARTS_API_BASE_URL")

const defaultRequestTimeout = 10 * time.Second

// PartsAPIClient reads part data from the inventory service over HTTP.
//
// Supported env vars:
//   - PARTS_API_BASE_URL (required, e.g. http://inventory:8081)
//   - PARTS_API_KEY (optional bearer token)
type PartsAPIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ interfaces.IInventoryLookup = (*PartsAPIClient)(nil)

func NewPartsAPIClient() (*PartsAPIClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("PARTS_API_BASE_URL")), "/")
	if baseURL == "" {
		log.Printf("[inventory][client] missing PARTS_API_BASE_URL")
		return nil, ErrMissingPartsAPIBaseURL
	}

	log.Printf("[inventory][client] parts api client initialized base_url=%s", baseURL)
	return &PartsAPIClient{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(os.Getenv("PARTS_API_KEY")),
	}, nil
}

type partPayload struct {
	ID             string  `json:"id"`
	PartNumber     string  `json:"part_number"`
	Name           string  `json:"name"`
	SellPrice      float64 `json:"sell_price"`
	QuantityOnHand float64 `json:"quantity_on_hand"`
}

func (p partPayload) toEntity() entities.Part {
	return entities.Part{
		ID:             p.ID,
		PartNumber:     p.PartNumber,
		Name:           p.Name,
		SellPrice:      p.SellPrice,
		QuantityOnHand: p.QuantityOnHand,
	}
}

// FindPart resolves a part by id. A 404 from the inventory service maps to
// the zero value, matching the lookup contract.
func (c *PartsAPIClient) FindPart(ctx context.Context, id string) (entities.Part, error) {
	body, status, err := c.get(ctx, "/v1/parts/"+url.PathEscape(id))
	if err != nil {
		return entities.Part{}, err
	}
	if status == http.StatusNotFound {
		return entities.Part{}, nil
	}
	if status != http.StatusOK {
		log.Printf("[inventory][client] find part unexpected status part_id=%s status=%d", id, status)
		return entities.Part{}, fmt.Errorf("parts api returned status %d", status)
	}

	var payload partPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[inventory][client] find part decode failed part_id=%s err=%v", id, err)
		return entities.Part{}, err
	}
	return payload.toEntity(), nil
}

func (c *PartsAPIClient) SearchParts(ctx context.Context, query string) ([]entities.Part, error) {
	body, status, err := c.get(ctx, "/v1/parts?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		log.Printf("[inventory][client] search unexpected status query=%q status=%d", query, status)
		return nil, fmt.Errorf("parts api returned status %d", status)
	}

	var payloads []partPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		log.Printf("[inventory][client] search decode failed query=%q err=%v", query, err)
		return nil, err
	}

	parts := make([]entities.Part, 0, len(payloads))
	for _, p := range payloads {
		parts = append(parts, p.toEntity())
	}
	return parts, nil
}

func (c *PartsAPIClient) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[inventory][client] request failed path=%s err=%v", path, err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
