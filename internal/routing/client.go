package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/incident_dispatch/pkg/geo"
)

var (
	ErrNoRoute       = errors.New("no route found")
	ErrNotConfigured = errors.New("routing provider is not configured")
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Provider - внешний сервис дорожной маршрутизации
type Provider interface {
	Route(ctx context.Context, from, to geo.Point) ([]geo.Point, error)
}

// Client - клиент OpenRouteService (профиль driving-car)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type ClientOptions struct {
	Timeout time.Duration
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout: 5 * time.Second,
	}
}

func NewClient(baseURL, apiKey string, options ...ClientOptions) *Client {
	opts := DefaultClientOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

type directionsRequest struct {
	// OpenRouteService ожидает пары [lng, lat]
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Route запрашивает маршрут по дорогам и возвращает ломаную в виде точек lat/lng
func (c *Client) Route(ctx context.Context, from, to geo.Point) ([]geo.Point, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	reqURL, err := url.JoinPath(c.baseURL, "/v2/directions/driving-car/geojson")
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	body, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(directions.Features) == 0 || len(directions.Features[0].Geometry.Coordinates) == 0 {
		return nil, ErrNoRoute
	}

	coords := directions.Features[0].Geometry.Coordinates
	path := make([]geo.Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("malformed coordinate in response: %v", c)
		}
		path = append(path, geo.Point{Lat: c[1], Lng: c[0]})
	}
	return path, nil
}
