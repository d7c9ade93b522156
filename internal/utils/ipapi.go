package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location is the subset of the ipapi.co response the login alert uses.
type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country_name"`
}

// GeoClient resolves an IP address to a coarse location via ipapi.co.
// No API key is required for the free tier.
type GeoClient struct {
	BaseURL string
	client  *http.Client
}

func NewGeoClient(baseURL string, timeout time.Duration) *GeoClient {
	if baseURL == "" {
		baseURL = "https://ipapi.co"
	}
	return &GeoClient{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *GeoClient) Lookup(ctx context.Context, ip string) (Location, error) {
	var loc Location

	url := fmt.Sprintf("%s/%s/json/", g.BaseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return loc, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return loc, fmt.Errorf("geo lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return loc, fmt.Errorf("geo lookup status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return loc, fmt.Errorf("geo lookup decode: %w", err)
	}
	return loc, nil
}
