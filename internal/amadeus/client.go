// Package amadeus is a minimal client for the Amadeus Airport & City
// Search API (self-service tier). It handles the OAuth client-credentials
// flow and maps responses to a small local struct; callers decide what to
// do with failures.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBaseURL = "https://test.api.amadeus.com"

	requestTimeout = 5 * time.Second

	// tokenSlack is shaved off the reported token lifetime so we refresh
	// before the server-side expiry.
	tokenSlack = 30 * time.Second
)

// Location is a simplified airport/city result.
type Location struct {
	IATACode    string
	Name        string
	CountryCode string
	SubType     string // "AIRPORT" or "CITY"
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a client for the given credentials. baseURL may be
// empty to use the public test endpoint.
func NewClient(baseURL, clientID, clientSecret string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("amadeus: client id and secret are required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
	}, nil
}

// Locations searches airports and cities by keyword. subTypes is a
// comma-separated filter such as "AIRPORT,CITY". A single attempt is
// made; any transport or API fault is returned as an error.
func (c *Client) Locations(ctx context.Context, keyword, subTypes string) ([]Location, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", subTypes)
	endpoint := c.baseURL + "/v1/reference-data/locations?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: locations request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("amadeus: locations returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Data []struct {
			IATACode string `json:"iataCode"`
			Name     string `json:"name"`
			SubType  string `json:"subType"`
			Address  struct {
				CountryCode string `json:"countryCode"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("amadeus: decode locations: %w", err)
	}

	out := make([]Location, 0, len(payload.Data))
	for _, d := range payload.Data {
		out = append(out, Location{
			IATACode:    d.IATACode,
			Name:        d.Name,
			CountryCode: d.Address.CountryCode,
			SubType:     d.SubType,
		})
	}
	return out, nil
}

// accessToken returns a cached bearer token, fetching a new one through
// the client-credentials grant when the cache is empty or expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus: token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("amadeus: decode token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("amadeus: token endpoint returned empty token")
	}

	c.token = payload.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenSlack)
	return c.token, nil
}
