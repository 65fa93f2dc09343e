// Package gateway talks to the weatherapi.com HTTP API.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"golang.org/x/net/html"
)

// API endpoints.
const (
	currentEndpoint  = "current.json"
	forecastEndpoint = "forecast.json"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

var errInvalidBaseURL = errors.New("base url must be an absolute http(s) url")

// Client fetches current conditions and forecasts.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates new Client. Zero timeout leaves the transport default.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCurrent gets current conditions for the normalized city.
func (c *Client) FetchCurrent(ctx context.Context, city string) (*model.CurrentBundle, error) {
	bundle := new(model.CurrentBundle)

	err := c.get(ctx, currentEndpoint, city, nil, bundle)
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

// FetchForecast gets the forecast for the normalized city.
func (c *Client) FetchForecast(ctx context.Context, city string) (*model.ForecastBundle, error) {
	bundle := new(model.ForecastBundle)

	params := url.Values{"days": {strconv.Itoa(model.ForecastDays)}}
	err := c.get(ctx, forecastEndpoint, city, params, bundle)
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

func (c *Client) get(ctx context.Context, endpoint, city string, params url.Values, dst interface{}) error {
	u, err := c.endpointURL(endpoint, city, params)
	if err != nil {
		return &Error{Kind: KindRequestSetup, City: city, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Kind: KindRequestSetup, City: city, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log := logger.WithFields(logger.Fields{"endpoint": endpoint, "city": city})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("weather api request got no response")
		return &Error{Kind: KindNetwork, City: city, Err: err}
	}
	defer resp.Body.Close()

	log.WithField("status", resp.StatusCode).Debug("weather api responded")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp, city)
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return &Error{
			Kind:    KindAPI,
			City:    city,
			Status:  resp.StatusCode,
			Message: "malformed response",
			Err:     fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return nil
}

func (c *Client) endpointURL(endpoint, city string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errInvalidBaseURL
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("q", city)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func statusError(resp *http.Response, city string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		return &Error{Kind: KindNotFound, City: city, Status: resp.StatusCode, Message: serverMessage(resp.Header, body)}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindAuth, City: city, Status: resp.StatusCode, Message: serverMessage(resp.Header, body)}
	default:
		return &Error{Kind: KindAPI, City: city, Status: resp.StatusCode, Message: serverMessage(resp.Header, body)}
	}
}

// serverMessage extracts a readable message from an error body: the API error
// envelope when it is JSON, the page title when a proxy answered with HTML.
func serverMessage(h http.Header, body []byte) string {
	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.Contains(h.Get("Content-Type"), "text/html") || strings.HasPrefix(trimmed, "<") {
		return htmlTitle(trimmed)
	}

	return ""
}

func htmlTitle(doc string) string {
	z := html.NewTokenizer(strings.NewReader(doc))

	var inTitle bool

	for {
		tokenType := z.Next()

		switch tokenType {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			inTitle = string(name) == "title"
		case html.EndTagToken:
			inTitle = false
		case html.TextToken:
			if inTitle {
				if text := strings.TrimSpace(string(z.Text())); text != "" {
					return text
				}
			}
		}
	}
}
