package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/debugctx"
	"github.com/halbind/halbind/resource"
	"github.com/halbind/halbind/server"
)

const (
	defaultMediaType = "application/json"
	maxResponseBytes = 1 << 20
)

var _ server.ResourceServer = (*HTTPResourceServerGateway)(nil)
var _ server.ValueFilter = (*HTTPResourceServerGateway)(nil)

// HTTPResourceServerGateway talks to the hypermedia API over net/http. It
// owns URL resolution (appending the static credential and the embed flag),
// status classification, and JSON decoding.
type HTTPResourceServerGateway struct {
	baseURL        *url.URL
	apiKey         string
	defaultHeaders map[string]string
	client         *http.Client
}

func NewHTTPResourceServerGateway(cfg config.API) (*HTTPResourceServerGateway, error) {
	baseURL, err := parseBaseURL(cfg.EffectiveBaseURL())
	if err != nil {
		return nil, err
	}

	return &HTTPResourceServerGateway{
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		defaultHeaders: cloneStringMap(cfg.DefaultHeaders),
		client: &http.Client{
			Timeout: time.Duration(cfg.EffectiveTimeoutSeconds()) * time.Second,
		},
	}, nil
}

// ResolveURL turns a raw path or absolute URL into the exact request URL:
// relative paths join the base URL, then the credential and embed parameters
// are appended with ? when no query string exists yet, else &.
func (g *HTTPResourceServerGateway) ResolveURL(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", validationError("request URL is required", nil)
	}

	if strings.HasPrefix(value, "/") {
		value = strings.TrimRight(g.baseURL.String(), "/") + value
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return "", validationError("request URL is invalid", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", validationError("request URL must use http or https", nil)
	}

	separator := "?"
	if parsed.RawQuery != "" {
		separator = "&"
	}

	params := "embed=true"
	if g.apiKey != "" {
		params = "apikey=" + url.QueryEscape(g.apiKey) + "&embed=true"
	}
	return value + separator + params, nil
}

// Get issues one GET for the resolved URL and returns the decoded,
// normalized JSON payload.
func (g *HTTPResourceServerGateway) Get(ctx context.Context, resolvedURL string) (resource.Value, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, resolvedURL, nil)
	if err != nil {
		return nil, internalError("failed to create remote request", err)
	}
	request.Header.Set("Accept", defaultMediaType)
	g.applyDefaultHeaders(request)

	debugctx.Printf(ctx, "GET %s", resolvedURL)

	response, err := g.client.Do(request)
	if err != nil {
		return nil, transportError("remote request failed", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError("failed to read remote response body", err)
	}

	debugctx.Printf(ctx, "GET %s -> %d (%d bytes)", resolvedURL, response.StatusCode, len(body))

	if response.StatusCode >= http.StatusBadRequest {
		return nil, classifyStatusError(response.StatusCode, body)
	}

	return decodeJSONResponse(body)
}

func (g *HTTPResourceServerGateway) applyDefaultHeaders(request *http.Request) {
	if len(g.defaultHeaders) == 0 {
		return
	}
	keys := make([]string, 0, len(g.defaultHeaders))
	for key := range g.defaultHeaders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		request.Header.Set(key, g.defaultHeaders[key])
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, validationError("api.base-url is required", nil)
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return nil, validationError("api.base-url is invalid", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, validationError("api.base-url must use http or https", nil)
	}
	if parsed.Host == "" {
		return nil, validationError("api.base-url host is required", nil)
	}
	return parsed, nil
}

func cloneStringMap(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	cloned := make(map[string]string, len(values))
	for key, value := range values {
		cloned[key] = value
	}
	return cloned
}
