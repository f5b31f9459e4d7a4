// Package fetch is the only place that talks to the store over HTTP, everything
// about how requests are made (headers, cookies, proxy, timeouts, politeness) is
// configured here through Options.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"steamscraper/internal/components/assert"
	"steamscraper/internal/components/chrono"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/storefront"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_markup  = "client.markup"
	report_client_catalog = "client.catalog"
	report_client_dump    = "client.dump"
)

const (
	DefaultBaseURL   = "https://" + storefront.StoreHost
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"
	DefaultTimeout   = 10 * time.Second
)

// Options is the complete configuration of a Client, nothing is read from the
// environment after NewClient returns.
type Options struct {
	// BaseURL replaces the scheme and host of every store url, it exists so tests
	// can point the client at a local server.
	BaseURL string
	Headers map[string]string
	Cookies map[string]string
	// Proxy is the url of an HTTP(S) proxy, empty means direct connections.
	Proxy   string
	Timeout time.Duration
	// RequestsPerSecond of 0 disables rate limiting.
	RequestsPerSecond float64
	Retries           int
	// DumpDir, if set, receives a text rendering of every HTTP exchange.
	DumpDir          string
	CloudflareBypass bool
}

// DefaultOptions returns the headers and age-gate cookies needed to get the full
// store page for every product, including mature ones.
func DefaultOptions() Options {
	return Options{
		BaseURL: DefaultBaseURL,
		Headers: map[string]string{
			"User-Agent": DefaultUserAgent,
			"Referer":    "https://www.google.com/",
		},
		Cookies: map[string]string{
			"birthtime":       "568022401",
			"mature_content":  "1",
			"lastagecheckage": "1-January-1990",
		},
		Timeout:          DefaultTimeout,
		CloudflareBypass: true,
	}
}

// ProxyFromEnvironment returns the proxy set through HTTPS_PROXY or HTTP_PROXY
// (either case), it should be called once at startup and the result passed
// through Options.Proxy.
func ProxyFromEnvironment() string {
	for _, key := range []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Url        string
	StatusCode int
	Status     string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.Url, e.Status)
}

// Client is safe for concurrent use.
type Client struct {
	http    *resty.Client
	baseUrl string
	tel     telemetry.API
}

func newTransport(opts Options) (http.RoundTripper, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Proxy != "" {
		proxyUrl, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyUrl)
	} else {
		transport.Proxy = nil
	}
	if opts.CloudflareBypass {
		return cloudflarebp.AddCloudFlareByPass(transport), nil
	}
	return transport, nil
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel, "telemetry")

	tel = telemetry.NewScopedAPI("fetch", tel)

	baseUrl := strings.TrimSuffix(opts.BaseURL, "/")
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	_, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	transport, err := newTransport(opts)
	if err != nil {
		return nil, err
	}

	httpClient := resty.New()
	httpClient.SetTransport(transport)
	httpClient.SetBaseURL(baseUrl)
	httpClient.SetHeaders(opts.Headers)
	for name, value := range opts.Cookies {
		httpClient.SetCookie(&http.Cookie{Name: name, Value: value})
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient.SetTimeout(timeout)

	if opts.Retries > 0 {
		httpClient.SetRetryCount(opts.Retries)
		httpClient.SetRetryWaitTime(500 * time.Millisecond)
		httpClient.SetRetryMaxWaitTime(5 * time.Second)
		httpClient.AddRetryCondition(func(res *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= 500
		})
	}

	if opts.RequestsPerSecond > 0 {
		// a burst of 1 keeps requests evenly spaced
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	var output telemetry.MessageOutput
	if opts.DumpDir != "" {
		fsOutput, err := NewFilesystemOutput(opts.DumpDir, chrono.StandardImpl{})
		if err != nil {
			tel.ReportWarning(report_client_dump, fmt.Errorf("create dump directory: %w", err), opts.DumpDir)
		} else {
			tel.ReportDebug("dumping http exchanges", fsOutput.Directory())
			output = fsOutput
		}
	}
	telemetry.InstrumentResty(httpClient, tel, output)

	return &Client{
		http:    httpClient,
		baseUrl: baseUrl,
		tel:     tel,
	}, nil
}

// rebase points canonical store urls at the configured base url.
func (c *Client) rebase(storeUrl string) string {
	if c.baseUrl == DefaultBaseURL {
		return storeUrl
	}
	if strings.HasPrefix(storeUrl, DefaultBaseURL) {
		return c.baseUrl + strings.TrimPrefix(storeUrl, DefaultBaseURL)
	}
	return storeUrl
}

func (c *Client) get(ctx context.Context, endpoint string, query map[string]string) (*resty.Response, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(endpoint)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, StatusError{
			Url:        endpoint,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
	}
	return res, nil
}

// Markup returns the rendered store page at `storeUrl` in the given language.
func (c *Client) Markup(ctx context.Context, storeUrl string, lang storefront.Language) (string, error) {
	endpoint := c.rebase(storeUrl)
	c.tel.ReportDebug(report_client_markup, endpoint, lang)

	res, err := c.get(ctx, endpoint, map[string]string{"l": string(lang)})
	if err != nil {
		c.tel.ReportWarning(report_client_markup, fmt.Errorf("fetch: %w", err), endpoint)
		return "", err
	}
	return res.String(), nil
}

// Catalog returns the raw body of the appdetails endpoint for `id`.
func (c *Client) Catalog(ctx context.Context, id storefront.AppID, lang storefront.Language) ([]byte, error) {
	c.tel.ReportDebug(report_client_catalog, id, lang)

	res, err := c.get(ctx, "/api/appdetails", map[string]string{
		"appids": id.String(),
		"l":      string(lang),
	})
	if err != nil {
		c.tel.ReportWarning(report_client_catalog, fmt.Errorf("fetch: %w", err), id)
		return nil, err
	}
	return res.Body(), nil
}
