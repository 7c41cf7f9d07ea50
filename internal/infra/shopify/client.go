package shopify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/patch"

	"github.com/machinebox/graphql"
)

const (
	tokenHeader       = "X-Shopify-Storefront-Access-Token"
	defaultAPIVersion = "2024-10"
)

var ErrNotConfigured = errs.New("shopify storefront is not configured")

// Client is a lazily constructed Storefront API client shared by the catalog and checkout paths.
type Client struct {
	cfg        config.ShopifyConfig
	endpoint   string
	httpClient *http.Client

	once sync.Once
	gql  *graphql.Client
}

type Option func(*Client)

// WithEndpoint overrides the derived GraphQL endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(cfg config.ShopifyConfig, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		// no client timeout: outbound calls are bounded by the request context
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" && cfg.StoreDomain != "" {
		c.endpoint = Endpoint(cfg.StoreDomain, cfg.APIVersion)
	}
	return c
}

// NormalizeDomain strips scheme and trailing slashes and expands bare shop names.
func NormalizeDomain(domain string) string {
	d := strings.TrimSpace(domain)
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimRight(d, "/")
	if d != "" && !strings.Contains(d, ".") {
		d += ".myshopify.com"
	}
	return d
}

func Endpoint(domain, apiVersion string) string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", NormalizeDomain(domain), patch.FirstNonEmpty(apiVersion, defaultAPIVersion))
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) graphql() *graphql.Client {
	c.once.Do(func() {
		c.gql = graphql.NewClient(c.endpoint, graphql.WithHTTPClient(c.httpClient))
	})
	return c.gql
}

// Run executes one GraphQL operation and decodes its data object into out.
func (c *Client) Run(ctx context.Context, query string, vars map[string]any, out any) error {
	if c.endpoint == "" || c.cfg.StorefrontToken == "" {
		return ErrNotConfigured
	}

	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set(tokenHeader, c.cfg.StorefrontToken)

	if err := c.graphql().Run(ctx, req, out); err != nil {
		return errs.Wrap(err, "shopify storefront request")
	}
	return nil
}
