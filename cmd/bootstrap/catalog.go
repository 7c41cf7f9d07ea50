package bootstrap

import (
	"log/slog"

	"gin-storefront/internal/infra/readstore"
	"gin-storefront/internal/infra/shopify"
	"gin-storefront/internal/infra/stripe"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

// CatalogModule picks the product source and checkout backend once per process.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewShopifyClient,
		NewCatalogSource,
		NewCheckoutBackend,
	),
)

func NewShopifyClient(cfg config.ShopifyConfig) *shopify.Client {
	return shopify.NewClient(cfg)
}

func NewCatalogSource(cfg config.ShopifyConfig, client *shopify.Client, local *readstore.ProductReadStore) queries.CatalogSource {
	if cfg.Enabled() {
		slog.Info("catalog source selected", "source", "shopify", "endpoint", client.Endpoint())
		return shopify.NewCatalogSource(client)
	}
	slog.Info("catalog source selected", "source", local.Name())
	return local
}

func NewCheckoutBackend(shop config.ShopifyConfig, stripeCfg config.StripeConfig, app config.AppConfig, client *shopify.Client) commands.CheckoutBackend {
	if shop.Enabled() {
		slog.Info("checkout backend selected", "backend", "shopify")
		return shopify.NewCheckoutBackend(client)
	}
	if stripeCfg.SecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is empty; checkout sessions will be rejected by Stripe")
	}
	slog.Info("checkout backend selected", "backend", "stripe")
	return stripe.NewCheckoutBackend(stripeCfg, app)
}
